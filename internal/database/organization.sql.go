package database

import (
	"context"
)

const getOrganizationBySlug = `
SELECT id, slug, name
FROM organizations
WHERE slug = $1
`

func (q *Queries) GetOrganizationBySlug(ctx context.Context, slug string) (Organization, error) {
	row := q.db.QueryRowContext(ctx, getOrganizationBySlug, slug)
	var i Organization
	err := row.Scan(&i.ID, &i.Slug, &i.Name)
	return i, err
}

const listProjectsByOrganization = `
SELECT id, organization_id, slug, name
FROM projects
WHERE organization_id = $1
ORDER BY id
`

func (q *Queries) ListProjectsByOrganization(ctx context.Context, organizationID int64) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, listProjectsByOrganization, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProjects(rows)
}

const listReleaseProjects = `
SELECT p.id, p.organization_id, p.slug, p.name
FROM projects p
JOIN release_projects rp ON rp.project_id = p.id
WHERE rp.release_id = $1
ORDER BY p.id
`

func (q *Queries) ListReleaseProjects(ctx context.Context, releaseID int64) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, listReleaseProjects, releaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProjects(rows)
}

type scanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProjects(rows scanner) ([]Project, error) {
	var items []Project
	for rows.Next() {
		var i Project
		if err := rows.Scan(&i.ID, &i.OrganizationID, &i.Slug, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getActivityForOrganization = `
SELECT a.id, a.project_id, a.type, a.data, a.created_at
FROM activities a
JOIN projects p ON p.id = a.project_id
WHERE a.id = $1 AND p.organization_id = $2
`

type GetActivityForOrganizationParams struct {
	ActivityID     int64
	OrganizationID int64
}

func (q *Queries) GetActivityForOrganization(ctx context.Context, arg GetActivityForOrganizationParams) (Activity, error) {
	row := q.db.QueryRowContext(ctx, getActivityForOrganization, arg.ActivityID, arg.OrganizationID)
	var i Activity
	err := row.Scan(&i.ID, &i.ProjectID, &i.Type, &i.Data, &i.CreatedAt)
	return i, err
}

package database

import (
	"context"
	"database/sql"
	"time"
)

const listProjectIDsByTeams = `
SELECT DISTINCT project_id
FROM project_teams
WHERE team_id = ANY($1)
`

func (q *Queries) ListProjectIDsByTeams(ctx context.Context, teamIDs []int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listProjectIDsByTeams, teamIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listUserTeamsByOrganization = `
SELECT om.user_id, omt.team_id
FROM organization_members om
LEFT JOIN organization_member_teams omt ON omt.organization_member_id = om.id
WHERE om.organization_id = $1
ORDER BY om.user_id, omt.team_id
`

type ListUserTeamsByOrganizationRow struct {
	UserID int64
	TeamID sql.NullInt64
}

func (q *Queries) ListUserTeamsByOrganization(ctx context.Context, organizationID int64) ([]ListUserTeamsByOrganizationRow, error) {
	rows, err := q.db.QueryContext(ctx, listUserTeamsByOrganization, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListUserTeamsByOrganizationRow
	for rows.Next() {
		var i ListUserTeamsByOrganizationRow
		if err := rows.Scan(&i.UserID, &i.TeamID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getDeployByID = `
SELECT id, release_id, environment_id, name, url, date_finished
FROM deploys
WHERE id = $1
`

func (q *Queries) GetDeployByID(ctx context.Context, id int64) (Deploy, error) {
	row := q.db.QueryRowContext(ctx, getDeployByID, id)
	var i Deploy
	err := row.Scan(&i.ID, &i.ReleaseID, &i.EnvironmentID, &i.Name, &i.URL, &i.DateFinished)
	return i, err
}

const getReleaseByVersion = `
SELECT id, organization_id, version, date_added
FROM releases
WHERE organization_id = $1 AND version = $2
`

type GetReleaseByVersionParams struct {
	OrganizationID int64
	Version        string
}

func (q *Queries) GetReleaseByVersion(ctx context.Context, arg GetReleaseByVersionParams) (Release, error) {
	row := q.db.QueryRowContext(ctx, getReleaseByVersion, arg.OrganizationID, arg.Version)
	var i Release
	err := row.Scan(&i.ID, &i.OrganizationID, &i.Version, &i.DateAdded)
	return i, err
}

const countGroupsByProjectForRelease = `
SELECT g.project_id, COUNT(g.id) AS num_groups
FROM issue_groups g
WHERE g.project_id = ANY($2)
  AND g.id IN (
    SELECT gl.group_id
    FROM group_links gl
    WHERE gl.linked_type = $3
      AND gl.linked_id IN (SELECT rc.commit_id FROM release_commits rc WHERE rc.release_id = $1)
  )
GROUP BY g.project_id
`

type CountGroupsByProjectForReleaseParams struct {
	ReleaseID  int64
	ProjectIDs []int64
	LinkedType int16
}

type CountGroupsByProjectForReleaseRow struct {
	ProjectID int64
	NumGroups int64
}

func (q *Queries) CountGroupsByProjectForRelease(ctx context.Context, arg CountGroupsByProjectForReleaseParams) ([]CountGroupsByProjectForReleaseRow, error) {
	rows, err := q.db.QueryContext(ctx, countGroupsByProjectForRelease, arg.ReleaseID, arg.ProjectIDs, arg.LinkedType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CountGroupsByProjectForReleaseRow
	for rows.Next() {
		var i CountGroupsByProjectForReleaseRow
		if err := rows.Scan(&i.ProjectID, &i.NumGroups); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listVerifiedUsersByEmails = `
SELECT ue.email, u.id, u.username, u.name, u.email
FROM user_emails ue
JOIN users u ON u.id = ue.user_id
JOIN organization_members om ON om.user_id = u.id
WHERE LOWER(ue.email) = ANY($2)
  AND ue.is_verified
  AND om.organization_id = $1
ORDER BY ue.id
`

type ListVerifiedUsersByEmailsParams struct {
	OrganizationID int64
	Emails         []string
}

type ListVerifiedUsersByEmailsRow struct {
	MatchedEmail string
	UserID       int64
	Username     string
	Name         string
	Email        string
}

func (q *Queries) ListVerifiedUsersByEmails(ctx context.Context, arg ListVerifiedUsersByEmailsParams) ([]ListVerifiedUsersByEmailsRow, error) {
	rows, err := q.db.QueryContext(ctx, listVerifiedUsersByEmails, arg.OrganizationID, arg.Emails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListVerifiedUsersByEmailsRow
	for rows.Next() {
		var i ListVerifiedUsersByEmailsRow
		if err := rows.Scan(&i.MatchedEmail, &i.UserID, &i.Username, &i.Name, &i.Email); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRepositoriesByIDs = `
SELECT id, name
FROM repositories
WHERE organization_id = $1 AND id = ANY($2)
ORDER BY id
`

type ListRepositoriesByIDsParams struct {
	OrganizationID int64
	IDs            []int64
}

type ListRepositoriesByIDsRow struct {
	ID   int64
	Name string
}

func (q *Queries) ListRepositoriesByIDs(ctx context.Context, arg ListRepositoriesByIDsParams) ([]ListRepositoriesByIDsRow, error) {
	rows, err := q.db.QueryContext(ctx, listRepositoriesByIDs, arg.OrganizationID, arg.IDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListRepositoriesByIDsRow
	for rows.Next() {
		var i ListRepositoriesByIDsRow
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCommitsForRelease = `
SELECT DISTINCT ON (c.id)
       c.id, c.organization_id, c.repository_id, c.key, c.message, c.date_added,
       ca.id, ca.name, ca.email
FROM release_commits rc
JOIN commits c ON c.id = rc.commit_id
LEFT JOIN commit_authors ca ON ca.id = c.author_id
WHERE rc.release_id = $1
ORDER BY c.id
`

type ListCommitsForReleaseRow struct {
	ID             int64
	OrganizationID int64
	RepositoryID   int64
	Key            string
	Message        string
	DateAdded      time.Time
	AuthorID       sql.NullInt64
	AuthorName     sql.NullString
	AuthorEmail    sql.NullString
}

func (q *Queries) ListCommitsForRelease(ctx context.Context, releaseID int64) ([]ListCommitsForReleaseRow, error) {
	rows, err := q.db.QueryContext(ctx, listCommitsForRelease, releaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListCommitsForReleaseRow
	for rows.Next() {
		var i ListCommitsForReleaseRow
		if err := rows.Scan(
			&i.ID,
			&i.OrganizationID,
			&i.RepositoryID,
			&i.Key,
			&i.Message,
			&i.DateAdded,
			&i.AuthorID,
			&i.AuthorName,
			&i.AuthorEmail,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getEnvironmentByID = `
SELECT id, organization_id, name
FROM environments
WHERE id = $1
`

func (q *Queries) GetEnvironmentByID(ctx context.Context, id int64) (Environment, error) {
	row := q.db.QueryRowContext(ctx, getEnvironmentByID, id)
	var i Environment
	err := row.Scan(&i.ID, &i.OrganizationID, &i.Name)
	return i, err
}

const countDistinctFilenames = `
SELECT COUNT(DISTINCT filename)
FROM commit_file_changes
WHERE organization_id = $1 AND commit_id = ANY($2)
`

type CountDistinctFilenamesParams struct {
	OrganizationID int64
	CommitIDs      []int64
}

func (q *Queries) CountDistinctFilenames(ctx context.Context, arg CountDistinctFilenamesParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countDistinctFilenames, arg.OrganizationID, arg.CommitIDs)
	var count int64
	err := row.Scan(&count)
	return count, err
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"event-insights-service/internal/database"
	"event-insights-service/internal/domain"
)

// OrganizationRepository реализует domain.OrganizationRepository для PostgreSQL.
type OrganizationRepository struct {
	queries *database.Queries
}

// NewOrganizationRepository создает новый экземпляр OrganizationRepository.
func NewOrganizationRepository(queries *database.Queries) domain.OrganizationRepository {
	return &OrganizationRepository{
		queries: queries,
	}
}

// GetBySlug возвращает организацию по slug.
func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	org, err := r.queries.GetOrganizationBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &domain.Organization{
		ID:   org.ID,
		Slug: org.Slug,
		Name: org.Name,
	}, nil
}

// ListProjects возвращает все проекты организации.
func (r *OrganizationRepository) ListProjects(ctx context.Context, organizationID int64) ([]*domain.Project, error) {
	dbProjects, err := r.queries.ListProjectsByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return toDomainProjects(dbProjects), nil
}

func toDomainProjects(dbProjects []database.Project) []*domain.Project {
	projects := make([]*domain.Project, 0, len(dbProjects))
	for _, p := range dbProjects {
		projects = append(projects, &domain.Project{
			ID:             p.ID,
			OrganizationID: p.OrganizationID,
			Slug:           p.Slug,
			Name:           p.Name,
		})
	}
	return projects
}

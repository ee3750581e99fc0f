package repository

import (
	"context"
	"fmt"

	"event-insights-service/internal/database"
	"event-insights-service/internal/domain"
)

// FeatureRepository хранит переопределения feature-флагов в PostgreSQL.
// actor_id = 0 обозначает переопределение для всей организации.
type FeatureRepository struct {
	queries *database.Queries
}

// NewFeatureRepository создает новый экземпляр FeatureRepository.
func NewFeatureRepository(queries *database.Queries) domain.FeatureRepository {
	return &FeatureRepository{
		queries: queries,
	}
}

// GetOverride возвращает самое специфичное переопределение флага.
func (r *FeatureRepository) GetOverride(ctx context.Context, organizationID, actorID int64, feature string) (bool, bool, error) {
	rows, err := r.queries.ListFeatureOverrides(ctx, database.ListFeatureOverridesParams{
		OrganizationID: organizationID,
		Feature:        feature,
		ActorID:        actorID,
	})
	if err != nil {
		return false, false, fmt.Errorf("failed to get feature overrides: %w", err)
	}
	if len(rows) == 0 {
		return false, false, nil
	}

	// строки отсортированы по actor_id DESC, пользователь идёт первым
	return rows[0].Enabled, true, nil
}

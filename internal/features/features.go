package features

import (
	"context"
	"fmt"

	"event-insights-service/internal/domain"
)

// Service реализует domain.FeatureFlags. Порядок приоритета: переопределение
// для пользователя, затем для организации, затем набор по умолчанию из конфига.
type Service struct {
	repo     domain.FeatureRepository
	defaults map[string]bool
}

// NewService создает новый экземпляр Service.
func NewService(repo domain.FeatureRepository, enabledByDefault []string) domain.FeatureFlags {
	defaults := make(map[string]bool, len(enabledByDefault))
	for _, f := range enabledByDefault {
		defaults[f] = true
	}
	return &Service{
		repo:     repo,
		defaults: defaults,
	}
}

// Has проверяет, включён ли флаг.
func (s *Service) Has(ctx context.Context, feature string, org *domain.Organization, actor *domain.User) (bool, error) {
	if org == nil {
		return s.defaults[feature], nil
	}

	var actorID int64
	if actor != nil {
		actorID = actor.ID
	}

	enabled, found, err := s.repo.GetOverride(ctx, org.ID, actorID, feature)
	if err != nil {
		return false, fmt.Errorf("failed to check feature %s: %w", feature, err)
	}
	if found {
		return enabled, nil
	}

	return s.defaults[feature], nil
}

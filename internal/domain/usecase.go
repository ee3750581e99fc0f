package domain

import "context"

// FacetsRequest содержит входные параметры эндпоинта facet performance.
type FacetsRequest struct {
	Organization    string
	Actor           *User
	Query           string
	AggregateColumn string
	OrderBy         string
	Scope           ScopeRequest
}

// FacetsPerformanceUseCase определяет бизнес-логику агрегации фасетов.
type FacetsPerformanceUseCase interface {
	// Prepare проверяет флаг и область и возвращает функцию получения данных
	// для пагинатора. Nil-функция означает пустой результат без запроса.
	Prepare(ctx context.Context, req FacetsRequest) (FacetsDataFn, error)
}

// MobileAppEventsUseCase определяет проверку наличия событий мобильных клиентов.
type MobileAppEventsUseCase interface {
	CheckHasMobileAppEvents(ctx context.Context, organization string, userAgents []string) (*MobileAppEvents, error)
}

// NotificationUseCase определяет сборку контекста уведомления по активности.
type NotificationUseCase interface {
	BuildNotification(ctx context.Context, organization string, activityID int64, teamIDs []int64) (*NotificationContext, error)
}

// FacetsDataFn возвращает строки страницы начиная с offset, не более limit.
type FacetsDataFn func(ctx context.Context, offset, limit int) ([]FacetPerformance, error)

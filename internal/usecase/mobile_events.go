package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-insights-service/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	mobileEventsCacheKey = "check-mobile-app-events:%d"
	mobileEventsLookback = 90 * 24 * time.Hour
	// Общий запрос не зависит от отмены контекста конкретного клиента.
	mobileEventsFlightTimeout = 30 * time.Second
)

// MobileAppEventsUseCase проверяет, присылала ли организация события
// от мобильных клиентов с заданными user agent.
type MobileAppEventsUseCase struct {
	orgRepo  domain.OrganizationRepository
	discover domain.Discover
	cache    domain.ResultCache
	ttl      time.Duration
	logger   logrus.FieldLogger
	group    singleflight.Group
	now      func() time.Time
}

// NewMobileAppEventsUseCase создает новый экземпляр MobileAppEventsUseCase.
func NewMobileAppEventsUseCase(
	orgRepo domain.OrganizationRepository,
	discover domain.Discover,
	cache domain.ResultCache,
	ttl time.Duration,
	logger logrus.FieldLogger,
) *MobileAppEventsUseCase {
	return &MobileAppEventsUseCase{
		orgRepo:  orgRepo,
		discover: discover,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// CheckHasMobileAppEvents возвращает первое найденное событие или nil.
// Результат, включая "не найдено", кэшируется на организацию.
func (uc *MobileAppEventsUseCase) CheckHasMobileAppEvents(ctx context.Context, organization string, userAgents []string) (*domain.MobileAppEvents, error) {
	org, err := uc.orgRepo.GetBySlug(ctx, organization)
	if err != nil {
		return nil, err
	}
	if len(userAgents) == 0 {
		return nil, nil
	}

	key := fmt.Sprintf(mobileEventsCacheKey, org.ID)
	if cached, ok := uc.readCache(ctx, key); ok {
		return cached.Result, nil
	}

	ch := uc.group.DoChan(key, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mobileEventsFlightTimeout)
		defer cancel()

		if cached, ok := uc.readCache(flightCtx, key); ok {
			return cached.Result, nil
		}
		return uc.lookup(flightCtx, org, key, userAgents)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.MobileAppEvents), nil
	}
}

func (uc *MobileAppEventsUseCase) readCache(ctx context.Context, key string) (*domain.CachedMobileAppEvents, bool) {
	var cached domain.CachedMobileAppEvents
	found, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		uc.logger.WithError(err).WithField("key", key).Warn("Mobile events cache read failed")
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &cached, true
}

func (uc *MobileAppEventsUseCase) lookup(ctx context.Context, org *domain.Organization, key string, userAgents []string) (*domain.MobileAppEvents, error) {
	projects, err := uc.orgRepo.ListProjects(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, nil
	}

	projectIDs := make([]int64, len(projects))
	for i, p := range projects {
		projectIDs[i] = p.ID
	}

	end := uc.now().UTC()
	rows, err := uc.discover.Query(ctx, domain.DiscoverQuery{
		SelectedColumns: []string{"browser.name", "client_os.name"},
		Query:           MobileEventsQuery(userAgents),
		Params: &domain.SnubaParams{
			OrganizationID: org.ID,
			ProjectIDs:     projectIDs,
			Start:          end.Add(-mobileEventsLookback),
			End:            end,
		},
		Referrer: domain.MobileAppEventsReferrer,
		Limit:    1,
	})
	if err != nil {
		return nil, err
	}

	var result *domain.MobileAppEvents
	if len(rows) > 0 {
		result = &domain.MobileAppEvents{
			BrowserName:  rowString(rows[0], "browser.name"),
			ClientOsName: rowString(rows[0], "client_os.name", "client_os_name"),
		}
	}

	if err := uc.cache.Set(ctx, key, domain.CachedMobileAppEvents{Result: result}, uc.ttl); err != nil {
		uc.logger.WithError(err).WithField("key", key).Warn("Mobile events cache write failed")
	}
	return result, nil
}

// MobileEventsQuery строит условие поиска по списку user agent.
func MobileEventsQuery(userAgents []string) string {
	values := make([]string, len(userAgents))
	for i, ua := range userAgents {
		values[i] = quoteSearchValue(ua)
	}
	return fmt.Sprintf("has:browser.name browser.name:[%s]", strings.Join(values, ","))
}

func quoteSearchValue(v string) string {
	if !strings.ContainsAny(v, " ,\"[]") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}

// rowString возвращает первое непустое строковое значение из перечисленных колонок.
func rowString(row map[string]any, columns ...string) string {
	for _, col := range columns {
		if s, ok := row[col].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

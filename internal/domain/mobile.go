package domain

import (
	"context"
	"time"
)

const MobileAppEventsReferrer = "api.organization-check-has-mobile-app-events"

// MobileAppEvents описывает первое найденное событие мобильного клиента.
type MobileAppEvents struct {
	BrowserName  string `json:"browserName"`
	ClientOsName string `json:"clientOsName"`
}

// CachedMobileAppEvents хранится в кэше. Result == nil означает
// закэшированное "не найдено".
type CachedMobileAppEvents struct {
	Result *MobileAppEvents `json:"result"`
}

// ResultCache хранит результаты дорогих запросов к аналитике.
type ResultCache interface {
	// Get возвращает false, если ключа нет.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

package mocks

import (
	"context"
	"encoding/json"
	"time"

	"event-insights-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type Discover struct {
	mock.Mock
}

func (m *Discover) GetPerformanceFacets(ctx context.Context, q domain.FacetsQuery) ([]domain.FacetRow, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]domain.FacetRow)
	return rows, args.Error(1)
}

func (m *Discover) Query(ctx context.Context, q domain.DiscoverQuery) ([]map[string]any, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]map[string]any)
	return rows, args.Error(1)
}

type FeatureFlags struct {
	mock.Mock
}

func (m *FeatureFlags) Has(ctx context.Context, feature string, org *domain.Organization, actor *domain.User) (bool, error) {
	args := m.Called(ctx, feature, org, actor)
	return args.Bool(0), args.Error(1)
}

type ScopeResolver struct {
	mock.Mock
}

func (m *ScopeResolver) GetSnubaParams(ctx context.Context, org *domain.Organization, req domain.ScopeRequest) (*domain.SnubaParams, error) {
	args := m.Called(ctx, org, req)
	params, _ := args.Get(0).(*domain.SnubaParams)
	return params, args.Error(1)
}

// ResultCache хранит значения в памяти в JSON, как настоящий кэш,
// и записывает вызовы Set для проверок.
type ResultCache struct {
	mock.Mock
	items map[string][]byte
}

func NewResultCache() *ResultCache {
	return &ResultCache{items: map[string][]byte{}}
}

func (m *ResultCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *ResultCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	if err := args.Error(0); err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = raw
	return nil
}

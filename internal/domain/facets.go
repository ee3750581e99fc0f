package domain

import (
	"context"
	"time"
)

const (
	// FeaturePerformanceTagExplorer включает эндпоинт facet performance.
	FeaturePerformanceTagExplorer = "organizations:performance-tag-explorer"

	FacetsPerformanceReferrer = "api.organization-events-facets-performance.top-tags"
	DefaultAggregateColumn    = "duration"
)

// FacetRow описывает строку, которую возвращает аналитический движок.
type FacetRow struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Count       int64   `json:"count"`
	Frequency   float64 `json:"frequency"`
	Performance float64 `json:"performance"`
	Comparison  float64 `json:"comparison"`
	SumDelta    float64 `json:"sumdelta"`
}

// FacetValue содержит отображаемую часть результата по одному тегу.
type FacetValue struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Count      int64   `json:"count"`
	Frequency  float64 `json:"frequency"`
	Aggregate  float64 `json:"aggregate"`
	Comparison float64 `json:"comparison"`
	SumDelta   float64 `json:"sumdelta"`
}

// FacetPerformance описывает одну запись ответа эндпоинта, ключом служит имя тега.
type FacetPerformance struct {
	Key   string     `json:"key"`
	Value FacetValue `json:"value"`
}

// SnubaParams задаёт разрешённую область запроса к аналитике.
type SnubaParams struct {
	OrganizationID int64
	ProjectIDs     []int64
	Environments   []string
	Start          time.Time
	End            time.Time
}

// ScopeRequest содержит параметры области из query string.
type ScopeRequest struct {
	ProjectIDs   []int64
	Environments []string
	StatsPeriod  string
	Start        string
	End          string
}

// FacetsQuery описывает запрос одной страницы фасетов.
type FacetsQuery struct {
	Query           string
	Params          *SnubaParams
	Referrer        string
	AggregateColumn string
	OrderBy         string
	Offset          int
	Limit           int
}

// DiscoverQuery описывает обобщённый запрос к discover.
type DiscoverQuery struct {
	SelectedColumns []string
	Query           string
	Params          *SnubaParams
	Referrer        string
	Limit           int
}

// Discover описывает клиент аналитического движка.
type Discover interface {
	GetPerformanceFacets(ctx context.Context, q FacetsQuery) ([]FacetRow, error)
	Query(ctx context.Context, q DiscoverQuery) ([]map[string]any, error)
}

// TagStore переводит внутренние ключи и значения тегов в отображаемые.
type TagStore interface {
	GetStandardizedKey(key string) string
	GetTagValueLabel(key, value string) string
}

// ScopeResolver строит SnubaParams для организации.
// Возвращает ErrNoProjects, если под область не попал ни один проект.
type ScopeResolver interface {
	GetSnubaParams(ctx context.Context, org *Organization, req ScopeRequest) (*SnubaParams, error)
}

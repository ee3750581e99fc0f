package usecase

import (
	"context"
	"errors"

	"event-insights-service/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var facetsTracer = otel.Tracer("event-insights/usecase/facets")

var discoverEndpointOp = attribute.String("op", "discover.endpoint")

// FacetsPerformanceUseCase реализует бизнес-логику агрегации фасетов.
type FacetsPerformanceUseCase struct {
	orgRepo  domain.OrganizationRepository
	features domain.FeatureFlags
	scope    domain.ScopeResolver
	discover domain.Discover
	tags     domain.TagStore
}

// NewFacetsPerformanceUseCase создает новый экземпляр FacetsPerformanceUseCase.
func NewFacetsPerformanceUseCase(
	orgRepo domain.OrganizationRepository,
	features domain.FeatureFlags,
	scope domain.ScopeResolver,
	discover domain.Discover,
	tags domain.TagStore,
) domain.FacetsPerformanceUseCase {
	return &FacetsPerformanceUseCase{
		orgRepo:  orgRepo,
		features: features,
		scope:    scope,
		discover: discover,
		tags:     tags,
	}
}

// Prepare проверяет доступ и область запроса и возвращает функцию данных для пагинатора.
func (uc *FacetsPerformanceUseCase) Prepare(ctx context.Context, req domain.FacetsRequest) (domain.FacetsDataFn, error) {
	org, err := uc.orgRepo.GetBySlug(ctx, req.Organization)
	if err != nil {
		return nil, err
	}

	enabled, err := uc.features.Has(ctx, domain.FeaturePerformanceTagExplorer, org, req.Actor)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, domain.ErrFeatureDisabled
	}

	params, err := uc.scope.GetSnubaParams(ctx, org, req.Scope)
	if err != nil {
		if errors.Is(err, domain.ErrNoProjects) {
			return nil, nil
		}
		return nil, err
	}

	aggregateColumn := req.AggregateColumn
	if aggregateColumn == "" {
		aggregateColumn = domain.DefaultAggregateColumn
	}

	if len(params.ProjectIDs) > 1 {
		return nil, domain.ErrMultipleProjects
	}

	return func(ctx context.Context, offset, limit int) ([]domain.FacetPerformance, error) {
		ctx, span := facetsTracer.Start(ctx, "discover_query", trace.WithAttributes(discoverEndpointOp))
		defer span.End()

		rows, err := uc.discover.GetPerformanceFacets(ctx, domain.FacetsQuery{
			Query:           req.Query,
			Params:          params,
			Referrer:        domain.FacetsPerformanceReferrer,
			AggregateColumn: aggregateColumn,
			OrderBy:         req.OrderBy,
			Offset:          offset,
			Limit:           limit,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "discover query failed")
			return nil, err
		}

		_, populate := facetsTracer.Start(ctx, "populate_results", trace.WithAttributes(discoverEndpointOp))
		populate.SetAttributes(attribute.Int("facet_count", len(rows)))
		result := FoldFacets(rows, uc.tags)
		populate.End()

		return result, nil
	}, nil
}

// FoldFacets сворачивает строки движка в записи по ключу тега в порядке
// первого появления ключа. При повторе ключа побеждает последняя строка.
func FoldFacets(rows []domain.FacetRow, tags domain.TagStore) []domain.FacetPerformance {
	order := make([]string, 0, len(rows))
	byKey := make(map[string]domain.FacetPerformance, len(rows))

	for _, row := range rows {
		if _, ok := byKey[row.Key]; !ok {
			order = append(order, row.Key)
		}
		byKey[row.Key] = domain.FacetPerformance{
			Key: tags.GetStandardizedKey(row.Key),
			Value: domain.FacetValue{
				Name:       tags.GetTagValueLabel(row.Key, row.Value),
				Value:      row.Value,
				Count:      row.Count,
				Frequency:  row.Frequency,
				Aggregate:  row.Performance,
				Comparison: row.Comparison,
				SumDelta:   row.SumDelta,
			},
		}
	}

	result := make([]domain.FacetPerformance, 0, len(order))
	for _, key := range order {
		result = append(result, byKey[key])
	}
	return result
}

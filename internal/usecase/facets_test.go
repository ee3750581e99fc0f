package usecase_test

import (
	"context"
	"testing"

	"event-insights-service/internal/domain"
	"event-insights-service/internal/mocks"
	"event-insights-service/internal/tagstore"
	"event-insights-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type facetsDeps struct {
	orgRepo  *mocks.OrganizationRepository
	features *mocks.FeatureFlags
	scope    *mocks.ScopeResolver
	discover *mocks.Discover
}

func newFacetsUseCase() (domain.FacetsPerformanceUseCase, facetsDeps) {
	deps := facetsDeps{
		orgRepo:  &mocks.OrganizationRepository{},
		features: &mocks.FeatureFlags{},
		scope:    &mocks.ScopeResolver{},
		discover: &mocks.Discover{},
	}
	uc := usecase.NewFacetsPerformanceUseCase(deps.orgRepo, deps.features, deps.scope, deps.discover, tagstore.New())
	return uc, deps
}

var acme = &domain.Organization{ID: 1, Slug: "acme", Name: "Acme"}

func TestFacetsPerformance_FeatureDisabled(t *testing.T) {
	ctx := context.Background()
	uc, deps := newFacetsUseCase()

	deps.orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	deps.features.On("Has", ctx, domain.FeaturePerformanceTagExplorer, acme, (*domain.User)(nil)).Return(false, nil)

	fn, err := uc.Prepare(ctx, domain.FacetsRequest{Organization: "acme"})

	assert.ErrorIs(t, err, domain.ErrFeatureDisabled)
	assert.Nil(t, fn)
	deps.scope.AssertNotCalled(t, "GetSnubaParams", mock.Anything, mock.Anything, mock.Anything)
}

func TestFacetsPerformance_OrganizationNotFound(t *testing.T) {
	ctx := context.Background()
	uc, deps := newFacetsUseCase()

	deps.orgRepo.On("GetBySlug", ctx, "nope").Return(nil, domain.ErrOrganizationNotFound)

	fn, err := uc.Prepare(ctx, domain.FacetsRequest{Organization: "nope"})

	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	assert.Nil(t, fn)
}

func TestFacetsPerformance_NoProjects(t *testing.T) {
	ctx := context.Background()
	uc, deps := newFacetsUseCase()

	deps.orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	deps.features.On("Has", ctx, domain.FeaturePerformanceTagExplorer, acme, mock.Anything).Return(true, nil)
	deps.scope.On("GetSnubaParams", ctx, acme, mock.Anything).Return(nil, domain.ErrNoProjects)

	fn, err := uc.Prepare(ctx, domain.FacetsRequest{Organization: "acme"})

	assert.NoError(t, err)
	assert.Nil(t, fn)
	deps.discover.AssertNotCalled(t, "GetPerformanceFacets", mock.Anything, mock.Anything)
}

func TestFacetsPerformance_MultipleProjects(t *testing.T) {
	ctx := context.Background()
	uc, deps := newFacetsUseCase()

	deps.orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	deps.features.On("Has", ctx, domain.FeaturePerformanceTagExplorer, acme, mock.Anything).Return(true, nil)
	deps.scope.On("GetSnubaParams", ctx, acme, mock.Anything).Return(&domain.SnubaParams{OrganizationID: 1, ProjectIDs: []int64{10, 11}}, nil)

	fn, err := uc.Prepare(ctx, domain.FacetsRequest{Organization: "acme"})

	assert.ErrorIs(t, err, domain.ErrMultipleProjects)
	assert.Nil(t, fn)
	deps.discover.AssertNotCalled(t, "GetPerformanceFacets", mock.Anything, mock.Anything)
}

func TestFacetsPerformance_DataFn(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	ctx := context.Background()
	uc, deps := newFacetsUseCase()
	actor := &domain.User{ID: 7}
	params := &domain.SnubaParams{OrganizationID: 1, ProjectIDs: []int64{10}}

	deps.orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	deps.features.On("Has", ctx, domain.FeaturePerformanceTagExplorer, acme, actor).Return(true, nil)
	deps.scope.On("GetSnubaParams", ctx, acme, mock.Anything).Return(params, nil)

	rows := []domain.FacetRow{
		{Key: "sentry:release", Value: "app@1.0", Count: 4, Frequency: 0.4, Performance: 120, Comparison: 1.2, SumDelta: 30},
		{Key: "browser", Value: "Chrome", Count: 6, Frequency: 0.6, Performance: 90, Comparison: 0.9, SumDelta: -10},
		{Key: "sentry:release", Value: "app@2.0", Count: 2, Frequency: 0.2, Performance: 200, Comparison: 2, SumDelta: 50},
	}
	deps.discover.On("GetPerformanceFacets", mock.Anything, mock.MatchedBy(func(q domain.FacetsQuery) bool {
		return q.Params == params &&
			q.Referrer == domain.FacetsPerformanceReferrer &&
			q.AggregateColumn == domain.DefaultAggregateColumn &&
			q.Query == "transaction:/api" &&
			q.Offset == 5 && q.Limit == 6
	})).Return(rows, nil)

	fn, err := uc.Prepare(ctx, domain.FacetsRequest{Organization: "acme", Actor: actor, Query: "transaction:/api"})
	require.NoError(t, err)
	require.NotNil(t, fn)

	result, err := fn(ctx, 5, 6)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "release", result[0].Key)
	assert.Equal(t, "2.0", result[0].Value.Name)
	assert.Equal(t, "app@2.0", result[0].Value.Value)
	assert.Equal(t, 200.0, result[0].Value.Aggregate)
	assert.Equal(t, "browser", result[1].Key)
	assert.Equal(t, "Chrome", result[1].Value.Name)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "populate_results", spans[0].Name())
	assert.Equal(t, "discover_query", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
	for _, attr := range spans[0].Attributes() {
		if attr.Key == "facet_count" {
			assert.Equal(t, int64(3), attr.Value.AsInt64())
		}
	}
}

func TestFacetsPerformance_DiscoverError(t *testing.T) {
	ctx := context.Background()
	uc, deps := newFacetsUseCase()

	deps.orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	deps.features.On("Has", ctx, domain.FeaturePerformanceTagExplorer, acme, mock.Anything).Return(true, nil)
	deps.scope.On("GetSnubaParams", ctx, acme, mock.Anything).Return(&domain.SnubaParams{ProjectIDs: []int64{10}}, nil)
	deps.discover.On("GetPerformanceFacets", mock.Anything, mock.Anything).Return(nil, domain.ErrQueryTimeout)

	fn, err := uc.Prepare(ctx, domain.FacetsRequest{Organization: "acme", AggregateColumn: "measurements.lcp"})
	require.NoError(t, err)

	result, err := fn(ctx, 0, 6)

	assert.ErrorIs(t, err, domain.ErrQueryTimeout)
	assert.Nil(t, result)
	deps.discover.AssertCalled(t, "GetPerformanceFacets", mock.Anything, mock.MatchedBy(func(q domain.FacetsQuery) bool {
		return q.AggregateColumn == "measurements.lcp"
	}))
}

func TestFoldFacets_LastWriteWinsInFirstSeenOrder(t *testing.T) {
	rows := []domain.FacetRow{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
		{Key: "a", Value: "3"},
		{Key: "sentry:user", Value: "email:jane@example.com"},
	}

	result := usecase.FoldFacets(rows, tagstore.New())

	require.Len(t, result, 3)
	assert.Equal(t, "a", result[0].Key)
	assert.Equal(t, "3", result[0].Value.Value)
	assert.Equal(t, "b", result[1].Key)
	assert.Equal(t, "user", result[2].Key)
	assert.Equal(t, "jane@example.com", result[2].Value.Name)
}

func TestFoldFacets_Empty(t *testing.T) {
	result := usecase.FoldFacets(nil, tagstore.New())
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

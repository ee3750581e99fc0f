package handler

import (
	"net/http"
	"net/url"

	"event-insights-service/api"
	"event-insights-service/internal/domain"
	"event-insights-service/internal/paginator"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	facetsDefaultPerPage = 5
	facetsMaxPerPage     = 5
)

// FacetsHandler обрабатывает запросы производительности по тегам.
type FacetsHandler struct {
	*BaseHandler
	facetsUseCase domain.FacetsPerformanceUseCase
}

// NewFacetsHandler создает новый экземпляр FacetsHandler.
func NewFacetsHandler(facetsUseCase domain.FacetsPerformanceUseCase, logger *logrus.Logger) *FacetsHandler {
	return &FacetsHandler{
		BaseHandler:   NewBaseHandler(logger),
		facetsUseCase: facetsUseCase,
	}
}

// GetOrganizationEventsFacetsPerformance возвращает страницу фасетов со ссылками в заголовке Link.
func (h *FacetsHandler) GetOrganizationEventsFacetsPerformance(c echo.Context, organization string, params api.GetOrganizationEventsFacetsPerformanceParams) error {
	logEntry := h.logRequest(c, "get_facets_performance").WithField("organization", organization)

	perPage, err := paginator.PerPage(params.PerPage, facetsDefaultPerPage, facetsMaxPerPage)
	if err != nil {
		return h.respondError(c, logEntry, err, "Invalid per_page")
	}

	var cursor *paginator.Cursor
	if params.Cursor != nil {
		cursor, err = paginator.ParseCursor(*params.Cursor)
		if err != nil {
			return h.respondError(c, logEntry, err, "Invalid cursor")
		}
	}

	req := domain.FacetsRequest{
		Organization:    organization,
		Query:           deref(params.Query),
		AggregateColumn: deref(params.AggregateColumn),
		OrderBy:         deref(params.Order),
		Scope: domain.ScopeRequest{
			StatsPeriod: deref(params.StatsPeriod),
			Start:       deref(params.Start),
			End:         deref(params.End),
		},
	}
	if params.Project != nil {
		req.Scope.ProjectIDs = *params.Project
	}
	if params.Environment != nil {
		req.Scope.Environments = *params.Environment
	}
	if params.XActorId != nil {
		req.Actor = &domain.User{ID: *params.XActorId}
		logEntry = logEntry.WithField("actor_id", *params.XActorId)
	}

	dataFn, err := h.facetsUseCase.Prepare(c.Request().Context(), req)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to prepare facets query")
	}
	if dataFn == nil {
		logEntry.Info("No projects in scope")
		return c.JSON(http.StatusOK, api.FacetsPerformanceResponse{Data: []api.FacetPerformance{}})
	}

	p := paginator.GenericOffsetPaginator[domain.FacetPerformance]{DataFn: dataFn}
	result, err := p.GetResult(c.Request().Context(), perPage, cursor)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get facets performance")
	}

	c.Response().Header().Set("Link", paginator.LinkHeader(requestURL(c), result.Prev, result.Next))

	logEntry.WithField("facet_count", len(result.Data)).Info("Facets performance retrieved")
	return c.JSON(http.StatusOK, api.FacetsPerformanceResponse{Data: toAPIFacets(result.Data)})
}

// requestURL восстанавливает абсолютный URL запроса для заголовка Link.
func requestURL(c echo.Context) *url.URL {
	u := *c.Request().URL
	u.Scheme = c.Scheme()
	u.Host = c.Request().Host
	return &u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

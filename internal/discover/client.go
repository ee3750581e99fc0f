package discover

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"event-insights-service/internal/domain"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBody = 64 << 10

// Client является HTTP-клиентом аналитического движка и реализует domain.Discover.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создает клиент. Транспорт обёрнут otelhttp, чтобы контекст
// трассировки уходил в движок.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type snubaParams struct {
	OrganizationID int64     `json:"organization_id"`
	ProjectIDs     []int64   `json:"project_id"`
	Environments   []string  `json:"environment,omitempty"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
}

func toWireParams(p *domain.SnubaParams) snubaParams {
	if p == nil {
		return snubaParams{}
	}
	return snubaParams{
		OrganizationID: p.OrganizationID,
		ProjectIDs:     p.ProjectIDs,
		Environments:   p.Environments,
		Start:          p.Start,
		End:            p.End,
	}
}

type facetsRequest struct {
	Query           string      `json:"query"`
	Params          snubaParams `json:"params"`
	AggregateColumn string      `json:"aggregate_column"`
	OrderBy         string      `json:"orderby,omitempty"`
	Offset          int         `json:"offset"`
	Limit           int         `json:"limit"`
}

type queryRequest struct {
	SelectedColumns []string    `json:"selected_columns"`
	Query           string      `json:"query"`
	Params          snubaParams `json:"params"`
	Limit           int         `json:"limit"`
}

type errorBody struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GetPerformanceFacets запрашивает страницу фасетов.
func (c *Client) GetPerformanceFacets(ctx context.Context, q domain.FacetsQuery) ([]domain.FacetRow, error) {
	var resp struct {
		Data []domain.FacetRow `json:"data"`
	}
	err := c.post(ctx, "/facets-performance", q.Referrer, facetsRequest{
		Query:           q.Query,
		Params:          toWireParams(q.Params),
		AggregateColumn: q.AggregateColumn,
		OrderBy:         q.OrderBy,
		Offset:          q.Offset,
		Limit:           q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Query выполняет обобщённый запрос по событиям.
func (c *Client) Query(ctx context.Context, q domain.DiscoverQuery) ([]map[string]any, error) {
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	err := c.post(ctx, "/query", q.Referrer, queryRequest{
		SelectedColumns: q.SelectedColumns,
		Query:           q.Query,
		Params:          toWireParams(q.Params),
		Limit:           q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) post(ctx context.Context, path, referrer string, body, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode discover request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build discover request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if referrer != "" {
		req.Header.Set("X-Referrer", referrer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return &domain.QueryError{Kind: domain.ErrQueryTimeout, Detail: err.Error()}
		}
		return &domain.QueryError{Kind: domain.ErrQueryExecution, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &domain.QueryError{Kind: domain.ErrQueryExecution, Detail: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Error.Type == "" {
		kind := domain.ErrQueryExecution
		if resp.StatusCode == http.StatusTooManyRequests {
			kind = domain.ErrQueryTimeout
		}
		return &domain.QueryError{Kind: kind, Detail: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	return &domain.QueryError{Kind: errorKind(body.Error.Type), Detail: body.Error.Message}
}

func errorKind(errType string) error {
	switch errType {
	case "invalid_search_query":
		return domain.ErrInvalidSearchQuery
	case "query_outside_retention":
		return domain.ErrQueryOutsideRetention
	case "illegal_type_of_argument":
		return domain.ErrQueryIllegalTypeOfArgument
	case "timeout", "rate_limit_exceeded", "too_many_simultaneous":
		return domain.ErrQueryTimeout
	default:
		return domain.ErrQueryExecution
	}
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

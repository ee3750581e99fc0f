package domain

import (
	"errors"
	"fmt"
)

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrMultipleProjects    = errors.New("You cannot view facet performance for multiple projects.")
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrInvalidCursor       = errors.New("Invalid cursor parameter.")
	ErrInvalidPerPage      = errors.New("Invalid per_page parameter.")
	ErrUnsupportedActivity = errors.New("unsupported activity type")

	// Scope errors
	ErrNoProjects = errors.New("no projects match the request scope")

	// Lookup errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrReleaseNotFound      = errors.New("release not found")
	ErrFeatureDisabled      = errors.New("feature not enabled")

	// Ошибки аналитического движка (discover)
	ErrInvalidSearchQuery         = errors.New("invalid search query")
	ErrQueryOutsideRetention      = errors.New("query outside retention")
	ErrQueryIllegalTypeOfArgument = errors.New("illegal type of argument")
	ErrQueryTimeout               = errors.New("query timeout")
	ErrQueryExecution             = errors.New("query execution failed")
)

// QueryError несёт детали ошибки аналитического движка вместе с одной из
// sentinel-ошибок выше.
type QueryError struct {
	Kind   error
	Detail string
}

func (e *QueryError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *QueryError) Unwrap() error {
	return e.Kind
}

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки. Проверяется по порядку через errors.Is.
var ErrorMapping = []struct {
	Err     error
	HTTPErr HTTPError
}{
	{ErrMultipleProjects, HTTPError{Code: "PARSE_ERROR", Message: ErrMultipleProjects.Error()}},
	{ErrInvalidTimeRange, HTTPError{Code: "PARSE_ERROR", Message: "Invalid date range."}},
	{ErrInvalidCursor, HTTPError{Code: "PARSE_ERROR", Message: ErrInvalidCursor.Error()}},
	{ErrInvalidPerPage, HTTPError{Code: "PARSE_ERROR", Message: ErrInvalidPerPage.Error()}},
	{ErrUnsupportedActivity, HTTPError{Code: "PARSE_ERROR", Message: "activity type has no notification"}},
	{ErrOrganizationNotFound, HTTPError{Code: "NOT_FOUND", Message: "organization not found"}},
	{ErrActivityNotFound, HTTPError{Code: "NOT_FOUND", Message: "activity not found"}},
	{ErrReleaseNotFound, HTTPError{Code: "NOT_FOUND", Message: "release not found"}},
	{ErrFeatureDisabled, HTTPError{Code: "NOT_FOUND", Message: "not found"}},
	{ErrInvalidSearchQuery, HTTPError{Code: "INVALID_QUERY", Message: "Invalid search query."}},
	{ErrQueryOutsideRetention, HTTPError{Code: "INVALID_QUERY", Message: "Invalid date range. Please try a more recent date range."}},
	{ErrQueryIllegalTypeOfArgument, HTTPError{Code: "INVALID_QUERY", Message: "Invalid query. Argument to function is wrong type."}},
	{ErrQueryTimeout, HTTPError{Code: "QUERY_TIMEOUT", Message: "Query timeout. Please try again. If the problem persists try a smaller date range or fewer projects."}},
	{ErrQueryExecution, HTTPError{Code: "QUERY_FAILED", Message: "Internal error. Your query failed to run."}},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for _, m := range ErrorMapping {
		if !errors.Is(err, m.Err) {
			continue
		}
		httpErr := m.HTTPErr
		// Для невалидного запроса клиент получает текст от движка
		var qe *QueryError
		if errors.Is(err, ErrInvalidSearchQuery) && errors.As(err, &qe) && qe.Detail != "" {
			httpErr.Message = qe.Detail
		}
		return httpErr, true
	}
	return HTTPError{}, false
}

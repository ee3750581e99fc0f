package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-insights-service/api"
	"event-insights-service/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(handler.RequestIDMiddleware())
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := rec.Header().Get(echo.HeaderXRequestID)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "given-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", rec.Header().Get(echo.HeaderXRequestID))
}

func TestLoggingMiddleware_Levels(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	e := echo.New()
	e.Use(handler.LoggingMiddleware(logger))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/bad", func(c echo.Context) error { return c.NoContent(http.StatusBadRequest) })
	e.GET("/fail", func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) })

	for path, level := range map[string]logrus.Level{
		"/ok":   logrus.InfoLevel,
		"/bad":  logrus.WarnLevel,
		"/fail": logrus.ErrorLevel,
	} {
		hook.Reset()
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		require.NotNil(t, hook.LastEntry(), path)
		assert.Equal(t, level, hook.LastEntry().Level, path)
		assert.Equal(t, path, hook.LastEntry().Data["uri"])
	}
}

func TestErrorHandler_WritesErrorEnvelope(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	e := echo.New()
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(handler.LoggingMiddleware(logger))
	e.GET("/bind", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter per_page: bad")
	})
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

	testCases := []struct {
		path    string
		status  int
		code    api.ErrorResponseErrorCode
		message string
		level   logrus.Level
	}{
		{"/bind", http.StatusBadRequest, api.PARSEERROR, "Invalid format for parameter per_page: bad", logrus.WarnLevel},
		{"/boom", http.StatusInternalServerError, api.INTERNALERROR, "Internal error.", logrus.ErrorLevel},
		{"/missing", http.StatusNotFound, api.NOTFOUND, "Not Found", logrus.WarnLevel},
	}
	for _, tc := range testCases {
		hook.Reset()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

		assert.Equal(t, tc.status, rec.Code, tc.path)
		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), tc.path)
		assert.Equal(t, tc.code, resp.Error.Code, tc.path)
		assert.Equal(t, tc.message, resp.Error.Message, tc.path)

		require.NotNil(t, hook.LastEntry(), tc.path)
		assert.Equal(t, tc.level, hook.LastEntry().Level, tc.path)
		assert.Equal(t, tc.status, hook.LastEntry().Data["status"], tc.path)
	}
}

func TestTracingMiddleware_ContinuesIncomingTrace(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	otel.SetTextMapPropagator(propagation.TraceContext{})

	e := echo.New()
	e.Use(handler.TracingMiddleware())
	e.GET("/organizations/:organization/thing", func(c echo.Context) error {
		assert.True(t, trace.SpanContextFromContext(c.Request().Context()).IsValid())
		return c.NoContent(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/organizations/acme/thing", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	e.ServeHTTP(httptest.NewRecorder(), req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "GET /organizations/:organization/thing", span.Name())
	assert.Equal(t, trace.SpanKindServer, span.SpanKind())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", span.SpanContext().TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", span.Parent().SpanID().String())
	assert.Equal(t, "Error", span.Status().Code.String())
}

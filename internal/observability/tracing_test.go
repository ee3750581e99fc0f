package observability

import (
	"context"
	"testing"

	"event-insights-service/internal/config"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracing_Disabled(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	shutdown, err := InitTracing(context.Background(), config.Config{OtelEnabled: false}, logger)

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Empty(t, hook.AllEntries())
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

func TestInitTracing_StdoutExporter(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	cfg := config.Config{
		OtelEnabled:     true,
		OtelServiceName: "event-insights-test",
		OtelEnvironment: "test",
		OtelSampleRatio: 1,
	}

	shutdown, err := InitTracing(context.Background(), cfg, logger)

	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "OTel tracing initialized", hook.LastEntry().Message)
	assert.NoError(t, shutdown(context.Background()))
}

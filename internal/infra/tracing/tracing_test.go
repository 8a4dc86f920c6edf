package tracing

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ormanli/atm-aspects/internal/config"
	"github.com/ormanli/atm-aspects/internal/pipeline"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func Test_Advice(t *testing.T) {
	tests := []struct {
		name       string
		bodyErr    error
		assertFunc func(*testing.T, sdktrace.ReadOnlySpan)
	}{
		{
			name: "success",
			assertFunc: func(t *testing.T, span sdktrace.ReadOnlySpan) {
				assert.Equal(t, codes.Unset, span.Status().Code)
				assert.Empty(t, span.Events())
			},
		},
		{
			name:    "failure",
			bodyErr: errors.New("card swallowed"),
			assertFunc: func(t *testing.T, span sdktrace.ReadOnlySpan) {
				assert.Equal(t, codes.Error, span.Status().Code)
				assert.Equal(t, "card swallowed", span.Status().Description)
				require.Len(t, span.Events(), 1)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			defer func() {
				require.NoError(t, tp.Shutdown(context.Background()))
			}()

			registry := pipeline.NewRegistry(discardLogger, clock.New())
			require.NoError(t, registry.Handle("withdraw", func(context.Context, *pipeline.Invocation) (any, error) {
				return "ok", test.bodyErr
			}))
			require.NoError(t, registry.Register("withdraw", Advice(tp)))

			_, _ = registry.Build().Invoke(context.Background(), "withdraw", 500)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, "pipeline.withdraw", spans[0].Name())
			test.assertFunc(t, spans[0])
		})
	}
}

func Test_Setup_Disabled(t *testing.T) {
	tp, shutdown, err := Setup(config.Config{}, discardLogger)
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.NoError(t, shutdown(context.Background()))
}

func Test_Setup_Stdout(t *testing.T) {
	tp, shutdown, err := Setup(config.Config{TraceStdout: true}, discardLogger)
	require.NoError(t, err)
	assert.IsType(t, &sdktrace.TracerProvider{}, tp)
	assert.NoError(t, shutdown(context.Background()))
}

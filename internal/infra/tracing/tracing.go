package tracing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ormanli/atm-aspects/internal/config"
	"github.com/ormanli/atm-aspects/internal/pipeline"
)

const tracerName = "github.com/ormanli/atm-aspects/internal/pipeline"

// Provider is the tracer provider spans are created from.
type Provider = trace.TracerProvider

// Setup returns the tracer provider for the application and its shutdown function.
// Spans are exported to stdout when TraceStdout is set, otherwise they are dropped.
func Setup(cfg config.Config, logger *slog.Logger) (Provider, func(context.Context) error, error) {
	if !cfg.TraceStdout {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))

	logger.Info("Tracing initialized", "exporter", "stdout")

	return tp, tp.Shutdown, nil
}

// Advice returns an around advice opening one span per invocation.
func Advice(tp Provider) pipeline.Advice {
	tracer := tp.Tracer(tracerName)

	return pipeline.NewAround("tracing", func(ctx context.Context, inv *pipeline.Invocation, proceed pipeline.ProceedFunc) (any, error) {
		ctx, span := tracer.Start(ctx, "pipeline."+inv.Operation(),
			trace.WithAttributes(
				attribute.String("pipeline.operation", inv.Operation()),
				attribute.String("pipeline.invocation", inv.ID().String()),
				attribute.Int("pipeline.params", len(inv.Params())),
			),
		)
		defer span.End()

		result, err := proceed(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		return result, err
	})
}

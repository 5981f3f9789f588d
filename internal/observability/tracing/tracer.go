package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance. It delegates to whatever provider
// is installed, so it can be created before Setup runs.
var tracer = otel.Tracer("butuhkidul")

// GetTracer returns the global tracer for creating spans.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}

// Setup installs an SDK tracer provider sampling sampleRatio of root traces
// (parent decisions are honoured) and the W3C trace-context propagator.
// The returned function flushes and shuts the provider down.
func Setup(sampleRatio float64) (func(context.Context) error, error) {
	if sampleRatio < 0 || sampleRatio > 1 {
		return nil, fmt.Errorf("trace sample ratio must be between 0 and 1, got %v", sampleRatio)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

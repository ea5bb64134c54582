// Package perf records pipeline timings as OpenTelemetry spans kept in memory.
package perf

import (
	"context"
	"sync"

	"github.com/zackehh/covsummary/internal/constants"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var (
	setupMu  sync.Mutex
	exporter = newSpanExporter()
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
)

func ensureTracer() trace.Tracer {
	setupMu.Lock()
	defer setupMu.Unlock()

	if tracer == nil {
		provider = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		tracer = provider.Tracer(constants.AppName)
	}
	return tracer
}

// StartSpan opens a span under ctx. Callers must End the returned span.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return ensureTracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// SnapshotSpans returns every span ended since the last Reset.
func SnapshotSpans() ([]sdktrace.ReadOnlySpan, error) {
	setupMu.Lock()
	current := provider
	setupMu.Unlock()

	if current != nil {
		if err := current.ForceFlush(context.Background()); err != nil {
			return nil, err
		}
	}
	return exporter.Snapshot(), nil
}

// Reset drops recorded spans (tests only).
func Reset() {
	exporter.Reset()
}

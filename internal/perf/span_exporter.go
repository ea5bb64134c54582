package perf

import (
	"context"
	"sync"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// memoryExporter keeps ended spans so the command can report timings
// without writing anything outside the process.
type memoryExporter struct {
	mu      sync.Mutex
	stopped bool
	spans   []sdktrace.ReadOnlySpan
}

func newSpanExporter() *memoryExporter {
	return &memoryExporter{}
}

func (exporter *memoryExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	exporter.mu.Lock()
	defer exporter.mu.Unlock()

	if exporter.stopped {
		return nil
	}
	exporter.spans = append(exporter.spans, spans...)
	return nil
}

func (exporter *memoryExporter) Shutdown(context.Context) error {
	exporter.mu.Lock()
	defer exporter.mu.Unlock()
	exporter.stopped = true
	return nil
}

func (exporter *memoryExporter) Reset() {
	exporter.mu.Lock()
	defer exporter.mu.Unlock()
	exporter.spans = nil
}

func (exporter *memoryExporter) Snapshot() []sdktrace.ReadOnlySpan {
	exporter.mu.Lock()
	defer exporter.mu.Unlock()

	out := make([]sdktrace.ReadOnlySpan, len(exporter.spans))
	copy(out, exporter.spans)
	return out
}

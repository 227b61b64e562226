package telemetry

import (
	"context"
	"testing"
)

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	if span.IsRecording() {
		t.Error("Noop span should not be recording")
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	// Before Setup the global provider is a no-op; Tracer must still work.
	_, span := Tracer("test").Start(context.Background(), "test")
	span.End()
}

package telemetry

import (
	"context"
	"testing"
)

func TestTracingConfig_Normalize(t *testing.T) {
	cfg := TracingConfig{SampleRatio: 3}
	cfg.normalize()

	if cfg.Endpoint != "localhost:4318" || cfg.ServiceName != "cloak-gw" || cfg.SampleRatio != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	cfg = TracingConfig{SampleRatio: -1}
	cfg.normalize()
	if cfg.SampleRatio != 0 {
		t.Fatalf("negative ratio must clamp to 0, got %v", cfg.SampleRatio)
	}
}

func TestTracer_NoopByDefault(t *testing.T) {
	_, span := Tracer().Start(context.Background(), "op")
	defer span.End()
	// без SetupTracing спан не записывается
	if span.IsRecording() {
		t.Fatalf("span must be non-recording without a configured provider")
	}
}

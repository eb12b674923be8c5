package metrics

import (
	"context"
	"net/http"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder")
	}
	if handler != nil {
		t.Fatal("disabled telemetry must not expose a scrape handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown must be a no-op: %v", err)
	}

	// The in-memory counters still work without exporters.
	rec.RecordProviderAttempt("espn", time.Millisecond, nil)
	if rec.ProviderCalls("espn") != 1 {
		t.Fatal("in-memory counters must work without telemetry")
	}
}

func TestSetupEnabledWiresPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { shutdown(context.Background()) })

	if handler == nil {
		t.Fatal("expected a prometheus scrape handler")
	}

	rec.RecordHTTPRequest("GET", "/api/check", 200, 5*time.Millisecond)
	rec.RecordProviderAttempt("espn", 5*time.Millisecond, nil)
}

func TestSetupPropagatesReaderFailure(t *testing.T) {
	orig := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, context.DeadlineExceeded
	}
	t.Cleanup(func() { promReaderFactory = orig })

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatal("expected reader construction failure to propagate")
	}
}

package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	logger := NewLogger(Config{Level: "warn", Service: "test"})

	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info must be suppressed at warn level")
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Fatal("warn must be enabled at warn level")
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewLogger(Config{})
	ctx := WithLogger(context.Background(), logger)

	if got := FromContext(ctx, nil); got != logger {
		t.Fatal("expected the stored logger back")
	}
}

func TestFromContextFallback(t *testing.T) {
	fallback := NewLogger(Config{})

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback when no logger is stored")
	}
}

func TestNilSafeHelpers(t *testing.T) {
	// None of these may panic with a nil logger.
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", context.Canceled)
}

func TestWithCommon(t *testing.T) {
	attrs := WithCommon(nil, "svc", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected service and version attrs, got %d", len(attrs))
	}
	if got := WithCommon(nil, "", ""); len(got) != 0 {
		t.Fatalf("expected no attrs, got %d", len(got))
	}
}

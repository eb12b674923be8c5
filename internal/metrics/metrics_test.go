package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordProviderAttempt(t *testing.T) {
	rec := NewRecorder()

	rec.RecordProviderAttempt("espn", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("espn", 20*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("espn"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("espn"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("espn"); got != 20*time.Millisecond {
		t.Fatalf("expected latest latency, got %v", got)
	}
}

func TestSnapshotUnknownProvider(t *testing.T) {
	rec := NewRecorder()

	snap := rec.Snapshot("never-called")
	if snap.Calls != 0 || snap.Errors != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	rec.RecordProviderAttempt("espn", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if got := rec.ProviderCalls("espn"); got != 0 {
		t.Fatalf("expected 0 from nil recorder, got %d", got)
	}
}

func TestRecorderIsolatesProviders(t *testing.T) {
	rec := NewRecorder()

	rec.RecordProviderAttempt("espn", time.Millisecond, nil)
	rec.RecordProviderAttempt("fixture", time.Millisecond, errors.New("x"))

	if rec.ProviderErrors("espn") != 0 {
		t.Fatal("espn must not inherit fixture errors")
	}
	if rec.ProviderErrors("fixture") != 1 {
		t.Fatal("fixture error not recorded")
	}
}

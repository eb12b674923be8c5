package server

import (
	"context"
	"testing"

	"keeper-service/internal/config"
	"keeper-service/internal/metrics"
	"keeper-service/internal/providers"
	"keeper-service/internal/snapshots"
)

func TestBuildFixtureProvider(t *testing.T) {
	f := newProviderFactory(nil, metrics.NewRecorder())

	p := f.build(config.Config{Provider: "fixture"})
	blob, err := p.FetchLeague(context.Background(), 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blob.Roster.Teams) == 0 {
		t.Fatal("expected fixture roster data")
	}
}

func TestBuildUnknownProviderFallsBackToFixture(t *testing.T) {
	recorder := metrics.NewRecorder()
	f := newProviderFactory(nil, recorder)

	p := f.build(config.Config{Provider: "mystery"})
	if _, err := p.FetchLeague(context.Background(), 2024); err != nil {
		t.Fatalf("expected fixture fallback, got %v", err)
	}
	if recorder.ProviderCalls("fixture") != 1 {
		t.Fatal("expected the attempt recorded under the fixture name")
	}
}

func TestBuildSnapshotProvider(t *testing.T) {
	dir := t.TempDir()
	if err := snapshots.NewWriter(dir).WriteLeagueSnapshot(2024, &providers.LeagueBlob{FinalScoringPeriod: 17}); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	f := newProviderFactory(nil, metrics.NewRecorder())
	p := f.build(config.Config{
		Provider:  "snapshot",
		Snapshots: config.SnapshotsConfig{Folder: dir},
	})

	blob, err := p.FetchLeague(context.Background(), 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blob.FinalScoringPeriod != 17 {
		t.Fatalf("expected the captured snapshot, got period %d", blob.FinalScoringPeriod)
	}
}

func TestBuildProviderNameNormalized(t *testing.T) {
	f := newProviderFactory(nil, metrics.NewRecorder())

	p := f.build(config.Config{Provider: "  Fixture "})
	if _, err := p.FetchLeague(context.Background(), 2024); err != nil {
		t.Fatalf("expected case-insensitive provider name, got %v", err)
	}
}

package fixture

import (
	"context"
	"testing"
)

func TestFetchLeagueShape(t *testing.T) {
	blob, err := New().FetchLeague(context.Background(), 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if blob.FinalScoringPeriod != 17 {
		t.Fatalf("expected final scoring period 17, got %d", blob.FinalScoringPeriod)
	}
	if len(blob.Roster.Teams) != 2 {
		t.Fatalf("expected 2 roster teams, got %d", len(blob.Roster.Teams))
	}
	if got := len(blob.Roster.Teams[0].Roster.Entries); got != 5 {
		t.Fatalf("expected 5 entries on the first team, got %d", got)
	}

	// Curtis Duncan carries no draft pick and must come out undrafted.
	for _, pick := range blob.Draft.DraftDetail.Picks {
		if pick.PlayerID != nil && *pick.PlayerID == 1004 {
			t.Fatal("player 1004 must not appear in the draft")
		}
	}
}

func TestFetchLeagueDeterministic(t *testing.T) {
	p := New()
	first, _ := p.FetchLeague(context.Background(), 2024)
	second, _ := p.FetchLeague(context.Background(), 2025)

	if len(first.Roster.Teams) != len(second.Roster.Teams) {
		t.Fatal("fixture snapshots must not vary between calls")
	}
}

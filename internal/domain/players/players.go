package players

// PlayerRecord is the canonical per-player shape produced by normalizing a raw
// league snapshot. Every downstream rule assumes presence/absence questions
// were already resolved here: DraftRound is nil exactly when the player has no
// recorded draft pick, and OriginallyUndrafted is derived from that, never set
// independently.
type PlayerRecord struct {
	PlayerID            int    `json:"player_id"`
	Name                string `json:"name"`
	FinalTeamKey        string `json:"final_team_key,omitempty"`
	ExternalTeamID      int    `json:"external_team_id,omitempty"`
	DraftRound          *int   `json:"draft_round,omitempty"`
	OriginallyUndrafted bool   `json:"undrafted"`
	SeasonsKept         int    `json:"seasons_kept"`
}

// Drafted reports whether the player has a recorded original draft pick.
func (r PlayerRecord) Drafted() bool {
	return r.DraftRound != nil
}

// RosterPlayer is the per-player shape returned by the team roster endpoint.
type RosterPlayer struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	DraftRound *int   `json:"draft_round,omitempty"`
	Undrafted  bool   `json:"undrafted"`
}

// RosterResponse is the payload returned for a team's final roster.
type RosterResponse struct {
	TeamKey            string         `json:"team_key"`
	FinalScoringPeriod int            `json:"final_scoring_period"`
	Players            []RosterPlayer `json:"players"`
}

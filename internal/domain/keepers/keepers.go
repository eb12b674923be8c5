package keepers

// Bucket identifies one of the constrained keeper categories. The empty value
// means "no bucket": an eligible player whose draft round falls outside the
// bucket system, or an ineligible one.
type Bucket string

// BucketWaiver is the bucket for originally-undrafted players. The two
// round-range buckets carry their boundaries in the label (e.g. "1-10",
// "11-18") and are produced by the rule set, which owns the boundaries.
const BucketWaiver Bucket = "waiver"

// KeeperEntry is one player already chosen into a tentative selection.
type KeeperEntry struct {
	PlayerID   int    `json:"player_id"`
	Name       string `json:"name"`
	Bucket     Bucket `json:"bucket"`
	DraftRound *int   `json:"draft_round,omitempty"`
	CostRound  int    `json:"cost_round"`
}

// KeeperSelection is a team-scoped, caller-supplied set of tentative keepers.
// The selection itself enforces nothing; validation lives in the rule set so
// the same selection can be re-checked as it grows.
type KeeperSelection struct {
	TeamKey string        `json:"team_key"`
	Keepers []KeeperEntry `json:"keepers"`
}

// HasPlayer reports whether the selection already contains the player id.
func (s KeeperSelection) HasPlayer(playerID int) bool {
	for _, k := range s.Keepers {
		if k.PlayerID == playerID {
			return true
		}
	}
	return false
}

// CountBucket returns how many entries occupy the given bucket.
func (s KeeperSelection) CountBucket(bucket Bucket) int {
	n := 0
	for _, k := range s.Keepers {
		if k.Bucket == bucket {
			n++
		}
	}
	return n
}

// PlayerInfo echoes the resolved player back on a successful selection check.
type PlayerInfo struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	DraftRound *int   `json:"draft_round,omitempty"`
	Undrafted  bool   `json:"undrafted"`
}

// CheckResult is the payload for the eligibility check endpoint.
type CheckResult struct {
	FinalOnRoster  bool   `json:"final_on_roster"`
	FinalMessage   string `json:"final_message"`
	KeeperEligible bool   `json:"keeper_eligible"`
	KeeperMessage  string `json:"keeper_message"`
	KeeperBucket   Bucket `json:"keeper_bucket,omitempty"`
	DraftRound     *int   `json:"draft_round,omitempty"`
	Undrafted      *bool  `json:"undrafted,omitempty"`
}

// SelectionResult is the payload for the selection check endpoint.
type SelectionResult struct {
	CanAdd     bool        `json:"can_add"`
	Message    string      `json:"message"`
	Bucket     Bucket      `json:"bucket,omitempty"`
	CostRound  int         `json:"cost_round,omitempty"`
	PlayerInfo *PlayerInfo `json:"player_info,omitempty"`
}

// Limits is the static description of the selection constraint set.
type Limits struct {
	MaxKeepers int            `json:"max_keepers"`
	Limits     map[Bucket]int `json:"limits"`
	Rules      []string       `json:"rules"`
}

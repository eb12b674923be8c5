package keeper

import (
	"fmt"

	"keeper-service/internal/domain/keepers"
	"keeper-service/internal/domain/players"
)

const (
	earlyRoundStart = 1
	earlyRoundEnd   = 10
	lateRoundStart  = 11

	// DefaultLateRoundEnd is the last round of the late bucket. The league has
	// used both 16 and 18 historically; the boundary is configurable so either
	// rule set can be selected.
	DefaultLateRoundEnd = 18

	maxKeepers = 3
)

// Rules holds the league's keeper rule constants. The zero value is not
// usable; construct with NewRules.
type Rules struct {
	lateRoundEnd int
}

// NewRules builds a rule set with the given late-bucket end round. Values
// below the late bucket's first round fall back to the default.
func NewRules(lateRoundEnd int) Rules {
	if lateRoundEnd < lateRoundStart {
		lateRoundEnd = DefaultLateRoundEnd
	}
	return Rules{lateRoundEnd: lateRoundEnd}
}

// EarlyBucket returns the bucket label for rounds 1-10.
func (r Rules) EarlyBucket() keepers.Bucket {
	return keepers.Bucket(fmt.Sprintf("%d-%d", earlyRoundStart, earlyRoundEnd))
}

// LateBucket returns the bucket label for the configured late round range.
func (r Rules) LateBucket() keepers.Bucket {
	return keepers.Bucket(fmt.Sprintf("%d-%d", lateRoundStart, r.lateRoundEnd))
}

// CheckFinalRoster decides whether the player ended last season on the roster
// of the claimed team. It fails closed when the team mapping is unknown.
func CheckFinalRoster(rec players.PlayerRecord, teamKey string) (bool, string) {
	if rec.FinalTeamKey == "" {
		return false, "Final roster team mapping unknown for this league. Please map external team ids to your team keys in the league config."
	}
	if rec.FinalTeamKey != teamKey {
		return false, "Not on your final roster last season for this team."
	}
	return true, "Player was on your final roster last season."
}

// Verdict evaluates keeper eligibility for a single player. Branches are in
// strict priority order; the first match wins. An eligible player may still
// carry no bucket when the original round falls outside the bucket system.
func (r Rules) Verdict(rec players.PlayerRecord) (bool, string, keepers.Bucket) {
	if rec.SeasonsKept >= 1 {
		return false, "Ineligible: this player was kept last year and cannot be kept again this year.", ""
	}

	if rec.OriginallyUndrafted {
		return true, "Eligible as a Waiver Wire keeper. Default cost = 9th; becomes 10th if your other keeper uses a 9th.", keepers.BucketWaiver
	}

	if rec.DraftRound == nil {
		return false, "Insufficient data: original draft round unknown.", ""
	}

	rd := *rec.DraftRound
	switch {
	case earlyRoundStart <= rd && rd <= earlyRoundEnd:
		return true, fmt.Sprintf("Eligible as a Rounds %s keeper (original round %d).", r.EarlyBucket(), rd), r.EarlyBucket()
	case lateRoundStart <= rd && rd <= r.lateRoundEnd:
		return true, fmt.Sprintf("Eligible as a Rounds %s keeper (original round %d).", r.LateBucket(), rd), r.LateBucket()
	}
	return true, fmt.Sprintf("Eligible as a keeper (original round %d), but doesn't fit bucket limits (%s, %s, %s).", rd, r.EarlyBucket(), r.LateBucket(), keepers.BucketWaiver), ""
}

// CanAdd decides whether the player can join the tentative selection without
// violating the duplicate, per-bucket, or total caps. It never mutates the
// selection; the caller appends the entry after a successful check.
func (r Rules) CanAdd(rec players.PlayerRecord, sel keepers.KeeperSelection) (bool, string, keepers.Bucket) {
	elig, msg, bucket := r.Verdict(rec)
	if !elig {
		return false, msg, ""
	}

	if sel.HasPlayer(rec.PlayerID) {
		return false, "Player already selected as keeper.", ""
	}

	switch bucket {
	case "":
		return false, msg, ""
	case keepers.BucketWaiver:
		if sel.CountBucket(keepers.BucketWaiver) >= 1 {
			return false, "Already have 1 waiver wire keeper.", ""
		}
	default:
		if sel.CountBucket(bucket) >= 1 {
			return false, fmt.Sprintf("Already have 1 keeper from rounds %s.", bucket), ""
		}
	}

	if len(sel.Keepers) >= maxKeepers {
		return false, fmt.Sprintf("Maximum %d keepers allowed.", maxKeepers), ""
	}

	return true, fmt.Sprintf("Can add as %s keeper.", bucket), bucket
}

// Limits describes the constraint set in static form for UI and contract tests.
func (r Rules) Limits() keepers.Limits {
	return keepers.Limits{
		MaxKeepers: maxKeepers,
		Limits: map[keepers.Bucket]int{
			r.EarlyBucket():      1,
			r.LateBucket():       1,
			keepers.BucketWaiver: 1,
		},
		Rules: []string{
			fmt.Sprintf("Maximum %d keepers total", maxKeepers),
			fmt.Sprintf("1 keeper from rounds %s", r.EarlyBucket()),
			fmt.Sprintf("1 keeper from rounds %s", r.LateBucket()),
			"1 waiver wire keeper (undrafted players)",
			"Players kept last year cannot be kept again",
		},
	}
}

package keeper

import (
	"keeper-service/internal/domain/keepers"
	"keeper-service/internal/domain/players"
)

const (
	waiverCost     = 9
	waiverCostBump = 10

	// Defensive fallback for a drafted player with no recorded round. The
	// eligibility gate rejects that combination before cost is ever computed.
	fallbackDraftedCost = 16
)

// Cost computes the draft round the team forfeits next season for keeping the
// player. A waiver keeper costs round 9 unless an already-selected keeper
// carries a 9th-round cost, in which case it bumps to round 10.
func (r Rules) Cost(rec players.PlayerRecord, sel keepers.KeeperSelection) int {
	if rec.OriginallyUndrafted {
		for _, k := range sel.Keepers {
			if k.CostRound == waiverCost {
				return waiverCostBump
			}
		}
		return waiverCost
	}
	if rec.DraftRound == nil {
		return fallbackDraftedCost
	}
	return *rec.DraftRound
}

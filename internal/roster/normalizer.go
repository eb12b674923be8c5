package roster

import (
	"sort"
	"strings"

	"keeper-service/internal/domain/players"
	"keeper-service/internal/domain/teams"
	"keeper-service/internal/providers"
)

// Index holds the canonical player records built from one league snapshot.
// Records are keyed by player id; a secondary lowercased-name index supports
// name lookup and may hold several ids when display names collide.
type Index struct {
	byID               map[int]players.PlayerRecord
	byName             map[string][]int
	finalScoringPeriod int
}

// BuildIndex normalizes a raw league snapshot into player records. Every
// access into the snapshot tolerates absence: malformed draft picks and
// roster slots are skipped, unmapped team ids leave FinalTeamKey empty, and
// a missing draft pick marks the player originally undrafted.
func BuildIndex(blob *providers.LeagueBlob, idMap teams.IDMap, overrides map[int]int) *Index {
	ix := &Index{
		byID:   make(map[int]players.PlayerRecord),
		byName: make(map[string][]int),
	}
	if blob == nil {
		return ix
	}
	ix.finalScoringPeriod = blob.FinalScoringPeriod

	roundByPlayer := draftRounds(blob.Draft)

	for _, team := range blob.Roster.Teams {
		externalID := 0
		if team.ID != nil {
			externalID = *team.ID
		}
		if team.Roster == nil {
			continue
		}
		for _, slot := range team.Roster.Entries {
			id, name, ok := slotIdentity(slot)
			if !ok {
				continue
			}

			rec := players.PlayerRecord{
				PlayerID:       id,
				Name:           name,
				ExternalTeamID: externalID,
				FinalTeamKey:   idMap.Key(externalID),
			}
			if round, drafted := roundByPlayer[id]; drafted {
				rd := round
				rec.DraftRound = &rd
			} else {
				rec.OriginallyUndrafted = true
			}
			ix.insert(rec)
		}
	}

	for id, count := range overrides {
		if rec, ok := ix.byID[id]; ok {
			rec.SeasonsKept = count
			ix.byID[id] = rec
		}
	}

	return ix
}

// draftRounds maps player id to original draft round, keeping only picks
// where both fields are present.
func draftRounds(draft providers.Draft) map[int]int {
	rounds := make(map[int]int)
	if draft.DraftDetail == nil {
		return rounds
	}
	for _, pick := range draft.DraftDetail.Picks {
		if pick.PlayerID == nil || pick.RoundID == nil {
			continue
		}
		rounds[*pick.PlayerID] = *pick.RoundID
	}
	return rounds
}

func slotIdentity(slot providers.RosterEntry) (int, string, bool) {
	if slot.PlayerPoolEntry == nil || slot.PlayerPoolEntry.Player == nil {
		return 0, "", false
	}
	p := slot.PlayerPoolEntry.Player
	if p.ID == nil || p.FullName == nil || *p.FullName == "" {
		return 0, "", false
	}
	return *p.ID, *p.FullName, true
}

func (ix *Index) insert(rec players.PlayerRecord) {
	if _, seen := ix.byID[rec.PlayerID]; !seen {
		key := strings.ToLower(rec.Name)
		ix.byName[key] = append(ix.byName[key], rec.PlayerID)
	}
	ix.byID[rec.PlayerID] = rec
}

// ByID returns the record for a player id.
func (ix *Index) ByID(id int) (players.PlayerRecord, bool) {
	rec, ok := ix.byID[id]
	return rec, ok
}

// Len returns the number of distinct players in the index.
func (ix *Index) Len() int {
	return len(ix.byID)
}

// FinalScoringPeriod returns the scoring period the snapshot was taken at.
func (ix *Index) FinalScoringPeriod() int {
	return ix.finalScoringPeriod
}

// Names returns every known display name, sorted for determinism.
func (ix *Index) Names() []string {
	names := make([]string, 0, len(ix.byID))
	for _, rec := range ix.byID {
		names = append(names, rec.Name)
	}
	sort.Strings(names)
	return names
}

// TeamRecords returns the records whose final roster team matches the key.
func (ix *Index) TeamRecords(teamKey string) []players.PlayerRecord {
	var out []players.PlayerRecord
	for _, rec := range ix.byID {
		if rec.FinalTeamKey == teamKey {
			out = append(out, rec)
		}
	}
	return out
}

package roster

import (
	"errors"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	strmetrics "github.com/adrg/strutil/metrics"

	"keeper-service/internal/domain/players"
)

// ErrPlayerNotFound reports that no player matched the queried name exactly.
var ErrPlayerNotFound = errors.New("player not found")

// ErrAmbiguousName reports that two or more distinct players share the
// queried display name; name lookup refuses to pick one silently.
var ErrAmbiguousName = errors.New("player name is ambiguous")

// Suggestion threshold and cap for fuzzy name matching.
const (
	suggestionMinScore = 75
	suggestionLimit    = 3
)

// Resolve looks a player up by display name, case-insensitively. Names shared
// by multiple players resolve to ErrAmbiguousName.
func (ix *Index) Resolve(name string) (players.PlayerRecord, error) {
	ids := ix.byName[strings.ToLower(strings.TrimSpace(name))]
	switch len(ids) {
	case 0:
		return players.PlayerRecord{}, ErrPlayerNotFound
	case 1:
		return ix.byID[ids[0]], nil
	default:
		return players.PlayerRecord{}, ErrAmbiguousName
	}
}

// Suggestions scores every known display name against the query and returns
// the closest few, best first. Scores run 0-100; only names at or above the
// threshold qualify. This never selects a player, it only shapes messages.
func (ix *Index) Suggestions(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	metric := strmetrics.NewSorensenDice()

	type scored struct {
		name  string
		score float64
	}
	var candidates []scored
	for _, name := range ix.Names() {
		score := strutil.Similarity(query, strings.ToLower(name), metric) * 100
		if score >= suggestionMinScore {
			candidates = append(candidates, scored{name: name, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	out := make([]string, 0, suggestionLimit)
	for _, c := range candidates {
		if len(out) == suggestionLimit {
			break
		}
		out = append(out, c.name)
	}
	return out
}

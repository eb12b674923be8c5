package league

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"keeper-service/internal/domain/keepers"
	"keeper-service/internal/domain/players"
	"keeper-service/internal/domain/teams"
	"keeper-service/internal/keeper"
	"keeper-service/internal/logging"
	"keeper-service/internal/providers"
	"keeper-service/internal/roster"
	"keeper-service/internal/snapshots"
)

// ErrPlayerNotFound reports a name that matched no player on any final roster.
var ErrPlayerNotFound = errors.New("player not found")

// ErrAmbiguousName reports a name shared by multiple players.
var ErrAmbiguousName = errors.New("player name matches multiple players")

// rosterRoundUnknown sorts undrafted/unknown players behind every real round.
const rosterRoundUnknown = 99

// Config wires a Service.
type Config struct {
	Provider    providers.LeagueProvider
	Snapshots   snapshots.Store
	Rules       keeper.Rules
	Catalog     teams.Catalog
	IDMap       teams.IDMap
	SeasonsKept map[int]int
	Season      int
	Logger      *slog.Logger
}

// Service answers keeper eligibility and selection questions for one league
// season. Every query re-fetches and re-normalizes the league snapshot; there
// is no cross-request cache, trading latency for freshness and simplicity.
type Service struct {
	provider    providers.LeagueProvider
	snaps       snapshots.Store
	rules       keeper.Rules
	catalog     teams.Catalog
	idMap       teams.IDMap
	seasonsKept map[int]int
	season      int
	logger      *slog.Logger
}

// NewService constructs a Service.
func NewService(cfg Config) *Service {
	return &Service{
		provider:    cfg.Provider,
		snaps:       cfg.Snapshots,
		rules:       cfg.Rules,
		catalog:     cfg.Catalog,
		idMap:       cfg.IDMap,
		seasonsKept: cfg.SeasonsKept,
		season:      cfg.Season,
		logger:      cfg.Logger,
	}
}

// Season returns the season under evaluation.
func (s *Service) Season() int {
	return s.season
}

// Rules exposes the configured rule set.
func (s *Service) Rules() keeper.Rules {
	return s.rules
}

// Limits describes the selection constraint set.
func (s *Service) Limits() keepers.Limits {
	return s.rules.Limits()
}

func (s *Service) index(ctx context.Context) (*roster.Index, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	blob, err := s.provider.FetchLeague(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("fetch league data: %w", err)
	}
	return roster.BuildIndex(blob, s.idMap, s.seasonsKept), nil
}

// Check resolves a player by name and reports the final-roster and keeper
// verdicts. A missing player is not an error on this path; the result carries
// fuzzy suggestions instead. Only a failed upstream fetch returns an error.
func (s *Service) Check(ctx context.Context, name, teamKey string) (keepers.CheckResult, error) {
	ix, err := s.index(ctx)
	if err != nil {
		return keepers.CheckResult{}, err
	}

	rec, err := ix.Resolve(name)
	switch {
	case errors.Is(err, roster.ErrPlayerNotFound):
		return keepers.CheckResult{
			FinalOnRoster:  false,
			FinalMessage:   fmt.Sprintf("Player not found on any final roster for %d. Suggestions: %s.", s.season, suggestionHint(ix, name)),
			KeeperEligible: false,
			KeeperMessage:  "No eligibility check performed because player was not found.",
		}, nil
	case errors.Is(err, roster.ErrAmbiguousName):
		return keepers.CheckResult{
			FinalOnRoster:  false,
			FinalMessage:   fmt.Sprintf("Multiple players named %q were on final rosters for %d; exact-name lookup is ambiguous.", name, s.season),
			KeeperEligible: false,
			KeeperMessage:  "No eligibility check performed because the name matches multiple players.",
		}, nil
	case err != nil:
		return keepers.CheckResult{}, err
	}

	undrafted := rec.OriginallyUndrafted
	onRoster, finalMsg := keeper.CheckFinalRoster(rec, teamKey)
	if !onRoster {
		return keepers.CheckResult{
			FinalOnRoster:  false,
			FinalMessage:   finalMsg,
			KeeperEligible: false,
			KeeperMessage:  "Ineligible because the player was not on your final roster last season.",
			DraftRound:     rec.DraftRound,
			Undrafted:      &undrafted,
		}, nil
	}

	eligible, msg, bucket := s.rules.Verdict(rec)
	return keepers.CheckResult{
		FinalOnRoster:  true,
		FinalMessage:   finalMsg,
		KeeperEligible: eligible,
		KeeperMessage:  msg,
		KeeperBucket:   bucket,
		DraftRound:     rec.DraftRound,
		Undrafted:      &undrafted,
	}, nil
}

// CheckSelection decides whether the named player can join the caller's
// tentative keeper selection, and at what cost. Unlike Check, an unknown or
// ambiguous name is a hard error here: a selection flow must not proceed on
// ambiguous input.
func (s *Service) CheckSelection(ctx context.Context, name, teamKey string, current []keepers.KeeperEntry) (keepers.SelectionResult, error) {
	ix, err := s.index(ctx)
	if err != nil {
		return keepers.SelectionResult{}, err
	}

	rec, err := ix.Resolve(name)
	switch {
	case errors.Is(err, roster.ErrPlayerNotFound):
		return keepers.SelectionResult{}, ErrPlayerNotFound
	case errors.Is(err, roster.ErrAmbiguousName):
		return keepers.SelectionResult{}, ErrAmbiguousName
	case err != nil:
		return keepers.SelectionResult{}, err
	}

	selection := keepers.KeeperSelection{TeamKey: teamKey, Keepers: current}
	canAdd, msg, bucket := s.rules.CanAdd(rec, selection)
	if !canAdd {
		return keepers.SelectionResult{CanAdd: false, Message: msg}, nil
	}

	return keepers.SelectionResult{
		CanAdd:    true,
		Message:   msg,
		Bucket:    bucket,
		CostRound: s.rules.Cost(rec, selection),
		PlayerInfo: &keepers.PlayerInfo{
			ID:         rec.PlayerID,
			Name:       rec.Name,
			DraftRound: rec.DraftRound,
			Undrafted:  rec.OriginallyUndrafted,
		},
	}, nil
}

// TeamRoster returns a team's final end-of-season roster, drafted players
// first in round order, undrafted players last, names breaking ties.
func (s *Service) TeamRoster(ctx context.Context, teamKey string) (players.RosterResponse, error) {
	ix, err := s.index(ctx)
	if err != nil {
		return players.RosterResponse{}, err
	}

	recs := ix.TeamRecords(teamKey)
	out := make([]players.RosterPlayer, 0, len(recs))
	for _, rec := range recs {
		out = append(out, players.RosterPlayer{
			ID:         rec.PlayerID,
			Name:       rec.Name,
			DraftRound: rec.DraftRound,
			Undrafted:  rec.OriginallyUndrafted,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Undrafted != out[j].Undrafted {
			return !out[i].Undrafted
		}
		ri, rj := rosterRound(out[i]), rosterRound(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i].Name < out[j].Name
	})

	return players.RosterResponse{
		TeamKey:            teamKey,
		FinalScoringPeriod: ix.FinalScoringPeriod(),
		Players:            out,
	}, nil
}

// Teams builds the team dropdown from live upstream metadata, degrading to a
// previously captured snapshot, then to the static catalog, when the fetch
// fails. It never returns an error; the catalog is always a valid answer.
func (s *Service) Teams(ctx context.Context) []teams.Team {
	logger := logging.FromContext(ctx, s.logger)

	if s.provider != nil {
		if blob, err := s.provider.FetchLeague(ctx, s.season); err == nil {
			if items := s.dropdown(blob); len(items) > 0 {
				return items
			}
		} else {
			logging.Warn(logger, "team dropdown falling back", "err", err)
		}
	}

	if s.snaps != nil {
		if blob, err := s.snaps.LoadLeague(s.season); err == nil {
			if items := s.dropdown(blob); len(items) > 0 {
				return items
			}
		}
	}

	return s.catalog
}

func (s *Service) dropdown(blob *providers.LeagueBlob) []teams.Team {
	var items []teams.Team
	for _, t := range blob.TeamsMeta.Teams {
		if t.ID == nil {
			continue
		}
		key := s.idMap.Key(*t.ID)
		if key == "" {
			continue
		}
		items = append(items, teams.Team{Key: key, Name: teamDisplayName(t, key)})
	}
	return items
}

// teamDisplayName prefers the full team name, then location+nickname, then
// the internal key as a last resort.
func teamDisplayName(t providers.TeamMeta, key string) string {
	if t.Name != nil && *t.Name != "" {
		return *t.Name
	}
	var parts []string
	if t.Location != nil && strings.TrimSpace(*t.Location) != "" {
		parts = append(parts, strings.TrimSpace(*t.Location))
	}
	if t.Nickname != nil && strings.TrimSpace(*t.Nickname) != "" {
		parts = append(parts, strings.TrimSpace(*t.Nickname))
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return key
}

func suggestionHint(ix *roster.Index, query string) string {
	suggestions := ix.Suggestions(query)
	if len(suggestions) == 0 {
		return "no close match"
	}
	return strings.Join(suggestions, ", ")
}

func rosterRound(p players.RosterPlayer) int {
	if p.DraftRound == nil {
		return rosterRoundUnknown
	}
	return *p.DraftRound
}

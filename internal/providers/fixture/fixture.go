package fixture

import (
	"context"

	"keeper-service/internal/providers"
)

// Provider returns a static league snapshot useful for local development and
// bootstrapping without upstream credentials. External team id 1 maps to the
// first catalog team in the default league config.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchLeague returns a deterministic league snapshot: one fully rostered
// team with drafted and undrafted players, and a second sparse team.
func (p *Provider) FetchLeague(ctx context.Context, season int) (*providers.LeagueBlob, error) {
	_ = ctx
	_ = season

	finalSP := 17

	return &providers.LeagueBlob{
		Settings: providers.Settings{
			Status: &providers.SettingsStatus{FinalScoringPeriod: intp(finalSP)},
		},
		Draft: providers.Draft{
			DraftDetail: &providers.DraftDetail{
				Picks: []providers.DraftPick{
					{PlayerID: intp(1001), RoundID: intp(3)},
					{PlayerID: intp(1002), RoundID: intp(5)},
					{PlayerID: intp(1003), RoundID: intp(13)},
					{PlayerID: intp(1005), RoundID: intp(21)},
					{PlayerID: intp(2001), RoundID: intp(1)},
				},
			},
		},
		Roster: providers.Roster{
			Teams: []providers.RosterTeam{
				{
					ID: intp(1),
					Roster: &providers.RosterSlots{
						Entries: []providers.RosterEntry{
							entry(1001, "Alvin Harper"),
							entry(1002, "Mike Renfro"),
							entry(1003, "Drew Hill"),
							entry(1004, "Curtis Duncan"),
							entry(1005, "Haywood Jeffires"),
						},
					},
				},
				{
					ID: intp(2),
					Roster: &providers.RosterSlots{
						Entries: []providers.RosterEntry{
							entry(2001, "Ernest Givins"),
						},
					},
				},
			},
		},
		TeamsMeta: providers.TeamsMeta{
			Teams: []providers.TeamMeta{
				{ID: intp(1), Name: strp("Fixture Team One")},
				{ID: intp(2), Location: strp("Fixture"), Nickname: strp("Team Two")},
			},
		},
		FinalScoringPeriod: finalSP,
	}, nil
}

func entry(id int, name string) providers.RosterEntry {
	return providers.RosterEntry{
		PlayerPoolEntry: &providers.PlayerPoolEntry{
			Player: &providers.PoolPlayer{ID: intp(id), FullName: strp(name)},
		},
	}
}

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

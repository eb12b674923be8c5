package providers

// LeagueBlob bundles the four upstream views that together describe a league
// season. Every nested field is optional; any level may be absent in the raw
// payload and consumers must treat absence as unknown.
type LeagueBlob struct {
	Settings           Settings  `json:"settings"`
	Draft              Draft     `json:"draft"`
	Roster             Roster    `json:"roster"`
	TeamsMeta          TeamsMeta `json:"teams_meta"`
	FinalScoringPeriod int       `json:"final_scoring_period"`
}

// Settings is the root of the league settings view.
type Settings struct {
	Status *SettingsStatus `json:"status"`
}

// SettingsStatus carries season status fields.
type SettingsStatus struct {
	FinalScoringPeriod *int `json:"finalScoringPeriod"`
}

// Draft is the root of the draft detail view.
type Draft struct {
	DraftDetail *DraftDetail `json:"draftDetail"`
}

// DraftDetail lists the season's draft picks.
type DraftDetail struct {
	Picks []DraftPick `json:"picks"`
}

// DraftPick is one pick; either field may be missing or malformed upstream.
type DraftPick struct {
	PlayerID *int `json:"playerId"`
	RoundID  *int `json:"roundId"`
}

// Roster is the root of the roster view at a scoring period.
type Roster struct {
	Teams []RosterTeam `json:"teams"`
}

// RosterTeam is one team's roster in the roster view.
type RosterTeam struct {
	ID     *int         `json:"id"`
	Roster *RosterSlots `json:"roster"`
}

// RosterSlots wraps the roster entry list.
type RosterSlots struct {
	Entries []RosterEntry `json:"entries"`
}

// RosterEntry is one roster slot.
type RosterEntry struct {
	PlayerPoolEntry *PlayerPoolEntry `json:"playerPoolEntry"`
}

// PlayerPoolEntry wraps the player payload inside a roster slot.
type PlayerPoolEntry struct {
	Player *PoolPlayer `json:"player"`
}

// PoolPlayer is the player identity inside a roster slot.
type PoolPlayer struct {
	ID       *int    `json:"id"`
	FullName *string `json:"fullName"`
}

// TeamsMeta is the root of the team metadata view.
type TeamsMeta struct {
	Teams []TeamMeta `json:"teams"`
}

// TeamMeta carries a team's display names; any of them may be absent.
type TeamMeta struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Nickname *string `json:"nickname"`
	Abbrev   *string `json:"abbrev"`
}

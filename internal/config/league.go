package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"keeper-service/internal/domain/teams"
)

// LeagueTables bundles the per-season league configuration the rule engine
// depends on: the team catalog, the external-id translation map, and the
// manually maintained keeper-history overrides (the upstream service does not
// report keeper history).
type LeagueTables struct {
	Catalog     teams.Catalog
	IDMap       teams.IDMap
	SeasonsKept map[int]int
}

// leagueFile is the JSON shape of an external league config file. Map keys
// arrive as strings because JSON objects cannot key on numbers.
type leagueFile struct {
	Teams       []teams.Team      `json:"teams"`
	TeamIDMap   map[string]string `json:"team_id_map"`
	SeasonsKept map[string]int    `json:"seasons_kept"`
}

// LoadLeagueTables reads the league tables from the given JSON file, or
// returns the compiled-in defaults when no path is configured.
func LoadLeagueTables(path string) (LeagueTables, error) {
	if path == "" {
		return DefaultLeagueTables(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return LeagueTables{}, fmt.Errorf("read league config: %w", err)
	}

	var file leagueFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return LeagueTables{}, fmt.Errorf("parse league config: %w", err)
	}

	tables := LeagueTables{
		Catalog:     file.Teams,
		IDMap:       make(teams.IDMap, len(file.TeamIDMap)),
		SeasonsKept: make(map[int]int, len(file.SeasonsKept)),
	}
	for key, teamKey := range file.TeamIDMap {
		id, err := strconv.Atoi(key)
		if err != nil {
			return LeagueTables{}, fmt.Errorf("parse league config: team id %q: %w", key, err)
		}
		tables.IDMap[id] = teamKey
	}
	for key, count := range file.SeasonsKept {
		id, err := strconv.Atoi(key)
		if err != nil {
			return LeagueTables{}, fmt.Errorf("parse league config: player id %q: %w", key, err)
		}
		tables.SeasonsKept[id] = count
	}
	return tables, nil
}

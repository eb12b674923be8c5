package config

// ESPNConfig controls how we talk to the ESPN fantasy API.
type ESPNConfig struct {
	LeagueID string
	SWID     string
	S2       string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		LeagueID: envOrDefault(envLeagueID, ""),
		SWID:     envOrDefault(envESPNSWID, ""),
		S2:       envOrDefault(envESPNS2, ""),
	}
}

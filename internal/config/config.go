package config

import "keeper-service/internal/keeper"

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Provider   string
	LastSeason int
	ESPN       ESPNConfig
	Keeper     KeeperConfig
	Metrics    MetricsConfig
	Snapshots  SnapshotsConfig
	LeagueFile string
}

// KeeperConfig carries the league-tunable rule boundaries.
type KeeperConfig struct {
	// LateRoundEnd is the last round of the late keeper bucket. The league
	// rule sheet has said both 16 and 18 over the years; pick explicitly.
	LateRoundEnd int
}

// SnapshotsConfig controls the on-disk league snapshot capture.
type SnapshotsConfig struct {
	AdminToken string
	Folder     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envProvider, defaultProvider),
		LastSeason: intEnvOrDefault(envLastSeason, defaultLastSeason),
		ESPN:       loadESPN(),
		Keeper: KeeperConfig{
			LateRoundEnd: intEnvOrDefault(envLateRoundEnd, keeper.DefaultLateRoundEnd),
		},
		Metrics: loadMetrics(),
		Snapshots: SnapshotsConfig{
			AdminToken: envOrDefault(envAdminToken, ""),
			Folder:     envOrDefault(envSnapshotDir, defaultSnapshotDir),
		},
		LeagueFile: envOrDefault(envLeagueFile, ""),
	}
}

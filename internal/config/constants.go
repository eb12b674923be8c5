package config

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envLastSeason   = "LAST_SEASON"
	envLeagueID     = "ESPN_LEAGUE_ID"
	envESPNSWID     = "ESPN_SWID"
	envESPNS2       = "ESPN_S2"
	envLateRoundEnd = "KEEPER_LATE_ROUND_END"
	envLeagueFile   = "LEAGUE_CONFIG_FILE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken   = "ADMIN_TOKEN"
	envSnapshotDir  = "SNAPSHOT_FOLDER"

	defaultPort     = "4000"
	defaultProvider = "espn"
	// The season being evaluated is the one that just ended; keeper rules for
	// a new draft always look one year back.
	defaultLastSeason  = 2024
	defaultMetricsPort = "9090"
	defaultSnapshotDir = "data/snapshots"
)

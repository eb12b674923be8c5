package providers

import "context"

// LeagueProvider defines how a raw league snapshot is fetched for a season.
// Implementations return the snapshot exactly as the upstream service shaped
// it; normalization into canonical records happens downstream.
type LeagueProvider interface {
	FetchLeague(ctx context.Context, season int) (*LeagueBlob, error)
}

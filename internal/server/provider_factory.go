package server

import (
	"context"
	"log/slog"
	"strings"

	"keeper-service/internal/config"
	"keeper-service/internal/metrics"
	"keeper-service/internal/providers"
	"keeper-service/internal/providers/espn"
	"keeper-service/internal/providers/fixture"
	"keeper-service/internal/snapshots"
)

type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

// build returns the configured provider wrapped with retries. Unknown names
// fall back to the fixture provider so the service always boots.
func (f providerFactory) build(cfg config.Config) providers.LeagueProvider {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))

	var inner providers.LeagueProvider
	switch name {
	case "espn":
		inner = espn.NewClient(espn.Config{
			LeagueID: cfg.ESPN.LeagueID,
			SWID:     cfg.ESPN.SWID,
			S2:       cfg.ESPN.S2,
		})
	case "snapshot":
		inner = &snapshotProvider{store: snapshots.NewFSStore(cfg.Snapshots.Folder)}
	default:
		if name != "fixture" && f.logger != nil {
			f.logger.Warn("unknown provider, using fixture", slog.String("provider", name))
		}
		name = "fixture"
		inner = fixture.New()
	}

	return providers.NewRetryingProvider(inner, f.logger, f.metrics, name, 0, 0)
}

// snapshotProvider serves a previously captured league blob from disk,
// useful for offline development against real data.
type snapshotProvider struct {
	store snapshots.Store
}

func (p *snapshotProvider) FetchLeague(ctx context.Context, season int) (*providers.LeagueBlob, error) {
	_ = ctx
	return p.store.LoadLeague(season)
}

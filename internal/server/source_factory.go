package server

import (
	"log/slog"

	"nfl-scores-service/internal/config"
	"nfl-scores-service/internal/feed"
	"nfl-scores-service/internal/feed/fixture"
	"nfl-scores-service/internal/feed/nflcom"
	"nfl-scores-service/internal/metrics"
)

// sourceFactory assembles the upstream feed source named by the config.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(cfg config.Config) feed.Source {
	switch cfg.Feed {
	case "fixture":
		return fixture.NewSource()
	default:
		if cfg.Feed != "nflcom" && f.logger != nil {
			f.logger.Warn("unknown feed, falling back to nflcom", "feed", cfg.Feed)
		}
		return nflcom.NewClient(nflcom.Config{
			ScoreboardURL: cfg.NFLCom.ScoreboardURL,
			GameCenterURL: cfg.NFLCom.GameCenterURL,
			FetchTimeout:  cfg.NFLCom.FetchTimeout,
			DetailWorkers: cfg.NFLCom.DetailWorkers,
			UserAgent:     cfg.NFLCom.UserAgent,
			Logger:        f.logger,
			Metrics:       f.metrics,
		})
	}
}

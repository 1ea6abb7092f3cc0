package nflcom

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nfl-scores-service/internal/domain"
	"nfl-scores-service/internal/feed"
	"nfl-scores-service/internal/logging"
	"nfl-scores-service/internal/metrics"
	"nfl-scores-service/internal/timeutil"
)

// Config carries the NFL.com client configuration. Zero values fall back to
// production defaults; HTTPClient and the clock exist for test injection.
type Config struct {
	ScoreboardURL string
	GameCenterURL string
	HTTPClient    *http.Client
	FetchTimeout  time.Duration
	DetailWorkers int
	UserAgent     string
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

// Client fetches and normalizes games from the NFL.com scoreboard feed. It
// implements feed.Source.
type Client struct {
	fetcher       *fetcher
	scoreboardURL string
	gameCenterURL string
	detailWorkers int
	logger        *slog.Logger
	metrics       *metrics.Recorder
	now           func() time.Time
}

// NewClient constructs a Client from cfg.
func NewClient(cfg Config) *Client {
	scoreboardURL := normalizeURL(cfg.ScoreboardURL, defaultScoreboardURL)
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		fetcher: newFetcher(
			resolveHTTPClient(cfg.HTTPClient, cfg.FetchTimeout),
			scoreboardURL,
			userAgent,
			cfg.Logger,
			cfg.Metrics,
		),
		scoreboardURL: scoreboardURL,
		gameCenterURL: normalizeURL(cfg.GameCenterURL, defaultGameCenterURL),
		detailWorkers: resolveDetailWorkers(cfg.DetailWorkers),
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		now:           time.Now,
	}
}

var _ feed.Source = (*Client)(nil)

// FetchGames runs the full pipeline for the criterion: schedule fetch and
// parse, per-game detail fan-out, merge. Schedule failures fail the call;
// per-game failures degrade that game to its schedule-only record.
func (c *Client) FetchGames(ctx context.Context, criterion domain.Criterion, date string) ([]domain.Game, error) {
	results, err := c.fetchSlate(ctx, criterion, date)
	if err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(results))
	for _, res := range results {
		detail := res.detail
		if res.err != nil {
			c.reportDetailFailure(res.game, res.err)
			detail = nil
		}

		game, mapErr := mapGame(res.game, detail)
		if mapErr != nil {
			c.reportDetailFailure(res.game, mapErr)
			game, _ = mapGame(res.game, nil)
		}
		games = append(games, game)
	}

	logging.Info(c.logger, "fetched games",
		logging.FieldSource, sourceName,
		logging.FieldCriterion, string(criterion),
		logging.FieldCount, len(games),
	)
	return games, nil
}

// FetchTeamStats runs the pipeline scoped to one team and pulls that side's
// aggregate stat block from each detail document. A detail that matches
// neither side is surfaced as a NormalizationError, never dropped.
func (c *Client) FetchTeamStats(ctx context.Context, team string, date string) ([]domain.TeamGameStats, error) {
	results, err := c.fetchSlate(ctx, domain.Criterion(team), date)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.TeamGameStats, 0, len(results))
	for _, res := range results {
		detail := res.detail
		if res.err != nil {
			c.reportDetailFailure(res.game, res.err)
			detail = nil
		}

		record, mapErr := mapTeamStats(res.game, detail, team)
		if mapErr != nil {
			if _, ok := feed.AsNormalizationError(mapErr); ok {
				return nil, mapErr
			}
			c.reportDetailFailure(res.game, mapErr)
			record, _ = mapTeamStats(res.game, nil, team)
		}
		stats = append(stats, record)
	}
	return stats, nil
}

// fetchSlate fetches and parses the schedule, then fans out the detail
// fetches. The conditional cache applies only when the query targets today,
// keeping the slot pinned to the frequently-polled today-schedule document.
func (c *Client) fetchSlate(ctx context.Context, criterion domain.Criterion, date string) ([]detailResult, error) {
	useCache := date == "" || date == timeutil.Today(c.now)

	body, err := c.fetcher.Fetch(ctx, c.scoreboardURL, useCache, metrics.ResourceSchedule)
	if err != nil {
		logging.Error(c.logger, "schedule fetch failed", err, logging.FieldURL, c.scoreboardURL)
		return nil, err
	}

	games, err := parseSchedule(body, criterion, c.now)
	if err != nil {
		logging.Error(c.logger, "schedule parse failed", err)
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}

	return c.attachDetails(ctx, games, useCache), nil
}

func (c *Client) reportDetailFailure(game rawGame, err error) {
	c.metrics.RecordDetailFailure()
	logging.Warn(c.logger, "game degraded to schedule-only record",
		logging.FieldSource, sourceName,
		logging.FieldEventID, game.eventID,
		"error", err,
	)
}

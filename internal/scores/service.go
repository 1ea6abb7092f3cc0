// Package scores composes the acquisition pipeline into the operations the
// HTTP surface exposes: scoreboard listings, the wildcard split and team
// stats.
package scores

import (
	"context"
	"log/slog"
	"time"

	"nfl-scores-service/internal/domain"
	"nfl-scores-service/internal/feed"
	"nfl-scores-service/internal/format"
	"nfl-scores-service/internal/logging"
	"nfl-scores-service/internal/timeutil"
)

// Service runs one pipeline execution per call; there are no background
// workers.
type Service struct {
	source    feed.Source
	formatter *format.Formatter
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs a Service.
func NewService(source feed.Source, formatter *format.Formatter, logger *slog.Logger) *Service {
	if formatter == nil {
		formatter = format.NewFormatter(nil)
	}
	return &Service{
		source:    source,
		formatter: formatter,
		logger:    logger,
		now:       time.Now,
	}
}

// Scoreboard renders one reply for the criterion. An empty selection is a
// normal outcome rendered as the no-games reply; only upstream failures
// return an error.
func (s *Service) Scoreboard(ctx context.Context, criterion domain.Criterion, date string) (domain.ScoreboardResponse, error) {
	games, err := s.source.FetchGames(ctx, criterion, date)
	if err != nil {
		logging.Error(s.logger, "scoreboard query failed", err,
			logging.FieldCriterion, string(criterion),
		)
		return domain.ScoreboardResponse{}, err
	}

	selected := domain.Select(games, criterion)
	if len(selected) == 0 {
		logging.Info(s.logger, "no games matched",
			logging.FieldCriterion, string(criterion),
		)
	}

	return domain.ScoreboardResponse{
		Date:    s.displayDate(date),
		Replies: []string{s.formatter.Games(selected, criterion)},
	}, nil
}

// ScoreboardSplit renders the wildcard query: one reply for not-final games
// and, when non-empty, a second for finals. An empty half produces no reply;
// both halves empty collapse to the single no-games reply.
func (s *Service) ScoreboardSplit(ctx context.Context, date string) (domain.ScoreboardResponse, error) {
	games, err := s.source.FetchGames(ctx, domain.CriterionAll, date)
	if err != nil {
		logging.Error(s.logger, "scoreboard split query failed", err)
		return domain.ScoreboardResponse{}, err
	}

	var replies []string
	for _, criterion := range []domain.Criterion{domain.CriterionNotFinal, domain.CriterionFinal} {
		half := domain.Select(games, criterion)
		if len(half) == 0 {
			continue
		}
		replies = append(replies, s.formatter.Games(half, criterion))
	}
	if len(replies) == 0 {
		logging.Info(s.logger, "no games matched", logging.FieldCriterion, "*")
		replies = []string{format.NoGamesFound}
	}

	return domain.ScoreboardResponse{
		Date:    s.displayDate(date),
		Replies: replies,
	}, nil
}

// TeamStats renders the aggregate-stats reply for one team.
func (s *Service) TeamStats(ctx context.Context, team string, date string) (domain.ScoreboardResponse, error) {
	records, err := s.source.FetchTeamStats(ctx, team, date)
	if err != nil {
		logging.Error(s.logger, "team stats query failed", err,
			logging.FieldCriterion, team,
		)
		return domain.ScoreboardResponse{}, err
	}
	if len(records) == 0 {
		logging.Info(s.logger, "no games matched", logging.FieldCriterion, team)
	}

	return domain.ScoreboardResponse{
		Date:    s.displayDate(date),
		Replies: []string{s.formatter.TeamStatsReply(records)},
	}, nil
}

func (s *Service) displayDate(date string) string {
	if date != "" {
		return date
	}
	return timeutil.Today(s.now)
}

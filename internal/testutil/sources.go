package testutil

import (
	"context"

	"nfl-scores-service/internal/domain"
)

// GoodSource returns the provided slate with no error.
type GoodSource struct {
	Games []domain.Game
	Stats []domain.TeamGameStats
}

func (s GoodSource) FetchGames(ctx context.Context, criterion domain.Criterion, date string) ([]domain.Game, error) {
	_ = ctx
	_ = date
	return domain.Select(s.Games, criterion), nil
}

func (s GoodSource) FetchTeamStats(ctx context.Context, team string, date string) ([]domain.TeamGameStats, error) {
	_ = ctx
	_ = date
	var out []domain.TeamGameStats
	for _, record := range s.Stats {
		if record.Team == team {
			out = append(out, record)
		}
	}
	return out, nil
}

// ErrSource always returns the provided error.
type ErrSource struct {
	Err error
}

func (s ErrSource) FetchGames(context.Context, domain.Criterion, string) ([]domain.Game, error) {
	return nil, s.Err
}

func (s ErrSource) FetchTeamStats(context.Context, string, string) ([]domain.TeamGameStats, error) {
	return nil, s.Err
}

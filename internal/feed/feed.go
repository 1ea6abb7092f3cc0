package feed

import (
	"context"

	"nfl-scores-service/internal/domain"
)

// Source defines how upstream scoreboard data is fetched and normalized.
// The date parameter is a YYYYMMDD string identifying the requested slate;
// sources enable their conditional cache only when it names today, since the
// cache slot is reserved for the frequently-polled today-schedule URL.
type Source interface {
	FetchGames(ctx context.Context, criterion domain.Criterion, date string) ([]domain.Game, error)
	FetchTeamStats(ctx context.Context, team string, date string) ([]domain.TeamGameStats, error)
}

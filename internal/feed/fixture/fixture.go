// Package fixture serves a small static slate so the service can run
// without reaching the upstream feed. It backs local development and the
// server wiring tests.
package fixture

import (
	"context"

	"nfl-scores-service/internal/domain"
	"nfl-scores-service/internal/feed"
)

// Source implements feed.Source over a fixed slate.
type Source struct {
	games []domain.Game
	stats map[string]domain.TeamStats
}

var _ feed.Source = (*Source)(nil)

// NewSource builds the default slate: one final, one live red-zone game and
// one upcoming game, exercising every formatter branch.
func NewSource() *Source {
	intPtr := func(v int) *int { return &v }
	strPtr := func(s string) *string { return &s }

	return &Source{
		games: []domain.Game{
			{
				HomeTeam: "NE", AwayTeam: "SEA",
				StartingTime: "Sun 1:00 PM",
				HomeScore:    intPtr(20), AwayScore: intPtr(24),
				Period: domain.PeriodQ4, Ended: true,
				Week: "Week 2", Date: 15,
			},
			{
				HomeTeam: "KC", AwayTeam: "CIN",
				StartingTime: "Sun 4:25 PM",
				HomeScore:    intPtr(17), AwayScore: intPtr(14),
				Clock: strPtr("08:12"), Period: domain.PeriodQ3,
				RedZone: true, Possession: "KC",
				Yardline: "CIN 14", Down: "2", ToGo: "6",
				LastPlay: "pass short right for 9 yards",
				Week:     "Week 2", Date: 15,
			},
			{
				HomeTeam: "PHI", AwayTeam: "ATL",
				StartingTime: "Mon 8:15 PM",
				Week:         "Week 2", Date: 16,
			},
		},
		stats: map[string]domain.TeamStats{
			"NE":  {FirstDowns: 18, TotalYards: 340, PassYards: 250, RushYards: 90, Penalties: 6, PenaltyYards: 45, Turnovers: 1, Punts: 3, PuntYards: 135, PuntAvg: 45.0, TimeOfPossession: "31:12"},
			"SEA": {FirstDowns: 22, TotalYards: 410, PassYards: 300, RushYards: 110, Penalties: 4, PenaltyYards: 30, Turnovers: 0, Punts: 2, PuntYards: 88, PuntAvg: 44.0, TimeOfPossession: "28:48"},
			"KC":  {FirstDowns: 14, TotalYards: 255, PassYards: 180, RushYards: 75, Penalties: 3, PenaltyYards: 25, Turnovers: 0, Punts: 2, PuntYards: 95, PuntAvg: 47.5, TimeOfPossession: "17:40"},
			"CIN": {FirstDowns: 11, TotalYards: 198, PassYards: 150, RushYards: 48, Penalties: 5, PenaltyYards: 40, Turnovers: 2, Punts: 3, PuntYards: 129, PuntAvg: 43.0, TimeOfPossession: "15:05"},
		},
	}
}

// FetchGames filters the fixed slate through the criterion.
func (s *Source) FetchGames(_ context.Context, criterion domain.Criterion, _ string) ([]domain.Game, error) {
	return domain.Select(s.games, criterion), nil
}

// FetchTeamStats returns the team's games with its canned stat blocks.
func (s *Source) FetchTeamStats(_ context.Context, team string, _ string) ([]domain.TeamGameStats, error) {
	var out []domain.TeamGameStats
	for _, g := range domain.Select(s.games, domain.Criterion(team)) {
		out = append(out, domain.TeamGameStats{
			Game:  g,
			Team:  team,
			Stats: s.stats[team],
		})
	}
	return out, nil
}

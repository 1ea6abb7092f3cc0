package nflcom

import (
	"fmt"
	"strconv"
	"strings"

	"nfl-scores-service/internal/domain"
	"nfl-scores-service/internal/feed"
	"nfl-scores-service/internal/metrics"
)

// mapGame merges a schedule entry and its optional detail document into a
// canonical Game. A nil detail yields the minimal pregame record.
func mapGame(raw rawGame, detail *gameDetail) (domain.Game, error) {
	game := domain.Game{
		HomeTeam:     raw.homeTeam,
		AwayTeam:     raw.awayTeam,
		StartingTime: startingTime(raw),
		StartTimeTBD: startTimeTBD(raw),
		Week:         raw.week,
		Date:         raw.day,
	}
	if detail == nil {
		return game, nil
	}

	period, ended, err := periodFromMarker(string(detail.Quarter))
	if err != nil {
		return domain.Game{}, err
	}
	game.Period = period
	game.Ended = ended

	if !game.Started() {
		return game, nil
	}

	game.HomeScore = scoreValue(detail.Home.Score.Total)
	game.AwayScore = scoreValue(detail.Away.Score.Total)
	if detail.Clock != "" {
		clock := detail.Clock
		game.Clock = &clock
	}
	game.RedZone = detail.RedZone
	game.Possession = detail.PossessionTeam
	game.Yardline = detail.Yardline
	game.Down = downValue(detail.Down)
	if detail.ToGo != 0 {
		game.ToGo = strconv.Itoa(detail.ToGo)
	}
	if desc, ok := lastPlayDescription(detail.Drives); ok {
		game.LastPlay = desc
	}
	return game, nil
}

// mapTeamStats builds the team-scoped record, pulling the aggregate stat
// block from whichever side matches the requested code. A detail document
// matching neither side is an upstream contract violation.
func mapTeamStats(raw rawGame, detail *gameDetail, team string) (domain.TeamGameStats, error) {
	game, err := mapGame(raw, detail)
	if err != nil {
		return domain.TeamGameStats{}, err
	}
	stats := domain.TeamGameStats{Game: game, Team: team}
	if detail == nil {
		return stats, nil
	}

	switch {
	case teamMatches(team, detail.Home.Abbr):
		stats.Stats = mapStats(detail.Home.Stats.Team)
	case teamMatches(team, detail.Away.Abbr):
		stats.Stats = mapStats(detail.Away.Stats.Team)
	default:
		return domain.TeamGameStats{}, &feed.NormalizationError{Team: team, EventID: raw.eventID}
	}
	return stats, nil
}

// teamMatches requires equal length on top of containment so a short code
// never cross-matches a longer one ("NE" against "CLE").
func teamMatches(code, abbr string) bool {
	return len(code) == len(abbr) && strings.Contains(abbr, code)
}

// periodFromMarker maps the feed's qtr sentinel onto the period enum. The
// marker is either a state word or a numeric quarter; anything else is a
// parse failure, never a silent coercion.
func periodFromMarker(marker string) (domain.Period, bool, error) {
	switch marker {
	case "", "Pregame":
		return domain.PeriodPregame, false, nil
	case "Halftime":
		return domain.PeriodHalftime, false, nil
	case "Final":
		return domain.PeriodQ4, true, nil
	case "final overtime":
		return domain.PeriodOT, true, nil
	}

	n, err := strconv.Atoi(marker)
	if err != nil || n < 1 {
		return 0, false, &feed.ParseError{
			Resource: metrics.ResourceDetail,
			Err:      fmt.Errorf("unknown quarter marker %q", marker),
		}
	}
	return domain.Period(n), false, nil
}

func mapStats(s teamStatsDetail) domain.TeamStats {
	return domain.TeamStats{
		FirstDowns:       s.FirstDowns,
		TotalYards:       s.TotalYards,
		PassYards:        s.PassYards,
		RushYards:        s.RushYards,
		Penalties:        s.Penalties,
		PenaltyYards:     s.PenaltyYards,
		Turnovers:        s.Turnovers,
		Punts:            s.Punts,
		PuntYards:        s.PuntYards,
		PuntAvg:          s.PuntAvg,
		TimeOfPossession: s.TimeOfPossession,
	}
}

func startingTime(raw rawGame) string {
	if startTimeTBD(raw) {
		return raw.weekday + " TBD"
	}
	parts := []string{raw.weekday, raw.startTime}
	if raw.meridiem != "" {
		parts = append(parts, raw.meridiem)
	}
	return strings.Join(parts, " ")
}

func startTimeTBD(raw rawGame) bool {
	return raw.startTime == "" || strings.EqualFold(raw.startTime, "TBD")
}

func scoreValue(total *int) *int {
	score := 0
	if total != nil {
		score = *total
	}
	return &score
}

// downValue renders the current down, treating the feed's null as first down
// (the feed omits the field on the first snap of a possession).
func downValue(down *int) string {
	if down == nil {
		return "1"
	}
	return strconv.Itoa(*down)
}

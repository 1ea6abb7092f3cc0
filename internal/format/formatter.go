package format

import (
	"fmt"
	"sort"
	"strings"

	"nfl-scores-service/internal/domain"
)

// NoGamesFound is the reply rendered when a selection comes back empty.
const NoGamesFound = "No games found"

// Formatter renders normalized games into compact status lines.
type Formatter struct {
	markup Markup
}

// NewFormatter constructs a Formatter. A nil markup renders plain text.
func NewFormatter(markup Markup) *Formatter {
	if markup == nil {
		markup = Plain{}
	}
	return &Formatter{markup: markup}
}

// Games renders a multi-game listing: in-progress and upcoming games first,
// finals last (stable within each group), joined with " | " and prefixed
// with the week label of the first game when present.
func (f *Formatter) Games(games []domain.Game, context domain.Criterion) string {
	if len(games) == 0 {
		return NoGamesFound
	}

	ordered := make([]domain.Game, len(games))
	copy(ordered, games)
	sort.SliceStable(ordered, func(i, j int) bool {
		return !ordered[i].Ended && ordered[j].Ended
	})

	lines := make([]string, 0, len(ordered))
	for _, g := range ordered {
		lines = append(lines, f.Game(g, context))
	}

	out := strings.Join(lines, " | ")
	if week := ordered[0].Week; week != "" {
		out = f.markup.Bold(week) + ": " + out
	}
	return out
}

// Game renders one game through the period/clock state machine.
func (f *Formatter) Game(g domain.Game, context domain.Criterion) string {
	if !g.Started() {
		return fmt.Sprintf("%s @ %s %s", g.AwayTeam, g.HomeTeam, g.StartingTime)
	}

	line := f.scoreLine(g)
	if trailer := f.clockBoard(g); trailer != "" {
		line += " " + trailer
	}
	if f.wantsSituation(g, context) {
		line += fmt.Sprintf(" %s has possession at %s (%s and %s) :: Last play: %s",
			g.Possession, g.Yardline, g.Down, g.ToGo, g.LastPlay)
	}
	return line
}

// TeamStats renders the team-scoped variant: the status line followed by the
// aggregate stat block once the game is underway and not at halftime.
func (f *Formatter) TeamStats(s domain.TeamGameStats) string {
	line := f.Game(s.Game, domain.Criterion(s.Team))
	if !s.Started() || s.Period == domain.PeriodHalftime {
		return line
	}
	return line + " " + f.statsBlock(s.Stats)
}

// TeamStatsReply renders the full stats reply with its bold red header.
func (f *Formatter) TeamStatsReply(records []domain.TeamGameStats) string {
	if len(records) == 0 {
		return NoGamesFound
	}

	lines := make([]string, 0, len(records))
	for _, s := range records {
		lines = append(lines, f.TeamStats(s))
	}
	header := f.markup.Bold(f.markup.Color(records[0].Team+" Game Stats:", ColorRed))
	return header + " " + strings.Join(lines, " | ")
}

// scoreLine renders "AWAY n HOME n", bolding a strict leader and painting
// the possessing side red inside the red zone.
func (f *Formatter) scoreLine(g domain.Game) string {
	away := f.teamScore(g, g.AwayTeam, g.AwayScore, g.HomeScore)
	home := f.teamScore(g, g.HomeTeam, g.HomeScore, g.AwayScore)
	return away + " " + home
}

func (f *Formatter) teamScore(g domain.Game, team string, own, other *int) string {
	seg := fmt.Sprintf("%s %d", team, scoreOrZero(own))
	if g.RedZone && !g.Ended && g.Period != domain.PeriodHalftime && g.Possession == team {
		seg = f.markup.Color(seg, ColorRed)
	}
	if scoreOrZero(own) > scoreOrZero(other) {
		seg = f.markup.Bold(seg)
	}
	return seg
}

// clockBoard renders the clock/period trailer: nothing before kickoff, an
// orange halftime marker, "F" or "F OTn" once ended, otherwise the green
// live clock with its period label.
func (f *Formatter) clockBoard(g domain.Game) string {
	switch {
	case !g.Started():
		return ""
	case g.Period == domain.PeriodHalftime:
		return f.markup.Color("Halftime", ColorOrange)
	case g.Ended:
		if g.Period <= domain.PeriodQ4 {
			return f.markup.Color("F", ColorRed)
		}
		return f.markup.Color("F "+periodLabel(g.Period), ColorRed)
	}

	if g.Clock == nil {
		return f.markup.Color(periodLabel(g.Period), ColorGreen)
	}
	return f.markup.Color(*g.Clock+" "+periodLabel(g.Period), ColorGreen)
}

// wantsSituation gates the possession clause to single-team queries on live,
// non-halftime games with situational data attached.
func (f *Formatter) wantsSituation(g domain.Game, context domain.Criterion) bool {
	if !context.TeamCode() || len(context) > 3 {
		return false
	}
	if g.Ended || g.Period == domain.PeriodHalftime {
		return false
	}
	return g.Possession != ""
}

func (f *Formatter) statsBlock(s domain.TeamStats) string {
	return fmt.Sprintf("First downs: %d, Total yards: %d, Pass yards: %d, Rush yards: %d, "+
		"Penalties: %d-%d, Turnovers: %d, Punts: %d for %d (%.1f avg), Time of possession: %s",
		s.FirstDowns, s.TotalYards, s.PassYards, s.RushYards,
		s.Penalties, s.PenaltyYards, s.Turnovers,
		s.Punts, s.PuntYards, s.PuntAvg, s.TimeOfPossession)
}

func periodLabel(p domain.Period) string {
	switch {
	case p >= domain.PeriodQ1 && p <= domain.PeriodQ4:
		return fmt.Sprintf("Q%d", p)
	case p == domain.PeriodOT:
		return "OT"
	case p > domain.PeriodOT:
		return fmt.Sprintf("OT%d", p-domain.PeriodQ4)
	}
	return ""
}

func scoreOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

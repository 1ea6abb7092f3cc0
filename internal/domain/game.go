package domain

// Period counts game segments from kickoff. Regulation quarters are 1-4 and
// overtimes continue from 5. Halftime is a display-only state the upstream
// feed reports between the second and third quarters; it never persists as
// score state.
type Period int

const (
	PeriodPregame  Period = 0
	PeriodQ1       Period = 1
	PeriodQ2       Period = 2
	PeriodQ3       Period = 3
	PeriodQ4       Period = 4
	PeriodOT       Period = 5
	PeriodOT2      Period = 6
	PeriodHalftime Period = 9
)

// Game is the canonical record merged from a schedule entry and its optional
// per-game detail document. Score, clock and situational fields are nil/empty
// until the game has started.
type Game struct {
	HomeTeam     string  `json:"homeTeam"`
	AwayTeam     string  `json:"awayTeam"`
	StartingTime string  `json:"startingTime"`
	StartTimeTBD bool    `json:"startTimeTBD"`
	HomeScore    *int    `json:"homeScore,omitempty"`
	AwayScore    *int    `json:"awayScore,omitempty"`
	Clock        *string `json:"clock,omitempty"`
	Period       Period  `json:"period"`
	Ended        bool    `json:"ended"`
	RedZone      bool    `json:"redZone"`
	Possession   string  `json:"possession,omitempty"`
	Yardline     string  `json:"yardline,omitempty"`
	Down         string  `json:"down,omitempty"`
	ToGo         string  `json:"togo,omitempty"`
	LastPlay     string  `json:"lastPlay,omitempty"`
	Week         string  `json:"week,omitempty"`
	Date         int     `json:"date"`
}

// Started reports whether the game has kicked off.
func (g Game) Started() bool {
	return g.Period != PeriodPregame
}

// TeamStats holds one side's aggregate statistics.
type TeamStats struct {
	FirstDowns       int     `json:"firstDowns"`
	TotalYards       int     `json:"totalYards"`
	PassYards        int     `json:"passYards"`
	RushYards        int     `json:"rushYards"`
	Penalties        int     `json:"penalties"`
	PenaltyYards     int     `json:"penaltyYards"`
	Turnovers        int     `json:"turnovers"`
	Punts            int     `json:"punts"`
	PuntYards        int     `json:"puntYards"`
	PuntAvg          float64 `json:"puntAvg"`
	TimeOfPossession string  `json:"timeOfPossession"`
}

// TeamGameStats is a Game scoped to one team, carrying that side's aggregate
// statistics block.
type TeamGameStats struct {
	Game
	Team  string    `json:"team"`
	Stats TeamStats `json:"stats"`
}

// ScoreboardResponse is the payload returned by the scores endpoints. Replies
// carry one formatted status line each; the wildcard query may yield two.
type ScoreboardResponse struct {
	Date    string   `json:"date"`
	Replies []string `json:"replies"`
}

package domain

// Select applies the criterion over normalized games. It is a pure predicate
// filter; an empty result is a normal outcome, not an error. Day-of-slate
// criteria (TODAY/TOMORROW/YESTERDAY) are already narrowed at the schedule
// level and pass everything through here.
func Select(games []Game, c Criterion) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if matches(g, c) {
			out = append(out, g)
		}
	}
	return out
}

func matches(g Game, c Criterion) bool {
	switch c {
	case CriterionAll, CriterionToday, CriterionTomorrow, CriterionYesterday:
		return true
	case CriterionInProgress:
		return g.Clock != nil && !g.Ended && g.Started() && g.Period != PeriodHalftime
	case CriterionNotFinal:
		return !g.Ended
	case CriterionFinal:
		return g.Ended
	default:
		return g.HomeTeam == string(c) || g.AwayTeam == string(c)
	}
}

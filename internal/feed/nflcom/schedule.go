package nflcom

import (
	"encoding/xml"
	"sort"
	"strconv"
	"time"

	"nfl-scores-service/internal/domain"
	"nfl-scores-service/internal/feed"
	"nfl-scores-service/internal/metrics"
	"nfl-scores-service/internal/timeutil"
)

// rawGame is one schedule entry before its detail document is attached. The
// eventId is YYYYMMDDNN; lexical order equals chronological order within a
// day's slate, which the meridiem pass depends on.
type rawGame struct {
	eventID    string
	gameKey    string
	weekday    string
	day        int
	startTime  string
	meridiem   string
	seasonType string
	week       string
	homeTeam   string
	awayTeam   string
}

// parseSchedule decodes the scorestrip document into raw games matching the
// criterion, sorted by ascending eventId with meridiems inferred.
func parseSchedule(data []byte, criterion domain.Criterion, now func() time.Time) ([]rawGame, error) {
	var doc scheduleDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &feed.ParseError{Resource: metrics.ResourceSchedule, Err: err}
	}

	var games []rawGame
	for _, g := range doc.Week.Games {
		if !selectGame(g, criterion, now) {
			continue
		}
		games = append(games, rawGame{
			eventID:    g.EventID,
			gameKey:    g.GSIS,
			weekday:    g.Day,
			day:        eventDay(g.EventID),
			startTime:  g.Time,
			seasonType: g.GameType,
			week:       weekLabel(g.GameType, doc.Week.Week),
			homeTeam:   g.Home,
			awayTeam:   g.Away,
		})
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].eventID < games[j].eventID
	})
	inferMeridiem(games)
	return games, nil
}

// selectGame applies the schedule-level criterion. Final-state sentinels
// include everything here; that split happens downstream once details are
// merged. Day sentinels compare the eventId's day-of-month against the
// reference clock, not the caller's local day.
func selectGame(g scheduleGame, criterion domain.Criterion, now func() time.Time) bool {
	switch criterion {
	case domain.CriterionAll, domain.CriterionInProgress,
		domain.CriterionNotFinal, domain.CriterionFinal:
		return true
	case domain.CriterionToday:
		return eventDay(g.EventID) == timeutil.ReferenceDay(now, 0)
	case domain.CriterionTomorrow:
		return eventDay(g.EventID) == timeutil.ReferenceDay(now, 1)
	case domain.CriterionYesterday:
		return eventDay(g.EventID) == timeutil.ReferenceDay(now, -1)
	default:
		return g.Home == string(criterion) || g.Away == string(criterion)
	}
}

// eventDay extracts the day-of-month from a YYYYMMDDNN eventId.
func eventDay(eventID string) int {
	if len(eventID) < 8 {
		return 0
	}
	day, err := strconv.Atoi(eventID[6:8])
	if err != nil {
		return 0
	}
	return day
}

// weekLabel builds the display label for regular-season weeks. Pre- and
// postseason week numbers are internal bookkeeping and are not displayed.
func weekLabel(seasonType, week string) string {
	if seasonType != seasonTypeRegular || week == "" {
		return ""
	}
	return "Week " + week
}

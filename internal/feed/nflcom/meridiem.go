package nflcom

import (
	"strconv"
	"strings"
)

const (
	meridiemAM = "AM"
	meridiemPM = "PM"
)

// inferMeridiem reconstructs the AM/PM designation the schedule feed omits.
// The input must be sorted by ascending eventId.
//
// First every game with a clock hour of 1 through 8 is marked PM outright: a
// 12-hour reading below 9 cannot be a morning kickoff. Hours 9 through 12
// may be international morning games, so they are resolved from same-weekday
// peers, visiting each unmarked game once in eventId order:
//
//  1. a following AM peer makes this one AM (the slate is chronological, so
//     nothing before an AM game can be PM);
//  2. a preceding PM peer makes this one PM;
//  3. a following peer with a numerically smaller hour implies the clock
//     wrapped after this game, so this one is AM;
//  4. a preceding peer with a numerically larger hour implies the wrap
//     already happened, so this one is PM.
//
// Anything still unresolved defaults to PM, except Saturday/Sunday games
// outside the postseason, which stay unresolved. The pass runs exactly once;
// each game sees only the marks present when it is visited.
func inferMeridiem(games []rawGame) {
	for i := range games {
		if h := startHour(games[i].startTime); h >= 1 && h <= 8 {
			games[i].meridiem = meridiemPM
		}
	}

	for i := range games {
		if games[i].meridiem != "" {
			continue
		}
		games[i].meridiem = resolveFromPeers(games, i)
	}
}

func resolveFromPeers(games []rawGame, i int) string {
	hour := startHour(games[i].startTime)
	weekday := games[i].weekday

	var precedingPM, followingAM bool
	var precedingLarger, followingSmaller bool
	for j := range games {
		if j == i || games[j].weekday != weekday {
			continue
		}
		peerHour := startHour(games[j].startTime)
		if j < i {
			if games[j].meridiem == meridiemPM {
				precedingPM = true
			}
			if peerHour > hour {
				precedingLarger = true
			}
		} else {
			if games[j].meridiem == meridiemAM {
				followingAM = true
			}
			if peerHour < hour {
				followingSmaller = true
			}
		}
	}

	switch {
	case followingAM:
		return meridiemAM
	case precedingPM:
		return meridiemPM
	case followingSmaller:
		return meridiemAM
	case precedingLarger:
		return meridiemPM
	}

	if games[i].seasonType == seasonTypePost {
		return meridiemPM
	}
	if weekday == "Sat" || weekday == "Sun" {
		return ""
	}
	return meridiemPM
}

func startHour(startTime string) int {
	head, _, found := strings.Cut(startTime, ":")
	if !found {
		return 0
	}
	hour, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return hour
}

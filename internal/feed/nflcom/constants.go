package nflcom

import "time"

const sourceName = "nflcom"

const (
	defaultScoreboardURL = "https://static.nfl.com/liveupdate/scorestrip/ss.xml"
	defaultGameCenterURL = "https://www.nfl.com/liveupdate/game-center"

	// Upstream must not block the engine; a slow answer is a failed fetch.
	defaultFetchTimeout = 2 * time.Second

	defaultDetailWorkers = 4

	// Upstream rejects default-agent requests.
	defaultUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:45.0) Gecko/20100101 Firefox/45.0"
)

const (
	seasonTypeRegular = "REG"
	seasonTypePost    = "POST"
)

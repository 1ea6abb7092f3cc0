package config

import "time"

// NFLComConfig controls how we talk to the NFL.com scoreboard feed. Empty
// URL and user-agent values fall back to the client's production defaults.
type NFLComConfig struct {
	ScoreboardURL string
	GameCenterURL string
	FetchTimeout  time.Duration
	DetailWorkers int
	UserAgent     string
}

func loadNFLCom() NFLComConfig {
	return NFLComConfig{
		ScoreboardURL: envOrDefault(envScoreboardURL, ""),
		GameCenterURL: envOrDefault(envGameCenterURL, ""),
		FetchTimeout:  durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		DetailWorkers: intEnvOrDefault(envDetailWorkers, defaultDetailWorkers),
		UserAgent:     envOrDefault(envUserAgent, ""),
	}
}

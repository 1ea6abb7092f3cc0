package config

import "time"

const (
	envPort          = "PORT"
	envFeed          = "FEED"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envScoreboardURL = "NFL_SCOREBOARD_URL"
	envGameCenterURL = "NFL_GAME_CENTER_URL"
	envFetchTimeout  = "NFL_FETCH_TIMEOUT"
	envDetailWorkers = "NFL_DETAIL_WORKERS"
	envUserAgent     = "NFL_USER_AGENT"

	defaultPort        = "4000"
	defaultFeed        = "nflcom"
	defaultMetricsPort = "9090"
	// Upstream fetches slower than this degrade or fail the query.
	defaultFetchTimeout  = 2 * Duration(time.Second)
	defaultDetailWorkers = 4
)

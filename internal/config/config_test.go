package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Feed != defaultFeed {
		t.Fatalf("expected default feed %s, got %s", defaultFeed, cfg.Feed)
	}
	if cfg.NFLCom.ScoreboardURL != "" {
		t.Fatalf("expected empty scoreboard url by default, got %s", cfg.NFLCom.ScoreboardURL)
	}
	if cfg.NFLCom.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("expected default fetch timeout %s, got %s", defaultFetchTimeout, cfg.NFLCom.FetchTimeout)
	}
	if cfg.NFLCom.DetailWorkers != defaultDetailWorkers {
		t.Fatalf("expected default detail workers %d, got %d", defaultDetailWorkers, cfg.NFLCom.DetailWorkers)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled by default")
	}
	if cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("expected default metrics port %s, got %s", defaultMetricsPort, cfg.Metrics.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envFeed, "fixture")
	t.Setenv(envScoreboardURL, "http://example.com/ss.xml")
	t.Setenv(envGameCenterURL, "http://example.com/game-center")
	t.Setenv(envFetchTimeout, "5s")
	t.Setenv(envDetailWorkers, "8")
	t.Setenv(envUserAgent, "scores-agent/1.0")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Feed != "fixture" {
		t.Fatalf("expected feed fixture, got %s", cfg.Feed)
	}
	if cfg.NFLCom.ScoreboardURL != "http://example.com/ss.xml" {
		t.Fatalf("expected scoreboard url override, got %s", cfg.NFLCom.ScoreboardURL)
	}
	if cfg.NFLCom.GameCenterURL != "http://example.com/game-center" {
		t.Fatalf("expected game center url override, got %s", cfg.NFLCom.GameCenterURL)
	}
	if cfg.NFLCom.FetchTimeout != 5*time.Second {
		t.Fatalf("expected fetch timeout 5s, got %s", cfg.NFLCom.FetchTimeout)
	}
	if cfg.NFLCom.DetailWorkers != 8 {
		t.Fatalf("expected 8 detail workers, got %d", cfg.NFLCom.DetailWorkers)
	}
	if cfg.NFLCom.UserAgent != "scores-agent/1.0" {
		t.Fatalf("expected user agent override, got %s", cfg.NFLCom.UserAgent)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv(envFetchTimeout, "not-a-duration")
	t.Setenv(envDetailWorkers, "-3")

	cfg := Load()

	if cfg.NFLCom.FetchTimeout != defaultFetchTimeout {
		t.Fatalf("expected default fetch timeout on invalid value, got %s", cfg.NFLCom.FetchTimeout)
	}
	if cfg.NFLCom.DetailWorkers != defaultDetailWorkers {
		t.Fatalf("expected default detail workers on invalid value, got %d", cfg.NFLCom.DetailWorkers)
	}
}

package nflcom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"nfl-scores-service/internal/domain"
	"nfl-scores-service/internal/feed"
	"nfl-scores-service/internal/metrics"
	"nfl-scores-service/internal/testutil"
)

const clientScheduleXML = `<ss><gms y="2024" w="2" t="R">
	<g eid="2024091500" gsis="1" d="Sun" t="1:00" h="NE" v="SEA" gt="REG"/>
	<g eid="2024091501" gsis="2" d="Sun" t="4:25" h="KC" v="CIN" gt="REG"/>
</gms></ss>`

const neDetailJSON = `{"2024091500": {
	"home": {"abbr": "NE", "score": {"T": 20}, "stats": {"team": {"totfd": 18, "totyds": 340, "pyds": 250, "ryds": 90, "pen": 6, "penyds": 45, "trnovr": 1, "pt": 3, "ptyds": 135, "ptavg": 45.0, "top": "31:12"}}},
	"away": {"abbr": "SEA", "score": {"T": 24}, "stats": {"team": {"totfd": 22, "totyds": 410, "pyds": 300, "ryds": 110, "pen": 4, "penyds": 30, "trnovr": 0, "pt": 2, "ptyds": 88, "ptavg": 44.0, "top": "28:48"}}},
	"clock": "02:33",
	"qtr": 4,
	"redzone": false,
	"posteam": "NE",
	"yl": "SEA 18",
	"down": 2,
	"togo": 5,
	"drives": {"crntdrv": 3, "3": {"plays": {"55": {"desc": "pass short left"}}}}
}}`

func newTestClient(t *testing.T, rt roundTripperFunc, rec *metrics.Recorder) *Client {
	t.Helper()
	return NewClient(Config{
		ScoreboardURL: "http://example.com/ss.xml",
		GameCenterURL: "http://example.com/game-center",
		HTTPClient:    &http.Client{Transport: rt},
		Metrics:       rec,
	})
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}, nil
}

func TestFetchGamesMergesScheduleAndDetails(t *testing.T) {
	rec := metrics.NewRecorder()
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		switch {
		case strings.HasSuffix(req.URL.Path, "ss.xml"):
			return respond(http.StatusOK, clientScheduleXML)
		case req.URL.Path == "/game-center/2024091500/2024091500_gtd.json":
			return respond(http.StatusOK, neDetailJSON)
		case req.URL.Path == "/game-center/2024091501/2024091501_gtd.json":
			// Detail not published yet; the game degrades, the batch survives.
			return respond(http.StatusNotFound, "not found")
		default:
			return respond(http.StatusNotFound, fmt.Sprintf("unexpected path %s", req.URL.Path))
		}
	})

	client := newTestClient(t, rt, rec)
	games, err := client.FetchGames(context.Background(), domain.CriterionAll, "")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	live := games[0]
	if live.HomeTeam != "NE" || *live.HomeScore != 20 || *live.AwayScore != 24 {
		t.Fatalf("unexpected merged game: %+v", live)
	}
	if live.Clock == nil || *live.Clock != "02:33" || live.Period != domain.PeriodQ4 {
		t.Fatalf("unexpected live state: %+v", live)
	}
	if live.LastPlay != "pass short left" {
		t.Fatalf("expected last play, got %q", live.LastPlay)
	}

	degraded := games[1]
	if degraded.Started() || degraded.HomeScore != nil {
		t.Fatalf("degraded game must be schedule-only: %+v", degraded)
	}
	if degraded.StartingTime != "Sun 4:25 PM" {
		t.Fatalf("unexpected starting time %q", degraded.StartingTime)
	}
	if rec.DetailFailures() != 1 {
		t.Fatalf("expected 1 detail failure recorded, got %d", rec.DetailFailures())
	}
}

func TestFetchGamesLogsSource(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "ss.xml") {
			return respond(http.StatusOK, clientScheduleXML)
		}
		return respond(http.StatusNotFound, "not found")
	})

	client := NewClient(Config{
		ScoreboardURL: "http://example.com/ss.xml",
		GameCenterURL: "http://example.com/game-center",
		HTTPClient:    &http.Client{Transport: rt},
		Logger:        logger,
	})
	if _, err := client.FetchGames(context.Background(), domain.CriterionAll, ""); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !strings.Contains(buf.String(), "source=nflcom") {
		t.Fatalf("expected source field in logs, got %q", buf.String())
	}
}

func TestFetchGamesScheduleFailurePropagates(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusInternalServerError, "down")
	})

	client := newTestClient(t, rt, nil)
	_, err := client.FetchGames(context.Background(), domain.CriterionAll, "")
	if _, ok := feed.AsFetchError(err); !ok {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestFetchGamesScheduleParseFailurePropagates(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, "<ss><gms")
	})

	client := newTestClient(t, rt, nil)
	_, err := client.FetchGames(context.Background(), domain.CriterionAll, "")
	if _, ok := feed.AsParseError(err); !ok {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestFetchGamesUnknownQuarterMarkerDegrades(t *testing.T) {
	rec := metrics.NewRecorder()
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "ss.xml") {
			return respond(http.StatusOK, `<ss><gms y="2024" w="2" t="R">
				<g eid="2024091500" gsis="1" d="Sun" t="1:00" h="NE" v="SEA" gt="REG"/>
			</gms></ss>`)
		}
		return respond(http.StatusOK, `{"2024091500": {"qtr": "Suspended"}}`)
	})

	client := newTestClient(t, rt, rec)
	games, err := client.FetchGames(context.Background(), domain.CriterionAll, "")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(games) != 1 || games[0].Started() {
		t.Fatalf("expected one schedule-only game, got %+v", games)
	}
	if rec.DetailFailures() != 1 {
		t.Fatalf("expected detail failure recorded, got %d", rec.DetailFailures())
	}
}

func TestFetchGamesEmptySelection(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, clientScheduleXML)
	})

	client := newTestClient(t, rt, nil)
	games, err := client.FetchGames(context.Background(), domain.Criterion("DAL"), "")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected empty selection, got %d games", len(games))
	}
}

func TestFetchTeamStatsReturnsMatchingSide(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "ss.xml") {
			return respond(http.StatusOK, clientScheduleXML)
		}
		return respond(http.StatusOK, neDetailJSON)
	})

	client := newTestClient(t, rt, nil)
	stats, err := client.FetchTeamStats(context.Background(), "SEA", "")
	if err != nil {
		t.Fatalf("fetch stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected 1 record, got %d", len(stats))
	}
	s := stats[0]
	if s.Team != "SEA" || s.Stats.FirstDowns != 22 || s.Stats.TimeOfPossession != "28:48" {
		t.Fatalf("expected away-side stats, got %+v", s)
	}
}

func TestFetchTeamStatsSurfacesNormalizationError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "ss.xml") {
			// Schedule says NE plays, the detail document disagrees.
			return respond(http.StatusOK, `<ss><gms y="2024" w="2" t="R">
				<g eid="2024091500" gsis="1" d="Sun" t="1:00" h="NE" v="SEA" gt="REG"/>
			</gms></ss>`)
		}
		return respond(http.StatusOK, `{"2024091500": {"home": {"abbr": "CLE"}, "away": {"abbr": "PIT"}, "qtr": 2}}`)
	})

	client := newTestClient(t, rt, nil)
	_, err := client.FetchTeamStats(context.Background(), "NE", "")
	if _, ok := feed.AsNormalizationError(err); !ok {
		t.Fatalf("expected NormalizationError, got %v", err)
	}
}

func TestFetchTeamStatsDegradesOnMissingDetail(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "ss.xml") {
			return respond(http.StatusOK, clientScheduleXML)
		}
		return respond(http.StatusNotFound, "not yet")
	})

	client := newTestClient(t, rt, metrics.NewRecorder())
	stats, err := client.FetchTeamStats(context.Background(), "NE", "")
	if err != nil {
		t.Fatalf("fetch stats: %v", err)
	}
	if len(stats) != 1 || stats[0].Started() {
		t.Fatalf("expected one pregame record, got %+v", stats)
	}
	if stats[0].Stats != (domain.TeamStats{}) {
		t.Fatalf("expected zero stats block, got %+v", stats[0].Stats)
	}
}

package scores

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nfl-scores-service/internal/domain"
	"nfl-scores-service/internal/format"
)

type stubSource struct {
	games []domain.Game
	stats []domain.TeamGameStats
	err   error

	lastCriterion domain.Criterion
	fetchCalls    int
}

func (s *stubSource) FetchGames(_ context.Context, criterion domain.Criterion, _ string) ([]domain.Game, error) {
	s.fetchCalls++
	s.lastCriterion = criterion
	return s.games, s.err
}

func (s *stubSource) FetchTeamStats(_ context.Context, team string, _ string) ([]domain.TeamGameStats, error) {
	return s.stats, s.err
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func testSlate() []domain.Game {
	return []domain.Game{
		{
			HomeTeam: "NE", AwayTeam: "SEA",
			HomeScore: intPtr(20), AwayScore: intPtr(24),
			Period: domain.PeriodQ4, Ended: true,
		},
		{
			HomeTeam: "KC", AwayTeam: "CIN",
			HomeScore: intPtr(17), AwayScore: intPtr(14),
			Clock: strPtr("08:12"), Period: domain.PeriodQ3,
		},
	}
}

func newTestService(src *stubSource) *Service {
	svc := NewService(src, format.NewFormatter(format.Plain{}), nil)
	svc.now = func() time.Time {
		return time.Date(2024, 9, 15, 20, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestScoreboardRendersSelection(t *testing.T) {
	src := &stubSource{games: testSlate()}
	svc := newTestService(src)

	resp, err := svc.Scoreboard(context.Background(), domain.Criterion("KC"), "")
	if err != nil {
		t.Fatalf("scoreboard: %v", err)
	}
	if len(resp.Replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(resp.Replies))
	}
	if !strings.Contains(resp.Replies[0], "KC 17") || strings.Contains(resp.Replies[0], "NE 20") {
		t.Fatalf("expected only the KC game, got %q", resp.Replies[0])
	}
	if resp.Date != "20240915" {
		t.Fatalf("expected reference-clock date, got %q", resp.Date)
	}
}

func TestScoreboardEmptySelection(t *testing.T) {
	src := &stubSource{}
	svc := newTestService(src)

	resp, err := svc.Scoreboard(context.Background(), domain.Criterion("DAL"), "")
	if err != nil {
		t.Fatalf("scoreboard: %v", err)
	}
	if len(resp.Replies) != 1 || resp.Replies[0] != format.NoGamesFound {
		t.Fatalf("expected the no-games reply, got %+v", resp.Replies)
	}
}

func TestScoreboardPropagatesFetchFailure(t *testing.T) {
	src := &stubSource{err: errors.New("upstream down")}
	svc := newTestService(src)

	if _, err := svc.Scoreboard(context.Background(), domain.CriterionAll, ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestScoreboardSplitFetchesOnce(t *testing.T) {
	src := &stubSource{games: testSlate()}
	svc := newTestService(src)

	resp, err := svc.ScoreboardSplit(context.Background(), "")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if src.fetchCalls != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", src.fetchCalls)
	}
	if len(resp.Replies) != 2 {
		t.Fatalf("expected both halves, got %+v", resp.Replies)
	}
	if !strings.Contains(resp.Replies[0], "KC 17") || strings.Contains(resp.Replies[0], "F") {
		t.Fatalf("first reply must hold the not-final half, got %q", resp.Replies[0])
	}
	if !strings.HasSuffix(resp.Replies[1], "F") {
		t.Fatalf("second reply must hold the finals, got %q", resp.Replies[1])
	}
}

func TestScoreboardSplitSkipsEmptyHalf(t *testing.T) {
	slate := testSlate()
	src := &stubSource{games: slate[:1]} // finals only
	svc := newTestService(src)

	resp, err := svc.ScoreboardSplit(context.Background(), "")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(resp.Replies) != 1 || !strings.HasSuffix(resp.Replies[0], "F") {
		t.Fatalf("expected the finals reply only, got %+v", resp.Replies)
	}
}

func TestScoreboardSplitBothHalvesEmpty(t *testing.T) {
	src := &stubSource{}
	svc := newTestService(src)

	resp, err := svc.ScoreboardSplit(context.Background(), "")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(resp.Replies) != 1 || resp.Replies[0] != format.NoGamesFound {
		t.Fatalf("expected the no-games reply, got %+v", resp.Replies)
	}
}

func TestTeamStats(t *testing.T) {
	src := &stubSource{stats: []domain.TeamGameStats{
		{
			Game: testSlate()[0],
			Team: "NE",
			Stats: domain.TeamStats{
				FirstDowns: 18, TotalYards: 340, TimeOfPossession: "31:12",
			},
		},
	}}
	svc := newTestService(src)

	resp, err := svc.TeamStats(context.Background(), "NE", "")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(resp.Replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(resp.Replies))
	}
	if !strings.HasPrefix(resp.Replies[0], "NE Game Stats: ") {
		t.Fatalf("expected stats header, got %q", resp.Replies[0])
	}
}

func TestTeamStatsSurfacesError(t *testing.T) {
	src := &stubSource{err: errors.New("neither side matches")}
	svc := newTestService(src)

	if _, err := svc.TeamStats(context.Background(), "NE", ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestExplicitDateEchoedBack(t *testing.T) {
	src := &stubSource{games: testSlate()}
	svc := newTestService(src)

	resp, err := svc.Scoreboard(context.Background(), domain.CriterionAll, "20141004")
	if err != nil {
		t.Fatalf("scoreboard: %v", err)
	}
	if resp.Date != "20141004" {
		t.Fatalf("expected requested date echoed, got %q", resp.Date)
	}
}

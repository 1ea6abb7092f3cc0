package nflcom

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"nfl-scores-service/internal/feed"
	"nfl-scores-service/internal/logging"
	"nfl-scores-service/internal/metrics"
)

// detailResult pairs a schedule entry with its detail document or the error
// that kept the detail from being attached. A non-nil err degrades only this
// game; the batch carries on.
type detailResult struct {
	game   rawGame
	detail *gameDetail
	err    error
}

// attachDetails fans the per-game detail fetches out over a bounded worker
// pool and fans the results back in, preserving schedule order.
func (c *Client) attachDetails(ctx context.Context, games []rawGame, useCache bool) []detailResult {
	results := make([]detailResult, len(games))

	pool, err := ants.NewPool(c.detailWorkers)
	if err != nil {
		logging.Warn(c.logger, "detail pool unavailable, fetching sequentially", "error", err)
		for i := range games {
			results[i] = c.fetchDetail(ctx, games[i], useCache)
		}
		return results
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range games {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = c.fetchDetail(ctx, games[i], useCache)
		}
		if err := pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return results
}

// fetchDetail retrieves and decodes one game-center document. The document
// is keyed by eventId at the top level; a missing key is a parse failure.
func (c *Client) fetchDetail(ctx context.Context, game rawGame, useCache bool) detailResult {
	url := fmt.Sprintf("%s/%s/%s_gtd.json", c.gameCenterURL, game.eventID, game.eventID)

	body, err := c.fetcher.Fetch(ctx, url, useCache, metrics.ResourceDetail)
	if err != nil {
		return detailResult{game: game, err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return detailResult{game: game, err: &feed.ParseError{Resource: metrics.ResourceDetail, Err: err}}
	}
	raw, ok := doc[game.eventID]
	if !ok {
		return detailResult{game: game, err: &feed.ParseError{
			Resource: metrics.ResourceDetail,
			Err:      fmt.Errorf("document missing event %s", game.eventID),
		}}
	}

	var detail gameDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return detailResult{game: game, err: &feed.ParseError{Resource: metrics.ResourceDetail, Err: err}}
	}
	return detailResult{game: game, detail: &detail}
}

package nflcom

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"nfl-scores-service/internal/feed"
	"nfl-scores-service/internal/logging"
	"nfl-scores-service/internal/metrics"
)

const headerLastModified = "Last-Modified"

// fetcher performs upstream HTTP fetches, layering the conditional cache
// over exactly one URL. The slot is pinned at construction to the
// today-schedule URL; per-game detail fetches share the transport but never
// consult or update the slot, so a detail response can never evict the
// schedule body the 304 path depends on.
type fetcher struct {
	client    httpDoer
	cache     *CacheSlot
	cacheURL  string
	userAgent string
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

func newFetcher(client httpDoer, cacheURL, userAgent string, logger *slog.Logger, rec *metrics.Recorder) *fetcher {
	return &fetcher{
		client:    client,
		cache:     NewCacheSlot(),
		cacheURL:  cacheURL,
		userAgent: userAgent,
		logger:    logger,
		metrics:   rec,
	}
}

// Fetch retrieves url and returns the response body. When useCache is set
// and url is the pinned cache URL, the request carries If-Modified-Since and
// a 304 answer is served from the slot.
func (f *fetcher) Fetch(ctx context.Context, url string, useCache bool, resource string) ([]byte, error) {
	conditional := useCache && url == f.cacheURL

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &feed.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	if conditional {
		if validator, ok := f.cache.LastModified(url); ok {
			req.Header.Set("If-Modified-Since", validator)
		}
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		f.metrics.RecordFetch(resource, elapsed, err)
		return nil, &feed.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			f.metrics.RecordFetch(resource, elapsed, readErr)
			return nil, &feed.FetchError{URL: url, Err: readErr}
		}
		if conditional {
			f.cache.Store(url, resp.Header.Get(headerLastModified), body)
		}
		f.metrics.RecordFetch(resource, elapsed, nil)
		return body, nil

	case http.StatusNotModified:
		if conditional {
			if body, ok := f.cache.Body(url); ok {
				f.metrics.RecordCacheHit(resource)
				f.metrics.RecordFetch(resource, elapsed, nil)
				logging.Info(f.logger, "serving cached body",
					logging.FieldResource, resource,
					logging.FieldURL, url,
				)
				return body, nil
			}
		}
		// 304 without a conditional request, or with an empty slot, is an
		// upstream contract violation.
		err := fmt.Errorf("unexpected 304 with no cached body")
		f.metrics.RecordFetch(resource, elapsed, err)
		return nil, &feed.FetchError{URL: url, StatusCode: resp.StatusCode, Err: err}

	default:
		err := fmt.Errorf("unexpected status")
		f.metrics.RecordFetch(resource, elapsed, err)
		return nil, &feed.FetchError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}
}

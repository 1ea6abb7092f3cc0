package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	fetches          int
	errors           int
	cacheHits        int
	detailFailures   int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about feed fetches.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*fetchStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*fetchStats),
		otel:  otel,
	}
}

// RecordFetch increments counters for an upstream fetch and stores the last
// observed latency. The resource is one of ResourceSchedule/ResourceDetail.
func (r *Recorder) RecordFetch(resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(resource, func(stats *fetchStats) {
		stats.fetches++
		stats.lastFetchLatency = duration
		if err != nil {
			stats.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordFetch(resource, duration, err)
	}
}

// RecordCacheHit tracks a conditional fetch answered from the cache slot.
func (r *Recorder) RecordCacheHit(resource string) {
	if r == nil {
		return
	}

	r.update(resource, func(stats *fetchStats) {
		stats.cacheHits++
	})
	if r.otel != nil {
		r.otel.recordCacheHit(resource)
	}
}

// RecordDetailFailure tracks a per-game detail document that could not be
// attached (fetch, parse, or merge failure).
func (r *Recorder) RecordDetailFailure() {
	if r == nil {
		return
	}

	r.update(ResourceDetail, func(stats *fetchStats) {
		stats.detailFailures++
	})
	if r.otel != nil {
		r.otel.recordDetailFailure()
	}
}

// FetchCalls returns the total fetches recorded for a resource.
func (r *Recorder) FetchCalls(resource string) int {
	return r.Snapshot(resource).Fetches
}

// FetchErrors returns the total failed fetches recorded for a resource.
func (r *Recorder) FetchErrors(resource string) int {
	return r.Snapshot(resource).Errors
}

// CacheHits returns the number of 304 cache hits seen for a resource.
func (r *Recorder) CacheHits(resource string) int {
	return r.Snapshot(resource).CacheHits
}

// DetailFailures returns the number of games that lost their detail document.
func (r *Recorder) DetailFailures() int {
	return r.Snapshot(ResourceDetail).DetailFailures
}

// LastFetchLatency returns the last recorded latency for a resource fetch.
func (r *Recorder) LastFetchLatency(resource string) time.Duration {
	return r.Snapshot(resource).LastFetchLatency
}

// Snapshot is a copy of the current stats for one resource.
type Snapshot struct {
	Fetches          int
	Errors           int
	CacheHits        int
	DetailFailures   int
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(resource string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(resource)
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		CacheHits:        stats.cacheHits,
		DetailFailures:   stats.detailFailures,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// update runs fn on the resource's stats while holding the mutex; all field
// writes happen inside the locked section.
func (r *Recorder) update(resource string, fn func(*fetchStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[resource]
	if !ok {
		stats = &fetchStats{}
		r.stats[resource] = stats
	}
	fn(stats)
}

func (r *Recorder) snapshot(resource string) fetchStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[resource]; ok && stats != nil {
		return *stats
	}
	return fetchStats{}
}

package nflcom

import "sync"

// CacheSlot is the single-entry conditional-fetch cache. It holds the body
// and Last-Modified validator of the most recent 200 response for one URL
// (the today-schedule URL), lives for the process lifetime, and is never
// expired — only overwritten in place by the next 200 response.
//
// Concurrent schedule refreshes share the slot, so every read and the
// read-modify-write on a 200 response goes through the mutex.
type CacheSlot struct {
	mu           sync.Mutex
	url          string
	lastModified string
	body         []byte
}

// NewCacheSlot constructs an empty slot.
func NewCacheSlot() *CacheSlot {
	return &CacheSlot{}
}

// LastModified returns the stored validator when the slot holds data for url.
func (c *CacheSlot) LastModified(url string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.url != url || c.lastModified == "" {
		return "", false
	}
	return c.lastModified, true
}

// Body returns a copy of the cached bytes when the slot holds data for url.
func (c *CacheSlot) Body(url string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.url != url || c.body == nil {
		return nil, false
	}
	out := make([]byte, len(c.body))
	copy(out, c.body)
	return out, true
}

// Store overwrites the slot with the latest 200 response for url.
func (c *CacheSlot) Store(url, lastModified string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.url = url
	c.lastModified = lastModified
	c.body = make([]byte, len(body))
	copy(c.body, body)
}

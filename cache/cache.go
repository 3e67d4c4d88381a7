package cache

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type entry struct {
	body        []byte
	contentType string
	expiresAt   time.Time
}

// PageCache stores rendered page fragments for a bounded interval.
// It is injected into the handlers that want full-page caching rather
// than accessed as ambient global state.
type PageCache struct {
	TTL     time.Duration
	entries cmap.ConcurrentMap[string, entry]
}

func New(ttl time.Duration) *PageCache {
	return &PageCache{
		TTL:     ttl,
		entries: cmap.New[entry](),
	}
}

func (pc *PageCache) Get(key string) (body []byte, contentType string, ok bool) {
	e, ok := pc.entries.Get(key)
	if !ok {
		return nil, "", false
	}
	if time.Now().After(e.expiresAt) {
		pc.entries.Remove(key)
		return nil, "", false
	}
	return e.body, e.contentType, true
}

func (pc *PageCache) Set(key string, body []byte, contentType string, ttl time.Duration) {
	pc.entries.Set(key, entry{
		body:        body,
		contentType: contentType,
		expiresAt:   time.Now().Add(ttl),
	})
}

// Clear drops every cached page. The next request re-renders from the
// store, so the result reflects all committed writes.
func (pc *PageCache) Clear() {
	pc.entries.Clear()
}

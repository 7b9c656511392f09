package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Stats counts events. It implements every hook interface and is safe for
// concurrent use.
type Stats struct {
	builds       atomic.Int64
	buildErrors  atomic.Int64
	renders      atomic.Int64
	renderErrors atomic.Int64
	renderBytes  atomic.Int64
	requests     atomic.Int64

	mu       sync.Mutex
	hits     map[string]int64
	misses   map[string]int64
	statuses map[int]int64
}

// NewStats returns zeroed counters.
func NewStats() *Stats {
	return &Stats{
		hits:     map[string]int64{},
		misses:   map[string]int64{},
		statuses: map[int]int64{},
	}
}

// Snapshot is a point-in-time copy of [Stats].
type Snapshot struct {
	Builds       int64            `json:"builds"`
	BuildErrors  int64            `json:"buildErrors"`
	Renders      int64            `json:"renders"`
	RenderErrors int64            `json:"renderErrors"`
	RenderBytes  int64            `json:"renderBytes"`
	Requests     int64            `json:"requests"`
	CacheHits    map[string]int64 `json:"cacheHits"`
	CacheMisses  map[string]int64 `json:"cacheMisses"`
	Statuses     map[int]int64    `json:"statuses"`
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Builds:       s.builds.Load(),
		BuildErrors:  s.buildErrors.Load(),
		Renders:      s.renders.Load(),
		RenderErrors: s.renderErrors.Load(),
		RenderBytes:  s.renderBytes.Load(),
		Requests:     s.requests.Load(),
		CacheHits:    copyMap(s.hits),
		CacheMisses:  copyMap(s.misses),
		Statuses:     copyMap(s.statuses),
	}
}

func (s *Stats) OnBuildStart(context.Context, string) {}

func (s *Stats) OnBuildComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	s.builds.Add(1)
	if err != nil {
		s.buildErrors.Add(1)
	}
}

func (s *Stats) OnRenderStart(context.Context, string, string) {}

func (s *Stats) OnRenderComplete(_ context.Context, _, _ string, size int, _ time.Duration, err error) {
	s.renders.Add(1)
	if err != nil {
		s.renderErrors.Add(1)
		return
	}
	s.renderBytes.Add(int64(size))
}

func (s *Stats) OnCacheHit(_ context.Context, keyType string) {
	s.mu.Lock()
	s.hits[keyType]++
	s.mu.Unlock()
}

func (s *Stats) OnCacheMiss(_ context.Context, keyType string) {
	s.mu.Lock()
	s.misses[keyType]++
	s.mu.Unlock()
}

func (s *Stats) OnCacheSet(context.Context, string, int) {}

func (s *Stats) OnRequest(context.Context, string, string) {
	s.requests.Add(1)
}

func (s *Stats) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	s.mu.Lock()
	s.statuses[status]++
	s.mu.Unlock()
}

func copyMap[K comparable](m map[K]int64) map[K]int64 {
	out := make(map[K]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var (
	_ PipelineHooks = (*Stats)(nil)
	_ CacheHooks    = (*Stats)(nil)
	_ ServerHooks   = (*Stats)(nil)
)

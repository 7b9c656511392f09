// Package observability lets a host process watch chart rendering without
// the library depending on a metrics backend.
//
// Hooks are registered once at startup and called by the pipeline, the
// cache layer and the HTTP server:
//
//	func main() {
//	    stats := observability.NewStats()
//	    observability.SetPipelineHooks(stats)
//	    observability.SetCacheHooks(stats)
//	    // ... run
//	}
//
// Libraries emit events through the accessors:
//
//	observability.Pipeline().OnBuildStart(ctx, chartID)
//	// ... build the plot ...
//	observability.Pipeline().OnBuildComplete(ctx, chartID, plugins, time.Since(start), err)
//
// Defaults are no-ops. [Stats] counts events for the server's stats
// endpoint and [LogHooks] writes them to a charmbracelet logger.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives chart build and render events.
type PipelineHooks interface {
	OnBuildStart(ctx context.Context, chartID string)
	// OnBuildComplete reports the number of client plugins the plot needs.
	OnBuildComplete(ctx context.Context, chartID string, plugins int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, chartID, format string)
	OnRenderComplete(ctx context.Context, chartID, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives cache lookups. keyType is the key family, "script"
// or "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// ServerHooks receives HTTP requests handled by the server. OnRequest sees
// the raw path since routing has not happened yet; OnResponse sees the
// matched route pattern.
type ServerHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, route string, status int, duration time.Duration)
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBuildStart(context.Context, string) {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, string) {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	serverHooks   ServerHooks   = NoopServerHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers h; nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers h; nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers h; nil is ignored.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}

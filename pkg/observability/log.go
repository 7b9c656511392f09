package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes pipeline and cache events to a logger at debug level,
// and failures at warn.
type LogHooks struct {
	Logger *log.Logger
}

func (h LogHooks) logger() *log.Logger {
	if h.Logger == nil {
		return log.Default()
	}
	return h.Logger
}

func (h LogHooks) OnBuildStart(_ context.Context, chartID string) {
	h.logger().Debug("building chart", "chart", chartID)
}

func (h LogHooks) OnBuildComplete(_ context.Context, chartID string, plugins int, d time.Duration, err error) {
	if err != nil {
		h.logger().Warn("build failed", "chart", chartID, "err", err)
		return
	}
	h.logger().Debug("built chart", "chart", chartID, "plugins", plugins, "duration", d)
}

func (h LogHooks) OnRenderStart(_ context.Context, chartID, format string) {
	h.logger().Debug("rendering", "chart", chartID, "format", format)
}

func (h LogHooks) OnRenderComplete(_ context.Context, chartID, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger().Warn("render failed", "chart", chartID, "format", format, "err", err)
		return
	}
	h.logger().Debug("rendered", "chart", chartID, "format", format, "bytes", size, "duration", d)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger().Debug("cache hit", "type", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger().Debug("cache miss", "type", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger().Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ PipelineHooks = LogHooks{}
	_ CacheHooks    = LogHooks{}
)

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartscript/pkg/cache"
	"github.com/matzehuels/chartscript/pkg/observability"
)

// Runner executes the pipeline with caching. It holds no per-run state,
// so one Runner may serve concurrent runs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner over c. A nil cache disables caching, a nil
// keyer means [cache.DefaultKeyer] and a nil logger means log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs both stages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	buildStart := time.Now()
	script, defHash, hit, err := r.scriptWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Script = script
	result.DefinitionHash = defHash
	result.Stats.BuildTime = time.Since(buildStart)
	result.CacheInfo.ScriptHit = hit

	opts.Logger.Info("built chart",
		"chart", script.ChartID,
		"plugins", len(script.Plugins),
		"cached", hit,
		"duration", result.Stats.BuildTime)

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, script, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ScriptWithCacheInfo runs the script stage and reports whether the
// script came from cache.
func (r *Runner) ScriptWithCacheInfo(ctx context.Context, opts Options) (Script, bool, error) {
	r.applyLogger(&opts)
	s, _, hit, err := r.scriptWithCacheInfo(ctx, opts)
	return s, hit, err
}

func (r *Runner) scriptWithCacheInfo(ctx context.Context, opts Options) (Script, string, bool, error) {
	if err := opts.ValidateForScript(); err != nil {
		return Script{}, "", false, err
	}
	def := opts.Definition
	defHash, err := cache.HashValue(def)
	if err != nil {
		return Script{}, "", false, fmt.Errorf("hash definition: %w", err)
	}
	key := r.Keyer.ScriptKey(defHash, opts.ScriptKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err != nil {
			opts.Logger.Warn("cache read failed", "err", err)
		} else if hit {
			var s Script
			if err := json.Unmarshal(data, &s); err == nil {
				observability.Cache().OnCacheHit(ctx, "script")
				return s, defHash, true, nil
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "script")

	observability.Pipeline().OnBuildStart(ctx, def.ID)
	start := time.Now()
	s, err := BuildScript(def, opts)
	observability.Pipeline().OnBuildComplete(ctx, def.ID, len(s.Plugins), time.Since(start), err)
	if err != nil {
		return Script{}, "", false, err
	}

	if data, err := json.Marshal(s); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLScript); err != nil {
			opts.Logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "script", len(data))
		}
	}
	return s, defHash, false, nil
}

// RenderWithCacheInfo derives the requested formats from s, reading each
// from cache first. The bool reports whether every format was a hit.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s Script, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	scriptData, err := json.Marshal(s)
	if err != nil {
		return nil, false, fmt.Errorf("serialize script for cache key: %w", err)
	}
	scriptHash := cache.Hash(scriptData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(scriptHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		allHit = false

		observability.Pipeline().OnRenderStart(ctx, s.ChartID, format)
		start := time.Now()
		data, err := RenderFormat(ctx, s, format, opts)
		observability.Pipeline().OnRenderComplete(ctx, s.ChartID, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return artifacts, allHit, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnBuildStart(ctx, "sales")
	p.OnBuildComplete(ctx, "sales", 3, time.Millisecond, nil)
	p.OnRenderStart(ctx, "sales", "html")
	p.OnRenderComplete(ctx, "sales", "html", 1024, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "script")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "script", 128)

	s := NoopServerHooks{}
	s.OnRequest(ctx, "GET", "/charts/{id}")
	s.OnResponse(ctx, "GET", "/charts/{id}", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() default is not a no-op")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() default is not a no-op")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() default is not a no-op")
	}

	stats := NewStats()
	SetPipelineHooks(stats)
	SetCacheHooks(stats)
	SetServerHooks(stats)
	if Pipeline() != PipelineHooks(stats) || Cache() != CacheHooks(stats) || Server() != ServerHooks(stats) {
		t.Error("Set*Hooks did not register")
	}

	SetPipelineHooks(nil)
	if Pipeline() != PipelineHooks(stats) {
		t.Error("SetPipelineHooks(nil) replaced the hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() did not restore the no-op")
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := NewStats()

	s.OnBuildComplete(ctx, "a", 2, time.Millisecond, nil)
	s.OnBuildComplete(ctx, "b", 0, time.Millisecond, errors.New("bad"))
	s.OnRenderComplete(ctx, "a", "js", 100, time.Millisecond, nil)
	s.OnRenderComplete(ctx, "a", "html", 0, time.Millisecond, errors.New("bad"))
	s.OnCacheHit(ctx, "script")
	s.OnCacheHit(ctx, "script")
	s.OnCacheMiss(ctx, "artifact")
	s.OnRequest(ctx, "GET", "/healthz")
	s.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)

	snap := s.Snapshot()
	checks := []struct {
		name      string
		got, want int64
	}{
		{"Builds", snap.Builds, 2},
		{"BuildErrors", snap.BuildErrors, 1},
		{"Renders", snap.Renders, 2},
		{"RenderErrors", snap.RenderErrors, 1},
		{"RenderBytes", snap.RenderBytes, 100},
		{"Requests", snap.Requests, 1},
		{"CacheHits[script]", snap.CacheHits["script"], 2},
		{"CacheMisses[artifact]", snap.CacheMisses["artifact"], 1},
		{"Statuses[200]", snap.Statuses[200], 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	snap.CacheHits["script"] = 99
	if s.Snapshot().CacheHits["script"] != 2 {
		t.Error("Snapshot shares its maps with Stats")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := LogHooks{Logger: logger}
	ctx := context.Background()

	h.OnBuildComplete(ctx, "sales", 3, time.Millisecond, nil)
	h.OnRenderComplete(ctx, "sales", "html", 10, time.Millisecond, errors.New("boom"))
	h.OnCacheMiss(ctx, "script")

	out := buf.String()
	for _, want := range []string{"built chart", "chart=sales", "render failed", "boom", "cache miss"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

// Package cli implements the chartscript command-line interface.
//
// The commands build jqPlot scripts from chart definition files or from the
// chart store, serve them over HTTP, and manage the script cache. The CLI
// is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - render: Write the script, preview page or plugin graph of a chart
//   - plugins: List the jqPlot plugin scripts a chart needs
//   - graph: Write the plugin dependency graph as DOT or SVG
//   - dateformat: Convert a Java date pattern to jqPlot tokens
//   - charts: List, import, export and remove stored charts
//   - pick: Choose a stored chart interactively and render it
//   - serve: Run the HTTP API
//   - cache: Manage the script cache
//
// # Backends
//
// Stored charts live in a directory of TOML files unless --mongo (or
// CHARTSCRIPT_MONGO_URI) names a MongoDB server. Scripts are cached on disk
// unless --redis (or CHARTSCRIPT_REDIS_URL) names a Redis server.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with timestamps such as
// "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs an operation's completion with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered sales (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

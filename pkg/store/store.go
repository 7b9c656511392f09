// Package store persists chart definitions by id.
//
// [DirStore] keeps one TOML or JSON file per chart in a directory and backs
// the CLI. [MongoStore] keeps them in a MongoDB collection and backs the
// HTTP server. Both report a missing chart as NOT_FOUND and reject ids that
// fail [errors.ValidateChartID].
package store

import (
	"context"
	"time"

	"github.com/matzehuels/chartscript/pkg/chartdef"
)

// Summary describes a stored chart without its data.
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is a keyed collection of chart definitions.
type Store interface {
	// List returns every stored chart ordered by id.
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id string) (*chartdef.Definition, error)
	// Put inserts or replaces the chart with def.ID.
	Put(ctx context.Context, def *chartdef.Definition) error
	Delete(ctx context.Context, id string) error
	Close() error
}

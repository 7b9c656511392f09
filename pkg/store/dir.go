package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/chartscript/pkg/chartdef"
	"github.com/matzehuels/chartscript/pkg/errors"
	chartio "github.com/matzehuels/chartscript/pkg/io"
)

// DirStore keeps each chart in <dir>/<id>.toml or <dir>/<id>.json.
type DirStore struct {
	dir    string
	format chartio.Format
}

// NewDirStore opens dir, creating it if needed. New charts are written in
// format; existing files of either format are read.
func NewDirStore(dir string, format chartio.Format) (*DirStore, error) {
	if format == "" {
		format = chartio.FormatTOML
	}
	if format != chartio.FormatTOML && format != chartio.FormatJSON {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create %s", dir)
	}
	return &DirStore{dir: dir, format: format}, nil
}

func (s *DirStore) List(ctx context.Context) ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read %s", s.dir)
	}
	out := []Summary{}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() {
			continue
		}
		if _, err := chartio.FormatOf(e.Name()); err != nil {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		def, err := chartio.ImportDefinition(path)
		if err != nil {
			return nil, err
		}
		info, err := e.Info()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "stat %s", path)
		}
		id := def.ID
		if id == "" {
			id = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}
		out = append(out, Summary{ID: id, Title: def.Title, UpdatedAt: info.ModTime().UTC()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *DirStore) Get(_ context.Context, id string) (*chartdef.Definition, error) {
	path, err := s.find(id)
	if err != nil {
		return nil, err
	}
	def, err := chartio.ImportDefinition(path)
	if err != nil {
		return nil, err
	}
	if def.ID == "" {
		def.ID = id
	}
	return def, nil
}

// Put writes def in the store's format and removes a file of the other
// format for the same id.
func (s *DirStore) Put(_ context.Context, def *chartdef.Definition) error {
	if def == nil {
		return errors.NullArgument("definition")
	}
	if err := errors.ValidateChartID(def.ID); err != nil {
		return err
	}
	if err := chartio.ExportDefinition(def, s.path(def.ID, s.format)); err != nil {
		return err
	}
	other := chartio.FormatJSON
	if s.format == chartio.FormatJSON {
		other = chartio.FormatTOML
	}
	if err := os.Remove(s.path(def.ID, other)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStorage, err, "remove stale %s", def.ID)
	}
	return nil
}

func (s *DirStore) Delete(_ context.Context, id string) error {
	path, err := s.find(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "remove %s", path)
	}
	return nil
}

func (s *DirStore) Close() error { return nil }

// Dir returns the store root.
func (s *DirStore) Dir() string { return s.dir }

func (s *DirStore) find(id string) (string, error) {
	if err := errors.ValidateChartID(id); err != nil {
		return "", err
	}
	for _, f := range []chartio.Format{chartio.FormatTOML, chartio.FormatJSON} {
		p := s.path(id, f)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New(errors.ErrCodeNotFound, "chart %q not found", id)
}

func (s *DirStore) path(id string, f chartio.Format) string {
	return filepath.Join(s.dir, id+"."+string(f))
}

var _ Store = (*DirStore)(nil)

// Package server exposes stored charts and the render pipeline over HTTP.
//
// Routes:
//
//	GET    /healthz                   liveness
//	GET    /stats                     event counters, when configured
//	GET    /charts                    stored chart summaries
//	GET    /charts/{id}               chart definition as JSON
//	PUT    /charts/{id}               store a definition
//	DELETE /charts/{id}               remove a definition
//	GET    /charts/{id}/script.js     the $.jqplot call
//	GET    /charts/{id}/page          standalone preview page
//	GET    /charts/{id}/plugins       plugin file list
//	GET    /charts/{id}/graph         plugin graph, ?format=dot|svg
//	POST   /render                    run the pipeline on a posted definition
//
// Errors are JSON objects {"error": ..., "code": ...} with the status
// derived from the error code.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/chartscript/pkg/chartdef"
	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/observability"
	"github.com/matzehuels/chartscript/pkg/pipeline"
	"github.com/matzehuels/chartscript/pkg/store"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 4 << 20

// Config wires a [Server]. Store and Runner are required.
type Config struct {
	Store  store.Store
	Runner *pipeline.Runner
	Logger *log.Logger
	// Stats, if set, is served at /stats.
	Stats *observability.Stats
	// AssetBase overrides where preview pages load jqPlot from.
	AssetBase string
}

// Server handles HTTP requests. It is safe for concurrent use.
type Server struct {
	cfg    Config
	router chi.Router
}

// New builds the router.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.NullArgument("store")
	}
	if cfg.Runner == nil {
		return nil, errors.NullArgument("runner")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	s := &Server{cfg: cfg}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.cfg.Stats != nil {
		r.Get("/stats", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, s.cfg.Stats.Snapshot())
		})
	}

	r.Route("/charts", func(r chi.Router) {
		r.Get("/", s.listCharts)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getChart)
			r.Put("/", s.putChart)
			r.Delete("/", s.deleteChart)
			r.Get("/script.js", s.renderStored(pipeline.FormatJS))
			r.Get("/page", s.renderStored(pipeline.FormatHTML))
			r.Get("/plugins", s.chartPlugins)
			r.Get("/graph", s.chartGraph)
		})
	})
	r.Post("/render", s.render)
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.cfg.Logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.cfg.Logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) listCharts(w http.ResponseWriter, r *http.Request) {
	list, err := s.cfg.Store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) getChart(w http.ResponseWriter, r *http.Request) {
	def, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

// putChart stores the posted definition under the path id. A body id that
// disagrees with the path is rejected.
func (s *Server) putChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var def chartdef.Definition
	if err := decodeBody(w, r, &def); err != nil {
		s.writeError(w, r, err)
		return
	}
	if def.ID != "" && def.ID != id {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidArgument,
			"body id %q does not match path id %q", def.ID, id))
		return
	}
	def.ID = id
	if _, err := def.Build(); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.cfg.Store.Put(r.Context(), &def); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, store.Summary{ID: def.ID, Title: def.Title, UpdatedAt: time.Now().UTC()})
}

func (s *Server) deleteChart(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// renderStored serves one format of a stored chart. The page format reads
// optional width and height query parameters.
func (s *Server) renderStored(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := pipeline.Options{Formats: []string{format}, AssetBase: s.cfg.AssetBase}
		var err error
		if opts.Width, err = queryInt(r, "width"); err != nil {
			s.writeError(w, r, err)
			return
		}
		if opts.Height, err = queryInt(r, "height"); err != nil {
			s.writeError(w, r, err)
			return
		}
		s.serveArtifact(w, r, opts)
	}
}

func (s *Server) chartGraph(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatDOT
	}
	if format != pipeline.FormatDOT && format != pipeline.FormatSVG {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidArgument, "graph format must be dot or svg, got %q", format))
		return
	}
	detailed, _ := strconv.ParseBool(r.URL.Query().Get("detailed"))
	s.serveArtifact(w, r, pipeline.Options{Formats: []string{format}, Detailed: detailed})
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	def, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Definition = def
	opts.Logger = loggerFor(r, s.cfg.Logger)
	res, err := s.cfg.Runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("X-Chart-Cache", cacheHeader(res.CacheInfo))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) chartPlugins(w http.ResponseWriter, r *http.Request) {
	def, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	script, _, err := s.cfg.Runner.ScriptWithCacheInfo(r.Context(), pipeline.Options{
		Definition: def,
		Logger:     loggerFor(r, s.cfg.Logger),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, script.Plugins)
}

// renderResponse is the body of POST /render. Artifacts are strings since
// every format is text.
type renderResponse struct {
	ChartID   string            `json:"chartId"`
	Script    string            `json:"script"`
	Plugins   []string          `json:"plugins"`
	Artifacts map[string]string `json:"artifacts"`
	Cached    bool              `json:"cached"`
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decodeBody(w, r, &opts); err != nil {
		s.writeError(w, r, err)
		return
	}
	if opts.AssetBase == "" {
		opts.AssetBase = s.cfg.AssetBase
	}
	opts.Logger = loggerFor(r, s.cfg.Logger)
	res, err := s.cfg.Runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := renderResponse{
		ChartID:   res.Script.ChartID,
		Script:    res.Script.Code,
		Plugins:   res.Script.Plugins,
		Artifacts: make(map[string]string, len(res.Artifacts)),
		Cached:    res.CacheInfo.ScriptHit && res.CacheInfo.RenderHit,
	}
	for f, data := range res.Artifacts {
		out.Artifacts[f] = string(data)
	}
	writeJSON(w, http.StatusOK, out)
}

func cacheHeader(ci pipeline.CacheInfo) string {
	if ci.RenderHit {
		return "hit"
	}
	return "miss"
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "%s must be a non-negative integer, got %q", name, raw)
	}
	return v, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}

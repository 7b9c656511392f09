package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/chartscript/pkg/chartdef"
	chartio "github.com/matzehuels/chartscript/pkg/io"
	"github.com/matzehuels/chartscript/pkg/observability"
	"github.com/matzehuels/chartscript/pkg/pipeline"
	"github.com/matzehuels/chartscript/pkg/store"
)

const salesJSON = `{
  "id": "sales",
  "title": "Sales",
  "axes": [{"type": "xaxis", "renderer": "date"}],
  "cursor": {"zoom": true},
  "data": [{"kind": "seria", "points": [[1, 2], [2, 4]]}]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.NewDirStore(t.TempDir(), chartio.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv, err := New(Config{
		Store:     st,
		Runner:    pipeline.NewRunner(nil, nil, logger),
		Logger:    logger,
		Stats:     observability.NewStats(),
		AssetBase: "/assets/",
	})
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(data)
}

func putSales(t *testing.T, ts *httptest.Server) {
	t.Helper()
	resp, body := do(t, http.MethodPut, ts.URL+"/charts/sales", salesJSON)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", resp.StatusCode, body)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, body := do(t, http.MethodGet, ts.URL+"/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, `"ok"`) {
		t.Errorf("body = %s", body)
	}
	if _, err := uuid.Parse(resp.Header.Get(RequestIDHeader)); err != nil {
		t.Errorf("request id %q is not a UUID", resp.Header.Get(RequestIDHeader))
	}
}

func TestRequestIDPropagates(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/charts/missing", nil)
	req.Header.Set(RequestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(RequestIDHeader); got != id {
		t.Errorf("%s = %q, want %q", RequestIDHeader, got, id)
	}
	var e errorBody
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatal(err)
	}
	if e.RequestID != id || e.Code != "NOT_FOUND" {
		t.Errorf("error body = %+v", e)
	}
}

func TestChartLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp, body := do(t, http.MethodGet, ts.URL+"/charts", "")
	if resp.StatusCode != http.StatusOK || strings.TrimSpace(body) != "[]" {
		t.Errorf("empty list = %d %s", resp.StatusCode, body)
	}

	putSales(t, ts)

	resp, body = do(t, http.MethodGet, ts.URL+"/charts", "")
	var list []store.Summary
	if err := json.Unmarshal([]byte(body), &list); err != nil {
		t.Fatalf("decode list: %v (%s)", err, body)
	}
	if len(list) != 1 || list[0].ID != "sales" || list[0].Title != "Sales" {
		t.Errorf("list = %+v", list)
	}

	resp, body = do(t, http.MethodGet, ts.URL+"/charts/sales", "")
	var def chartdef.Definition
	if err := json.Unmarshal([]byte(body), &def); err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	if resp.StatusCode != http.StatusOK || def.ID != "sales" || len(def.Data) != 1 {
		t.Errorf("GET chart = %d %+v", resp.StatusCode, def)
	}

	resp, _ = do(t, http.MethodDelete, ts.URL+"/charts/sales", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("DELETE status = %d, want 204", resp.StatusCode)
	}
	resp, _ = do(t, http.MethodGet, ts.URL+"/charts/sales", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET after DELETE status = %d, want 404", resp.StatusCode)
	}
}

func TestPutChartErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"id mismatch", "/charts/other", salesJSON, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"bad json", "/charts/sales", "{", http.StatusBadRequest, "INVALID_FORMAT"},
		{"unknown field", "/charts/sales", `{"titel": "x"}`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad renderer", "/charts/sales", `{"axes": [{"type": "xaxis", "renderer": "nope"}]}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"bad id", "/charts/1abc", `{}`, http.StatusBadRequest, "INVALID_CHART_ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, http.MethodPut, ts.URL+tt.path, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			var e errorBody
			if err := json.Unmarshal([]byte(body), &e); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if e.Code != tt.code {
				t.Errorf("code = %q, want %q", e.Code, tt.code)
			}
		})
	}
}

func TestRenderStored(t *testing.T) {
	ts := newTestServer(t)
	putSales(t, ts)

	resp, body := do(t, http.MethodGet, ts.URL+"/charts/sales/script.js", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("script.js status = %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/javascript") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(body, `$.jqplot("sales", `) {
		t.Errorf("script = %s", body)
	}

	resp, body = do(t, http.MethodGet, ts.URL+"/charts/sales/page?width=320&height=200", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("page status = %d: %s", resp.StatusCode, body)
	}
	for _, want := range []string{
		`style="width: 320px; height: 200px;"`,
		`<script src="/assets/plugins/jqplot.dateAxisRenderer.min.js">`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %s", want)
		}
	}

	resp, body = do(t, http.MethodGet, ts.URL+"/charts/sales/page?width=wide", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad width status = %d, want 400 (%s)", resp.StatusCode, body)
	}

	resp, body = do(t, http.MethodGet, ts.URL+"/charts/sales/plugins", "")
	var plugins []string
	if err := json.Unmarshal([]byte(body), &plugins); err != nil {
		t.Fatalf("decode plugins: %v", err)
	}
	if len(plugins) != 2 || plugins[0] != "jqplot.dateAxisRenderer.min.js" || plugins[1] != "jqplot.cursor.min.js" {
		t.Errorf("plugins = %v", plugins)
	}

	resp, body = do(t, http.MethodGet, ts.URL+"/charts/sales/graph", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "digraph plugins") {
		t.Errorf("graph = %d %s", resp.StatusCode, body)
	}
	resp, _ = do(t, http.MethodGet, ts.URL+"/charts/sales/graph?format=png", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("graph png status = %d, want 400", resp.StatusCode)
	}
}

func TestRenderEndpoint(t *testing.T) {
	ts := newTestServer(t)
	body := `{"definition": ` + salesJSON + `, "formats": ["js", "dot"]}`

	resp, out := do(t, http.MethodPost, ts.URL+"/render", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, out)
	}
	var r renderResponse
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatal(err)
	}
	if r.ChartID != "sales" || r.Artifacts["js"] != r.Script || !strings.Contains(r.Artifacts["dot"], "digraph") {
		t.Errorf("response = %+v", r)
	}

	resp, _ = do(t, http.MethodPost, ts.URL+"/render", `{"formats": ["js"]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing definition status = %d, want 400", resp.StatusCode)
	}

	resp, out = do(t, http.MethodGet, ts.URL+"/stats", "")
	var snap observability.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("decode stats: %v (%s)", err, out)
	}
	if resp.StatusCode != http.StatusOK || snap.CacheHits == nil {
		t.Errorf("stats = %d %s", resp.StatusCode, out)
	}
}

func TestNewRequiresStoreAndRunner(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("New without store = nil error")
	}
	st, _ := store.NewDirStore(t.TempDir(), chartio.FormatJSON)
	if _, err := New(Config{Store: st}); err == nil {
		t.Error("New without runner = nil error")
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	st, _ := store.NewDirStore(t.TempDir(), chartio.FormatJSON)
	srv, err := New(Config{
		Store:  st,
		Runner: pipeline.NewRunner(nil, nil, nil),
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.ListenAndServe(ctx, "127.0.0.1:0"); err != nil {
		t.Errorf("ListenAndServe after cancel = %v, want nil", err)
	}
}

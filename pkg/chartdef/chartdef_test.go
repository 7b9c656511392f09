package chartdef

import (
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/jqplot"
)

func ptr[T any](v T) *T { return &v }

func seria(points ...[]any) Data {
	return Data{Kind: KindSeria, Points: points}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		want    string
		plugins []string
	}{
		{
			name: "seria drops incomplete tuples",
			def: Definition{
				ID:   "chartA",
				Data: []Data{seria([]any{int64(0), int64(1)}, []any{nil, int64(2)})},
			},
			want: `$.jqplot("chartA", [[[0,1]]], null);`,
		},
		{
			name: "timeline with date axis",
			def: Definition{
				ID:    "incidents",
				Title: "Incident date",
				Axes:  []Axis{{Type: "xaxis", Renderer: "date", DateFormat: "dd.MM.yyyy"}},
				Data: []Data{{
					Kind:   KindTimeline,
					Format: "date",
					Values: "integer",
					Points: [][]any{
						{"2010-10-20", int64(3)},
						{time.Date(2010, 10, 21, 0, 0, 0, 0, time.UTC), float64(5)},
						{nil, int64(1)},
					},
				}},
			},
			want: `$.jqplot("incidents", [[["2010-10-20",3],["2010-10-21",5]]], ` +
				`{title: {text:"Incident date",escapeHtml:true},` +
				`axes: {xaxis: {renderer:$.jqplot.DateAxisRenderer,tickOptions: {formatString:"%d.%m.%Y"}}}});`,
			plugins: []string{jqplot.PluginDateAxisRenderer},
		},
		{
			name: "bar defaults legend and hook",
			def: Definition{
				ID:             "bars",
				SeriesDefaults: &Series{Bar: &Bar{Direction: "horizontal"}},
				Legend:         &Legend{Show: ptr(true), Location: "ne"},
				Hooks:          []Hook{{Event: EventMouseDown, Code: "f();"}},
				Data:           []Data{seria([]any{int64(1), int64(2)})},
			},
			want: `$.jqplot("bars", [[[1,2]]], ` +
				`{seriesDefaults: {renderer:$.jqplot.BarRenderer,rendererOptions: {barDirection:"horizontal"}},` +
				`legend: {show:true,location:"ne",renderer:$.jqplot.EnhancedLegendRenderer}});` +
				`$('#bars').bind('jqplotMouseDown',function(ev,seriesIndex,pointIndex,data){f();});`,
			plugins: []string{jqplot.PluginBarRenderer, jqplot.PluginEnhancedLegend},
		},
		{
			name: "theme then explicit grid",
			def: Definition{
				ID:    "themed",
				Theme: []string{".jqplot-grid { -jqplot-drawGridlines: false; -jqplot-backgroundColor: #000000 }"},
				Grid:  &Grid{BorderColor: ptr("red")},
				Data:  []Data{seria([]any{int64(1), int64(2)})},
			},
			want: `$.jqplot("themed", [[[1,2]]], ` +
				`{grid: {drawGridLines:false,gridLineColor:"#cccccc",background:"#000000",borderColor:"red",borderWidth:2.000},` +
				`seriesColors:["red","green"]});`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.def.Build()
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("Render() =\n%s\nwant\n%s", got, tt.want)
			}
			want := tt.plugins
			if want == nil {
				want = []string{}
			}
			if got := p.UsedPlugins(); !slices.Equal(got, want) {
				t.Errorf("UsedPlugins() = %v, want %v", got, want)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		code errors.Code
	}{
		{"bad id", Definition{ID: "1abc"}, errors.ErrCodeInvalidChartID},
		{"unknown renderer", Definition{ID: "c", Axes: []Axis{{Type: "xaxis", Renderer: "sparkline"}}}, errors.ErrCodeInvalidArgument},
		{"unknown axis", Definition{ID: "c", Axes: []Axis{{Type: "zaxis"}}}, errors.ErrCodeInvalidArgument},
		{"x binding to y axis", Definition{ID: "c", Series: []Series{{XAxis: "yaxis"}}}, errors.ErrCodeInvalidArgument},
		{"short point", Definition{ID: "c", Data: []Data{seria([]any{int64(1)})}}, errors.ErrCodeInvalidFormat},
		{"unknown kind", Definition{ID: "c", Data: []Data{{Kind: "pie"}}}, errors.ErrCodeInvalidArgument},
		{
			"non numeric timeline value",
			Definition{ID: "c", Data: []Data{{Kind: KindTimeline, Points: [][]any{{"2010-10-20", "many"}}}}},
			errors.ErrCodeTypeMismatch,
		},
		{
			"fractional integer value",
			Definition{ID: "c", Data: []Data{{Kind: KindTimeline, Values: "integer", Points: [][]any{{"2010-10-20", 1.5}}}}},
			errors.ErrCodeTypeMismatch,
		},
		{
			"bad date",
			Definition{ID: "c", Data: []Data{{Kind: KindTimeline, Points: [][]any{{"20.10.2010", 1.0}}}}},
			errors.ErrCodeInvalidFormat,
		},
		{"bad date format", Definition{ID: "c", Data: []Data{{Kind: KindTimeline, Format: "week"}}}, errors.ErrCodeInvalidArgument},
		{"unknown hook", Definition{ID: "c", Hooks: []Hook{{Event: "hover"}}}, errors.ErrCodeInvalidArgument},
		{"redraw without variable", Definition{ID: "c", Hooks: []Hook{{Event: EventDestroyRedraw}}}, errors.ErrCodeNullArgument},
		{"bad css", Definition{ID: "c", Theme: []string{"no block"}}, errors.ErrCodeInvalidFormat},
		{"infinite line width", Definition{ID: "c", SeriesDefaults: &Series{LineWidth: ptr(math.Inf(1))}}, errors.ErrCodeInvalidArgument},
		{"nan marker size", Definition{ID: "c", Series: []Series{{Marker: &Marker{Size: ptr(math.NaN())}}}}, errors.ErrCodeInvalidArgument},
		{"infinite grid border", Definition{ID: "c", Grid: &Grid{BorderWidth: ptr(math.Inf(-1))}}, errors.ErrCodeInvalidArgument},
		{"nan seria value", Definition{ID: "c", Data: []Data{seria([]any{int64(1), math.NaN()})}}, errors.ErrCodeInvalidArgument},
		{
			"infinite timeline value",
			Definition{ID: "c", Data: []Data{{Kind: KindTimeline, Points: [][]any{{"2010-10-20", math.Inf(1)}}}}},
			errors.ErrCodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Build()
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestBuildGeneratesID(t *testing.T) {
	def := &Definition{}
	p, err := def.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !strings.HasPrefix(p.ChartID(), "chart-") || def.ID != p.ChartID() {
		t.Errorf("ChartID() = %q, ID = %q", p.ChartID(), def.ID)
	}
	if !p.NothingToDisplay() {
		t.Error("NothingToDisplay() = false for a definition without data")
	}
	if got := def.EnsureID(); got != p.ChartID() {
		t.Errorf("EnsureID() = %q, want the id assigned by Build", got)
	}
}

func TestAttribute(t *testing.T) {
	def := &Definition{Attributes: map[string]any{
		"height": int64(300),
		"width":  float64(400),
		"ratio":  1.5,
		"name":   "incidents",
	}}

	if v, ok, err := Attribute[int](def, "height"); err != nil || !ok || v != 300 {
		t.Errorf("Attribute[int](height) = %v, %v, %v", v, ok, err)
	}
	if v, ok, err := Attribute[int](def, "width"); err != nil || !ok || v != 400 {
		t.Errorf("Attribute[int](width) = %v, %v, %v", v, ok, err)
	}
	if v, ok, err := Attribute[float64](def, "height"); err != nil || !ok || v != 300 {
		t.Errorf("Attribute[float64](height) = %v, %v, %v", v, ok, err)
	}
	if v, ok, err := Attribute[string](def, "name"); err != nil || !ok || v != "incidents" {
		t.Errorf("Attribute[string](name) = %v, %v, %v", v, ok, err)
	}
	if _, ok, err := Attribute[string](def, "missing"); ok || err != nil {
		t.Errorf("Attribute(missing) = %v, %v, want false, nil", ok, err)
	}

	def.Attributes["unbounded"] = math.Inf(1)
	if _, _, err := Attribute[int](def, "unbounded"); !errors.Is(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("Attribute[int](unbounded) error = %v, want TYPE_MISMATCH", err)
	}

	_, _, err := Attribute[int](def, "ratio")
	if !errors.Is(err, errors.ErrCodeTypeMismatch) {
		t.Fatalf("Attribute[int](ratio) error = %v, want TYPE_MISMATCH", err)
	}
	if msg := errors.UserMessage(err); !strings.Contains(msg, "expected int, found float64") {
		t.Errorf("UserMessage() = %q", msg)
	}
	if _, _, err := Attribute[string](def, "height"); !errors.Is(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("Attribute[string](height) error = %v, want TYPE_MISMATCH", err)
	}
}

package jqplot

import (
	"slices"
	"testing"

	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/series"
)

func zeroData() *series.SeriesData {
	return series.New().AddSeriaDataIfNotNil(js.NewArray(js.NewInt(0)))
}

func TestPlotRender(t *testing.T) {
	tests := []struct {
		name    string
		options *Options
		hooks   []Hook
		want    string
	}{
		{
			name: "no options",
			want: `$.jqplot("chartA", [[0]], null);`,
		},
		{
			name:    "title",
			options: NewOptions().SetTitle(NewTitle("Incident date")),
			want:    `$.jqplot("chartA", [[0]], {title: {text:"Incident date",escapeHtml:true}});`,
		},
		{
			name:    "empty options",
			options: NewOptions(),
			want:    `$.jqplot("chartA", [[0]], null);`,
		},
		{
			name: "hooks deduplicated in order",
			hooks: []Hook{
				DestroyRedraw("plot1"),
				OnZoom("chartA", "x();"),
				DestroyRedraw("plot2"),
			},
			want: `$.jqplot("chartA", [[0]], null);` +
				`plot1.redraw=function(clear){return};` +
				`$('#chartA').bind('jqplotZoom',function(ev,gridpos,datapos,plot,cursor){x();});`,
		},
		{
			name: "option hooks precede plot hooks",
			options: func() *Options {
				o := NewOptions()
				o.Highlighter().SetTooltipContentEditor(NewTooltipContentEditor("", ""))
				return o
			}(),
			hooks: []Hook{OnMouseDown("chartA", "f(pointIndex);")},
			want: `$.jqplot("chartA", [[0]], {highlighter: {tooltipContentEditor:tooltipContentEditor}});` +
				`function tooltipContentEditor(str,seriesIndex,pointIndex,plot){return "";};` +
				`$('#chartA').bind('jqplotMouseDown',function(ev,seriesIndex,pointIndex,data){f(pointIndex);});`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlot("chartA", zeroData(), tt.options)
			if err != nil {
				t.Fatalf("NewPlot() error: %v", err)
			}
			for _, h := range tt.hooks {
				p.AddHook(h)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("Render() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPlotNothingToDisplay(t *testing.T) {
	o := NewOptions().SetCursor(NewCursor())
	p, err := NewPlot("chartA", series.New(), o)
	if err != nil {
		t.Fatalf("NewPlot() error: %v", err)
	}
	if !p.NothingToDisplay() {
		t.Fatal("NothingToDisplay() = false for empty data")
	}
	if got := p.String(); got != "'';" {
		t.Errorf("Render() = %s, want '';", got)
	}
	if got := p.UsedPlugins(); len(got) != 0 {
		t.Errorf("UsedPlugins() = %v, want none", got)
	}

	p.SetNothingToDisplay(false)
	if got := p.UsedPlugins(); !slices.Equal(got, []string{PluginCursor}) {
		t.Errorf("UsedPlugins() = %v, want [%s]", got, PluginCursor)
	}
}

func TestNewPlotArguments(t *testing.T) {
	if _, err := NewPlot(" ", zeroData(), nil); !errors.Is(err, errors.ErrCodeNullArgument) {
		t.Errorf("NewPlot(blank id) error = %v, want NULL_ARGUMENT", err)
	}
	if _, err := NewPlot("chartA", nil, nil); !errors.Is(err, errors.ErrCodeNullArgument) {
		t.Errorf("NewPlot(nil data) error = %v, want NULL_ARGUMENT", err)
	}
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Build(); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("Build() without id error = %v, want INVALID_STATE", err)
	}
	if _, err := b.UseChartID(""); !errors.Is(err, errors.ErrCodeNullArgument) {
		t.Errorf("UseChartID(\"\") error = %v, want NULL_ARGUMENT", err)
	}
	if _, err := b.UseChartID("chartA"); err != nil {
		t.Fatalf("UseChartID() error: %v", err)
	}
	if _, err := b.UseChartID("chartB"); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("second UseChartID() error = %v, want INVALID_STATE", err)
	}
	if _, err := b.Build(); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("Build() without data error = %v, want INVALID_STATE", err)
	}

	b.UseData().AddSeriaDataIfNotNil(js.NewArray(js.NewInt(0)))
	if b.UseData() != b.UseData() {
		t.Error("UseData() must return the same data on every call")
	}
	b.UseOptions().SetTitle(NewTitle("Incident date"))

	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := `$.jqplot("chartA", [[0]], {title: {text:"Incident date",escapeHtml:true}});`
	if got := p.String(); got != want {
		t.Errorf("Render() = %s, want %s", got, want)
	}
	if p.ChartID() != "chartA" {
		t.Errorf("ChartID() = %s, want chartA", p.ChartID())
	}
}

func TestMouseHooks(t *testing.T) {
	tests := []struct {
		hook Hook
		id   string
		want string
	}{
		{OnMouseUp("c", "f();"), "mouseUpEvent_hook", `$('#c').bind('jqplotMouseUp',function(ev,seriesIndex,pointIndex,data){f();});`},
		{OnDblClick("c", "f();"), "mouseDblClickEvent_hook", `$('#c').bind('jqplotDblClick',function(ev,seriesIndex,pointIndex,data){f();});`},
		{OnResetZoom("c", "f();"), "resetZoomEvent_hook", `$('#c').bind('jqplotResetZoom',function(){f();});`},
	}
	for _, tt := range tests {
		if tt.hook.ID != tt.id || tt.hook.Code != tt.want {
			t.Errorf("hook = %+v, want {ID:%s Code:%s}", tt.hook, tt.id, tt.want)
		}
	}
}

package depgraph

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/chartscript/pkg/jqplot"
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/series"
)

func testPlot(t *testing.T, empty bool) *jqplot.Plot {
	t.Helper()
	data := series.New()
	if !empty {
		s := series.NewSeria()
		s.AddTupleIfComplete(js.NewInt(1), js.NewInt(2))
		data.AddSeriaDataIfNotNil(s.AsArray())
	}
	o := jqplot.NewOptions()
	o.Axes().AddIfNotNil(jqplot.NewAxis(jqplot.XAxis).
		SetTickRenderer(jqplot.CanvasAxisTickRenderer()))
	o.SetCursor(jqplot.NewCursor())

	p, err := jqplot.NewPlot("sales", data, o)
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	return p
}

func TestFromPlot(t *testing.T) {
	g := FromPlot(testPlot(t, false))
	if g.ChartID != "sales" {
		t.Errorf("ChartID = %q, want sales", g.ChartID)
	}
	if len(g.Components) != 2 {
		t.Fatalf("Components = %v, want 2 entries", g.Components)
	}
	if g.Components[0].Name != "axes.xaxis" || g.Components[1].Name != "cursor" {
		t.Errorf("Components = %v", g.Components)
	}
	if len(g.Plugins) != 3 {
		t.Errorf("Plugins = %v, want 3", g.Plugins)
	}

	empty := FromPlot(testPlot(t, true))
	if len(empty.Components) != 0 || len(empty.Plugins) != 0 {
		t.Errorf("empty plot graph = %+v", empty)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(FromPlot(testPlot(t, false)), Options{})

	for _, want := range []string{
		"digraph plugins {",
		`"sales" [shape=doubleoctagon];`,
		`"sales" -> "options.axes.xaxis";`,
		`"options.axes.xaxis" -> "jqplot.canvasAxisTickRenderer.min.js";`,
		`"jqplot.canvasAxisTickRenderer.min.js" -> "jqplot.canvasTextRenderer.min.js" [style=dashed, label="requires"];`,
		`"options.cursor" -> "jqplot.cursor.min.js";`,
		`"jqplot.cursor.min.js" -> "jquery.jqplot.min.js" [color=grey];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %s\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "1. ") {
		t.Error("plain DOT numbers plugins")
	}

	detailed := ToDOT(FromPlot(testPlot(t, false)), Options{Detailed: true})
	if !strings.Contains(detailed, `label="1. jqplot.canvasTextRenderer.min.js"`) {
		t.Errorf("detailed DOT lacks load order:\n%s", detailed)
	}
}

func TestToDOTWithoutPlugins(t *testing.T) {
	dot := ToDOT(Graph{ChartID: "bare"}, Options{})
	if strings.Contains(dot, CoreScript) {
		t.Errorf("graph without plugins references the core script:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(FromPlot(testPlot(t, false)), Options{})
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("RenderSVG output is not SVG: %.200s", svg)
	}
}

// Package depgraph draws which client script files a chart pulls in and
// why.
//
// The graph has three ranks: the chart, the parts of its option tree that
// need plugins (axes, series, cursor, legend, highlighter), and the plugin
// files themselves. Plugins that load other plugins get an edge to their
// prerequisite, and every plugin hangs off the jqPlot core script.
//
//	g := depgraph.FromPlot(plot)
//	dot := depgraph.ToDOT(g, depgraph.Options{})
//	svg, err := depgraph.RenderSVG(ctx, dot)
package depgraph

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/chartscript/pkg/jqplot"
)

// CoreScript is the jqPlot runtime every plugin extends.
const CoreScript = "jquery.jqplot.min.js"

// prerequisites lists plugins that only work after another plugin loaded.
var prerequisites = map[string][]string{
	jqplot.PluginCanvasAxisTickRenderer: {jqplot.PluginCanvasTextRenderer},
	jqplot.PluginCanvasAxisLabel:        {jqplot.PluginCanvasTextRenderer},
	jqplot.PluginDonutRenderer:          {jqplot.PluginPieRenderer},
}

// Graph is the plugin dependency view of one chart.
type Graph struct {
	ChartID    string
	Components []jqplot.Component
	// Plugins is the load order the plot reports.
	Plugins []string
}

// FromPlot collects the graph of p. A plot with nothing to display has no
// components.
func FromPlot(p *jqplot.Plot) Graph {
	g := Graph{ChartID: p.ChartID(), Plugins: p.UsedPlugins()}
	if !p.NothingToDisplay() && p.Options() != nil {
		g.Components = p.Options().Components()
	}
	return g
}

// Options configures DOT output.
type Options struct {
	// Detailed numbers each plugin with its position in the load order.
	Detailed bool
}

// ToDOT writes g as a Graphviz digraph.
func ToDOT(g Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph plugins {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"Helvetica\", fontsize=12];\n\n")

	fmt.Fprintf(&buf, "  %q [shape=doubleoctagon];\n", g.ChartID)
	for _, c := range g.Components {
		fmt.Fprintf(&buf, "  %q [shape=box, style=rounded];\n", componentID(c))
	}
	for i, p := range g.Plugins {
		label := p
		if opts.Detailed {
			label = fmt.Sprintf("%d. %s", i+1, p)
		}
		fmt.Fprintf(&buf, "  %q [shape=note, label=%q];\n", p, label)
	}
	if len(g.Plugins) > 0 {
		fmt.Fprintf(&buf, "  %q [shape=cylinder];\n", CoreScript)
	}

	buf.WriteString("\n")
	for _, c := range g.Components {
		fmt.Fprintf(&buf, "  %q -> %q;\n", g.ChartID, componentID(c))
		for _, p := range c.Plugins {
			fmt.Fprintf(&buf, "  %q -> %q;\n", componentID(c), p)
		}
	}
	for _, p := range g.Plugins {
		for _, req := range prerequisites[p] {
			if slices.Contains(g.Plugins, req) {
				fmt.Fprintf(&buf, "  %q -> %q [style=dashed, label=\"requires\"];\n", p, req)
			}
		}
		fmt.Fprintf(&buf, "  %q -> %q [color=grey];\n", p, CoreScript)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// componentID keeps component nodes distinct from a chart that happens to
// share a name.
func componentID(c jqplot.Component) string {
	return "options." + c.Name
}

// RenderSVG lays out dot with Graphviz and returns SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

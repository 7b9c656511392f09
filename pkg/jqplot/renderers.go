package jqplot

import "github.com/matzehuels/chartscript/pkg/js"

// Plugin file names shipped with jqPlot.
const (
	PluginDateAxisRenderer       = "jqplot.dateAxisRenderer.min.js"
	PluginCategoryAxisRenderer   = "jqplot.categoryAxisRenderer.min.js"
	PluginLogAxisRenderer        = "jqplot.logAxisRenderer.min.js"
	PluginCanvasTextRenderer     = "jqplot.canvasTextRenderer.min.js"
	PluginCanvasAxisTickRenderer = "jqplot.canvasAxisTickRenderer.min.js"
	PluginCanvasAxisLabel        = "jqplot.canvasAxisLabelRenderer.min.js"
	PluginBarRenderer            = "jqplot.barRenderer.min.js"
	PluginPieRenderer            = "jqplot.pieRenderer.min.js"
	PluginDonutRenderer          = "jqplot.donutRenderer.min.js"
	PluginEnhancedLegend         = "jqplot.enhancedLegendRenderer.min.js"
	PluginHighlighter            = "jqplot.highlighter.min.js"
	PluginCursor                 = "jqplot.cursor.min.js"
)

// Axis renderers.

func LinearAxisRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.LinearAxisRenderer")
}

func DateAxisRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.DateAxisRenderer", PluginDateAxisRenderer)
}

func CategoryAxisRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.CategoryAxisRenderer", PluginCategoryAxisRenderer)
}

func LogAxisRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.LogAxisRenderer", PluginLogAxisRenderer)
}

// Tick and label renderers. The canvas variants draw rotated text and need
// the shared canvas text plugin.

func AxisTickRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.AxisTickRenderer")
}

func CanvasAxisTickRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.CanvasAxisTickRenderer",
		PluginCanvasTextRenderer, PluginCanvasAxisTickRenderer)
}

func AxisLabelRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.AxisLabelRenderer")
}

func CanvasAxisLabelRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.CanvasAxisLabelRenderer",
		PluginCanvasTextRenderer, PluginCanvasAxisLabel)
}

// Series renderers.

func LineRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.LineRenderer")
}

func BarRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.BarRenderer", PluginBarRenderer)
}

func PieRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.PieRenderer", PluginPieRenderer)
}

func DonutRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.DonutRenderer", PluginDonutRenderer)
}

func MarkerRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.MarkerRenderer")
}

// Legend renderers.

func TableLegendRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.TableLegendRenderer")
}

func EnhancedLegendRenderer() *js.Renderer {
	return js.NewRenderer("$.jqplot.EnhancedLegendRenderer", PluginEnhancedLegend)
}

// LookupRenderer resolves a renderer by its short name as used in chart
// definition files, e.g. "date" or "bar".
func LookupRenderer(name string) (*js.Renderer, bool) {
	f, ok := rendererCatalogue[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// RendererNames lists the names accepted by LookupRenderer.
func RendererNames() []string {
	return append([]string(nil), rendererOrder...)
}

var rendererOrder = []string{
	"linear", "date", "category", "log",
	"axisTick", "canvasAxisTick", "axisLabel", "canvasAxisLabel",
	"line", "bar", "pie", "donut", "marker",
	"tableLegend", "enhancedLegend",
}

var rendererCatalogue = map[string]func() *js.Renderer{
	"linear":          LinearAxisRenderer,
	"date":            DateAxisRenderer,
	"category":        CategoryAxisRenderer,
	"log":             LogAxisRenderer,
	"axisTick":        AxisTickRenderer,
	"canvasAxisTick":  CanvasAxisTickRenderer,
	"axisLabel":       AxisLabelRenderer,
	"canvasAxisLabel": CanvasAxisLabelRenderer,
	"line":            LineRenderer,
	"bar":             BarRenderer,
	"pie":             PieRenderer,
	"donut":           DonutRenderer,
	"marker":          MarkerRenderer,
	"tableLegend":     TableLegendRenderer,
	"enhancedLegend":  EnhancedLegendRenderer,
}

package jqplot

import (
	"fmt"

	"github.com/matzehuels/chartscript/pkg/js"
)

// Options is the root option object passed as the third argument of
// $.jqplot. It renders without a name.
type Options struct {
	title          *Title
	axes           *Axes
	seriesDefaults *Series
	series         *js.Array[*Series]
	cursor         *Cursor
	legend         *Legend
	highlighter    *Highlighter
	grid           *Grid
	seriesColors   *js.Array[js.Color]
}

func NewOptions() *Options { return &Options{} }

func (o *Options) SetTitle(t *Title) *Options {
	o.title = t
	return o
}

// Axes returns the axes object, creating it on first use.
func (o *Options) Axes() *Axes {
	if o.axes == nil {
		o.axes = NewAxes()
	}
	return o.axes
}

func (o *Options) SetSeriesDefaults(s *Series) *Options {
	o.seriesDefaults = s
	return o
}

// AddSeriaOption appends per-series options; the n-th entry applies to the
// n-th data series. Nil is ignored.
func (o *Options) AddSeriaOption(s *Series) *Options {
	if s == nil {
		return o
	}
	if o.series == nil {
		o.series = js.NewArray[*Series]()
	}
	o.series.Add(s)
	return o
}

func (o *Options) SetCursor(c *Cursor) *Options {
	o.cursor = c
	return o
}

func (o *Options) SetLegend(l *Legend) *Options {
	o.legend = l
	return o
}

// Highlighter returns the highlighter, creating it on first use.
func (o *Options) Highlighter() *Highlighter {
	if o.highlighter == nil {
		o.highlighter = NewHighlighter()
	}
	return o.highlighter
}

func (o *Options) SetHighlighter(h *Highlighter) *Options {
	o.highlighter = h
	return o
}

// Grid returns the grid, creating a default one on first use.
func (o *Options) Grid() *Grid {
	if o.grid == nil {
		o.grid = NewGrid()
	}
	return o.grid
}

func (o *Options) SetGrid(g *Grid) *Options {
	o.grid = g
	return o
}

// SetSeriesColors sets the colors cycled through by series without an
// explicit color.
func (o *Options) SetSeriesColors(colors ...string) *Options {
	o.seriesColors = js.NewArray[js.Color]()
	for _, c := range colors {
		o.seriesColors.Add(js.NewColor(c))
	}
	return o
}

// ApplyTheme sets the grid look and the series colors from a theme. An
// existing grid keeps its other settings.
func (o *Options) ApplyTheme(grid GridTheme, colors SeriesColors) *Options {
	o.Grid().ApplyTheme(grid)
	return o.SetSeriesColors(colors.Colors...)
}

func (o *Options) Render() (string, bool) {
	return js.RenderObject("", js.Properties{}.
		Embed(o.title).
		Embed(o.axes).
		Embed(o.seriesDefaults).
		Add("series", o.series).
		Embed(o.cursor).
		Embed(o.legend).
		Embed(o.highlighter).
		Embed(o.grid).
		Add("seriesColors", js.OmitEmpty(o.seriesColors)))
}

// UsedPlugins collects the plugins of every part of the tree.
func (o *Options) UsedPlugins() []string {
	r := js.NewRegistry().Attach(o.axes, o.seriesDefaults)
	if o.series != nil {
		for _, s := range o.series.Items() {
			r.Attach(s)
		}
	}
	return r.Attach(o.cursor, o.legend, o.highlighter).UsedPlugins()
}

// Component is one part of the option tree and the plugins it pulls in.
type Component struct {
	Name    string   `json:"name"`
	Plugins []string `json:"plugins"`
}

// Components lists every part that needs at least one plugin, in the order
// UsedPlugins visits them. Axes are listed by type and series by index.
func (o *Options) Components() []Component {
	var out []Component
	add := func(name string, c js.PluginConsumer) {
		if c == nil {
			return
		}
		if p := c.UsedPlugins(); len(p) > 0 {
			out = append(out, Component{Name: name, Plugins: p})
		}
	}
	if o.axes != nil {
		for _, a := range o.axes.items {
			add("axes."+string(a.typ), a)
		}
	}
	if o.seriesDefaults != nil {
		add("seriesDefaults", o.seriesDefaults)
	}
	if o.series != nil {
		for i, s := range o.series.Items() {
			add(fmt.Sprintf("series[%d]", i), s)
		}
	}
	if o.cursor != nil {
		add("cursor", o.cursor)
	}
	if o.legend != nil {
		add("legend", o.legend)
	}
	if o.highlighter != nil {
		add("highlighter", o.highlighter)
	}
	return out
}

// Hook returns the code the options need after plot creation.
func (o *Options) Hook() Hook {
	if o.highlighter == nil {
		return Hook{ID: "options_hook"}
	}
	return Hook{ID: "options_hook", Code: o.highlighter.Hook().Code}
}

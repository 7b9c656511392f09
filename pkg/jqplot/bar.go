package jqplot

import (
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// BarRendererOptions are the renderer options of a bar series.
type BarRendererOptions struct {
	js.RendererOptions
	*js.Shadow[*BarRendererOptions]
	*js.Highlighting[*BarRendererOptions]

	barPadding      js.Int
	barMargin       js.Int
	barDirection    js.String
	barWidth        js.Double
	waterfall       js.Bool
	groups          js.Int
	varyBarColor    js.Bool
	highlightColors *js.Array[js.Color]
}

func NewBarRendererOptions() *BarRendererOptions {
	o := &BarRendererOptions{RendererOptions: js.NewRendererOptions("", PluginBarRenderer)}
	o.Shadow = js.Must(js.NewShadow(o))
	o.Highlighting = js.Must(js.NewHighlighting(o))
	return o
}

// SetBarPadding sets the pixels between bars of the same group.
func (o *BarRendererOptions) SetBarPadding(v optional.Option[int]) *BarRendererOptions {
	o.barPadding = js.IntOf(v)
	return o
}

// SetBarMargin sets the pixels between groups of bars.
func (o *BarRendererOptions) SetBarMargin(v optional.Option[int]) *BarRendererOptions {
	o.barMargin = js.IntOf(v)
	return o
}

func (o *BarRendererOptions) SetBarDirection(d BarDirection) *BarRendererOptions {
	o.barDirection = js.NonEmptyString(string(d))
	return o
}

func (o *BarRendererOptions) SetBarWidth(v optional.Option[float64]) *BarRendererOptions {
	o.barWidth = js.DoubleOf(v)
	return o
}

func (o *BarRendererOptions) SetWaterfall(v optional.Option[bool]) *BarRendererOptions {
	o.waterfall = js.BoolOf(v)
	return o
}

func (o *BarRendererOptions) SetGroups(v optional.Option[int]) *BarRendererOptions {
	o.groups = js.IntOf(v)
	return o
}

func (o *BarRendererOptions) SetVaryBarColor(v optional.Option[bool]) *BarRendererOptions {
	o.varyBarColor = js.BoolOf(v)
	return o
}

// AddHighlightColor appends a color used when a bar is highlighted.
func (o *BarRendererOptions) AddHighlightColor(color string) *BarRendererOptions {
	if o.highlightColors == nil {
		o.highlightColors = js.NewArray[js.Color]()
	}
	o.highlightColors.Add(js.NewColor(color))
	return o
}

func (o *BarRendererOptions) Render() (string, bool) {
	return o.RenderProperties(js.Properties{}.
		Add("barPadding", o.barPadding).
		Add("barMargin", o.barMargin).
		Add("barDirection", o.barDirection).
		Add("barWidth", o.barWidth).
		Add("waterfall", o.waterfall).
		Add("groups", o.groups).
		Add("varyBarColor", o.varyBarColor).
		Add("highlightColors", o.highlightColors).
		Splice(o.Shadow).
		Splice(o.Highlighting))
}

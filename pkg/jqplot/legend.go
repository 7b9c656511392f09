package jqplot

import (
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// Legend configures the series legend. It uses the enhanced legend renderer
// unless told otherwise.
type Legend struct {
	show            js.Bool
	location        js.String
	labels          *js.Array[js.String]
	showLabels      js.Bool
	showSwatch      js.Bool
	placement       js.String
	border          js.String
	background      js.Color
	textColor       js.Color
	fontFamily      js.String
	fontSize        js.String
	rowSpacing      js.String
	renderer        *js.Renderer
	rendererOptions js.Value
	predraw         js.Bool
	marginTop       js.String
	marginRight     js.String
	marginBottom    js.String
	marginLeft      js.String
}

func NewLegend() *Legend {
	return &Legend{renderer: EnhancedLegendRenderer(), labels: js.NewArray[js.String]()}
}

func (l *Legend) SetShow(v optional.Option[bool]) *Legend {
	l.show = js.BoolOf(v)
	return l
}

func (l *Legend) SetLocation(loc Location) *Legend {
	l.location = js.NonEmptyString(string(loc))
	return l
}

// AddLabel appends a legend label; labels override the series labels by
// position.
func (l *Legend) AddLabel(label string) *Legend {
	l.labels.Add(js.NewString(label))
	return l
}

func (l *Legend) SetShowLabels(v optional.Option[bool]) *Legend {
	l.showLabels = js.BoolOf(v)
	return l
}

func (l *Legend) SetShowSwatch(v optional.Option[bool]) *Legend {
	l.showSwatch = js.BoolOf(v)
	return l
}

func (l *Legend) SetPlacement(p LegendPlacement) *Legend {
	l.placement = js.NonEmptyString(string(p))
	return l
}

// SetBorder takes a CSS border declaration.
func (l *Legend) SetBorder(v optional.Option[string]) *Legend {
	l.border = js.StringOf(v)
	return l
}

func (l *Legend) SetBackground(v optional.Option[string]) *Legend {
	l.background = js.ColorOf(v)
	return l
}

func (l *Legend) SetTextColor(v optional.Option[string]) *Legend {
	l.textColor = js.ColorOf(v)
	return l
}

func (l *Legend) SetFontFamily(v optional.Option[string]) *Legend {
	l.fontFamily = js.StringOf(v)
	return l
}

func (l *Legend) SetFontSize(v optional.Option[string]) *Legend {
	l.fontSize = js.StringOf(v)
	return l
}

func (l *Legend) SetRowSpacing(v optional.Option[string]) *Legend {
	l.rowSpacing = js.StringOf(v)
	return l
}

// SetRenderer replaces the legend renderer. A nil renderer removes it and
// leaves jqPlot to pick its default table renderer.
func (l *Legend) SetRenderer(r *js.Renderer) *Legend {
	l.renderer = r
	return l
}

func (l *Legend) SetRendererOptions(o js.Value) *Legend {
	l.rendererOptions = o
	return l
}

// SetPredraw draws the legend before the series.
func (l *Legend) SetPredraw(v optional.Option[bool]) *Legend {
	l.predraw = js.BoolOf(v)
	return l
}

// SetMargins sets the CSS margins used when the legend sits outside the
// grid.
func (l *Legend) SetMargins(top, right, bottom, left string) *Legend {
	l.marginTop = js.NonEmptyString(top)
	l.marginRight = js.NonEmptyString(right)
	l.marginBottom = js.NonEmptyString(bottom)
	l.marginLeft = js.NonEmptyString(left)
	return l
}

func (l *Legend) Render() (string, bool) {
	return js.RenderObject("legend", js.Properties{}.
		Add("show", l.show).
		Add("location", l.location).
		Add("labels", js.OmitEmpty(l.labels)).
		Add("showLabels", l.showLabels).
		Add("showSwatch", l.showSwatch).
		Add("placement", l.placement).
		Add("border", l.border).
		Add("background", l.background).
		Add("textColor", l.textColor).
		Add("fontFamily", l.fontFamily).
		Add("fontSize", l.fontSize).
		Add("rowSpacing", l.rowSpacing).
		Add("renderer", l.renderer).
		Embed(l.rendererOptions).
		Add("predraw", l.predraw).
		Add("marginTop", l.marginTop).
		Add("marginRight", l.marginRight).
		Add("marginBottom", l.marginBottom).
		Add("marginLeft", l.marginLeft))
}

func (l *Legend) UsedPlugins() []string {
	return js.NewRegistry().Attach(l.renderer).UsedPlugins()
}

package jqplot

import (
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// MarkerOptions configures the point markers of a series.
type MarkerOptions struct {
	js.RendererOptions
	*js.Shadow[*MarkerOptions]

	show      js.Bool
	style     js.String
	lineWidth js.Double
	size      js.Double
	color     js.Color
}

func NewMarkerOptions() *MarkerOptions {
	m := &MarkerOptions{RendererOptions: js.NewRendererOptions("markerOptions")}
	m.Shadow = js.Must(js.NewShadow(m))
	return m
}

func (m *MarkerOptions) SetShow(v optional.Option[bool]) *MarkerOptions {
	m.show = js.BoolOf(v)
	return m
}

// SetStyle sets the marker shape; an empty style removes it.
func (m *MarkerOptions) SetStyle(s PointStyle) *MarkerOptions {
	m.style = js.NonEmptyString(string(s))
	return m
}

func (m *MarkerOptions) SetLineWidth(v optional.Option[float64]) *MarkerOptions {
	m.lineWidth = js.DoubleOf(v)
	return m
}

func (m *MarkerOptions) SetSize(v optional.Option[float64]) *MarkerOptions {
	m.size = js.DoubleOf(v)
	return m
}

func (m *MarkerOptions) SetColor(v optional.Option[string]) *MarkerOptions {
	m.color = js.ColorOf(v)
	return m
}

func (m *MarkerOptions) Render() (string, bool) {
	return m.RenderProperties(js.Properties{}.
		Add("show", m.show).
		Add("style", m.style).
		Add("lineWidth", m.lineWidth).
		Add("size", m.size).
		Add("color", m.color).
		Splice(m.Shadow))
}

package jqplot

import (
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
)

const (
	DefaultGridLineColor = "#cccccc"
	DefaultBorderWidth   = 2.0
)

// Grid is the drawing area behind the series.
type Grid struct {
	*js.Shadow[*Grid]

	drawGridLines js.Bool
	gridLineColor js.Color
	background    js.Color
	borderColor   js.Color
	borderWidth   js.Double
}

// NewGrid returns a grid with grid lines on, a light grey line color and a
// border width of 2.
func NewGrid() *Grid {
	g := &Grid{
		drawGridLines: js.True,
		gridLineColor: js.NewColor(DefaultGridLineColor),
		borderWidth:   js.NewDouble(DefaultBorderWidth),
	}
	g.Shadow = js.Must(js.NewShadow(g))
	return g
}

func (g *Grid) SetDrawGridLines(v optional.Option[bool]) *Grid {
	g.drawGridLines = js.BoolOf(v)
	return g
}

func (g *Grid) SetGridLineColor(v optional.Option[string]) *Grid {
	g.gridLineColor = js.ColorOf(v)
	return g
}

func (g *Grid) SetBackground(v optional.Option[string]) *Grid {
	g.background = js.ColorOf(v)
	return g
}

func (g *Grid) SetBorderColor(v optional.Option[string]) *Grid {
	g.borderColor = js.ColorOf(v)
	return g
}

func (g *Grid) SetBorderWidth(v optional.Option[float64]) *Grid {
	g.borderWidth = js.DoubleOf(v)
	return g
}

// ApplyTheme copies the theme's grid line switch and background.
func (g *Grid) ApplyTheme(t GridTheme) *Grid {
	g.drawGridLines = js.NewBool(t.DrawGridLines)
	g.background = js.NewColor(t.Background)
	return g
}

func (g *Grid) Render() (string, bool) {
	return js.RenderObject("grid", js.Properties{}.
		Add("drawGridLines", g.drawGridLines).
		Add("gridLineColor", g.gridLineColor).
		Add("background", g.background).
		Add("borderColor", g.borderColor).
		Add("borderWidth", g.borderWidth).
		Splice(g.Shadow))
}

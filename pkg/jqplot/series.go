package jqplot

import (
	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// Series configures how one data series is drawn. The same type serves as
// the plot wide "seriesDefaults" object and as an element of the "series"
// array.
type Series struct {
	*js.Shadow[*Series]

	name              string
	breakOnNull       js.Bool
	color             js.Color
	disableStack      js.Bool
	fill              js.Bool
	fillAlpha         js.Double
	fillAndStroke     js.Bool
	fillAxis          js.String
	fillColor         js.Color
	fillToValue       js.Int
	fillToZero        js.Bool
	index             js.Int
	label             js.String
	lineCap           js.String
	lineJoin          js.String
	lineWidth         js.Double
	neighborThreshold js.Int
	renderer          *js.Renderer
	rendererOptions   js.Value
	markerRenderer    *js.Renderer
	markerOptions     *MarkerOptions
	showLabel         js.Bool
	showMarker        js.Bool
	useNegativeColors js.Bool
	show              js.Bool
	xaxis             js.String
	yaxis             js.String
	showLine          js.Bool
}

// NewSeriesDefaults returns a series rendered as "seriesDefaults: {...}".
func NewSeriesDefaults() *Series {
	return newSeries("seriesDefaults")
}

// NewSeries returns a series rendered as a bare object, for use as an
// element of the options' series list.
func NewSeries() *Series {
	return newSeries("")
}

func newSeries(name string) *Series {
	s := &Series{name: name}
	s.Shadow = js.Must(js.NewShadow(s))
	return s
}

func (s *Series) SetBreakOnNull(v optional.Option[bool]) *Series {
	s.breakOnNull = js.BoolOf(v)
	return s
}

// SetColor sets the line color; an empty color renders "transparent".
func (s *Series) SetColor(v optional.Option[string]) *Series {
	s.color = js.ColorOf(v)
	return s
}

func (s *Series) SetDisableStack(v optional.Option[bool]) *Series {
	s.disableStack = js.BoolOf(v)
	return s
}

func (s *Series) SetFill(v optional.Option[bool]) *Series {
	s.fill = js.BoolOf(v)
	return s
}

func (s *Series) SetFillAlpha(v optional.Option[float64]) *Series {
	s.fillAlpha = js.DoubleOf(v)
	return s
}

func (s *Series) SetFillAndStroke(v optional.Option[bool]) *Series {
	s.fillAndStroke = js.BoolOf(v)
	return s
}

func (s *Series) SetFillAxis(v optional.Option[string]) *Series {
	s.fillAxis = js.StringOf(v)
	return s
}

func (s *Series) SetFillColor(v optional.Option[string]) *Series {
	s.fillColor = js.ColorOf(v)
	return s
}

func (s *Series) SetFillToValue(v optional.Option[int]) *Series {
	s.fillToValue = js.IntOf(v)
	return s
}

func (s *Series) SetFillToZero(v optional.Option[bool]) *Series {
	s.fillToZero = js.BoolOf(v)
	return s
}

func (s *Series) SetIndex(v optional.Option[int]) *Series {
	s.index = js.IntOf(v)
	return s
}

func (s *Series) SetLabel(v optional.Option[string]) *Series {
	s.label = js.StringOf(v)
	return s
}

func (s *Series) SetLineCap(v optional.Option[string]) *Series {
	s.lineCap = js.StringOf(v)
	return s
}

func (s *Series) SetLineJoin(v optional.Option[string]) *Series {
	s.lineJoin = js.StringOf(v)
	return s
}

func (s *Series) SetLineWidth(v optional.Option[float64]) *Series {
	s.lineWidth = js.DoubleOf(v)
	return s
}

func (s *Series) SetNeighborThreshold(v optional.Option[int]) *Series {
	s.neighborThreshold = js.IntOf(v)
	return s
}

func (s *Series) SetRenderer(r *js.Renderer) *Series {
	s.renderer = r
	return s
}

// SetRendererOptions attaches renderer specific options such as
// [BarRendererOptions].
func (s *Series) SetRendererOptions(o js.Value) *Series {
	s.rendererOptions = o
	return s
}

func (s *Series) SetMarkerRenderer(r *js.Renderer) *Series {
	s.markerRenderer = r
	return s
}

func (s *Series) SetMarkerOptions(o *MarkerOptions) *Series {
	s.markerOptions = o
	return s
}

func (s *Series) SetShowLabel(v optional.Option[bool]) *Series {
	s.showLabel = js.BoolOf(v)
	return s
}

func (s *Series) SetShowMarker(v optional.Option[bool]) *Series {
	s.showMarker = js.BoolOf(v)
	return s
}

func (s *Series) SetUseNegativeColors(v optional.Option[bool]) *Series {
	s.useNegativeColors = js.BoolOf(v)
	return s
}

func (s *Series) SetShow(v optional.Option[bool]) *Series {
	s.show = js.BoolOf(v)
	return s
}

func (s *Series) SetShowLine(v optional.Option[bool]) *Series {
	s.showLine = js.BoolOf(v)
	return s
}

// SetXaxis binds the series to a horizontal axis. An empty type clears the
// binding; a vertical axis is rejected.
func (s *Series) SetXaxis(t AxisType) (*Series, error) {
	if t != "" && !t.IsX() {
		return s, errors.New(errors.ErrCodeInvalidArgument, "%s is not an x axis", t)
	}
	s.xaxis = js.NonEmptyString(string(t))
	return s, nil
}

// SetYaxis binds the series to a vertical axis. An empty type clears the
// binding; a horizontal axis is rejected.
func (s *Series) SetYaxis(t AxisType) (*Series, error) {
	if t != "" && !t.IsY() {
		return s, errors.New(errors.ErrCodeInvalidArgument, "%s is not a y axis", t)
	}
	s.yaxis = js.NonEmptyString(string(t))
	return s, nil
}

func (s *Series) Render() (string, bool) {
	return js.RenderObject(s.name, js.Properties{}.
		Add("breakOnNull", s.breakOnNull).
		Add("color", s.color).
		Add("disableStack", s.disableStack).
		Add("fill", s.fill).
		Add("fillAlpha", s.fillAlpha).
		Add("fillAndStroke", s.fillAndStroke).
		Add("fillAxis", s.fillAxis).
		Add("fillColor", s.fillColor).
		Add("fillToValue", s.fillToValue).
		Add("fillToZero", s.fillToZero).
		Add("index", s.index).
		Add("label", s.label).
		Add("lineCap", s.lineCap).
		Add("lineJoin", s.lineJoin).
		Add("lineWidth", s.lineWidth).
		Add("neighborThreshold", s.neighborThreshold).
		Add("renderer", s.renderer).
		Embed(s.rendererOptions).
		Add("markerRenderer", s.markerRenderer).
		Embed(s.markerOptions).
		Splice(s.Shadow).
		Add("showLabel", s.showLabel).
		Add("showMarker", s.showMarker).
		Add("useNegativeColors", s.useNegativeColors).
		Add("show", s.show).
		Add("xaxis", s.xaxis).
		Add("yaxis", s.yaxis).
		Add("showLine", s.showLine))
}

// UsedPlugins returns the plugins of the series and marker renderers and of
// the renderer options, if they declare any.
func (s *Series) UsedPlugins() []string {
	r := js.NewRegistry().Attach(s.renderer, s.markerRenderer)
	if c, ok := s.rendererOptions.(js.PluginConsumer); ok {
		r.Attach(c)
	}
	return r.UsedPlugins()
}

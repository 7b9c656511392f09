package jqplot

import (
	"slices"

	"github.com/matzehuels/chartscript/pkg/errors"
)

// AxisType names one of the four axes a plot can carry. The value doubles as
// the object name of the axis in the rendered options.
type AxisType string

const (
	XAxis  AxisType = "xaxis"
	YAxis  AxisType = "yaxis"
	X2Axis AxisType = "x2axis"
	Y2Axis AxisType = "y2axis"
)

var axisTypes = []AxisType{XAxis, YAxis, X2Axis, Y2Axis}

// ParseAxisType validates an axis name.
func ParseAxisType(s string) (AxisType, error) {
	return parseEnum("axis type", s, axisTypes)
}

// IsX reports whether the axis is horizontal.
func (a AxisType) IsX() bool { return a == XAxis || a == X2Axis }

// IsY reports whether the axis is vertical.
func (a AxisType) IsY() bool { return a == YAxis || a == Y2Axis }

// PointStyle is the shape drawn by the marker renderer.
type PointStyle string

const (
	Circle        PointStyle = "circle"
	FilledCircle  PointStyle = "filledCircle"
	Dash          PointStyle = "dash"
	Diamond       PointStyle = "diamond"
	FilledDiamond PointStyle = "filledDiamond"
	Plus          PointStyle = "plus"
	Square        PointStyle = "square"
	FilledSquare  PointStyle = "filledSquare"
	Cross         PointStyle = "x"
)

var pointStyles = []PointStyle{
	Circle, FilledCircle, Dash, Diamond, FilledDiamond, Plus, Square, FilledSquare, Cross,
}

func ParsePointStyle(s string) (PointStyle, error) {
	return parseEnum("point style", s, pointStyles)
}

// BarDirection orients bars of the bar renderer.
type BarDirection string

const (
	Vertical   BarDirection = "vertical"
	Horizontal BarDirection = "horizontal"
)

func ParseBarDirection(s string) (BarDirection, error) {
	return parseEnum("bar direction", s, []BarDirection{Vertical, Horizontal})
}

// Location is a compass position used by the legend and tooltips.
type Location string

const (
	North     Location = "n"
	NorthEast Location = "ne"
	East      Location = "e"
	SouthEast Location = "se"
	South     Location = "s"
	SouthWest Location = "sw"
	West      Location = "w"
	NorthWest Location = "nw"
)

func ParseLocation(s string) (Location, error) {
	return parseEnum("location", s,
		[]Location{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest})
}

// LegendPlacement positions the legend relative to the grid.
type LegendPlacement string

const (
	InsideGrid  LegendPlacement = "insideGrid"
	OutsideGrid LegendPlacement = "outsideGrid"
	Outside     LegendPlacement = "outside"
)

func ParseLegendPlacement(s string) (LegendPlacement, error) {
	return parseEnum("legend placement", s, []LegendPlacement{InsideGrid, OutsideGrid, Outside})
}

// TooltipAxes selects which coordinates the highlighter tooltip shows.
type TooltipAxes string

const (
	TooltipX    TooltipAxes = "x"
	TooltipY    TooltipAxes = "y"
	TooltipXY   TooltipAxes = "xy"
	TooltipYX   TooltipAxes = "yx"
	TooltipBoth TooltipAxes = "both"
	TooltipPie  TooltipAxes = "pieref"
)

func ParseTooltipAxes(s string) (TooltipAxes, error) {
	return parseEnum("tooltip axes", s,
		[]TooltipAxes{TooltipX, TooltipY, TooltipXY, TooltipYX, TooltipBoth, TooltipPie})
}

// ZoomConstraint limits cursor zooming to one direction.
type ZoomConstraint string

const (
	ZoomNone ZoomConstraint = "none"
	ZoomX    ZoomConstraint = "x"
	ZoomY    ZoomConstraint = "y"
)

func ParseZoomConstraint(s string) (ZoomConstraint, error) {
	return parseEnum("zoom constraint", s, []ZoomConstraint{ZoomNone, ZoomX, ZoomY})
}

func parseEnum[E ~string](what, s string, valid []E) (E, error) {
	if slices.Contains(valid, E(s)) {
		return E(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidArgument, "unknown %s %q", what, s)
}

package jqplot

import (
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// Axis configures one of the plot axes. It renders under its axis type,
// e.g. "xaxis: {...}".
type Axis struct {
	typ           AxisType
	renderer      *js.Renderer
	tickRenderer  *js.Renderer
	labelRenderer *js.Renderer
	label         js.String
	labelOptions  *LabelOptions
	showLabel     js.Bool
	tickOptions   *TickOptions
	min           js.Value
	max           js.Value
	tickInterval  js.String
	numberTicks   js.Int
}

// NewAxis returns an empty axis of the given type.
func NewAxis(t AxisType) *Axis {
	return &Axis{typ: t}
}

// Type returns the axis type.
func (a *Axis) Type() AxisType { return a.typ }

func (a *Axis) SetRenderer(r *js.Renderer) *Axis {
	a.renderer = r
	return a
}

func (a *Axis) SetTickRenderer(r *js.Renderer) *Axis {
	a.tickRenderer = r
	return a
}

func (a *Axis) SetLabelRenderer(r *js.Renderer) *Axis {
	a.labelRenderer = r
	return a
}

// SetLabel sets the axis label and shows it. An empty label removes both.
func (a *Axis) SetLabel(label string) *Axis {
	if label == "" {
		a.label = js.String{}
		a.showLabel = js.Bool{}
		return a
	}
	a.label = js.NewString(label)
	a.showLabel = js.True
	return a
}

func (a *Axis) SetShowLabel(v optional.Option[bool]) *Axis {
	a.showLabel = js.BoolOf(v)
	return a
}

func (a *Axis) SetLabelOptions(o *LabelOptions) *Axis {
	a.labelOptions = o
	return a
}

func (a *Axis) SetTickOptions(o *TickOptions) *Axis {
	a.tickOptions = o
	return a
}

// SetMin sets the lower bound. Any value is accepted so date axes can take
// a date string and numeric axes a number.
func (a *Axis) SetMin(v js.Value) *Axis {
	a.min = v
	return a
}

func (a *Axis) SetMax(v js.Value) *Axis {
	a.max = v
	return a
}

// SetTickInterval takes a renderer-specific interval such as "1 month".
func (a *Axis) SetTickInterval(v optional.Option[string]) *Axis {
	a.tickInterval = js.StringOf(v)
	return a
}

func (a *Axis) SetNumberTicks(v optional.Option[int]) *Axis {
	a.numberTicks = js.IntOf(v)
	return a
}

func (a *Axis) Render() (string, bool) {
	return js.RenderObject(string(a.typ), js.Properties{}.
		Add("renderer", a.renderer).
		Add("tickRenderer", a.tickRenderer).
		Add("labelRenderer", a.labelRenderer).
		Add("label", a.label).
		Embed(a.labelOptions).
		Add("showLabel", a.showLabel).
		Embed(a.tickOptions).
		Add("min", a.min).
		Add("max", a.max).
		Add("tickInterval", a.tickInterval).
		Add("numberTicks", a.numberTicks))
}

func (a *Axis) UsedPlugins() []string {
	return js.NewRegistry().
		Attach(a.renderer, a.tickRenderer, a.labelRenderer).
		UsedPlugins()
}

// Axes is the "axes" object holding at most one axis per type, in the order
// they were first added.
type Axes struct {
	items []*Axis
}

func NewAxes() *Axes { return &Axes{} }

// AddIfNotNil adds axis, replacing an earlier axis of the same type in
// place. A nil axis is ignored.
func (a *Axes) AddIfNotNil(axis *Axis) *Axes {
	if axis == nil {
		return a
	}
	for i, existing := range a.items {
		if existing.typ == axis.typ {
			a.items[i] = axis
			return a
		}
	}
	a.items = append(a.items, axis)
	return a
}

// Get returns the axis of type t, if any.
func (a *Axes) Get(t AxisType) (*Axis, bool) {
	for _, axis := range a.items {
		if axis.typ == t {
			return axis, true
		}
	}
	return nil, false
}

// Len returns the number of configured axes.
func (a *Axes) Len() int { return len(a.items) }

func (a *Axes) Render() (string, bool) {
	props := make(js.Properties, 0, len(a.items))
	for _, axis := range a.items {
		props = props.Embed(axis)
	}
	return js.RenderObject("axes", props)
}

func (a *Axes) UsedPlugins() []string {
	r := js.NewRegistry()
	for _, axis := range a.items {
		r.Attach(axis)
	}
	return r.UsedPlugins()
}

// TickOptions configures tick marks and tick labels of an axis.
type TickOptions struct {
	*js.Label[*TickOptions]

	mark         js.String
	showMark     js.Bool
	showGridline js.Bool
	markSize     js.Int
	show         js.Bool
	size         js.Int
	prefix       js.String
}

func NewTickOptions() *TickOptions {
	o := &TickOptions{}
	o.Label = js.Must(js.NewLabel(o))
	return o
}

// SetMark takes "inside", "outside" or "cross".
func (o *TickOptions) SetMark(v optional.Option[string]) *TickOptions {
	o.mark = js.StringOf(v)
	return o
}

func (o *TickOptions) SetShowMark(v optional.Option[bool]) *TickOptions {
	o.showMark = js.BoolOf(v)
	return o
}

func (o *TickOptions) SetShowGridline(v optional.Option[bool]) *TickOptions {
	o.showGridline = js.BoolOf(v)
	return o
}

func (o *TickOptions) SetMarkSize(v optional.Option[int]) *TickOptions {
	o.markSize = js.IntOf(v)
	return o
}

func (o *TickOptions) SetShow(v optional.Option[bool]) *TickOptions {
	o.show = js.BoolOf(v)
	return o
}

func (o *TickOptions) SetSize(v optional.Option[int]) *TickOptions {
	o.size = js.IntOf(v)
	return o
}

func (o *TickOptions) SetPrefix(v optional.Option[string]) *TickOptions {
	o.prefix = js.StringOf(v)
	return o
}

func (o *TickOptions) Render() (string, bool) {
	return js.RenderObject("tickOptions", js.Properties{}.
		Add("mark", o.mark).
		Add("showMark", o.showMark).
		Add("showGridline", o.showGridline).
		Add("markSize", o.markSize).
		Add("show", o.show).
		Add("size", o.size).
		Add("prefix", o.prefix).
		Splice(o.Label))
}

// LabelOptions configures the axis label text.
type LabelOptions struct {
	*js.Label[*LabelOptions]

	show js.Bool
}

func NewLabelOptions() *LabelOptions {
	o := &LabelOptions{}
	o.Label = js.Must(js.NewLabel(o))
	return o
}

func (o *LabelOptions) SetShow(v optional.Option[bool]) *LabelOptions {
	o.show = js.BoolOf(v)
	return o
}

func (o *LabelOptions) Render() (string, bool) {
	return js.RenderObject("labelOptions", js.Properties{}.
		Add("show", o.show).
		Splice(o.Label))
}

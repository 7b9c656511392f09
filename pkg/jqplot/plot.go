package jqplot

import (
	"strings"

	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/series"
)

const plotFunction = "$.jqplot"

// Plot is a chart ready to be rendered into the page script.
type Plot struct {
	chartID          string
	data             *series.SeriesData
	options          *Options
	nothingToDisplay bool
	hooks            hookSet
}

// NewPlot returns a plot for the DOM element chartID. Options may be nil,
// in which case the client defaults apply. A plot without data renders
// nothing.
func NewPlot(chartID string, data *series.SeriesData, options *Options) (*Plot, error) {
	if strings.TrimSpace(chartID) == "" {
		return nil, errors.NullArgument("chart id")
	}
	if data == nil {
		return nil, errors.NullArgument("series data")
	}
	return &Plot{
		chartID:          chartID,
		data:             data,
		options:          options,
		nothingToDisplay: data.IsEmpty(),
	}, nil
}

// ChartID returns the id of the target element.
func (p *Plot) ChartID() string { return p.chartID }

// Options returns the option tree, or nil.
func (p *Plot) Options() *Options { return p.options }

// NothingToDisplay reports whether the plot renders as an empty statement.
func (p *Plot) NothingToDisplay() bool { return p.nothingToDisplay }

// SetNothingToDisplay overrides the empty-data detection.
func (p *Plot) SetNothingToDisplay(v bool) *Plot {
	p.nothingToDisplay = v
	return p
}

// AddHook appends h unless a hook with the same ID was added before.
func (p *Plot) AddHook(h Hook) *Plot {
	p.hooks.add(h)
	return p
}

// Render returns the plot creation statement followed by all hook code.
// Render always reports present; a plot with nothing to display renders
// as an empty string statement.
func (p *Plot) Render() (string, bool) {
	if p.nothingToDisplay {
		return "'';", true
	}

	var b strings.Builder
	b.WriteString(plotFunction)
	b.WriteByte('(')
	b.WriteString(js.Literal(js.NewString(p.chartID), `""`))
	b.WriteString(", ")
	b.WriteString(js.Literal(p.data, "[]"))
	b.WriteString(", ")
	b.WriteString(js.Literal(p.options, "null"))
	b.WriteString(");")
	if p.options != nil {
		b.WriteString(p.options.Hook().Code)
	}
	b.WriteString(p.hooks.code())
	return b.String(), true
}

// String returns the rendered script.
func (p *Plot) String() string {
	s, _ := p.Render()
	return s
}

// UsedPlugins returns the script files the plot needs, in first-use order.
// An empty plot needs none.
func (p *Plot) UsedPlugins() []string {
	if p.nothingToDisplay || p.options == nil {
		return []string{}
	}
	return p.options.UsedPlugins()
}

// Builder assembles a Plot step by step.
type Builder struct {
	chartID string
	data    *series.SeriesData
	options *Options
}

func NewBuilder() *Builder { return &Builder{} }

// UseChartID sets the target element id. It may be called once.
func (b *Builder) UseChartID(id string) (*Builder, error) {
	if strings.TrimSpace(id) == "" {
		return b, errors.NullArgument("chart id")
	}
	if b.chartID != "" {
		return b, errors.New(errors.ErrCodeInvalidState, "chart id already defined")
	}
	b.chartID = id
	return b, nil
}

// UseData returns the series data, creating it on first use.
func (b *Builder) UseData() *series.SeriesData {
	if b.data == nil {
		b.data = series.New()
	}
	return b.data
}

// UseOptions returns the options, creating them on first use.
func (b *Builder) UseOptions() *Options {
	if b.options == nil {
		b.options = NewOptions()
	}
	return b.options
}

// Build returns the plot. The chart id and data must have been defined.
func (b *Builder) Build() (*Plot, error) {
	if b.chartID == "" {
		return nil, errors.New(errors.ErrCodeInvalidState, "chart id must be defined")
	}
	if b.data == nil {
		return nil, errors.New(errors.ErrCodeInvalidState, "series data must be defined")
	}
	return NewPlot(b.chartID, b.data, b.options)
}

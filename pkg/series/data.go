package series

import (
	"github.com/matzehuels/chartscript/pkg/js"
)

// SeriesData is the complete data argument of a plot: one array per series.
type SeriesData struct {
	nested *js.Array[js.Sequence]
}

// New returns empty series data.
func New() *SeriesData {
	return &SeriesData{nested: js.NewArray[js.Sequence]()}
}

// AddSeriaDataIfNotNil appends data unless it is nil or empty.
func (d *SeriesData) AddSeriaDataIfNotNil(data js.Sequence) *SeriesData {
	if js.OmitEmpty(data) == nil {
		return d
	}
	d.nested.Add(data)
	return d
}

// AddContainer appends the array of c unless c is nil or empty.
func (d *SeriesData) AddContainer(c Container) *SeriesData {
	if c == nil {
		return d
	}
	return d.AddSeriaDataIfNotNil(c.AsArray())
}

// IsEmpty reports whether no series has been added.
func (d *SeriesData) IsEmpty() bool { return d.nested.IsEmpty() }

// Len returns the number of series.
func (d *SeriesData) Len() int { return d.nested.Len() }

func (d *SeriesData) Render() (string, bool) { return d.nested.Render() }

// Builder collects series and assembles them on Build. The zero value is
// ready to use.
type Builder struct {
	candidates []Container
}

// CreateTimeLineWithDoubleValues registers and returns a time line with
// floating point values.
func (b *Builder) CreateTimeLineWithDoubleValues(format js.DateTimeFormat) (*TimeLineSeries[float64], error) {
	t, err := NewTimeLineSeries[float64](format)
	if err != nil {
		return nil, err
	}
	b.candidates = append(b.candidates, t)
	return t, nil
}

// CreateTimeLineWithIntegerValues registers and returns a time line with
// integer values.
func (b *Builder) CreateTimeLineWithIntegerValues(format js.DateTimeFormat) (*TimeLineSeries[int], error) {
	t, err := NewTimeLineSeries[int](format)
	if err != nil {
		return nil, err
	}
	b.candidates = append(b.candidates, t)
	return t, nil
}

// CreateSeria registers and returns a free-form tuple seria.
func (b *Builder) CreateSeria() *Seria {
	s := NewSeria()
	b.candidates = append(b.candidates, s)
	return s
}

// Build assembles every registered series in creation order, skipping the
// ones left empty.
func (b *Builder) Build() *SeriesData {
	d := New()
	for _, c := range b.candidates {
		d.AddContainer(c)
	}
	return d
}

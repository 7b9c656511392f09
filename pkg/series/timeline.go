package series

import (
	"reflect"
	"time"

	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/js"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// Number constrains time line y values.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// TimeLineSeries is a seria whose x axis is calendar time written in a
// fixed format. Integer y values render as integers, floating point ones
// with three decimals.
type TimeLineSeries[N Number] struct {
	seria  *Seria
	format js.DateTimeFormat
}

// NewTimeLineSeries returns an empty time line. The format is required.
func NewTimeLineSeries[N Number](format js.DateTimeFormat) (*TimeLineSeries[N], error) {
	if !format.Valid() {
		return nil, errors.NullArgument("time line format")
	}
	return &TimeLineSeries[N]{seria: NewSeria(), format: format}, nil
}

// Format returns the x axis format.
func (t *TimeLineSeries[N]) Format() js.DateTimeFormat { return t.format }

// Add appends a tuple. Both coordinates are required.
func (t *TimeLineSeries[N]) Add(x optional.Option[time.Time], y optional.Option[N]) error {
	if !x.Has() {
		return errors.NullArgument("x")
	}
	if !y.Has() {
		return errors.NullArgument("y")
	}
	t.seria.AddTupleIfComplete(js.NewDateTime(x.Value(), t.format), yValue(y.Value()))
	return nil
}

// AddIfNotEmpty appends a tuple when both coordinates are set and skips it
// otherwise.
func (t *TimeLineSeries[N]) AddIfNotEmpty(x optional.Option[time.Time], y optional.Option[N]) *TimeLineSeries[N] {
	if x.Has() && y.Has() {
		t.seria.AddTupleIfComplete(js.NewDateTime(x.Value(), t.format), yValue(y.Value()))
	}
	return t
}

// Len returns the number of tuples.
func (t *TimeLineSeries[N]) Len() int { return t.seria.Len() }

// AsArray returns the tuple array, or nil for a nil series.
func (t *TimeLineSeries[N]) AsArray() js.Sequence {
	if t == nil {
		return nil
	}
	return t.seria.AsArray()
}

func (t *TimeLineSeries[N]) Render() (string, bool) { return t.seria.Render() }

func yValue[N Number](n N) js.Value {
	switch reflect.TypeOf(n).Kind() {
	case reflect.Float32, reflect.Float64:
		return js.NewDouble(float64(n))
	}
	return js.NewInt(int(n))
}

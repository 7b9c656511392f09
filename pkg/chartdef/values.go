package chartdef

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/js"
)

// Attribute looks up an attribute and asserts its type. A missing attribute
// reports false with no error. Numbers convert between integer and float
// kinds when no precision is lost, since JSON decodes every number as
// float64 and TOML decodes integers as int64.
func Attribute[T any](d *Definition, name string) (T, bool, error) {
	var zero T
	raw, ok := d.Attributes[name]
	if !ok || raw == nil {
		return zero, false, nil
	}
	if v, ok := raw.(T); ok {
		return v, true, nil
	}
	if v, ok := convertNumber[T](raw); ok {
		return v, true, nil
	}
	return zero, false, errors.TypeMismatch("attribute "+name, zero, raw)
}

func convertNumber[T any](raw any) (T, bool) {
	var out T
	f, ok := asFloat(raw)
	if !ok || !finite(f) {
		return out, false
	}
	switch p := any(&out).(type) {
	case *float64:
		*p = f
	case *int:
		if f != math.Trunc(f) {
			return out, false
		}
		*p = int(f)
	case *int64:
		if f != math.Trunc(f) {
			return out, false
		}
		*p = int64(f)
	default:
		return out, false
	}
	return out, true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// scalar converts a decoded scalar into a js value; nil stays absent.
func scalar(name string, v any, format js.DateTimeFormat) (js.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return js.NewString(x), nil
	case bool:
		return js.NewBool(x), nil
	case int:
		return js.NewInt(x), nil
	case int64:
		return js.NewInt(int(x)), nil
	case float64:
		if !finite(x) {
			return nil, errors.New(errors.ErrCodeInvalidArgument, "%s: %v is not a finite number", name, x)
		}
		return js.NewDouble(x), nil
	case time.Time:
		return js.NewDateTime(x, format), nil
	}
	return nil, errors.New(errors.ErrCodeTypeMismatch, "%s: unsupported value of type %T", name, v)
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"}

func date(name string, v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, errors.New(errors.ErrCodeInvalidFormat, "%s: cannot parse date %q", name, x)
	}
	return time.Time{}, errors.TypeMismatch(name, time.Time{}, v)
}

func decimal(name string, v any) (float64, error) {
	f, ok := asFloat(v)
	if !ok {
		return 0, errors.TypeMismatch(name, float64(0), v)
	}
	if !finite(f) {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "%s: %v is not a finite number", name, f)
	}
	return f, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func integer(name string, v any) (int, error) {
	f, ok := asFloat(v)
	if !ok || !finite(f) || f != math.Trunc(f) {
		return 0, errors.TypeMismatch(name, 0, v)
	}
	return int(f), nil
}

// checkFinite rejects NaN and infinite values in the typed float fields.
func (d *Definition) checkFinite() error {
	type field struct {
		name string
		v    *float64
	}
	var fields []field
	addSeries := func(name string, s *Series) {
		if s == nil {
			return
		}
		fields = append(fields, field{name + ".line_width", s.LineWidth})
		if s.Marker != nil {
			fields = append(fields, field{name + ".marker.size", s.Marker.Size})
		}
		if s.Bar != nil {
			fields = append(fields, field{name + ".bar.width", s.Bar.Width})
		}
	}
	addSeries("series_defaults", d.SeriesDefaults)
	for i := range d.Series {
		addSeries(fmt.Sprintf("series[%d]", i), &d.Series[i])
	}
	if d.Highlighter != nil {
		fields = append(fields, field{"highlighter.size_adjust", d.Highlighter.SizeAdjust})
	}
	if d.Grid != nil {
		fields = append(fields, field{"grid.border_width", d.Grid.BorderWidth})
	}

	for _, f := range fields {
		if f.v != nil && !finite(*f.v) {
			return errors.New(errors.ErrCodeInvalidArgument, "%s: %v is not a finite number", f.name, *f.v)
		}
	}
	return nil
}

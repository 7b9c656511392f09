package js

import (
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/matzehuels/chartscript/pkg/optional"
)

// String is a double-quoted, escaped string literal.
type String struct{ v optional.Option[string] }

// NewString returns a present String.
func NewString(s string) String { return String{optional.Some(s)} }

// StringOf returns a String that is absent when o is None.
func StringOf(o optional.Option[string]) String { return String{o} }

// NonEmptyString returns a String that is absent when s is empty.
func NonEmptyString(s string) String { return String{optional.FromNonDefault(s)} }

func (s String) Render() (string, bool) {
	if !s.v.Has() {
		return "", false
	}
	return `"` + escape(s.v.Value()) + `"`, true
}

func (s String) IsNull() bool { return !s.v.Has() }

// Value returns the wrapped string.
func (s String) Value() optional.Option[string] { return s.v }

// Bool renders as bare true or false.
type Bool struct{ v optional.Option[bool] }

// Shared Bool constants.
var (
	True  = Bool{optional.Some(true)}
	False = Bool{optional.Some(false)}
)

// NewBool returns a present Bool.
func NewBool(b bool) Bool { return Bool{optional.Some(b)} }

// BoolOf returns a Bool that is absent when o is None.
func BoolOf(o optional.Option[bool]) Bool { return Bool{o} }

func (b Bool) Render() (string, bool) {
	if !b.v.Has() {
		return "", false
	}
	return strconv.FormatBool(b.v.Value()), true
}

func (b Bool) IsNull() bool { return !b.v.Has() }

// Value returns the wrapped bool.
func (b Bool) Value() optional.Option[bool] { return b.v }

// Int renders as a decimal integer token.
type Int struct{ v optional.Option[int] }

// NewInt returns a present Int.
func NewInt(i int) Int { return Int{optional.Some(i)} }

// IntOf returns an Int that is absent when o is None.
func IntOf(o optional.Option[int]) Int { return Int{o} }

func (i Int) Render() (string, bool) {
	if !i.v.Has() {
		return "", false
	}
	return strconv.Itoa(i.v.Value()), true
}

func (i Int) IsNull() bool { return !i.v.Has() }

// Value returns the wrapped int.
func (i Int) Value() optional.Option[int] { return i.v }

// Double renders with exactly three decimals: 10 renders as 10.000. NaN and
// the infinities have no literal form and render as absent.
type Double struct{ v optional.Option[float64] }

// NewDouble returns a present Double.
func NewDouble(f float64) Double { return Double{optional.Some(f)} }

// DoubleOf returns a Double that is absent when o is None.
func DoubleOf(o optional.Option[float64]) Double { return Double{o} }

func (d Double) Render() (string, bool) {
	if d.IsNull() {
		return "", false
	}
	return strconv.FormatFloat(d.v.Value(), 'f', 3, 64), true
}

func (d Double) IsNull() bool {
	if !d.v.Has() {
		return true
	}
	f := d.v.Value()
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Value returns the wrapped float.
func (d Double) Value() optional.Option[float64] { return d.v }

// Identifier is a raw, unquoted JavaScript reference such as
// $.jqplot.DateAxisRenderer or a function name.
type Identifier struct{ v optional.Option[string] }

// NewIdentifier returns an Identifier; an empty name is absent.
func NewIdentifier(name string) Identifier { return Identifier{optional.FromNonDefault(name)} }

func (id Identifier) Render() (string, bool) {
	if !id.v.Has() {
		return "", false
	}
	return id.v.Value(), true
}

func (id Identifier) IsNull() bool { return !id.v.Has() }

// Transparent is the value an explicitly emptied Color renders.
const Transparent = "transparent"

// Color is a quoted CSS color. Setting it to the empty string yields
// "transparent" rather than absent.
type Color struct{ v optional.Option[string] }

// NewColor returns a present Color.
func NewColor(c string) Color {
	if strings.TrimSpace(c) == "" {
		c = Transparent
	}
	return Color{optional.Some(c)}
}

// ColorOf returns a Color that is absent when o is None.
func ColorOf(o optional.Option[string]) Color {
	if !o.Has() {
		return Color{}
	}
	return NewColor(o.Value())
}

func (c Color) Render() (string, bool) {
	if !c.v.Has() {
		return "", false
	}
	return `"` + escape(c.v.Value()) + `"`, true
}

func (c Color) IsNull() bool { return !c.v.Has() }

// escape makes s safe inside a double-quoted literal embedded in a <script>
// block.
func escape(s string) string {
	return template.JSEscapeString(s)
}

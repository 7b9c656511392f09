package js

import "reflect"

// Value is a typed unit of the literal grammar.
//
// Render returns the literal text and true, or "" and false when the value
// is absent. Render must be pure: calling it twice on an unmodified tree
// yields identical output.
type Value interface {
	Render() (string, bool)
}

// Nullable is implemented by primitive values wrapping a possibly-null datum.
type Nullable interface {
	IsNull() bool
}

// Sequence is a Value with a length, implemented by [Array].
type Sequence interface {
	Value
	Len() int
}

// Render renders v, treating a nil interface or nil pointer as absent.
func Render(v Value) (string, bool) {
	if isNil(v) {
		return "", false
	}
	return v.Render()
}

// IsPresent reports whether v renders.
func IsPresent(v Value) bool {
	_, ok := Render(v)
	return ok
}

// Literal returns the rendering of v, or fallback when v is absent.
func Literal(v Value, fallback string) string {
	if s, ok := Render(v); ok {
		return s
	}
	return fallback
}

// isNull reports whether v is nil or a null primitive.
func isNull(v Value) bool {
	if isNil(v) {
		return true
	}
	if n, ok := v.(Nullable); ok {
		return n.IsNull()
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

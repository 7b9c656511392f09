package js

import "strings"

// Array is an ordered, typed sequence rendering to [a,b,...].
//
// Nil entries and null primitives are dropped when added. An element that
// becomes absent after insertion (a mutable object emptied later) renders
// as null so the positions of its siblings do not shift.
type Array[T Value] struct {
	items []T
}

// NewArray returns an array holding the non-null values of items.
func NewArray[T Value](items ...T) *Array[T] {
	a := &Array[T]{}
	return a.AddAll(items...)
}

// Add appends v unless it is nil or null.
func (a *Array[T]) Add(v T) *Array[T] {
	if isNull(v) {
		return a
	}
	a.items = append(a.items, v)
	return a
}

// AddAll appends every non-null value.
func (a *Array[T]) AddAll(vs ...T) *Array[T] {
	for _, v := range vs {
		a.Add(v)
	}
	return a
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.items) }

// IsEmpty reports whether the array has no elements.
func (a *Array[T]) IsEmpty() bool { return len(a.items) == 0 }

// Items returns a copy of the elements.
func (a *Array[T]) Items() []T {
	return append([]T(nil), a.items...)
}

// Render always reports present; an empty array renders as [].
func (a *Array[T]) Render() (string, bool) {
	parts := make([]string, len(a.items))
	for i, v := range a.items {
		parts[i] = Literal(v, "null")
	}
	return "[" + strings.Join(parts, ",") + "]", true
}

// OmitEmpty returns s, or nil when s is nil or has no elements. Composing
// objects use it for arrays that should disappear instead of rendering [].
func OmitEmpty(s Sequence) Value {
	if isNil(s) || s.Len() == 0 {
		return nil
	}
	return s
}

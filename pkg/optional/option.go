// Package optional provides a nullable value container.
//
// Option is the Go rendition of a boxed, possibly-null datum: every primitive
// JavaScript value in this module wraps one, and every setter that accepts
// "no value" to clear a property takes one.
package optional

import "fmt"

// Option holds zero or one value of T. The zero value is None.
type Option[T any] []T

// None returns an empty Option.
func None[T any]() Option[T] {
	return nil
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{v}
}

// FromPtr returns None for a nil pointer and Some(*v) otherwise.
func FromPtr[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

// FromNonDefault returns None when v is the zero value of T.
func FromNonDefault[T comparable](v T) Option[T] {
	var zero T
	if v == zero {
		return None[T]()
	}
	return Some(v)
}

// Has reports whether a value is present.
func (o Option[T]) Has() bool {
	return o != nil
}

// Value returns the held value, or the zero value of T.
func (o Option[T]) Value() T {
	var zero T
	return o.ValueOrDefault(zero)
}

// ValueOrDefault returns the held value, or v if none is held.
func (o Option[T]) ValueOrDefault(v T) T {
	if o.Has() {
		return o[0]
	}
	return v
}

// Ptr returns a pointer to a copy of the held value, or nil.
func (o Option[T]) Ptr() *T {
	if !o.Has() {
		return nil
	}
	v := o[0]
	return &v
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.Has() {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o[0])
}

/*
Package maybe implements the Maybe monad and its alias Option.

A Maybe represents a computation which may or may not produce a value. Create
Maybe values with Just or Nothing:

	x := maybe.Just(19)
	y := maybe.Just("A string")
	z := maybe.Nothing[int]()

Insert is a wrapper around Just.

Option is the same type under a different name. Some creates a present value
which renders as "Some v" instead of "Just v"; there is no separate absent
Option, Nothing serves both. Equality ignores the display identity, thus

	maybe.Just(1).Equal(maybe.Some(1)) == true

Functions handed to Map and Bind are total from the caller's point of view:
if one panics, the result is Nothing. TryMap and TryBind accept functions
returning an error instead.
*/
package maybe

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'monads'
func tracer() tracing.Trace {
	return tracing.Select("monads")
}

// style is the display identity of a present value.
type style uint8

const (
	styleJust style = iota
	styleSome
)

// Maybe holds either a value (Just) or nothing. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
	style style
}

// Option is an alias for Maybe, rendering present values as "Some v".
type Option[T any] = Maybe[T]

// constructors...

// Just creates a Maybe holding v.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, just: true}
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Maybe[T]{value: v, just: true, style: styleSome}
}

// Nothing returns the absent value. All absent values of a type are identical.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Insert lifts v into the Maybe monad; same as Just.
func Insert[T any](v T) Maybe[T] {
	return Just(v)
}

// FromOk converts the Go "(value, ok)" pattern into a Maybe.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

// FromError converts the Go "(value, err)" pattern into a Maybe, dropping the
// error.
func FromError[T any](v T, err error) Maybe[T] {
	if err != nil {
		tracer().Debugf("maybe: error turned into Nothing: %v", err)
		return Nothing[T]()
	}
	return Just(v)
}

// read-only access...

func (m Maybe[T]) IsJust() bool    { return m.just }
func (m Maybe[T]) IsNothing() bool { return !m.just }

// IsOption reports whether m is a present value created as an Option.
func (m Maybe[T]) IsOption() bool { return m.just && m.style == styleSome }

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// OrElse returns the value or def if m is Nothing.
func (m Maybe[T]) OrElse(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// AsOption returns m with the Option display identity.
func (m Maybe[T]) AsOption() Option[T] {
	if m.just {
		m.style = styleSome
	}
	return m
}

// AsMaybe returns m with the Maybe display identity.
func (m Maybe[T]) AsMaybe() Maybe[T] {
	m.style = styleJust
	return m
}

// Equal reports whether other is a Maybe of the same state holding an equal
// value. Any two absent values are equal. Display identity is not compared,
// and values of different static type parameters compare by their dynamic
// values, so Just(5) equals Just[any](5). Comparing to anything which is not
// a Maybe yields false.
func (m Maybe[T]) Equal(other any) bool {
	o, ok := other.(optional)
	if !ok {
		return false
	}
	e := o.erase()
	if m.just != e.just {
		return false
	}
	return !m.just || reflect.DeepEqual(any(m.value), e.value)
}

func (m Maybe[T]) String() string {
	switch {
	case !m.just:
		return "Nothing"
	case m.style == styleSome:
		return fmt.Sprintf("Some %v", m.value)
	}
	return fmt.Sprintf("Just %v", m.value)
}

// optional is implemented by every instantiation of Maybe.
type optional interface {
	erase() Maybe[any]
}

func (m Maybe[T]) erase() Maybe[any] {
	if !m.just {
		return Maybe[any]{}
	}
	return Maybe[any]{value: m.value, just: true, style: m.style}
}

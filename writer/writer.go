/*
Package writer implements the Writer monad.

The Writer monad is typically used to append information to a log. The log
can be of any type which is a Monoid, i.e. has an associative Combine and an
identity element returned by Empty. Text is the most common choice.

	add := func(y int) func(int) writer.Writer[int, writer.Text] {
		return func(x int) writer.Writer[int, writer.Text] {
			return writer.New(x+y, writer.Text(fmt.Sprintf("add %d to %d. ", y, x)))
		}
	}
	w := writer.Insert[int, writer.Text](0).Then(add(1), add(2))
	// w == (3, add 1 to 0. add 2 to 1. )

Unlike Maybe, a Writer does not protect against failing functions: a panic
in a function handed to Map or Bind propagates to the caller, and the log
accumulated so far is lost.
*/
package writer

import (
	"fmt"
	"reflect"
)

// Monoid is the constraint for log types. Combine must be associative and
// the value returned by Empty (called on the zero value) must be its identity
// element. Types without an identity cannot serve as a Writer log.
type Monoid[L any] interface {
	Combine(L) L
	Empty() L
}

// Writer holds a value together with an accumulated log.
type Writer[T any, L Monoid[L]] struct {
	value T
	log   L
}

// Entry pairs a value with a log, see Listen.
type Entry[T, L any] struct {
	Value T
	Log   L
}

// constructors...

// New creates a Writer holding v and log.
func New[T any, L Monoid[L]](v T, log L) Writer[T, L] {
	return Writer[T, L]{value: v, log: log}
}

// Insert creates a Writer holding v and the empty log.
func Insert[T any, L Monoid[L]](v T) Writer[T, L] {
	return Writer[T, L]{value: v, log: empty[L]()}
}

// Tell creates a Writer which contributes log and no value.
func Tell[L Monoid[L]](log L) Writer[struct{}, L] {
	return Writer[struct{}, L]{log: log}
}

func empty[L Monoid[L]]() L {
	var zero L
	return zero.Empty()
}

// read-only access...

func (w Writer[T, L]) Value() T { return w.value }
func (w Writer[T, L]) Log() L   { return w.log }

// Run returns value and log.
func (w Writer[T, L]) Run() (T, L) {
	return w.value, w.log
}

// Equal reports whether other is a Writer with the same log type holding an
// equal value and an equal log. Empty slice logs are equal whether nil or not.
func (w Writer[T, L]) Equal(other any) bool {
	o, ok := other.(logged[L])
	if !ok {
		return false
	}
	v, log := o.unwrap()
	return reflect.DeepEqual(any(w.value), v) && logsEqual(w.log, log)
}

func logsEqual[L any](a, b L) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.Slice && vb.Kind() == reflect.Slice && va.Len() == 0 && vb.Len() == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func (w Writer[T, L]) String() string {
	return fmt.Sprintf("(%v, %v)", w.value, w.log)
}

// logged is implemented by every Writer with log type L.
type logged[L Monoid[L]] interface {
	unwrap() (any, L)
}

func (w Writer[T, L]) unwrap() (any, L) {
	return w.value, w.log
}

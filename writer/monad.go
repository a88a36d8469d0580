package writer

import (
	"fmt"

	"github.com/pesco/monads/monad"
)

// monad instance...

func (w Writer[T, L]) Insert_(x any) monad.Monad {
	return Insert[any, L](x)
}

func (w Writer[T, L]) Map_(f func(any) any) monad.Monad {
	return Writer[any, L]{value: f(w.value), log: w.log}
}

// Bind_ expects f to return a Writer with the same log type as w.
func (w Writer[T, L]) Bind_(f func(any) monad.Monad) monad.Monad {
	r := f(w.value)
	o, ok := r.(logged[L])
	if !ok {
		monad.Violate("Writer.Bind_", fmt.Sprintf("a Writer with log type %T", w.log), r)
	}
	v, log := o.unwrap()
	return Writer[any, L]{value: v, log: w.log.Combine(log)}
}

// Amap_ expects w to wrap a func(any) any and mv to be a Writer with the
// same log type.
func (w Writer[T, L]) Amap_(mv monad.Monad) monad.Monad {
	o, ok := mv.(logged[L])
	if !ok {
		monad.Violate("Writer.Amap_", fmt.Sprintf("a Writer with log type %T", w.log), mv)
	}
	f, ok := any(w.value).(func(any) any)
	if !ok {
		monad.Violate("Writer.Amap_", "a Writer of func(any) any", w.value)
	}
	v, log := o.unwrap()
	return Writer[any, L]{value: f(v), log: w.log.Combine(log)}
}

var _ monad.Monad = Writer[int, Text]{}

package maybe

import "github.com/pesco/monads/monad"

// monad instance...
//
// results of the erased operations are always of type Maybe[any], whatever
// the state of the receiver.

// Insert_ creates a present Maybe[any] with the display identity of m.
func (m Maybe[T]) Insert_(x any) monad.Monad {
	return Maybe[any]{value: x, just: true, style: m.style}
}

func (m Maybe[T]) Map_(f func(any) any) monad.Monad {
	if !m.just {
		return Nothing[any]()
	}
	return Map(m.erase(), f)
}

// Bind_ expects f to return a Maybe of any type parameter. Presence and value
// of that result are kept, a present result takes the display identity of m.
func (m Maybe[T]) Bind_(f func(any) monad.Monad) monad.Monad {
	if !m.just {
		return Nothing[any]()
	}
	r, ok := guard(f, any(m.value))
	if !ok {
		return Nothing[any]()
	}
	o, isMaybe := r.(optional)
	if !isMaybe {
		monad.Violate("Maybe.Bind_", "a Maybe", r)
	}
	e := o.erase()
	if e.just {
		e.style = m.style
	}
	return e
}

// Amap_ expects m to wrap a func(any) any.
func (m Maybe[T]) Amap_(mv monad.Monad) monad.Monad {
	arg, isMaybe := mv.(optional)
	if !isMaybe {
		monad.Violate("Maybe.Amap_", "a Maybe", mv)
	}
	if !m.just {
		return Nothing[any]()
	}
	f, isFunc := any(m.value).(func(any) any)
	if !isFunc {
		monad.Violate("Maybe.Amap_", "a Maybe of func(any) any", m.value)
	}
	mf := Maybe[func(any) any]{value: f, just: true, style: m.style}
	return Amap(mf, arg.erase())
}

var _ monad.Monad = Maybe[int]{}

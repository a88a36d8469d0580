package maybe

import "github.com/pesco/monads/monad"

// guard calls f(x). A panic in f is turned into ok == false; contract
// violations are passed on.
func guard[T, U any](f func(T) U, x T) (u U, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if cerr, isContract := r.(*monad.ContractError); isContract {
				panic(cerr)
			}
			tracer().Debugf("maybe: panic in user function turned into Nothing: %v", r)
			ok = false
		}
	}()
	return f(x), true
}

// Map applies f to the value of m. If m is Nothing, f is not called. If f
// panics, the result is Nothing. The display identity of m is kept.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.just {
		return Nothing[U]()
	}
	u, ok := guard(f, m.value)
	if !ok {
		return Nothing[U]()
	}
	return Maybe[U]{value: u, just: true, style: m.style}
}

// Bind applies the Kleisli function f to the value of m. Presence and value
// of f's result are returned as is, a present result takes the display
// identity of m. If m is Nothing, f is not called. If f panics, the result is
// Nothing.
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.just {
		return Nothing[U]()
	}
	r, ok := guard(f, m.value)
	if !ok {
		return Nothing[U]()
	}
	if r.just {
		r.style = m.style
	}
	return r
}

// Amap applies the function wrapped in mf to the value wrapped in m. If either
// is Nothing, the result is Nothing. The result has the display identity of mf.
func Amap[T, U any](mf Maybe[func(T) U], m Maybe[T]) Maybe[U] {
	if !mf.just || !m.just {
		return Nothing[U]()
	}
	m.style = mf.style
	return Map(m, mf.value)
}

// LiftA2 applies a two-argument function to the values of a and b.
func LiftA2[A, B, C any](f func(A, B) C, a Maybe[A], b Maybe[B]) Maybe[C] {
	curried := func(x A) func(B) C {
		return func(y B) C { return f(x, y) }
	}
	return Amap(Map(a, curried), b)
}

// TryMap is Map for functions reporting failure by an error. A non-nil error
// results in Nothing.
func TryMap[T, U any](m Maybe[T], f func(T) (U, error)) Maybe[U] {
	return Bind(m, func(x T) Maybe[U] {
		u, err := f(x)
		if err != nil {
			tracer().Debugf("maybe: error turned into Nothing: %v", err)
			return Nothing[U]()
		}
		return Maybe[U]{value: u, just: true, style: m.style}
	})
}

// TryBind is Bind for Kleisli functions reporting failure by an error. A
// non-nil error results in Nothing.
func TryBind[T, U any](m Maybe[T], f func(T) (Maybe[U], error)) Maybe[U] {
	return Bind(m, func(x T) Maybe[U] {
		r, err := f(x)
		if err != nil {
			tracer().Debugf("maybe: error turned into Nothing: %v", err)
			return Nothing[U]()
		}
		return r
	})
}

// Fold returns f applied to the value of m, or def if m is Nothing.
func Fold[T, U any](def U, f func(T) U, m Maybe[T]) U {
	if !m.just {
		return def
	}
	return f(m.value)
}

// Catch wraps f into a Kleisli function, turning panics into Nothing.
func Catch[T, U any](f func(T) U) func(T) Maybe[U] {
	return func(x T) Maybe[U] {
		return Map(Just(x), f)
	}
}

// methods...

// Map is the type-preserving variant of the package function Map, for use in
// fluent chains.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if !m.just {
		return m
	}
	return Map(m, f)
}

// Bind is the type-preserving variant of the package function Bind.
func (m Maybe[T]) Bind(f func(T) Maybe[T]) Maybe[T] {
	if !m.just {
		return m
	}
	return Bind(m, f)
}

// Then binds steps from left to right. The first step producing Nothing
// short-circuits the rest.
func (m Maybe[T]) Then(steps ...func(T) Maybe[T]) Maybe[T] {
	for _, f := range steps {
		if !m.just {
			break
		}
		m = Bind(m, f)
	}
	return m
}

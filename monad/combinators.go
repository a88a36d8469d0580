package monad

// combinators derived from the four contract operations. they work for every
// Monad, including ones written after this package.

// Then binds steps to m from left to right.
func Then(m Monad, steps ...func(any) Monad) Monad {
	for _, f := range steps {
		m = m.Bind_(f)
	}
	return m
}

// ThenReturn sequences m and replaces its value by x.
func ThenReturn(m Monad, x any) Monad {
	return m.Bind_(func(any) Monad {
		return m.Insert_(x)
	})
}

// Join flattens a monad wrapping a monad of the same concrete type.
func Join(mm Monad) Monad {
	return mm.Bind_(func(x any) Monad {
		inner, ok := x.(Monad)
		if !ok {
			Violate("Join", "a nested monad", x)
		}
		return inner
	})
}

// LiftA2 applies a two-argument function to the values of a and b.
func LiftA2(f func(any, any) any, a, b Monad) Monad {
	return a.Map_(Curry2(f)).Amap_(b)
}

// Sequence collects the values of monads of one concrete type into a []any,
// wrapped in that type. The effects of ms are combined left to right.
func Sequence(first Monad, rest ...Monad) Monad {
	acc := first.Map_(func(x any) any {
		return []any{x}
	})
	for _, m := range rest {
		acc = acc.Bind_(func(xs any) Monad {
			return m.Map_(func(x any) any {
				prefix := xs.([]any)
				return append(prefix[:len(prefix):len(prefix)], x)
			})
		})
	}
	return acc
}

// --- Currying --------------------------------------------------------------

// Curry2 turns f into a chain of one-argument functions, suitable for Map_
// followed by Amap_.
func Curry2(f func(any, any) any) func(any) any {
	return func(x any) any {
		return func(y any) any {
			return f(x, y)
		}
	}
}

// Curry3 is Curry2 for three arguments.
func Curry3(f func(any, any, any) any) func(any) any {
	return func(x any) any {
		return Curry2(func(y, z any) any {
			return f(x, y, z)
		})
	}
}

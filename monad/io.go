package monad

import "reflect"

// IO is a deferred computation. nothing happens until it is run; building
// chains with Bind, Then or Map performs no effects.
type IO func() any

// Return lifts x into an IO which has no effect.
func Return(x any) IO {
	return func() any { return x }
}

func (a IO) Run() any {
	return a()
}

func (a IO) Then(b IO) IO {
	return func() any {
		a()
		return b()
	}
}

func (a IO) ThenReturn(x any) IO {
	return func() any {
		a()
		return x
	}
}

func (a IO) Bind(f func(any) IO) IO {
	return func() any {
		x := a()
		b := f(x)
		return b()
	}
}

func (a IO) Map(f func(any) any) IO {
	return func() any {
		return f(a())
	}
}

// Equal runs both computations and compares their results.
func (a IO) Equal(other any) bool {
	b, ok := other.(IO)
	if !ok {
		return false
	}
	return reflect.DeepEqual(a(), b())
}

// monad instance...

func (a IO) Insert_(x any) Monad {
	return Return(x)
}

func (a IO) Map_(f func(any) any) Monad {
	return a.Map(f)
}

func (a IO) Bind_(f_ func(any) Monad) Monad {
	f := func(x any) IO {
		r := f_(x)
		b, ok := r.(IO)
		if !ok {
			Violate("IO.Bind_", "an IO", r)
		}
		return b
	}
	return a.Bind(f)
}

// the function is run before the argument.
func (a IO) Amap_(b_ Monad) Monad {
	b, ok := b_.(IO)
	if !ok {
		Violate("IO.Amap_", "an IO", b_)
	}
	return IO(func() any {
		v := a()
		f, ok := v.(func(any) any)
		if !ok {
			Violate("IO.Amap_", "an IO of func(any) any", v)
		}
		return f(b())
	})
}

package writer

// Map applies f to the value of w and keeps the log.
func Map[T, U any, L Monoid[L]](w Writer[T, L], f func(T) U) Writer[U, L] {
	return Writer[U, L]{value: f(w.value), log: w.log}
}

// Bind applies the Kleisli function f to the value of w. The log of the
// result is the log of w followed by the log of f's result.
func Bind[T, U any, L Monoid[L]](w Writer[T, L], f func(T) Writer[U, L]) Writer[U, L] {
	r := f(w.value)
	return Writer[U, L]{value: r.value, log: w.log.Combine(r.log)}
}

// Amap applies the function wrapped in wf to the value of w. The log is the
// log of wf followed by the log of w.
func Amap[T, U any, L Monoid[L]](wf Writer[func(T) U, L], w Writer[T, L]) Writer[U, L] {
	return Writer[U, L]{value: wf.value(w.value), log: wf.log.Combine(w.log)}
}

// LiftA2 applies a two-argument function to the values of a and b,
// combining their logs in order.
func LiftA2[A, B, C any, L Monoid[L]](f func(A, B) C, a Writer[A, L], b Writer[B, L]) Writer[C, L] {
	curried := func(x A) func(B) C {
		return func(y B) C { return f(x, y) }
	}
	return Amap(Map(a, curried), b)
}

// Listen exposes the log of w as part of its value.
func Listen[T any, L Monoid[L]](w Writer[T, L]) Writer[Entry[T, L], L] {
	return Writer[Entry[T, L], L]{value: Entry[T, L]{Value: w.value, Log: w.log}, log: w.log}
}

// Censor applies f to the log of w.
func Censor[T any, L Monoid[L]](w Writer[T, L], f func(L) L) Writer[T, L] {
	return Writer[T, L]{value: w.value, log: f(w.log)}
}

// methods...

// Map is the type-preserving variant of the package function Map.
func (w Writer[T, L]) Map(f func(T) T) Writer[T, L] {
	return Map(w, f)
}

// Bind is the type-preserving variant of the package function Bind.
func (w Writer[T, L]) Bind(f func(T) Writer[T, L]) Writer[T, L] {
	return Bind(w, f)
}

// Then binds steps from left to right; their logs appear in call order.
func (w Writer[T, L]) Then(steps ...func(T) Writer[T, L]) Writer[T, L] {
	for _, f := range steps {
		w = Bind(w, f)
	}
	return w
}

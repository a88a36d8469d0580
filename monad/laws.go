package monad

import "reflect"

// Law names one of the functor or monad laws.
type Law string

const (
	FunctorIdentity    Law = "functor identity"
	FunctorComposition Law = "functor composition"
	LeftIdentity       Law = "left identity"
	RightIdentity      Law = "right identity"
	Associativity      Law = "associativity"
)

// LawResult holds both sides of a law instance and whether they are equal.
type LawResult struct {
	Law         Law
	Holds       bool
	Left, Right Monad
}

// Equal compares two monads. It uses an Equal(any) bool method when the left
// side has one and falls back to reflect.DeepEqual.
func Equal(a, b Monad) bool {
	if eq, ok := a.(interface{ Equal(any) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

func check(law Law, left, right Monad) LawResult {
	r := LawResult{Law: law, Left: left, Right: right, Holds: Equal(left, right)}
	tracer().Debugf("law %s holds=%v: %v ~ %v", law, r.Holds, left, right)
	return r
}

// CheckFunctorIdentity verifies m.Map_(id) ~ m.
func CheckFunctorIdentity(m Monad) LawResult {
	id := func(x any) any { return x }
	return check(FunctorIdentity, m.Map_(id), m)
}

// CheckFunctorComposition verifies m.Map_(f).Map_(g) ~ m.Map_(g . f).
func CheckFunctorComposition(m Monad, f, g func(any) any) LawResult {
	gf := func(x any) any { return g(f(x)) }
	return check(FunctorComposition, m.Map_(f).Map_(g), m.Map_(gf))
}

// CheckLeftIdentity verifies unit.Insert_(x).Bind_(f) ~ f(x). unit only
// selects the concrete monad type.
func CheckLeftIdentity(unit Monad, x any, f func(any) Monad) LawResult {
	return check(LeftIdentity, unit.Insert_(x).Bind_(f), f(x))
}

// CheckRightIdentity verifies m.Bind_(m.Insert_) ~ m.
func CheckRightIdentity(m Monad) LawResult {
	return check(RightIdentity, m.Bind_(m.Insert_), m)
}

// CheckAssociativity verifies m.Bind_(f).Bind_(g) ~ m.Bind_(x -> f(x).Bind_(g)).
func CheckAssociativity(m Monad, f, g func(any) Monad) LawResult {
	nested := func(x any) Monad { return f(x).Bind_(g) }
	return check(Associativity, m.Bind_(f).Bind_(g), m.Bind_(nested))
}

// CheckLaws runs all law checks for m, using x as the value for left identity,
// f and g as pure functions and kf and kg as Kleisli functions.
func CheckLaws(m Monad, x any, f, g func(any) any, kf, kg func(any) Monad) []LawResult {
	return []LawResult{
		CheckFunctorIdentity(m),
		CheckFunctorComposition(m, f, g),
		CheckLeftIdentity(m, x, kf),
		CheckRightIdentity(m),
		CheckAssociativity(m, kf, kg),
	}
}

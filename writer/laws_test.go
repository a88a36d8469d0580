package writer

import (
	"strconv"
	"testing"

	"github.com/pesco/monads/monad"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type LawsTestEnviron struct {
	suite.Suite
	samples []Writer[int, Text]
}

// listen for 'go test' command --> run test methods
func TestLaws(t *testing.T) {
	suite.Run(t, new(LawsTestEnviron))
}

// run once, before test suite methods
func (env *LawsTestEnviron) SetupSuite() {
	env.samples = []Writer[int, Text]{
		Insert[int, Text](0),
		New(5, Text("five;")),
		New(-3, Text("")),
	}
}

// --- Tests -----------------------------------------------------------------

func logInc(x int) Writer[int, Text] {
	return New(x+1, Text("inc "+strconv.Itoa(x)+";"))
}

func logDouble(x int) Writer[int, Text] {
	return New(x*2, Text("double "+strconv.Itoa(x)+";"))
}

func (env *LawsTestEnviron) TestFunctorIdentity() {
	for _, w := range env.samples {
		env.Equal(w, w.Map(func(x int) int { return x }))
	}
}

func (env *LawsTestEnviron) TestFunctorComposition() {
	for _, w := range env.samples {
		left := Map(Map(w, add1), strconv.Itoa)
		right := Map(w, func(x int) string { return strconv.Itoa(add1(x)) })
		env.Equal(left, right)
	}
}

func (env *LawsTestEnviron) TestLeftIdentity() {
	for _, x := range []int{-1, 0, 9} {
		env.Equal(logInc(x), Insert[int, Text](x).Bind(logInc))
	}
}

func (env *LawsTestEnviron) TestRightIdentity() {
	for _, w := range env.samples {
		env.Equal(w, w.Bind(Insert[int, Text]))
	}
}

func (env *LawsTestEnviron) TestAssociativity() {
	for _, w := range env.samples {
		left := w.Bind(logInc).Bind(logDouble)
		right := w.Bind(func(x int) Writer[int, Text] { return logInc(x).Bind(logDouble) })
		env.Equal(left, right)
	}
}

// checkLaws runs the laws on samples of any log type. Logs are compared by
// Writer.Equal, as nil and empty slice logs are interchangeable.
func checkLaws[L Monoid[L]](env *LawsTestEnviron, samples []Writer[int, L],
	kf, kg func(int) Writer[int, L]) {
	//
	for _, x := range []int{-1, 0, 9} {
		env.True(Insert[int, L](x).Bind(kf).Equal(kf(x)), "left identity for %d", x)
	}
	for _, w := range samples {
		env.True(w.Map(func(x int) int { return x }).Equal(w), "identity for %v", w)
		env.True(w.Bind(Insert[int, L]).Equal(w), "right identity for %v", w)
		left := w.Bind(kf).Bind(kg)
		right := w.Bind(func(x int) Writer[int, L] { return kf(x).Bind(kg) })
		env.True(left.Equal(right), "associativity for %v: %v vs %v", w, left, right)
		//
		inc := func(x any) any { return x.(int) + 1 }
		dbl := func(x any) any { return x.(int) * 2 }
		ekf := func(x any) monad.Monad { return kf(x.(int)) }
		ekg := func(x any) monad.Monad { return kg(x.(int)) }
		for _, r := range monad.CheckLaws(w, 4, inc, dbl, ekf, ekg) {
			env.True(r.Holds, "%s for %v: %v vs %v", r.Law, w, r.Left, r.Right)
		}
	}
}

func (env *LawsTestEnviron) TestLinesLog() {
	samples := []Writer[int, Lines]{
		Insert[int, Lines](0),
		New(1, Lines{}),
		New(5, Lines{"five"}),
		New(-3, Lines{"a", "b"}),
	}
	inc := func(x int) Writer[int, Lines] { return New(x+1, Lines{"inc " + strconv.Itoa(x)}) }
	quiet := func(x int) Writer[int, Lines] { return New(x*2, Lines{}) }
	checkLaws(env, samples, inc, quiet)
	checkLaws(env, samples, quiet, inc)
}

func (env *LawsTestEnviron) TestSliceLog() {
	samples := []Writer[int, Slice[int]]{
		Insert[int, Slice[int]](0),
		New(1, Slice[int]{}),
		New(5, Slice[int]{5}),
	}
	trace := func(x int) Writer[int, Slice[int]] { return New(x+1, Slice[int]{x}) }
	quiet := func(x int) Writer[int, Slice[int]] { return New(-x, Slice[int]{}) }
	checkLaws(env, samples, trace, quiet)
	checkLaws(env, samples, quiet, trace)
}

func (env *LawsTestEnviron) TestProductLog() {
	samples := []Writer[int, Product[int]]{
		Insert[int, Product[int]](0),
		New(2, Product[int]{3}),
		New(-1, Product[int]{0}),
	}
	scale := func(x int) Writer[int, Product[int]] { return New(x+1, Product[int]{2}) }
	keep := func(x int) Writer[int, Product[int]] { return New(x*3, Product[int]{1}) }
	checkLaws(env, samples, scale, keep)
	checkLaws(env, samples, keep, scale)
	env.Equal(Product[int]{6}, New(1, Product[int]{3}).Bind(scale).Log())
}

func (env *LawsTestEnviron) TestMonoidLaws() {
	texts := []Text{"", "a", "bc"}
	for _, a := range texts {
		env.Equal(a, a.Combine(a.Empty()))
		env.Equal(a, a.Empty().Combine(a))
		for _, b := range texts {
			for _, c := range texts {
				env.Equal(a.Combine(b).Combine(c), a.Combine(b.Combine(c)))
			}
		}
	}
	p := Product[int]{6}
	env.Equal(p, p.Combine(p.Empty()))
	env.Equal(Sum[int]{7}, Sum[int]{3}.Combine(Sum[int]{4}))
	s := Slice[int]{1, 2}
	env.Equal(s, s.Combine(s.Empty()))
	env.Equal(s, s.Empty().Combine(s))
	env.Equal(Slice[int]{1, 2, 3}, s.Combine(Slice[int]{3}))
}

func (env *LawsTestEnviron) TestErasedLaws() {
	inc := func(x any) any { return x.(int) + 1 }
	dbl := func(x any) any { return x.(int) * 2 }
	kf := func(x any) monad.Monad { return logInc(x.(int)) }
	kg := func(x any) monad.Monad { return logDouble(x.(int)) }
	for _, w := range env.samples {
		for _, r := range monad.CheckLaws(w, 4, inc, dbl, kf, kg) {
			env.True(r.Holds, "%s for %v: %v vs %v", r.Law, w, r.Left, r.Right)
		}
	}
}

package main

import (
	"github.com/pesco/monads/maybe"
	"github.com/pesco/monads/monad"
	"github.com/pesco/monads/writer"
	"github.com/pterm/pterm"
)

type subject struct {
	name   string
	m      monad.Monad
	kf, kg func(any) monad.Monad
}

func inc(x any) any    { return x.(int) + 1 }
func double(x any) any { return x.(int) * 2 }

func subjects() []subject {
	justTriple := func(x any) monad.Monad { return maybe.Just[any](x.(int) * 3) }
	nothingIfOdd := func(x any) monad.Monad {
		if x.(int)%2 != 0 {
			return maybe.Nothing[any]()
		}
		return maybe.Some[any](x.(int) / 2)
	}
	tellInc := func(x any) monad.Monad {
		return writer.New[any](x.(int)+1, writer.Text("inc;"))
	}
	tellDouble := func(x any) monad.Monad {
		return writer.New[any](x.(int)*2, writer.Text("double;"))
	}
	ioInc := func(x any) monad.Monad { return monad.Return(x.(int) + 1) }
	ioDouble := func(x any) monad.Monad { return monad.Return(x).Map(double) }
	return []subject{
		{"Just 4", maybe.Just(4), justTriple, nothingIfOdd},
		{"Nothing", maybe.Nothing[int](), justTriple, nothingIfOdd},
		{"Some 4", maybe.Some(4), nothingIfOdd, justTriple},
		{"Writer (4, start;)", writer.New(4, writer.Text("start;")), tellInc, tellDouble},
		{"IO 4", monad.Return(4), ioInc, ioDouble},
	}
}

// checkAll runs the laws for all subjects.
func checkAll() map[string][]monad.LawResult {
	results := make(map[string][]monad.LawResult)
	for _, s := range subjects() {
		results[s.name] = monad.CheckLaws(s.m, 4, inc, double, s.kf, s.kg)
	}
	return results
}

// printLaws renders a table of law checks and reports whether all hold.
func printLaws() bool {
	data := [][]string{{"Monad", "Law", "Result"}}
	ok := true
	results := checkAll()
	for _, s := range subjects() {
		for _, r := range results[s.name] {
			verdict := "holds"
			if !r.Holds {
				verdict = "VIOLATED"
				ok = false
				tracer().Errorf("%s: %s violated: %v vs %v", s.name, r.Law, r.Left, r.Right)
			}
			data = append(data, []string{s.name, string(r.Law), verdict})
		}
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
		return false
	}
	return ok
}

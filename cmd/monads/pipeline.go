package main

import (
	"fmt"
	"strconv"

	"github.com/pesco/monads/maybe"
	"github.com/pesco/monads/writer"
)

// reciprocal parses input and divides 100 by it. Malformed input and zero
// both end in Nothing.
func reciprocal(input string) maybe.Maybe[int] {
	n := maybe.TryMap(maybe.Just(input), strconv.Atoi)
	return n.Map(func(x int) int {
		return 100 / x
	})
}

type logged = writer.Writer[int, writer.Lines]

// explain parses input, then adds 1 and multiplies by 2, logging each step.
func explain(input string) logged {
	w := writer.Bind(writer.Insert[string, writer.Lines](input), parse)
	return w.Then(add(1), mul(2))
}

func parse(s string) logged {
	n, err := strconv.Atoi(s)
	if err != nil {
		return writer.New(0, writer.Lines{fmt.Sprintf("Cannot parse %q, using 0", s)})
	}
	return writer.New(n, writer.Lines{fmt.Sprintf("Parsed %q as %d", s, n)})
}

func add(y int) func(int) logged {
	return func(x int) logged {
		return writer.New(x+y, writer.Lines{
			fmt.Sprintf("Called function 'add' with arguments %d and %d. Result: %d", y, x, x+y),
		})
	}
}

func mul(y int) func(int) logged {
	return func(x int) logged {
		return writer.New(x*y, writer.Lines{
			fmt.Sprintf("Called function 'mul' with arguments %d and %d. Result: %d", y, x, x*y),
		})
	}
}

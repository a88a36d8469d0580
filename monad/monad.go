// Package monad defines the capability contract shared by all monads of this
// module, and the combinators which can be derived from it.
package monad

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// the methods of the Monad interface carry a postfix underscore to signify
// that they mention the erased types any and Monad where we actually mean the
// concrete instance type. by convention, they are expected to be wrappers
// around type-specific functions of the plain name. Go methods cannot carry
// type parameters, so for a monad M these live at package level:
//
//     Insert[T](T) M[T]
//     Map[T, U](M[T], func(T) U) M[U]
//     Bind[T, U](M[T], func(T) M[U]) M[U]
//     Amap[T, U](M[func(T) U], M[T]) M[U]
//
// this idiom allows the direct use of the type-specific functions in
// appropriate contexts, avoiding type assertions. the interface methods are
// then implemented by boilerplate:
//
//     func (m M[T]) Map_(f func(any) any) Monad {
//         return Map(m.erase(), f)
//     }
//
// Insert_ uses its receiver only to select the concrete type. Bind_ expects
// the Kleisli function to return the receiver's concrete monad type and
// panics with a *ContractError otherwise. Amap_ expects the receiver to wrap a
// func(any) any.
//
// together, these methods should satisfy the laws:
//
//  - functor identity:     m.Map_(id) ~ m
//  - functor composition:  m.Map_(f).Map_(g) ~ m.Map_(g . f)
//  - left identity:        m.Insert_(x).Bind_(f) ~ f(x)
//  - right identity:       m.Bind_(m.Insert_) ~ m
//  - associativity:        m.Bind_(f).Bind_(g) ~ m.Bind_(func(x) {return f(x).Bind_(g)})
//
//  - def. Then:            Then(m, f, g) ~ m.Bind_(f).Bind_(g)
//  - def. ThenReturn:      ThenReturn(m, x) ~ m.Bind_({return m.Insert_(x)})
//
type Monad interface {
	Insert_(any) Monad           // return
	Map_(func(any) any) Monad    // fmap
	Bind_(func(any) Monad) Monad // (>>=)
	Amap_(Monad) Monad           // (<*>)
}

// ContractError is raised (by panic) when a value handed to an erased
// operation does not have the shape the operation requires, e.g. a Kleisli
// function returning a different kind of monad.
type ContractError struct {
	Op   string // operation, e.g. "Maybe.Bind_"
	Want string // description of the expected shape
	Got  any    // offending value
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("monad: %s expects %s, got %T", e.Op, e.Want, e.Got)
}

// Violate panics with a ContractError.
func Violate(op string, want string, got any) {
	err := &ContractError{Op: op, Want: want, Got: got}
	tracer().Debugf("%s", err.Error())
	panic(err)
}

// tracer traces with key 'monads'
func tracer() tracing.Trace {
	return tracing.Select("monads")
}

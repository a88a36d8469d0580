package writer

import "strings"

// --- Stock monoids ---------------------------------------------------------

// Text is a log of concatenated strings.
type Text string

func (t Text) Combine(other Text) Text { return t + other }
func (Text) Empty() Text               { return "" }

// Lines is a log of separate lines.
type Lines []string

func (l Lines) Combine(other Lines) Lines { return concat(l, other) }
func (Lines) Empty() Lines                { return nil }

func (l Lines) String() string {
	return strings.Join(l, "\n")
}

// Slice is a log of arbitrary entries.
type Slice[E any] []E

func (s Slice[E]) Combine(other Slice[E]) Slice[E] { return concat(s, other) }
func (Slice[E]) Empty() Slice[E]                   { return nil }

// concat never shares the backing array of a with the result, so logs of
// earlier Writers stay untouched.
func concat[S ~[]E, E any](a, b S) S {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(S, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Number is the constraint for Sum and Product.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum is a log counting by addition. For floating point types Combine is
// associative only up to rounding.
type Sum[N Number] struct{ Value N }

func (s Sum[N]) Combine(other Sum[N]) Sum[N] { return Sum[N]{s.Value + other.Value} }
func (Sum[N]) Empty() Sum[N]                 { return Sum[N]{} }

// Product is a log multiplying its entries. Its identity is 1.
type Product[N Number] struct{ Value N }

func (p Product[N]) Combine(other Product[N]) Product[N] { return Product[N]{p.Value * other.Value} }
func (Product[N]) Empty() Product[N]                     { return Product[N]{1} }

package solo

import (
	"github.com/ib-77/iff/pkg/iff"
)

// Ternary is an eager two-way select: both a and b are already computed.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// TernaryF is a lazy two-way select: only the winning producer runs.
func TernaryF[T any](cond bool, a, b func() T) T {
	if cond {
		return a()
	}
	return b()
}

// Case pairs a pre-computed condition with the outcome to fix when it is the
// first true one.
type Case[T any] struct {
	When bool
	Do   iff.Outcome[T]
}

func When[T any](cond bool, o iff.Outcome[T]) Case[T] {
	return Case[T]{When: cond, Do: o}
}

// Match scans cases in declaration order and fixes the outcome of the first
// true condition, invoking its producer exactly once. Producers of losing
// cases never run. No true condition means None.
func Match[T any](cases ...Case[T]) iff.Option[T] {
	for _, c := range cases {
		if c.When {
			return iff.Some(c.Do.Fix())
		}
	}
	return iff.None[T]()
}

// MatchOr is Match with a default for the no-match case.
func MatchOr[T any](def T, cases ...Case[T]) T {
	return Match(cases...).Or(def)
}

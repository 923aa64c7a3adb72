package when

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/iff/pkg/iff"
)

type state uint8

const (
	pending state = iota
	resolved
	fallbackPending
)

// Chain is an immutable branch selector. Every call returns a new value, so
// already-returned chains are never mutated and independent chains share no
// state.
type Chain[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	st        state
	cond      bool // pending: the condition still to be tested
	value     T    // resolved: the fixed outcome
}

// Start opens a chain on the first condition.
func Start[T any](cond bool) Chain[T] {
	return Chain[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		st:        pending,
		cond:      cond,
	}
}

// Then fixes the outcome when the pending condition holds, or unconditionally
// after Else. The outcome's producer, if any, runs exactly once at that
// moment; a false condition leaves the chain unchanged and a resolved chain
// passes through untouched.
func (c Chain[T]) Then(o iff.Outcome[T]) Chain[T] {
	switch c.st {
	case resolved:
		return c
	case fallbackPending:
		return c.fix(o)
	default:
		if !c.cond {
			return c
		}
		return c.fix(o)
	}
}

// Elif opens the next branch test. On a resolved chain it is a passthrough.
func (c Chain[T]) Elif(cond bool) Chain[T] {
	if c.st == resolved {
		return c
	}
	return Chain[T]{id: c.id, createdAt: c.createdAt, st: pending, cond: cond}
}

// ElseIf is an alias of Elif.
func (c Chain[T]) ElseIf(cond bool) Chain[T] {
	return c.Elif(cond)
}

// Else marks the default branch: the next Then fixes its outcome regardless
// of any condition. On a resolved chain it is a passthrough.
func (c Chain[T]) Else() Chain[T] {
	if c.st == resolved {
		return c
	}
	return Chain[T]{id: c.id, createdAt: c.createdAt, st: fallbackPending}
}

// ElseThen is Else().Then(o) collapsed into one call.
func (c Chain[T]) ElseThen(o iff.Outcome[T]) Chain[T] {
	return c.Else().Then(o)
}

// End terminates the chain: Some with the fixed value if a branch matched,
// None otherwise. The result carries the chain's stamp.
func (c Chain[T]) End() iff.Option[T] {
	if c.st == resolved {
		return iff.SomeFrom(c, c.value)
	}
	return iff.NoneFrom[T](c)
}

// EndOr terminates the chain with a default for the no-match case.
func (c Chain[T]) EndOr(def T) T {
	return c.End().Or(def)
}

// IsResolved reports whether a branch has already fixed an outcome.
func (c Chain[T]) IsResolved() bool {
	return c.st == resolved
}

func (c Chain[T]) Id() uuid.UUID {
	return c.id
}

func (c Chain[T]) CreatedAt() time.Time {
	return c.createdAt
}

func (c Chain[T]) fix(o iff.Outcome[T]) Chain[T] {
	return Chain[T]{id: c.id, createdAt: c.createdAt, st: resolved, value: o.Fix()}
}

// Finally collapses the chain to a final value, delegating to the matching
// handler. A free function so the handlers can change the value type.
func Finally[T, U any](c Chain[T], onMatch func(T) U, onNoMatch func() U) U {
	if c.st == resolved {
		return onMatch(c.value)
	}
	return onNoMatch()
}

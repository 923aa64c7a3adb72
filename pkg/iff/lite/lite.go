package lite

// Chain is the lightweight selector tier: values only, no producers, no
// Option. Suited for call sites that pick between already-computed values
// and always supply a default.
type Chain[T any] struct {
	matched bool
	value   T
}

func If[T any](cond bool, v T) Chain[T] {
	if cond {
		return Chain[T]{matched: true, value: v}
	}
	return Chain[T]{}
}

func (c Chain[T]) Elif(cond bool, v T) Chain[T] {
	if !c.matched && cond {
		return Chain[T]{matched: true, value: v}
	}
	return c
}

// ElseIf is an alias of Elif.
func (c Chain[T]) ElseIf(cond bool, v T) Chain[T] {
	return c.Elif(cond, v)
}

// Else terminates the chain with a default for the no-match case.
func (c Chain[T]) Else(v T) T {
	if c.matched {
		return c.value
	}
	return v
}

// End terminates the chain without a default; false means no branch matched
// and the value is the zero value of T.
func (c Chain[T]) End() (T, bool) {
	return c.value, c.matched
}

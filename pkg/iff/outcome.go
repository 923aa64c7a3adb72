package iff

// Outcome is a tagged union of an already-computed value and a deferred
// zero-argument producer. Which variant is active is fixed at the call site,
// so a T that itself happens to be a func type is never misread as a producer.
type Outcome[T any] struct {
	value   T
	produce func() T
}

func Value[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

func Produce[T any](f func() T) Outcome[T] {
	return Outcome[T]{produce: f}
}

func (o Outcome[T]) IsProducer() bool {
	return o.produce != nil
}

// Fix collapses the outcome to its value, invoking the producer when one is
// present. Callers that need at-most-once producer invocation must call Fix
// at most once and keep the returned value; the chain does exactly that at
// the moment a branch wins.
func (o Outcome[T]) Fix() T {
	if o.produce != nil {
		return o.produce()
	}
	return o.value
}

package iff

import (
	"time"

	"github.com/google/uuid"
)

type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	hasValue  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:     v,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func None[T any]() Option[T] {
	return Option[T]{
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func SomeFrom[T any](from Stamped, v T) Option[T] {
	return Option[T]{
		value:     v,
		hasValue:  true,
		createdAt: from.CreatedAt(),
		id:        from.Id(),
	}
}

func NoneFrom[T any](from Stamped) Option[T] {
	return Option[T]{
		hasValue:  false,
		createdAt: from.CreatedAt(),
		id:        from.Id(),
	}
}

// Value returns the held value, or the zero value of T when none matched.
func (o Option[T]) Value() T {
	return o.value
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.hasValue
}

// Or returns the held value, or def when none matched.
func (o Option[T]) Or(def T) T {
	if o.hasValue {
		return o.value
	}
	return def
}

func (o Option[T]) IsSome() bool {
	return o.hasValue
}

func (o Option[T]) IsNone() bool {
	return !o.hasValue
}

func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Option[T]) Id() uuid.UUID {
	return o.id
}

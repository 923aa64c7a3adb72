package iff

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[T any] interface {
	// Value returns the selected value (zero value when none matched)
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Maybe defines an interface for terminal results that may hold no value
type Maybe[T any] interface {
	ValueProvider[T]
	// IsSome returns true if a branch matched and fixed a value
	IsSome() bool
	// IsNone returns true if no branch matched
	IsNone() bool
}

// Stamped is implemented by values carrying creation provenance, used to
// propagate a chain's stamp into its terminal Option
type Stamped interface {
	Id() uuid.UUID
	CreatedAt() time.Time
}

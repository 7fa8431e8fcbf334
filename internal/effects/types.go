package effects

import (
	"github.com/tidegate/charcore/internal/domain/attribute"
)

// Operation describes how an effect's value combines with the attribute
type Operation string

const (
	// OperationDelta adds the value to the attribute's present value
	OperationDelta Operation = "delta"

	// OperationSet replaces the attribute's value outright
	OperationSet Operation = "set"
)

// Effect is one completed gameplay-effect application delivered by the
// ability system: a named attribute plus a signed delta or an absolute set
type Effect struct {
	Attribute attribute.ID
	Operation Operation
	Value     float64
}

// Change reports one committed attribute mutation, in the shape the
// replication transport and UI observers consume
type Change struct {
	Attribute attribute.ID
	OldValue  float64
	NewValue  float64
}

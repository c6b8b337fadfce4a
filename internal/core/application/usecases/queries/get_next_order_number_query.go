package queries

import (
	"errors"

	"ordertracker/internal/pkg/guard"
)

var (
	ErrGetNextOrderNumberQueryIsNotConstructed = errors.New(
		"GetNextOrderNumberQuery must be created via NewGetNextOrderNumberQuery constructor",
	)
)

// GetNextOrderNumberQuery proposes the human-facing number for the next order.
type GetNextOrderNumberQuery struct {
	guard guard.ConstructorGuard
}

func NewGetNextOrderNumberQuery() GetNextOrderNumberQuery {
	return GetNextOrderNumberQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNextOrderNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetNextOrderNumberQueryIsNotConstructed)
}

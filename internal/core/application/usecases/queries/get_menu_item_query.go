package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

type GetMenuItemQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(id kernel.UUID) (GetMenuItemQuery, error) {
	if err := id.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}
	return GetMenuItemQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) ID() kernel.UUID {
	return q.id
}

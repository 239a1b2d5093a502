package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(id kernel.UUID) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) ID() kernel.UUID {
	return q.id
}

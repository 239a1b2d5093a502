package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order to the named status.
type ChangeOrderStatusCommand struct {
	id     kernel.UUID
	status order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand parses status by its display name, e.g. "Preparing".
func NewChangeOrderStatusCommand(id kernel.UUID, status string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{guard: guard.NewConstructorGuard()}

	parsed, statusErr := order.ParseStatus(status)
	if err := errors.Join(id.Validate(), statusErr); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.id = id
	cmd.status = parsed
	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) ID() kernel.UUID      { return c.id }
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }

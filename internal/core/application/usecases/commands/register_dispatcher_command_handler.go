package commands

import (
	"context"

	"farmmarket/internal/core/domain/model/dispatcher"
)

// RegisterDispatcherCommandHandler handles dispatcher sign-up.
type RegisterDispatcherCommandHandler struct {
	uowFactory DispatcherUoWFactory
}

// NewRegisterDispatcherCommandHandler creates a handler for dispatcher sign-up.
func NewRegisterDispatcherCommandHandler(uowFactory DispatcherUoWFactory) RegisterDispatcherCommandHandler {
	return RegisterDispatcherCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-up command and persists the new dispatcher.
func (h RegisterDispatcherCommandHandler) Handle(ctx context.Context, cmd RegisterDispatcherCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	disp, err := dispatcher.NewDispatcher(cmd.DispatcherID(), cmd.Name(),
		cmd.Phone(), cmd.Vehicle(), cmd.BasePoint())
	if err != nil {
		return err
	}

	if err = uow.DispatcherRepository().Add(ctx, disp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

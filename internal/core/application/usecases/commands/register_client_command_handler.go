package commands

import (
	"context"
	"errors"
	"fmt"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/pkg/errs"
)

// RegisterClientCommandHandler stores a new client, refusing taken national IDs.
type RegisterClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewRegisterClientCommandHandler(uowFactory ClientUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) error {
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

	clientRepo := uow.ClientRepository()
	newClient := cmd.Client()

	_, err := clientRepo.FindByID(ctx, newClient.ID())
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", client.ErrClientAlreadyExists, newClient.ID())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = clientRepo.Save(ctx, newClient); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateClientCommandHandler edits an existing client.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) error {
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

	clientRepo := uow.ClientRepository()
	c, err := clientRepo.FindByID(ctx, cmd.NationalID())
	if err != nil {
		return err
	}

	if err = c.UpdateDetails(cmd.Name(), cmd.Phone(), cmd.Address()); err != nil {
		return err
	}

	if err = clientRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

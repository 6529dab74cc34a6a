package commands

import (
	"context"
	"errors"

	"courierdesk/internal/core/domain/model/user"
	"courierdesk/internal/pkg/errs"
)

// DeleteCourierCommandHandler clears the courier from every order that
// references it, then deletes the courier and its login account, all in one
// unit of work. Orders are kept. An account with any role other than courier
// is left alone.
type DeleteCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewDeleteCourierCommandHandler(uowFactory CourierUoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	if _, err := courierRepo.FindByID(ctx, cmd.NationalID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if o.CourierID() != cmd.NationalID() {
			continue
		}
		o.UnassignCourier()
		if err = orderRepo.Save(ctx, o); err != nil {
			return err
		}
	}

	if err = courierRepo.DeleteByID(ctx, cmd.NationalID()); err != nil {
		return err
	}

	userRepo := uow.UserRepository()
	account, err := userRepo.FindByID(ctx, cmd.NationalID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return err
	case account.Role() == user.Courier:
		if err = userRepo.DeleteByID(ctx, cmd.NationalID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

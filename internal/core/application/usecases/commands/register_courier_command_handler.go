package commands

import (
	"context"
	"errors"
	"fmt"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/user"
	"courierdesk/internal/pkg/errs"
)

// RegisterCourierCommandHandler stores a new courier and the login account
// that lets it sign in with the generated password.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewRegisterCourierCommandHandler(uowFactory CourierUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) error {
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
	newCourier := cmd.Courier()

	_, err := courierRepo.FindByID(ctx, newCourier.ID())
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", courier.ErrCourierAlreadyExists, newCourier.ID())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	// The login account shares the national ID; an existing one, such as an
	// administrator's, is never taken over.
	userRepo := uow.UserRepository()
	_, err = userRepo.FindByID(ctx, newCourier.ID())
	switch {
	case err == nil:
		return errs.NewObjectAlreadyExistsError("user", newCourier.ID())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	account, err := user.NewUser(newCourier.ID(), newCourier.Password(), user.Courier)
	if err != nil {
		return err
	}

	if err = courierRepo.Save(ctx, newCourier); err != nil {
		return err
	}

	if err = userRepo.Save(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

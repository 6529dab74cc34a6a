package commands

import (
	"context"
)

// ToggleCourierAvailabilityCommandHandler flips the availability flag and
// reports the new value.
type ToggleCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewToggleCourierAvailabilityCommandHandler(
	uowFactory CourierUoWFactory,
) ToggleCourierAvailabilityCommandHandler {
	return ToggleCourierAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h *ToggleCourierAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleCourierAvailabilityCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	c, err := courierRepo.FindByID(ctx, cmd.NationalID())
	if err != nil {
		return false, err
	}

	available := c.ToggleAvailability()
	if err = courierRepo.UpdateAvailability(ctx, c.ID(), available); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return available, nil
}

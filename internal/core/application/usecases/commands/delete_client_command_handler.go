package commands

import (
	"context"
)

// DeleteClientCommandHandler runs the client removal cascade in one unit of
// work: history of the client's orders, then the orders, then the client.
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when the client does not exist.
func (h *DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
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
	if _, err := clientRepo.FindByID(ctx, cmd.NationalID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	owned := make(map[string]struct{})
	ownedIDs := make([]string, 0)
	for _, o := range orders {
		if o.ClientID() != cmd.NationalID() {
			continue
		}
		if _, dup := owned[o.ID()]; !dup {
			owned[o.ID()] = struct{}{}
			ownedIDs = append(ownedIDs, o.ID())
		}
	}

	if len(owned) > 0 {
		historyRepo := uow.HistoryRepository()
		records, err := historyRepo.FindAll(ctx)
		if err != nil {
			return err
		}
		for _, r := range records {
			if _, ok := owned[r.OrderID()]; !ok {
				continue
			}
			if err = historyRepo.DeleteByID(ctx, r.ID()); err != nil {
				return err
			}
		}

		for _, id := range ownedIDs {
			if err = orderRepo.DeleteByID(ctx, id); err != nil {
				return err
			}
		}
	}

	if err = clientRepo.DeleteByID(ctx, cmd.NationalID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

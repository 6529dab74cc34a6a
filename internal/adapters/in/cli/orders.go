package cli

import (
	"context"
	"errors"
	"fmt"

	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/application/usecases/queries"
	"courierdesk/internal/core/domain/model/order"
)

func (a *App) orderCreate(ctx context.Context, args []string) error {
	fs := a.newFlagSet("order create")
	clientID := fs.String("client", "", "client national ID")
	rawCombo := fs.String("combo", "", "PARA4 or PARA2")
	rawMethod := fs.String("payment", "", "EFECTIVO, PAGO_MOVIL or TRANSFERENCIA")
	courierID := fs.String("courier", "", "courier national ID (optional)")
	fee := fs.String("fee", "0", "delivery fee")
	requiresChange := fs.Bool("requires-change", false, "courier must bring change")
	change := fs.String("change", "", "change amount")
	if err := parse(fs, args); err != nil {
		return err
	}

	combo, comboErr := order.ParseCombo(*rawCombo)
	method, methodErr := order.ParsePaymentMethod(*rawMethod)
	if err := errors.Join(comboErr, methodErr); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(*clientID, combo, method, *courierID, *requiresChange, *fee, *change)
	if err != nil {
		return err
	}
	if err = a.handlers.CreateOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "order %s created\n", cmd.OrderID())
	return nil
}

func (a *App) orderAssign(ctx context.Context, args []string) error {
	if err := exactArgs("order assign", args, "ORDER", "COURIER"); err != nil {
		return err
	}

	cmd, err := commands.NewAssignCourierCommand(args[0], args[1])
	if err != nil {
		return err
	}
	if err = a.handlers.AssignCourier.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "order %s assigned to courier %s\n", cmd.OrderID(), cmd.CourierID())
	return nil
}

func (a *App) orderDispatch(ctx context.Context, args []string) error {
	if err := exactArgs("order dispatch", args, "ORDER"); err != nil {
		return err
	}

	cmd, err := commands.NewDispatchOrderCommand(args[0])
	if err != nil {
		return err
	}
	if err = a.handlers.DispatchOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "order %s is on its way\n", args[0])
	return nil
}

func (a *App) orderCancel(ctx context.Context, args []string) error {
	if err := exactArgs("order cancel", args, "ORDER"); err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(args[0])
	if err != nil {
		return err
	}
	if err = a.handlers.CancelOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "order %s cancelled\n", args[0])
	return nil
}

func (a *App) orderDeliver(ctx context.Context, args []string) error {
	if err := exactArgs("order deliver", args, "ORDER"); err != nil {
		return err
	}

	cmd, err := commands.NewDeliverOrderCommand(args[0])
	if err != nil {
		return err
	}
	if err = a.handlers.DeliverOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "order %s delivered\n", args[0])
	return nil
}

func (a *App) orderEdit(ctx context.Context, args []string) error {
	id, rest, err := splitID("order edit", args)
	if err != nil {
		return err
	}

	fs := a.newFlagSet("order edit")
	address := fs.String("address", "", "new delivery address")
	fee := fs.String("fee", "", "new delivery fee")
	combo := fs.String("combo", "", "new combo")
	if err = parse(fs, rest); err != nil {
		return err
	}

	cmd, err := commands.NewEditOrderCommand(id, *address, *fee, *combo)
	if err != nil {
		return err
	}
	if err = a.handlers.EditOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "order %s updated\n", cmd.OrderID())
	return nil
}

func (a *App) orderList(ctx context.Context, args []string) error {
	if err := exactArgs("order list", args); err != nil {
		return err
	}

	rows, err := a.handlers.ListOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return err
	}
	return a.renderOrders(rows)
}

func (a *App) renderOrders(rows []queries.OrderRow) error {
	t := newTable(a.out, "ID", "CLIENT", "COURIER", "ADDRESS", "COMBO", "PAYMENT", "CHANGE", "FEE", "TOTAL", "STATUS", "CREATED", "CLOSED")
	for _, r := range rows {
		change := "-"
		if r.RequiresChange {
			change = money(r.Change)
		}
		t.row(
			r.ID,
			r.ClientName,
			r.CourierName,
			r.DeliveryAddress,
			r.Combo,
			r.PaymentMethod,
			change,
			money(r.DeliveryFee),
			money(r.Total),
			r.Status,
			timestamp(r.CreatedAt),
			optionalTimestamp(r.DeliveredAt),
		)
	}
	return t.flush()
}

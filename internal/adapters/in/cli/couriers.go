package cli

import (
	"context"
	"fmt"

	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/application/usecases/queries"
)

func (a *App) courierAdd(ctx context.Context, args []string) error {
	fs := a.newFlagSet("courier add")
	name := fs.String("name", "", "full name")
	id := fs.String("id", "", "national ID")
	phone := fs.String("phone", "", "mobile phone")
	available := fs.Bool("available", false, "start as available")
	if err := parse(fs, args); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterCourierCommand(*name, *id, *phone, *available)
	if err != nil {
		return err
	}
	if err = a.handlers.RegisterCourier.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "courier %s registered, password: %s\n", cmd.Courier().ID(), cmd.Password())
	return nil
}

func (a *App) courierDelete(ctx context.Context, args []string) error {
	if err := exactArgs("courier delete", args, "ID"); err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCourierCommand(args[0])
	if err != nil {
		return err
	}
	if err = a.handlers.DeleteCourier.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "courier %s deleted, its orders are unassigned\n", cmd.NationalID())
	return nil
}

func (a *App) courierToggle(ctx context.Context, args []string) error {
	if err := exactArgs("courier toggle", args, "ID"); err != nil {
		return err
	}

	cmd, err := commands.NewToggleCourierAvailabilityCommand(args[0])
	if err != nil {
		return err
	}
	available, err := a.handlers.ToggleCourier.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "courier %s available: %s\n", cmd.NationalID(), yesNo(available))
	return nil
}

func (a *App) courierList(ctx context.Context, args []string) error {
	if err := exactArgs("courier list", args); err != nil {
		return err
	}

	rows, err := a.handlers.ListCouriers.Handle(ctx, queries.NewListCouriersQuery())
	if err != nil {
		return err
	}

	t := newTable(a.out, "ID", "NAME", "PHONE", "AVAILABLE")
	for _, r := range rows {
		t.row(r.NationalID, r.Name, r.Phone, yesNo(r.Available))
	}
	return t.flush()
}

// courierOrders lists the orders a courier still has to finish.
func (a *App) courierOrders(ctx context.Context, args []string) error {
	if err := exactArgs("courier orders", args, "ID"); err != nil {
		return err
	}

	query, err := queries.NewListCourierActiveOrdersQuery(args[0])
	if err != nil {
		return err
	}
	rows, err := a.handlers.ListCourierActiveOrders.Handle(ctx, query)
	if err != nil {
		return err
	}
	return a.renderOrders(rows)
}

// courierDeliveries lists the orders a courier delivered.
func (a *App) courierDeliveries(ctx context.Context, args []string) error {
	if err := exactArgs("courier deliveries", args, "ID"); err != nil {
		return err
	}

	query, err := queries.NewListCourierDeliveriesQuery(args[0])
	if err != nil {
		return err
	}
	rows, err := a.handlers.ListCourierDeliveries.Handle(ctx, query)
	if err != nil {
		return err
	}
	return a.renderHistory(rows)
}

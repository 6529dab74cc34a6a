package cli

import (
	"context"
	"fmt"

	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/application/usecases/queries"
)

func (a *App) clientAdd(ctx context.Context, args []string) error {
	fs := a.newFlagSet("client add")
	name := fs.String("name", "", "full name")
	id := fs.String("id", "", "national ID")
	phone := fs.String("phone", "", "mobile phone")
	address := fs.String("address", "", "delivery address")
	if err := parse(fs, args); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterClientCommand(*name, *id, *phone, *address)
	if err != nil {
		return err
	}
	if err = a.handlers.RegisterClient.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "client %s registered\n", cmd.Client().ID())
	return nil
}

func (a *App) clientUpdate(ctx context.Context, args []string) error {
	id, rest, err := splitID("client update", args)
	if err != nil {
		return err
	}

	fs := a.newFlagSet("client update")
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "mobile phone")
	address := fs.String("address", "", "delivery address")
	if err = parse(fs, rest); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateClientCommand(id, *name, *phone, *address)
	if err != nil {
		return err
	}
	if err = a.handlers.UpdateClient.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "client %s updated\n", cmd.NationalID())
	return nil
}

func (a *App) clientDelete(ctx context.Context, args []string) error {
	if err := exactArgs("client delete", args, "ID"); err != nil {
		return err
	}

	cmd, err := commands.NewDeleteClientCommand(args[0])
	if err != nil {
		return err
	}
	if err = a.handlers.DeleteClient.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "client %s deleted with its orders and history\n", cmd.NationalID())
	return nil
}

func (a *App) clientList(ctx context.Context, args []string) error {
	if err := exactArgs("client list", args); err != nil {
		return err
	}

	rows, err := a.handlers.ListClients.Handle(ctx, queries.NewListClientsQuery())
	if err != nil {
		return err
	}

	t := newTable(a.out, "ID", "NAME", "PHONE", "ADDRESS")
	for _, r := range rows {
		t.row(r.NationalID, r.Name, r.Phone, r.Address)
	}
	return t.flush()
}

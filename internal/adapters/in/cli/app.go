// Package cli is the command-line front end of the courier desk. It parses
// operator input, runs the matching command or query handler and renders the
// result as text tables.
//
// Usage:
//
//	courierdesk client add --name "Ana Perez" --id 12345678 --phone 04241234567 --address "Av. Lara 3"
//	courierdesk order create --client 12345678 --combo PARA4 --payment EFECTIVO --fee 2
//	courierdesk order deliver PED-...
//	courierdesk stats dashboard
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/application/usecases/queries"
)

// ErrUsage is returned when the arguments do not form a known command.
var ErrUsage = errors.New("invalid usage")

// Handlers groups every use case the CLI can run.
type Handlers struct {
	RegisterClient commands.RegisterClientCommandHandler
	UpdateClient   commands.UpdateClientCommandHandler
	DeleteClient   commands.DeleteClientCommandHandler

	RegisterCourier commands.RegisterCourierCommandHandler
	DeleteCourier   commands.DeleteCourierCommandHandler
	ToggleCourier   commands.ToggleCourierAvailabilityCommandHandler

	CreateOrder   commands.CreateOrderCommandHandler
	AssignCourier commands.AssignCourierCommandHandler
	DispatchOrder commands.DispatchOrderCommandHandler
	CancelOrder   commands.CancelOrderCommandHandler
	DeliverOrder  commands.DeliverOrderCommandHandler
	EditOrder     commands.EditOrderCommandHandler

	ListClients             queries.ListClientsQueryHandler
	ListCouriers            queries.ListCouriersQueryHandler
	ListOrders              queries.ListOrdersQueryHandler
	ListHistory             queries.ListHistoryQueryHandler
	ListCourierActiveOrders queries.ListCourierActiveOrdersQueryHandler
	ListCourierDeliveries   queries.ListCourierDeliveriesQueryHandler

	Dashboard   queries.GetDashboardQueryHandler
	TopCouriers queries.GetTopCouriersQueryHandler
	DailySeries queries.GetDailySeriesQueryHandler

	FindUser    queries.FindUserByNationalIDQueryHandler
	FindCourier queries.FindCourierByNationalIDQueryHandler
}

// Scheduler runs the background jobs started by the watch command.
type Scheduler interface {
	StartAll() error
	StopAll()
}

// App dispatches command lines to the handlers.
type App struct {
	handlers  Handlers
	scheduler Scheduler
	out       io.Writer
	errOut    io.Writer
}

// NewApp creates the CLI. scheduler may be nil, in which case watch is
// rejected.
func NewApp(handlers Handlers, scheduler Scheduler, out, errOut io.Writer) *App {
	return &App{
		handlers:  handlers,
		scheduler: scheduler,
		out:       out,
		errOut:    errOut,
	}
}

type action func(ctx context.Context, args []string) error

func (a *App) routes() map[string]map[string]action {
	return map[string]map[string]action{
		"client": {
			"add":    a.clientAdd,
			"update": a.clientUpdate,
			"delete": a.clientDelete,
			"list":   a.clientList,
		},
		"courier": {
			"add":        a.courierAdd,
			"delete":     a.courierDelete,
			"list":       a.courierList,
			"toggle":     a.courierToggle,
			"orders":     a.courierOrders,
			"deliveries": a.courierDeliveries,
		},
		"order": {
			"create":   a.orderCreate,
			"assign":   a.orderAssign,
			"dispatch": a.orderDispatch,
			"cancel":   a.orderCancel,
			"deliver":  a.orderDeliver,
			"edit":     a.orderEdit,
			"list":     a.orderList,
		},
		"history": {
			"list": a.historyList,
		},
		"stats": {
			"dashboard": a.statsDashboard,
			"top":       a.statsTop,
			"daily":     a.statsDaily,
		},
	}
}

// Run executes one command line, without the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	switch args[0] {
	case "login":
		return a.login(ctx, args[1:])
	case "watch":
		return a.watch(ctx, args[1:])
	case "help", "-h", "--help":
		a.usage()
		return nil
	}

	group, ok := a.routes()[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	if len(args) < 2 {
		a.usage()
		return fmt.Errorf("%w: %s needs a subcommand", ErrUsage, args[0])
	}

	run, ok := group[args[1]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0]+" "+args[1])
	}
	return run(ctx, args[2:])
}

func (a *App) usage() {
	fmt.Fprint(a.errOut, strings.TrimLeft(`
usage: courierdesk <command> [arguments]

  client add --name N --id ID --phone P --address A
  client update ID --name N --phone P --address A
  client delete ID
  client list

  courier add --name N --id ID --phone P [--available]
  courier delete ID
  courier toggle ID
  courier list
  courier orders ID
  courier deliveries ID

  order create --client ID --combo C --payment M [--courier ID] [--fee F] [--requires-change --change X]
  order assign ORDER COURIER
  order dispatch ORDER
  order cancel ORDER
  order deliver ORDER
  order edit ORDER [--address A] [--fee F] [--combo C]
  order list

  history list
  stats dashboard|top|daily
  login ID PASSWORD
  watch
`, "\n"))
}

// newFlagSet returns a flag set that reports to the error writer instead of
// exiting the process.
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// parse applies fs to args and wraps parse failures in ErrUsage.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}

// exactArgs checks the positional arguments of a command.
func exactArgs(name string, args []string, names ...string) error {
	if len(args) != len(names) {
		return fmt.Errorf("%w: %s expects %s", ErrUsage, name, strings.Join(names, " "))
	}
	return nil
}

// splitID takes the leading positional ID off a command line whose remaining
// arguments are flags.
func splitID(name string, args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, fmt.Errorf("%w: %s expects an ID first", ErrUsage, name)
	}
	return args[0], args[1:], nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"courierdesk/internal/core/application/usecases/queries"
	"courierdesk/internal/core/domain/model/user"
	"courierdesk/internal/pkg/errs"
)

var (
	// ErrInvalidCredentials is returned for an unknown account or a wrong
	// password; the two cases are not told apart.
	ErrInvalidCredentials = errors.New("invalid national ID or password")
	// ErrRoleNotAllowed is returned for accounts whose role the desk does not know.
	ErrRoleNotAllowed = errors.New("account role is not allowed to log in")
	// ErrNoScheduler is returned by watch when no jobs are configured.
	ErrNoScheduler = errors.New("no background jobs configured")
)

func (a *App) login(ctx context.Context, args []string) error {
	if err := exactArgs("login", args, "ID", "PASSWORD"); err != nil {
		return err
	}

	query, err := queries.NewFindUserByNationalIDQuery(args[0])
	if err != nil {
		return err
	}
	account, err := a.handlers.FindUser.Handle(ctx, query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	if !account.PasswordMatches(args[1]) {
		return ErrInvalidCredentials
	}

	switch account.Role() {
	case user.Admin:
		fmt.Fprintf(a.out, "welcome %s, role: %s\n", account.ID(), account.Role())
		return nil
	case user.Courier:
		return a.courierLogin(ctx, account)
	default:
		return ErrRoleNotAllowed
	}
}

// courierLogin shows the courier's profile and pending work.
func (a *App) courierLogin(ctx context.Context, account *user.User) error {
	profileQuery, err := queries.NewFindCourierByNationalIDQuery(account.ID())
	if err != nil {
		return err
	}
	profile, err := a.handlers.FindCourier.Handle(ctx, profileQuery)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "welcome %s, role: %s, available: %s\n", profile.Name(), account.Role(), yesNo(profile.IsAvailable()))

	ordersQuery, err := queries.NewListCourierActiveOrdersQuery(account.ID())
	if err != nil {
		return err
	}
	rows, err := a.handlers.ListCourierActiveOrders.Handle(ctx, ordersQuery)
	if err != nil {
		return err
	}
	return a.renderOrders(rows)
}

// watch runs the scheduled jobs until ctx is cancelled.
func (a *App) watch(ctx context.Context, args []string) error {
	if err := exactArgs("watch", args); err != nil {
		return err
	}
	if a.scheduler == nil {
		return ErrNoScheduler
	}

	if err := a.scheduler.StartAll(); err != nil {
		return err
	}
	defer a.scheduler.StopAll()

	fmt.Fprintln(a.out, "jobs running, press Ctrl+C to stop")
	<-ctx.Done()
	return nil
}

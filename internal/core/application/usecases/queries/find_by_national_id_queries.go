package queries

import (
	"context"
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/user"
	"courierdesk/internal/core/ports"
	"courierdesk/internal/pkg/guard"
)

var (
	ErrFindUserByNationalIDQueryIsNotConstructed = errors.New(
		"FindUserByNationalIDQuery must be created via NewFindUserByNationalIDQuery constructor",
	)
	ErrFindCourierByNationalIDQueryIsNotConstructed = errors.New(
		"FindCourierByNationalIDQuery must be created via NewFindCourierByNationalIDQuery constructor",
	)
)

// FindUserByNationalIDQuery looks up a login account. A missing account is
// reported as errs.ErrObjectNotFound.
type FindUserByNationalIDQuery struct {
	nationalID string
	guard      guard.ConstructorGuard
}

func NewFindUserByNationalIDQuery(nationalID string) (FindUserByNationalIDQuery, error) {
	nationalID = strings.TrimSpace(nationalID)
	if err := kernel.ValidateID("national id", nationalID); err != nil {
		return FindUserByNationalIDQuery{}, err
	}
	return FindUserByNationalIDQuery{nationalID: nationalID, guard: guard.NewConstructorGuard()}, nil
}

func (q FindUserByNationalIDQuery) Validate() error {
	return q.guard.Validate(ErrFindUserByNationalIDQueryIsNotConstructed)
}

func (q FindUserByNationalIDQuery) NationalID() string { return q.nationalID }

type FindUserByNationalIDQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewFindUserByNationalIDQueryHandler(uowFactory ports.UnitOfWorkFactory) FindUserByNationalIDQueryHandler {
	return FindUserByNationalIDQueryHandler{uowFactory: uowFactory}
}

func (h FindUserByNationalIDQueryHandler) Handle(ctx context.Context, query FindUserByNationalIDQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var found *user.User
	err := readSession(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		var err error
		found, err = uow.UserRepository().FindByID(ctx, query.NationalID())
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// FindCourierByNationalIDQuery looks up a courier, typically right after a
// courier account signs in.
type FindCourierByNationalIDQuery struct {
	nationalID string
	guard      guard.ConstructorGuard
}

func NewFindCourierByNationalIDQuery(nationalID string) (FindCourierByNationalIDQuery, error) {
	nationalID = strings.TrimSpace(nationalID)
	if err := kernel.ValidateID("national id", nationalID); err != nil {
		return FindCourierByNationalIDQuery{}, err
	}
	return FindCourierByNationalIDQuery{nationalID: nationalID, guard: guard.NewConstructorGuard()}, nil
}

func (q FindCourierByNationalIDQuery) Validate() error {
	return q.guard.Validate(ErrFindCourierByNationalIDQueryIsNotConstructed)
}

func (q FindCourierByNationalIDQuery) NationalID() string { return q.nationalID }

type FindCourierByNationalIDQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewFindCourierByNationalIDQueryHandler(uowFactory ports.UnitOfWorkFactory) FindCourierByNationalIDQueryHandler {
	return FindCourierByNationalIDQueryHandler{uowFactory: uowFactory}
}

func (h FindCourierByNationalIDQueryHandler) Handle(
	ctx context.Context,
	query FindCourierByNationalIDQuery,
) (*courier.Courier, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var found *courier.Courier
	err := readSession(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		var err error
		found, err = uow.CourierRepository().FindByID(ctx, query.NationalID())
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

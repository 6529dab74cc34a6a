package queries

import (
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

var (
	ErrListClientsQueryIsNotConstructed = errors.New(
		"ListClientsQuery must be created via NewListClientsQuery constructor",
	)
	ErrListCouriersQueryIsNotConstructed = errors.New(
		"ListCouriersQuery must be created via NewListCouriersQuery constructor",
	)
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrListHistoryQueryIsNotConstructed = errors.New(
		"ListHistoryQuery must be created via NewListHistoryQuery constructor",
	)
	ErrListCourierActiveOrdersQueryIsNotConstructed = errors.New(
		"ListCourierActiveOrdersQuery must be created via NewListCourierActiveOrdersQuery constructor",
	)
	ErrListCourierDeliveriesQueryIsNotConstructed = errors.New(
		"ListCourierDeliveriesQuery must be created via NewListCourierDeliveriesQuery constructor",
	)
)

// ListClientsQuery retrieves every client in storage order.
type ListClientsQuery struct {
	guard guard.ConstructorGuard
}

func NewListClientsQuery() ListClientsQuery {
	return ListClientsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

// ListCouriersQuery retrieves every courier in storage order.
type ListCouriersQuery struct {
	guard guard.ConstructorGuard
}

func NewListCouriersQuery() ListCouriersQuery {
	return ListCouriersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

// ListOrdersQuery retrieves every order with client and courier names resolved.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListHistoryQuery retrieves the whole delivery history ledger joined with the
// orders, clients and couriers it references.
type ListHistoryQuery struct {
	guard guard.ConstructorGuard
}

func NewListHistoryQuery() ListHistoryQuery {
	return ListHistoryQuery{guard: guard.NewConstructorGuard()}
}

func (q ListHistoryQuery) Validate() error {
	return q.guard.Validate(ErrListHistoryQueryIsNotConstructed)
}

// ListCourierActiveOrdersQuery retrieves the Pending and EnRoute orders
// assigned to one courier. This is what a signed-in courier works from.
//
// Example:
//
//	query, err := NewListCourierActiveOrdersQuery("12345678")
//	if err != nil {
//	    return err
//	}
//	rows, err := handler.Handle(ctx, query)
type ListCourierActiveOrdersQuery struct {
	courierID string
	guard     guard.ConstructorGuard
}

func NewListCourierActiveOrdersQuery(courierID string) (ListCourierActiveOrdersQuery, error) {
	courierID = strings.TrimSpace(courierID)
	if err := kernel.ValidateID("courier id", courierID); err != nil {
		return ListCourierActiveOrdersQuery{}, err
	}
	return ListCourierActiveOrdersQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCourierActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCourierActiveOrdersQueryIsNotConstructed)
}

func (q ListCourierActiveOrdersQuery) CourierID() string { return q.courierID }

// ListCourierDeliveriesQuery retrieves the Delivered history records of one courier.
type ListCourierDeliveriesQuery struct {
	courierID string
	guard     guard.ConstructorGuard
}

func NewListCourierDeliveriesQuery(courierID string) (ListCourierDeliveriesQuery, error) {
	courierID = strings.TrimSpace(courierID)
	if err := kernel.ValidateID("courier id", courierID); err != nil {
		return ListCourierDeliveriesQuery{}, err
	}
	return ListCourierDeliveriesQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListCourierDeliveriesQueryIsNotConstructed)
}

func (q ListCourierDeliveriesQuery) CourierID() string { return q.courierID }

package commands_test

import (
	"context"
	"time"

	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/core/domain/model/user"
	"courierdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Save(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) FindAll(ctx context.Context) ([]*client.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*client.Client), args.Error(1)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*client.Client)
	return c, args.Error(1)
}

func (m *MockClientRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Save(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) FindAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) FindByID(ctx context.Context, id string) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCourierRepository) UpdateAvailability(ctx context.Context, id string, available bool) error {
	return m.Called(ctx, id, available).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, r *history.Record) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockHistoryRepository) FindAll(ctx context.Context) ([]*history.Record, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*history.Record), args.Error(1)
}

func (m *MockHistoryRepository) FindByID(ctx context.Context, id string) (*history.Record, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*history.Record)
	return r, args.Error(1)
}

func (m *MockHistoryRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Save(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	return m.Called().Get(0).(ports.ClientRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	return m.Called().Get(0).(ports.CourierRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	return m.Called().Get(0).(commands.ClientUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	return m.Called().Get(0).(commands.CourierUoW)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2025, 5, 10, 10, 0, 0, 0, time.Local)

// newOrderUoW wires a begun-and-rolled-back unit of work with its factory.
// Repository expectations are set by each test.
func newOrderUoW() (*MockUoW, *MockOrderUoWFactory) {
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func newClientUoW() (*MockUoW, *MockClientUoWFactory) {
	uow := new(MockUoW)
	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func newCourierUoW() (*MockUoW, *MockCourierUoWFactory) {
	uow := new(MockUoW)
	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func mustClient(nationalID, address string) *client.Client {
	c, err := client.NewClient(nationalID, "Ana Díaz", "04241234567", address)
	if err != nil {
		panic(err)
	}
	return c
}

func mustCourier(nationalID string, available bool) *courier.Courier {
	c, err := courier.NewCourier(nationalID, "Luis Mora", "04141234567", available, "Ab3dE6gH")
	if err != nil {
		panic(err)
	}
	return c
}

func mustUser(nationalID, password string, role user.Role) *user.User {
	u, err := user.NewUser(nationalID, password, role)
	if err != nil {
		panic(err)
	}
	return u
}

func mustOrder(id, clientID string, status order.Status, courierID string) *order.Order {
	o, err := order.RestoreOrder(order.State{
		ID:              id,
		ClientID:        clientID,
		CourierID:       courierID,
		DeliveryAddress: "Av. Lara 3",
		Combo:           order.ComboForFour,
		ComboPrice:      10,
		Payment:         order.RestorePayment(order.Cash, false, 0),
		DeliveryFee:     2,
		Total:           12,
		Status:          status,
		CreatedAt:       testNow.Add(-time.Hour),
	})
	if err != nil {
		panic(err)
	}
	return o
}

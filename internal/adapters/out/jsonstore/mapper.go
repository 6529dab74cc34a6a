package jsonstore

import (
	"fmt"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/core/domain/model/user"
)

func clientToDTO(c *client.Client) ClientDTO {
	return ClientDTO{
		Name:       c.Name(),
		Phone:      c.Phone(),
		NationalID: c.ID(),
		Address:    c.Address(),
	}
}

func clientFromDTO(dto ClientDTO) (*client.Client, error) {
	return client.RestoreClient(dto.NationalID, dto.Name, dto.Phone, dto.Address)
}

func courierToDTO(c *courier.Courier) CourierDTO {
	return CourierDTO{
		Name:       c.Name(),
		Phone:      c.Phone(),
		NationalID: c.ID(),
		Available:  c.IsAvailable(),
		Password:   c.Password(),
	}
}

func courierFromDTO(dto CourierDTO) (*courier.Courier, error) {
	return courier.RestoreCourier(dto.NationalID, dto.Name, dto.Phone, dto.Available, dto.Password)
}

func userToDTO(u *user.User) UserDTO {
	return UserDTO{
		NationalID: u.ID(),
		Password:   u.Password(),
		Role:       u.Role().String(),
	}
}

func userFromDTO(dto UserDTO) (*user.User, error) {
	return user.NewUser(dto.NationalID, dto.Password, user.ParseRole(dto.Role))
}

func orderToDTO(o *order.Order) OrderDTO {
	s := o.State()

	var courierID *string
	if s.CourierID != "" {
		id := s.CourierID
		courierID = &id
	}

	return OrderDTO{
		ID:              s.ID,
		ClientID:        s.ClientID,
		CourierID:       courierID,
		DeliveryAddress: s.DeliveryAddress,
		Combo:           s.Combo.Code(),
		ComboPrice:      s.ComboPrice,
		PaymentMethod:   s.Payment.Method().Code(),
		RequiresChange:  s.Payment.RequiresChange(),
		DeliveryFee:     s.DeliveryFee,
		Change:          s.Payment.Change(),
		Status:          s.Status.Label(),
		CreatedAt:       newDateTime(s.CreatedAt),
		DeliveredAt:     newDateTimePtr(s.DeliveredAt),
		Total:           s.Total,
	}
}

func orderFromDTO(dto OrderDTO) (*order.Order, error) {
	combo, err := order.ParseCombo(dto.Combo)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}
	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}

	var courierID string
	if dto.CourierID != nil {
		courierID = *dto.CourierID
	}

	return order.RestoreOrder(order.State{
		ID:              dto.ID,
		ClientID:        dto.ClientID,
		CourierID:       courierID,
		DeliveryAddress: dto.DeliveryAddress,
		Combo:           combo,
		ComboPrice:      dto.ComboPrice,
		Payment:         order.RestorePayment(method, dto.RequiresChange, dto.Change),
		DeliveryFee:     dto.DeliveryFee,
		Total:           dto.Total,
		Status:          status,
		CreatedAt:       dto.CreatedAt.value(),
		DeliveredAt:     dto.DeliveredAt.pointer(),
	})
}

func historyToDTO(r *history.Record) HistoryDTO {
	var courierID *string
	if r.CourierID() != "" {
		id := r.CourierID()
		courierID = &id
	}

	return HistoryDTO{
		ID:         r.ID(),
		OrderID:    r.OrderID(),
		CourierID:  courierID,
		OccurredAt: newDateTime(r.OccurredAt()),
		Outcome:    r.Outcome().Label(),
		Location:   r.Location(),
	}
}

func historyFromDTO(dto HistoryDTO) (*history.Record, error) {
	outcome, err := history.ParseOutcome(dto.Outcome)
	if err != nil {
		return nil, fmt.Errorf("history record %s: %w", dto.ID, err)
	}

	var courierID string
	if dto.CourierID != nil {
		courierID = *dto.CourierID
	}

	return history.RestoreRecord(dto.ID, dto.OrderID, courierID, outcome, dto.OccurredAt.value(), dto.Location)
}

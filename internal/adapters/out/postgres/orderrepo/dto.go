// Package orderrepo persists order aggregates in PostgreSQL.
package orderrepo

import (
	"fmt"
	"time"

	"courierdesk/internal/core/domain/model/order"
)

// OrderDTO is the orders table row. Combo, payment method and status are
// stored by their snapshot codes so both backends read the same values.
//
// Timestamp fields avoid the CreatedAt name so GORM does not fill them in.
type OrderDTO struct {
	ID              string  `gorm:"primaryKey"`
	ClientID        string  `gorm:"index;not null"`
	CourierID       *string `gorm:"index"`
	DeliveryAddress string
	Combo           string
	ComboPrice      float64
	PaymentMethod   string
	RequiresChange  bool
	ChangeAmount    float64
	DeliveryFee     float64
	Total           float64
	Status          string `gorm:"index"`
	CreationTime    *time.Time
	DeliveryTime    *time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.State()

	var courierID *string
	if s.CourierID != "" {
		id := s.CourierID
		courierID = &id
	}

	var createdAt *time.Time
	if !s.CreatedAt.IsZero() {
		at := s.CreatedAt
		createdAt = &at
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
		ChangeAmount:    s.Payment.Change(),
		DeliveryFee:     s.DeliveryFee,
		Total:           s.Total,
		Status:          s.Status.Label(),
		CreationTime:    createdAt,
		DeliveryTime:    s.DeliveredAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
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

	var createdAt time.Time
	if dto.CreationTime != nil {
		createdAt = dto.CreationTime.In(time.Local)
	}

	var deliveredAt *time.Time
	if dto.DeliveryTime != nil {
		at := dto.DeliveryTime.In(time.Local)
		deliveredAt = &at
	}

	return order.RestoreOrder(order.State{
		ID:              dto.ID,
		ClientID:        dto.ClientID,
		CourierID:       courierID,
		DeliveryAddress: dto.DeliveryAddress,
		Combo:           combo,
		ComboPrice:      dto.ComboPrice,
		Payment:         order.RestorePayment(method, dto.RequiresChange, dto.ChangeAmount),
		DeliveryFee:     dto.DeliveryFee,
		Total:           dto.Total,
		Status:          status,
		CreatedAt:       createdAt,
		DeliveredAt:     deliveredAt,
	})
}

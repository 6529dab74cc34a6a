package jsonstore

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the timestamp format of the document, in local time.
const DateLayout = "02/01/2006 15:04"

// Snapshot is the whole database: five collections referencing each other by ID.
type Snapshot struct {
	Users    []UserDTO    `json:"usuarios"`
	Couriers []CourierDTO `json:"repartidor"`
	Orders   []OrderDTO   `json:"pedido"`
	Clients  []ClientDTO  `json:"cliente"`
	History  []HistoryDTO `json:"historial"`
}

func emptySnapshot() Snapshot {
	var s Snapshot
	s.normalize()
	return s
}

// normalize replaces null collections with empty ones so they are written as [].
func (s *Snapshot) normalize() {
	if s.Users == nil {
		s.Users = []UserDTO{}
	}
	if s.Couriers == nil {
		s.Couriers = []CourierDTO{}
	}
	if s.Orders == nil {
		s.Orders = []OrderDTO{}
	}
	if s.Clients == nil {
		s.Clients = []ClientDTO{}
	}
	if s.History == nil {
		s.History = []HistoryDTO{}
	}
}

// clone returns a deep copy so that a session can be discarded on rollback.
func (s Snapshot) clone() Snapshot {
	c := Snapshot{
		Users:    append([]UserDTO(nil), s.Users...),
		Couriers: append([]CourierDTO(nil), s.Couriers...),
		Orders:   make([]OrderDTO, len(s.Orders)),
		Clients:  append([]ClientDTO(nil), s.Clients...),
		History:  make([]HistoryDTO, len(s.History)),
	}
	for i, o := range s.Orders {
		c.Orders[i] = o.clone()
	}
	for i, h := range s.History {
		c.History[i] = h.clone()
	}
	c.normalize()
	return c
}

type UserDTO struct {
	NationalID string `json:"cedula"`
	Password   string `json:"contrasena"`
	Role       string `json:"rol"`
}

type CourierDTO struct {
	Name       string `json:"nombre"`
	Phone      string `json:"numeroTelefono"`
	NationalID string `json:"cedulaIdentidad"`
	Available  bool   `json:"disponibilidad"`
	Password   string `json:"contrasena"`
}

type ClientDTO struct {
	Name       string `json:"nombre"`
	Phone      string `json:"numeroTelefono"`
	NationalID string `json:"cedulaIdentidad"`
	Address    string `json:"direccion"`
}

type OrderDTO struct {
	ID              string    `json:"idPedido"`
	ClientID        string    `json:"idCliente"`
	CourierID       *string   `json:"idRepartidor"`
	DeliveryAddress string    `json:"direccionEntrega"`
	Combo           string    `json:"combo"`
	ComboPrice      float64   `json:"precioCombo"`
	PaymentMethod   string    `json:"metodoPago"`
	RequiresChange  bool      `json:"requiereCambio"`
	DeliveryFee     float64   `json:"costoEntrega"`
	Change          float64   `json:"vuelto"`
	Status          string    `json:"estado"`
	CreatedAt       *DateTime `json:"fechaCreacion"`
	DeliveredAt     *DateTime `json:"fechaEntrega"`
	Total           float64   `json:"montoTotal"`
}

func (o OrderDTO) clone() OrderDTO {
	o.CourierID = cloneString(o.CourierID)
	o.CreatedAt = o.CreatedAt.clone()
	o.DeliveredAt = o.DeliveredAt.clone()
	return o
}

type HistoryDTO struct {
	ID         string    `json:"idHistorial"`
	OrderID    string    `json:"idPedido"`
	CourierID  *string   `json:"idRepartidor"`
	OccurredAt *DateTime `json:"fechaRegistro"`
	Outcome    string    `json:"estadoEntrega"`
	Location   string    `json:"ubicacionEntrega"`
}

func (h HistoryDTO) clone() HistoryDTO {
	h.CourierID = cloneString(h.CourierID)
	h.OccurredAt = h.OccurredAt.clone()
	return h
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// DateTime encodes a timestamp as DateLayout in local time. A nil *DateTime
// is written as null.
type DateTime struct {
	time.Time
}

func newDateTime(t time.Time) *DateTime {
	if t.IsZero() {
		return nil
	}
	return &DateTime{Time: t}
}

func newDateTimePtr(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	return newDateTime(*t)
}

func (d *DateTime) clone() *DateTime {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

// value returns the zero time for nil.
func (d *DateTime) value() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

func (d *DateTime) pointer() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.In(time.Local).Format(DateLayout))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := time.ParseInLocation(DateLayout, raw, time.Local)
	if err != nil {
		return fmt.Errorf("unexpected date format %q, want %q: %w", raw, DateLayout, err)
	}
	d.Time = t
	return nil
}

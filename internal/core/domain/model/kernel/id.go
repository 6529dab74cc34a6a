package kernel

import (
	"strings"

	"courierdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// OrderIDPrefix starts every generated order ID. Legacy IDs ("PED123") share it.
	OrderIDPrefix = "PED-"
	// HistoryIDPrefix starts every generated delivery history ID.
	HistoryIDPrefix = "HIST-"
)

// NewOrderID returns a collision-free order identifier. Callers must treat the
// value as opaque.
func NewOrderID() string {
	return OrderIDPrefix + uuid.NewString()
}

// NewHistoryID returns a collision-free delivery history identifier.
func NewHistoryID() string {
	return HistoryIDPrefix + uuid.NewString()
}

// ValidateID rejects empty and blank identifiers.
func ValidateID(paramName, id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

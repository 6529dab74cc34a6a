package history

import (
	"fmt"
	"strings"

	"courierdesk/internal/pkg/errs"
)

// Outcome is the terminal result captured by a Record.
type Outcome int

const (
	// UnknownOutcome catches zero values and unparseable labels.
	UnknownOutcome Outcome = iota
	// Delivered means the order reached the client.
	Delivered
	// Cancelled means the order was called off before delivery.
	Cancelled
)

var outcomeLabels = map[Outcome]string{
	Delivered: "Entregado",
	Cancelled: "Cancelado",
}

// Validate rejects UnknownOutcome and out-of-range values.
func (o Outcome) Validate() error {
	if _, ok := outcomeLabels[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%d is not a valid outcome", o))
	}
	return nil
}

func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "Delivered"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Label returns the persisted form ("Entregado", "Cancelado").
func (o Outcome) Label() string {
	if label, ok := outcomeLabels[o]; ok {
		return label
	}
	return ""
}

// ParseOutcome maps a persisted label back to an Outcome. Matching ignores
// case and surrounding spaces; the English names are accepted too.
func ParseOutcome(s string) (Outcome, error) {
	s = strings.TrimSpace(s)
	for outcome, label := range outcomeLabels {
		if strings.EqualFold(s, label) || strings.EqualFold(s, outcome.String()) {
			return outcome, nil
		}
	}
	return UnknownOutcome, errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%q is not a known outcome", s))
}

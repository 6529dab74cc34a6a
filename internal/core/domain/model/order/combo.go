package order

import (
	"errors"
	"fmt"
	"strings"

	"courierdesk/internal/pkg/errs"
)

// Combo is a fixed-price menu bundle.
type Combo int

const (
	// NoCombo is the "select a combo" placeholder and is never valid on an order.
	NoCombo Combo = iota
	ComboForFour
	ComboForTwo
)

type comboInfo struct {
	code  string
	label string
	price float64
}

var combos = map[Combo]comboInfo{
	ComboForFour: {code: "PARA4", label: "Combo para 4", price: 10},
	ComboForTwo:  {code: "PARA2", label: "Combo para 2", price: 5},
}

// Combos lists the selectable combos in display order.
func Combos() []Combo {
	return []Combo{ComboForFour, ComboForTwo}
}

// Validate rejects NoCombo and unknown values.
func (c Combo) Validate() error {
	if c == NoCombo {
		return errs.NewValueIsRequiredErrorWithCause("combo", errors.New("select a combo"))
	}
	if _, ok := combos[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("combo", fmt.Errorf("%d is not a valid combo", c))
	}
	return nil
}

// Code is the persisted enum constant, e.g. "PARA4".
func (c Combo) Code() string {
	if info, ok := combos[c]; ok {
		return info.code
	}
	return "SELECCIONAR"
}

func (c Combo) String() string {
	if info, ok := combos[c]; ok {
		return info.label
	}
	return "Seleccionar"
}

// Price returns the fixed price of the combo, 0 for NoCombo.
func (c Combo) Price() float64 {
	return combos[c].price
}

// ParseCombo accepts a code ("PARA4") or a label ("Combo para 4"). The
// placeholder code "SELECCIONAR" and the empty string yield NoCombo without error;
// whether that is acceptable is up to the caller.
func ParseCombo(s string) (Combo, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "SELECCIONAR") {
		return NoCombo, nil
	}
	for combo, info := range combos {
		if strings.EqualFold(s, info.code) || strings.EqualFold(s, info.label) {
			return combo, nil
		}
	}
	return NoCombo, errs.NewValueIsInvalidErrorWithCause("combo", fmt.Errorf("%q is not a known combo", s))
}

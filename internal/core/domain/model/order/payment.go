package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"courierdesk/internal/pkg/errs"
)

// PaymentMethod is how the client pays on delivery.
type PaymentMethod int

const (
	// NoPaymentMethod is the "select a method" placeholder.
	NoPaymentMethod PaymentMethod = iota
	Cash
	MobilePayment
	BankTransfer
)

type paymentMethodInfo struct {
	code  string
	label string
}

var paymentMethods = map[PaymentMethod]paymentMethodInfo{
	Cash:          {code: "EFECTIVO", label: "Efectivo $"},
	MobilePayment: {code: "PAGO_MOVIL", label: "Pago Móvil"},
	BankTransfer:  {code: "TRANSFERENCIA", label: "Transferencia bancaria"},
}

// PaymentMethods lists the selectable methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{Cash, MobilePayment, BankTransfer}
}

func (m PaymentMethod) Validate() error {
	if m == NoPaymentMethod {
		return errs.NewValueIsRequiredErrorWithCause("payment method", errors.New("select a payment method"))
	}
	if _, ok := paymentMethods[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// Code is the persisted enum constant, e.g. "PAGO_MOVIL".
func (m PaymentMethod) Code() string {
	if info, ok := paymentMethods[m]; ok {
		return info.code
	}
	return "SELECCIONAR"
}

func (m PaymentMethod) String() string {
	if info, ok := paymentMethods[m]; ok {
		return info.label
	}
	return "Seleccionar"
}

// ParsePaymentMethod accepts a code or a label, ignoring case. The placeholder
// and the empty string yield NoPaymentMethod without error.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "SELECCIONAR") {
		return NoPaymentMethod, nil
	}
	for method, info := range paymentMethods {
		if strings.EqualFold(s, info.code) || strings.EqualFold(s, info.label) {
			return method, nil
		}
	}
	return NoPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a known payment method", s))
}

// Payment groups the payment method with the change the courier has to bring.
type Payment struct {
	method         PaymentMethod
	requiresChange bool
	change         float64
}

// NewPayment validates the method and the change amount. When requiresChange
// is false the change is forced to 0.
func NewPayment(method PaymentMethod, requiresChange bool, change float64) (Payment, error) {
	if !requiresChange {
		change = 0
	}
	if err := errors.Join(method.Validate(), ValidateAmount("change", change)); err != nil {
		return Payment{}, err
	}
	return Payment{method: method, requiresChange: requiresChange, change: change}, nil
}

func (p Payment) Method() PaymentMethod { return p.method }

func (p Payment) RequiresChange() bool { return p.requiresChange }

func (p Payment) Change() float64 { return p.change }

// ValidateAmount rejects negative, NaN and infinite money amounts.
func ValidateAmount(paramName string, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return errs.NewValueIsOutOfRangeError(paramName, amount, 0, math.MaxFloat64)
	}
	return nil
}

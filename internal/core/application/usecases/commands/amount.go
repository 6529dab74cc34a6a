package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/pkg/errs"
)

var amountPattern = regexp.MustCompile(`^-?[0-9]+([.,][0-9]+)?$`)

// parseAmount turns operator input such as "2", "2.50" or "2,50" into a
// non-negative amount.
func parseAmount(paramName, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errs.NewValueIsRequiredError(paramName)
	}
	if !amountPattern.MatchString(raw) {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not a number", raw))
	}

	amount, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	if err := order.ValidateAmount(paramName, amount); err != nil {
		return 0, err
	}
	return amount, nil
}

package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"courierdesk/internal/pkg/errs"
)

var (
	namePattern       = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÑáéíóúñÜü ]+$`)
	nationalIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{5,15}$`)
	phonePattern      = regexp.MustCompile(`^(0412|0414|0424|0416|0426)\d{7}$`)
)

// PersonalInfo is the identity and contact value shared by clients and
// couriers. The national ID doubles as the owning entity's identity.
//
// PersonalInfo is immutable: "updating" a person means building a new value
// with NewPersonalInfo and handing it to the owning aggregate.
type PersonalInfo struct {
	nationalID string
	name       string
	phone      string

	isSet bool
}

// NewPersonalInfo validates and builds a PersonalInfo.
//
// Rules:
//   - name: letters (including Spanish accented letters) and spaces only
//   - nationalID: 5 to 15 letters or digits (local 7-8 digit IDs and foreign
//     document numbers both fit)
//   - phone: Venezuelan mobile number, 0412/0414/0416/0424/0426 followed by
//     seven digits
//
// Surrounding whitespace is trimmed before validation. Every violated rule is
// reported, joined with errors.Join.
func NewPersonalInfo(nationalID, name, phone string) (PersonalInfo, error) {
	nationalID = strings.TrimSpace(nationalID)
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if err := errors.Join(
		ValidateNationalID(nationalID),
		validateName(name),
		validatePhone(phone),
	); err != nil {
		return PersonalInfo{}, err
	}

	return PersonalInfo{nationalID: nationalID, name: name, phone: phone, isSet: true}, nil
}

// RestorePersonalInfo rebuilds a PersonalInfo from storage without format
// validation. Legacy documents may hold values the current rules reject.
func RestorePersonalInfo(nationalID, name, phone string) PersonalInfo {
	return PersonalInfo{nationalID: nationalID, name: name, phone: phone, isSet: true}
}

// ValidateNationalID checks the format of a national ID.
func ValidateNationalID(nationalID string) error {
	if nationalID == "" {
		return errs.NewValueIsRequiredError("national id")
	}
	if !nationalIDPattern.MatchString(nationalID) {
		return errs.NewValueIsInvalidErrorWithCause("national id",
			fmt.Errorf("%q must be 5 to 15 letters or digits", nationalID))
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !namePattern.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q must contain only letters and spaces", name))
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not a valid mobile number (e.g. 04141234567)", phone))
	}
	return nil
}

// Validate reports whether the value was built by NewPersonalInfo or
// RestorePersonalInfo.
func (p PersonalInfo) Validate() error {
	if !p.isSet {
		return errs.NewValueIsRequiredError("personal info")
	}
	return nil
}

func (p PersonalInfo) NationalID() string { return p.nationalID }

func (p PersonalInfo) Name() string { return p.name }

func (p PersonalInfo) Phone() string { return p.phone }

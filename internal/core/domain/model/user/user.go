package user

import (
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when using an improperly initialized User.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Role is the closed set of account roles.
type Role int

const (
	// UnknownRole covers any stored role the system does not recognize.
	UnknownRole Role = iota
	Admin
	Courier
)

var roleLabels = map[Role]string{
	Admin:   "admin",
	Courier: "repartidor",
}

func (r Role) String() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return "unknown"
}

// ParseRole maps a stored role string to a Role ignoring case. Unrecognized
// strings become UnknownRole.
func ParseRole(s string) Role {
	s = strings.TrimSpace(s)
	for role, label := range roleLabels {
		if strings.EqualFold(s, label) {
			return role
		}
	}
	if strings.EqualFold(s, "courier") {
		return Courier
	}
	return UnknownRole
}

// User is a login account.
type User struct {
	nationalID string
	password   string
	role       Role
	guard      guard.ConstructorGuard
}

// NewUser builds an account. The role may be UnknownRole: such accounts exist
// but are refused by the login flow.
func NewUser(nationalID, password string, role Role) (*User, error) {
	if err := kernel.ValidateID("user id", nationalID); err != nil {
		return nil, err
	}
	return &User{
		nationalID: strings.TrimSpace(nationalID),
		password:   password,
		role:       role,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the national ID the account logs in with.
func (u *User) ID() string { return u.nationalID }

func (u *User) Password() string { return u.password }

func (u *User) Role() Role { return u.role }

// PasswordMatches compares the stored password character for character.
func (u *User) PasswordMatches(password string) bool {
	return u.password == password
}

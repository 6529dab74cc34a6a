// Package courier provides the Courier aggregate root: the delivery agent that
// orders are assigned to.
//
// The package includes:
//   - Courier: identity and contact data, availability flag, login password
//   - GeneratePassword: the system-issued 8 character alphanumeric credential
//
// Key business rules:
//   - A courier is identified by its national ID
//   - Passwords are generated by the system, never chosen by the courier
//   - Password uniqueness is not enforced
//   - Availability is a plain flag toggled by the courier or an administrator
package courier

// Package user models login accounts. Accounts are looked up by national ID
// by the login flow, which compares passwords as plain strings.
package user

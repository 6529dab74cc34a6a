// Package ports defines the contracts between the courierdesk core and its
// adapters: one repository per aggregate, the unit of work that groups them
// into a transaction, and the clock.
//
// Shared repository semantics:
//   - Save upserts by ID; saving the same ID twice leaves one entry with the
//     latest values
//   - FindAll returns values detached from storage; changing them has no
//     effect until they are saved
//   - FindByID returns an error matching errs.ErrObjectNotFound when absent
//   - DeleteByID removes every entry with the ID; a missing ID is not an error
package ports

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return row-oriented read models for the presentation layer and the
// login flow; none of them changes stored data.
//
// Every handler reads through one unit of work that is begun and rolled back,
// so all collections of a projection come from the same consistent state.
package queries

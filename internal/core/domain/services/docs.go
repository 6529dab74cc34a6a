// Package services provides domain services that compute over several
// aggregates at once.
//
// The package includes:
//   - Statistics: the read-only metrics engine (on-time delivery percentage,
//     average delivery time, delivered today, in-progress orders, active
//     couriers, top courier ranking and the per-day series)
//
// Services here are pure: they receive aggregates and return values, and never
// touch repositories or the clock directly.
package services

// Package order provides the Order aggregate root and the values it owns.
//
// The package includes:
//   - Order: identity, client and courier references, pricing, lifecycle
//   - Status: the lifecycle state machine
//   - Combo: the fixed-price menu bundle
//   - Payment: payment method plus the change the courier must carry
//
// Key business rules:
//   - A new order always starts Pending, with no delivery timestamp
//   - Pending -> EnRoute -> Delivered|Cancelled, and Pending -> Delivered|Cancelled
//   - Delivered and Cancelled are terminal: no transition, edit or reassignment
//   - The total is combo price + delivery fee, frozen at creation
//   - Each terminal transition returns exactly one history.Record
package order

// Package kernel provides the shared domain primitives of the courierdesk core.
//
// The package includes:
//   - PersonalInfo: the identity/contact value composed into clients and couriers
//   - Order and history ID generation backed by github.com/google/uuid
//   - Minute-precision time helpers shared by the lifecycle and the statistics engine
//
// Values here are immutable and carry no persistence concerns.
package kernel

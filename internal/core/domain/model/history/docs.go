// Package history models the delivery history ledger: one immutable Record
// per terminal transition of an order.
//
// Records are created by the order aggregate when it is delivered or
// cancelled and are never changed afterwards. They reference the order and
// the courier by ID and keep a copy of the delivery address as it was at the
// time of the event.
package history

// Package order provides the purchase-order aggregate and its supporting
// value objects.
//
// The package includes:
//   - Order: the aggregate root owning lines, shipping info, status, and the
//     derived total amount
//   - OrderLine: a priced quantity of one product whose subtotal is derived
//     at construction
//   - ShippingInfo and Address: immutable destination value objects
//   - Status: the lifecycle state machine gating mutations
//
// Key business rules:
//   - an order always has at least one line and valid shipping info
//   - the total amount is always the sum of the line amounts
//   - products on the not-orderable list are rejected at line construction
//   - cancellation and shipping changes are allowed only before shipment
//
// All consistency-preserving mutations go through the Order aggregate root;
// no external party holds a mutable reference into its internals.
package order

// Package kernel provides the shared domain primitives of the ordering system.
// It implements the fundamental value objects used across aggregates.
//
// The package includes:
//   - Money: an immutable monetary amount with non-mutating arithmetic
//   - OrderNo: the opaque identifier that gives the Order entity its identity
//
// Both primitives are immutable, compare by value, and enforce proper
// construction through the constructor-guard pattern, so a zero value can
// never masquerade as a valid domain object.
package kernel

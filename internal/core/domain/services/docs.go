// Package services provides domain services that implement business logic
// spanning more than one aggregate or depending on pluggable collaborators.
//
// The package includes:
//   - CalculateDiscountService: computes the payable amount for an order
//     total through an injected OrderDiscounter strategy, keeping the
//     user-grade lookup behind an interface so tests can substitute stubs
package services

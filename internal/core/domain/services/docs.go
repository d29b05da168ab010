// Package services provides domain services for the lab order system.
// Domain services hold business rules that do not naturally belong to a
// single aggregate method, following Domain-Driven Design principles.
//
// The package includes:
//   - OrderLifecycle: the order state machine, the single component allowed
//     to move an order forward through CREATED -> ANALYSIS -> COMPLETED
package services

// Package order provides domain entities and business rules for laboratory
// service orders. It implements the Order aggregate root with its lifecycle
// fields and local invariants.
//
// The package includes:
//   - Order: The aggregate root carrying identity, parties, state, status and services
//   - State: The lifecycle stage, a strict linear sequence CREATED -> ANALYSIS -> COMPLETED
//   - Status: The soft-delete flag (ACTIVE/DELETED), orthogonal to State
//   - Service: A value object describing one named, priced item of an order
//
// Key business rules:
//   - Orders must have a valid unique identifier and non-empty lab, patient and customer
//   - Orders carry at least one service at all times
//   - State only moves forward through the sequence, one step at a time, and
//     the only write path for it is Order.AdvanceState
//   - Soft deletion flips Status without touching the lifecycle state
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

// Package order provides domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root with its status state
// machine, actor authority rules, and append-only status history.
//
// The package includes:
//   - Order: The aggregate root owning items, charges, status, and history
//   - Status: A state machine enforcing the allowed-successor sets
//   - Actor: Who drives a transition (system, admin, customer, chef, agent)
//   - Item, Charges, HistoryEntry: value objects of the aggregate
//
// Key business rules:
//   - cart -> pending -> confirmed -> preparing -> ready -> delivered,
//     with cancelled reachable from every non-terminal state
//   - delivered and cancelled are terminal
//   - every successful transition appends exactly one history entry
//   - charges are computed at checkout and immutable afterwards
//   - transitioning to the current status is an idempotent no-op
package order

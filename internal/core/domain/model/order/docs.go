// Package order provides the Order aggregate and its status state machine.
//
// The package includes:
//   - Order: the aggregate root holding line items, the frozen total and the status
//   - Item: a line item with the unit price captured when the order was placed
//   - Status: the lifecycle states and the transition table between them
//
// Key business rules:
//   - an order has at least one line item and a positive table number
//   - the total amount never changes after creation
//   - status moves Pending -> Preparing -> Ready -> Delivered, with Cancelled
//     reachable from Pending and Preparing only
//   - Delivered and Cancelled are terminal
package order

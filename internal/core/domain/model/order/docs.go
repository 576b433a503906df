// Package order provides the order aggregate of the fulfillment engine:
// immutable line items carrying their full pricing trail, derived totals with
// an optional fee surcharge, and a lifecycle state machine driven by the
// shipping and delivery-route subsystems.
//
// Key business rules:
//   - Orders are created in Confirmed status, atomically with their items
//     and the stock reservations backing them
//   - Route assignment issues a 4-digit delivery code and sets requiresCode;
//     delivery confirmation must then present the exact code
//   - Cancellation is only possible before dispatch and must release the
//     reserved stock of every line in the same transaction
//   - Delivered and Cancelled are terminal; orders are never hard-deleted
package order

// Package product provides the catalog aggregate and the pricing value
// objects used by order lines: price tiers selecting one of a product's three
// price points, and per-line adjustments (fixed price, percentage discount,
// percentage markup) applied after tier selection.
//
// Stock counts live on the aggregate for reads, but stock mutation is owned
// by the repository layer so the non-negativity check and the decrement stay
// a single atomic operation inside the order transaction.
package product

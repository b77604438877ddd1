// Package product contains the Product aggregate root.
//
// A product is a farm listing that buyers order from. The aggregate tracks
// the farmer who owns the listing, pricing, the quantity still in stock and
// whether the listing is visible to buyers. Stock is reserved when an order
// is created and released if the order is cancelled, so the quantity on a
// listing can never go below zero.
package product

// Package inventory contains the per-branch stock ledger of the distribution domain.
//
// A Record tracks one part at one branch across three storage-tier buckets,
// with a maximum threshold, a rack location, and last sale/purchase markers.
// The package also owns the pure stock-classification functions: the four-tier
// StockLevel banding and the separate, finer AlertUrgency banding used inside
// the low-stock alert set.
package inventory

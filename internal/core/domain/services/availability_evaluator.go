package services

import (
	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
)

// FulfillmentStatus is the computed availability of one line item against the
// placing branch's current stock.
type FulfillmentStatus string

const (
	// FulfillmentNotAvailable: the branch has no inventory record for the part.
	FulfillmentNotAvailable FulfillmentStatus = "Not Available"

	// FulfillmentOutOfStock: a record exists but the bucket sum is zero or less.
	FulfillmentOutOfStock FulfillmentStatus = "Out of Stock"

	// FulfillmentInsufficientStock: stock exists but is below the ordered quantity.
	FulfillmentInsufficientStock FulfillmentStatus = "Insufficient Stock"

	// FulfillmentAvailable: stock covers the ordered quantity.
	FulfillmentAvailable FulfillmentStatus = "Available"
)

// ItemAvailability is the evaluation result for a single line item.
type ItemAvailability struct {
	Seq             int
	PartID          kernel.UUID
	OrderedQuantity int
	AvailableStock  int
	RackLocation    string
	Status          FulfillmentStatus
}

// AvailabilitySummary aggregates per-item results at the order level.
// CanFulfill is true only when every item is Available.
type AvailabilitySummary struct {
	Items             []ItemAvailability
	Available         int
	InsufficientStock int
	OutOfStock        int
	NotAvailable      int
	CanFulfill        bool
}

// AvailabilityEvaluator computes live fulfillment status for an order's items
// against the placing branch's inventory ledger.
//
// The evaluation is read-only and recomputed on every call: inventory moves
// independently of orders, so results are a point-in-time snapshot, never a
// reservation. An item shown Available here can still be gone at pick time.
type AvailabilityEvaluator struct{}

// NewAvailabilityEvaluator creates the evaluator. It holds no state.
func NewAvailabilityEvaluator() AvailabilityEvaluator {
	return AvailabilityEvaluator{}
}

// Evaluate joins each line item against the branch's inventory records.
//
// Per-item status, in priority order: Not Available when no record matches the
// part; Out of Stock when the bucket sum is zero or less; Insufficient Stock
// when the sum is below the ordered quantity; Available otherwise.
//
// records must all belong to the order's placing branch; matching is by part.
func (AvailabilityEvaluator) Evaluate(items []*order.LineItem, records []*inventory.Record) AvailabilitySummary {
	byPart := make(map[kernel.UUID]*inventory.Record, len(records))
	for _, r := range records {
		byPart[r.PartID()] = r
	}

	summary := AvailabilitySummary{
		Items: make([]ItemAvailability, 0, len(items)),
	}

	for _, item := range items {
		result := ItemAvailability{
			Seq:             item.Seq(),
			PartID:          item.PartID(),
			OrderedQuantity: item.Quantity(),
		}

		record, ok := byPart[item.PartID()]
		switch {
		case !ok:
			result.Status = FulfillmentNotAvailable
			summary.NotAvailable++
		case record.TotalStock() <= 0:
			result.Status = FulfillmentOutOfStock
			result.RackLocation = record.RackLocation()
			summary.OutOfStock++
		case record.TotalStock() < item.Quantity():
			result.Status = FulfillmentInsufficientStock
			result.AvailableStock = record.TotalStock()
			result.RackLocation = record.RackLocation()
			summary.InsufficientStock++
		default:
			result.Status = FulfillmentAvailable
			result.AvailableStock = record.TotalStock()
			result.RackLocation = record.RackLocation()
			summary.Available++
		}

		summary.Items = append(summary.Items, result)
	}

	summary.CanFulfill = len(items) > 0 && summary.Available == len(items)
	return summary
}

package ports

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
)

// RetailerInfo carries the display fields of one retailer.
type RetailerInfo struct {
	ID    kernel.UUID
	Name  string
	City  string
	Phone string
}

// RetailerDirectory resolves retailer metadata owned by the external
// administration module. The core only reads it to enrich created orders.
type RetailerDirectory interface {
	// DisplayInfo returns the display fields of a retailer.
	// Returns ObjectNotFoundError for an unknown retailer id.
	DisplayInfo(ctx context.Context, retailerID kernel.UUID) (RetailerInfo, error)
}

package inventory

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through
// NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Record is the per-(branch, part) stock ledger entry. It tracks three stock
// buckets representing distinct storage tiers, the maximum threshold used for
// classification, the rack location, and the last sale/purchase timestamps.
//
// Records live independently of orders: order evaluation only ever reads them,
// never locks them, so order availability is eventually consistent with the
// physical racks. Each mutation is an independently atomic single-row update
// and stamps the sync marker.
type Record struct {
	branchCode     string
	partID         kernel.UUID
	bucketA        int
	bucketB        int
	bucketC        int
	maxQuantity    int
	rackLocation   string
	note           string
	lastSaleAt     *time.Time
	lastPurchaseAt *time.Time
	syncedAt       time.Time

	isConstructed bool
}

// NewRecord creates a stock record for a branch+part pair.
// Buckets and the maximum threshold must be non-negative.
func NewRecord(branchCode string, partID kernel.UUID, bucketA, bucketB, bucketC, maxQuantity int, rackLocation string) (*Record, error) {
	if branchCode == "" {
		return nil, errs.NewValueIsRequiredError("branch code")
	}
	if err := partID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("part id", err)
	}
	if err := validateBuckets(bucketA, bucketB, bucketC); err != nil {
		return nil, err
	}
	if maxQuantity < 0 {
		return nil, errs.NewValueIsInvalidError("max quantity")
	}

	return &Record{
		branchCode:    branchCode,
		partID:        partID,
		bucketA:       bucketA,
		bucketB:       bucketB,
		bucketC:       bucketC,
		maxQuantity:   maxQuantity,
		rackLocation:  rackLocation,
		syncedAt:      time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRecord reconstructs a stock record from persistence.
func RestoreRecord(
	branchCode string,
	partID kernel.UUID,
	bucketA, bucketB, bucketC, maxQuantity int,
	rackLocation string,
	note string,
	lastSaleAt, lastPurchaseAt *time.Time,
	syncedAt time.Time,
) (*Record, error) {
	if branchCode == "" {
		return nil, errs.NewValueIsRequiredError("branch code")
	}
	if err := partID.Validate(); err != nil {
		return nil, err
	}
	if err := validateBuckets(bucketA, bucketB, bucketC); err != nil {
		return nil, err
	}

	return &Record{
		branchCode:     branchCode,
		partID:         partID,
		bucketA:        bucketA,
		bucketB:        bucketB,
		bucketC:        bucketC,
		maxQuantity:    maxQuantity,
		rackLocation:   rackLocation,
		note:           note,
		lastSaleAt:     lastSaleAt,
		lastPurchaseAt: lastPurchaseAt,
		syncedAt:       syncedAt,
		isConstructed:  true,
	}, nil
}

func validateBuckets(a, b, c int) error {
	for name, v := range map[string]int{"bucket A": a, "bucket B": b, "bucket C": c} {
		if v < 0 {
			return errs.NewValueIsInvalidError(name + " quantity")
		}
	}
	return nil
}

// Validate ensures the record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// BranchCode returns the owning branch.
func (r *Record) BranchCode() string { return r.branchCode }

// PartID returns the part this record tracks.
func (r *Record) PartID() kernel.UUID { return r.partID }

// BucketA returns the first storage-tier quantity.
func (r *Record) BucketA() int { return r.bucketA }

// BucketB returns the second storage-tier quantity.
func (r *Record) BucketB() int { return r.bucketB }

// BucketC returns the third storage-tier quantity.
func (r *Record) BucketC() int { return r.bucketC }

// MaxQuantity returns the maximum threshold used for classification.
func (r *Record) MaxQuantity() int { return r.maxQuantity }

// RackLocation returns the physical rack reference.
func (r *Record) RackLocation() string { return r.rackLocation }

// Note returns the note left by the most recent mutation.
func (r *Record) Note() string { return r.note }

// LastSaleAt returns when a sale was last recorded against this part.
func (r *Record) LastSaleAt() *time.Time { return r.lastSaleAt }

// LastPurchaseAt returns when a purchase was last recorded.
func (r *Record) LastPurchaseAt() *time.Time { return r.lastPurchaseAt }

// SyncedAt returns the sync marker stamped by the most recent mutation.
func (r *Record) SyncedAt() time.Time { return r.syncedAt }

// TotalStock returns the sum of the three buckets.
func (r *Record) TotalStock() int {
	return r.bucketA + r.bucketB + r.bucketC
}

// StockPercentage returns the record's fill level against its threshold.
func (r *Record) StockPercentage() float64 {
	return StockPercentage(r.TotalStock(), r.maxQuantity)
}

// StockLevel returns the four-tier classification of this record.
func (r *Record) StockLevel() StockLevel {
	return ClassifyStock(r.StockPercentage())
}

// RecordSale stamps the last-sale timestamp and note. It does not decrement
// buckets: physical decrement arrives through a separate upstream process.
func (r *Record) RecordSale(note string) {
	now := time.Now().UTC()
	r.lastSaleAt = &now
	r.note = note
	r.syncedAt = now
}

// RecordPurchase stamps the last-purchase timestamp and note.
func (r *Record) RecordPurchase(note string) {
	now := time.Now().UTC()
	r.lastPurchaseAt = &now
	r.note = note
	r.syncedAt = now
}

// SetBuckets overwrites the three bucket quantities and the note.
func (r *Record) SetBuckets(a, b, c int, note string) error {
	if err := validateBuckets(a, b, c); err != nil {
		return err
	}
	r.bucketA, r.bucketB, r.bucketC = a, b, c
	r.note = note
	r.syncedAt = time.Now().UTC()
	return nil
}

// SetRackLocation overwrites only the rack field.
func (r *Record) SetRackLocation(rack string) error {
	if rack == "" {
		return errs.NewValueIsRequiredError("rack location")
	}
	r.rackLocation = rack
	r.syncedAt = time.Now().UTC()
	return nil
}

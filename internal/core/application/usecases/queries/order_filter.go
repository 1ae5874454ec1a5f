package queries

import (
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
)

// OrderFilter is the typed filter accepted by the order listing query.
//
// Criteria are accumulated through With methods and compiled into
// parameterized WHERE conditions in one place; handlers never assemble
// filter SQL from raw strings. The zero filter matches everything.
//
// Example:
//
//	filter := queries.NewOrderFilter().
//	    WithStatus(order.Pending).
//	    WithUrgent(true).
//	    WithPlacedBetween(&from, &to)
type OrderFilter struct {
	status     *order.Status
	retailerID *kernel.UUID
	branchCode string
	urgent     *bool
	placedFrom *time.Time
	placedTo   *time.Time
	codeSearch string
}

// NewOrderFilter creates an empty filter that matches all orders.
func NewOrderFilter() OrderFilter {
	return OrderFilter{}
}

// WithStatus restricts results to one lifecycle status.
func (f OrderFilter) WithStatus(status order.Status) OrderFilter {
	f.status = &status
	return f
}

// WithRetailer restricts results to one retailer.
func (f OrderFilter) WithRetailer(retailerID kernel.UUID) OrderFilter {
	f.retailerID = &retailerID
	return f
}

// WithBranch restricts results to one placing branch. The scope predicate
// still applies on top; a branch outside the scope simply matches nothing.
func (f OrderFilter) WithBranch(branchCode string) OrderFilter {
	f.branchCode = branchCode
	return f
}

// WithUrgent restricts results by the order-level urgency flag.
func (f OrderFilter) WithUrgent(urgent bool) OrderFilter {
	f.urgent = &urgent
	return f
}

// WithPlacedBetween restricts results to a placement date range.
// Either bound may be nil for a half-open range.
func (f OrderFilter) WithPlacedBetween(from, to *time.Time) OrderFilter {
	f.placedFrom = from
	f.placedTo = to
	return f
}

// WithCodeSearch restricts results to codes containing the given fragment,
// case-insensitive.
func (f OrderFilter) WithCodeSearch(fragment string) OrderFilter {
	f.codeSearch = fragment
	return f
}

// validate rejects criteria that could never match or are malformed.
func (f OrderFilter) validate() error {
	if f.status != nil {
		if err := f.status.Validate(); err != nil {
			return err
		}
	}
	if f.retailerID != nil {
		if err := f.retailerID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("retailer filter", err)
		}
	}
	if f.placedFrom != nil && f.placedTo != nil && f.placedTo.Before(*f.placedFrom) {
		return errs.NewValueIsInvalidError("placed date range")
	}
	return nil
}

// compile translates the filter into conditions over the orders table
// (aliased o). Conditions are ANDed by the caller; args line up with the
// placeholders in order.
func (f OrderFilter) compile() ([]string, []any) {
	conds := make([]string, 0, 7)
	args := make([]any, 0, 7)

	if f.status != nil {
		conds = append(conds, "o.status = ?")
		args = append(args, int(*f.status))
	}
	if f.retailerID != nil {
		conds = append(conds, "o.retailer_id = ?")
		args = append(args, f.retailerID.Bytes())
	}
	if f.branchCode != "" {
		conds = append(conds, "o.branch_code = ?")
		args = append(args, f.branchCode)
	}
	if f.urgent != nil {
		conds = append(conds, "o.urgent = ?")
		args = append(args, *f.urgent)
	}
	if f.placedFrom != nil {
		conds = append(conds, "o.placed_at >= ?")
		args = append(args, *f.placedFrom)
	}
	if f.placedTo != nil {
		conds = append(conds, "o.placed_at <= ?")
		args = append(args, *f.placedTo)
	}
	if f.codeSearch != "" {
		conds = append(conds, "o.code ILIKE ?")
		args = append(args, "%"+f.codeSearch+"%")
	}

	return conds, args
}

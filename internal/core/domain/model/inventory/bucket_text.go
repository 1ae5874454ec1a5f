package inventory

import (
	"strconv"
	"strings"

	"distribution/internal/pkg/errs"
)

// ParseBucket converts a legacy text bucket column into a quantity.
//
// The stock tables predate this module and store quantities as free text.
// Values are trimmed before parsing; an empty or blank cell reads as zero.
// Anything that does not parse as a non-negative integer is rejected
// rather than silently coerced.
func ParseBucket(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}

	qty, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("stock bucket", err)
	}
	if qty < 0 {
		return 0, errs.NewValueIsInvalidError("stock bucket")
	}
	return qty, nil
}

// FormatBucket renders a quantity back into the legacy text representation.
func FormatBucket(qty int) string {
	return strconv.Itoa(qty)
}

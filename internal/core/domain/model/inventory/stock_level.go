package inventory

// StockLevel is the four-tier classification applied everywhere a stock level
// is surfaced: listings, detail views, and alert feeds all use the same bands.
type StockLevel string

const (
	// StockLevelCritical: below 20% of the maximum threshold.
	StockLevelCritical StockLevel = "critical"

	// StockLevelLow: at least 20% and below 40%.
	StockLevelLow StockLevel = "low"

	// StockLevelMedium: at least 40% and below 70%.
	StockLevelMedium StockLevel = "medium"

	// StockLevelGood: 70% and above.
	StockLevelGood StockLevel = "good"
)

// AlertUrgency is the finer banding used only inside the low-stock alert set.
// It is deliberately distinct from StockLevel: a record below the 20% alert
// threshold is always classified "critical" by StockLevel, while its alert
// urgency further separates the truly empty racks from the merely thin ones.
type AlertUrgency string

const (
	// AlertCritical: below 10% of the maximum threshold.
	AlertCritical AlertUrgency = "critical"

	// AlertLow: at least 10% and below the 20% alert threshold.
	AlertLow AlertUrgency = "low"
)

// LowStockThresholdPercent is the percentage below which a record enters the
// low-stock alert set.
const LowStockThresholdPercent = 20.0

// StockPercentage computes total/max*100. A zero or negative maximum yields 0
// rather than dividing by zero: a part with no threshold has no meaningful fill
// level and must never alert by accident.
func StockPercentage(total, maxThreshold int) float64 {
	if maxThreshold <= 0 {
		return 0
	}
	return float64(total) / float64(maxThreshold) * 100
}

// ClassifyStock maps a stock percentage onto the four-tier StockLevel.
// Band edges are inclusive on the left: exactly 20% is "low", not "critical".
func ClassifyStock(percentage float64) StockLevel {
	switch {
	case percentage < 20:
		return StockLevelCritical
	case percentage < 40:
		return StockLevelLow
	case percentage < 70:
		return StockLevelMedium
	default:
		return StockLevelGood
	}
}

// ClassifyAlert maps a stock percentage onto the alert urgency banding.
// Only meaningful for records already below LowStockThresholdPercent.
func ClassifyAlert(percentage float64) AlertUrgency {
	if percentage < 10 {
		return AlertCritical
	}
	return AlertLow
}

package logic

// Confidence tiers. A probability far from the 0.5 decision boundary in
// either direction is a confident call.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// ConfidenceLevel maps a make probability to a discrete tier. The checks run
// in this exact order; the Medium branch is only reached when High did not
// match, so the overlapping ranges resolve by first match.
func ConfidenceLevel(probability float64) string {
	switch {
	case probability >= 0.7 || probability <= 0.3:
		return ConfidenceHigh
	case probability >= 0.6 || probability <= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

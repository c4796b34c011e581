package recommend

import "fmt"

// Risk-specific narrative clauses. Unknown risk values fall back to the
// neutral clause rather than failing.
const (
	clauseLow     = "prioritize capital protection with steady, lower-volatility returns"
	clauseMedium  = "balance growth potential with manageable risk"
	clauseHigh    = "maximize long-term growth, accepting higher short-term swings"
	clauseDefault = "match your stated investment objectives"
)

// SynthesizeExplanation produces the fallback narrative for a category when
// the advisor supplies none. Pure and deterministic: same inputs, same
// sentence.
func SynthesizeExplanation(riskPreference, categoryLabel string) string {
	clause := clauseDefault
	switch riskPreference {
	case "Low":
		clause = clauseLow
	case "Medium":
		clause = clauseMedium
	case "High":
		clause = clauseHigh
	}
	return fmt.Sprintf("%s are selected to %s.", categoryLabel, clause)
}

package preference

import "errors"

// StorageKey is the fixed key the preference is persisted under.
const StorageKey = "reportPreference"

// Report modes. The wire values match what the advisor engine expects.
const (
	ReportTypeFull   = "full"
	ReportTypeSingle = "single"
)

var ErrNotFound = errors.New("not found")

// investmentTypes is the closed set of single-mode category keys.
var investmentTypes = map[string]bool{
	"mutualfunds": true,
	"stocks":      true,
	"bonds":       true,
	"gold":        true,
	"sip":         true,
}

// ReportPreference is the user's chosen report mode and, for single mode,
// the chosen category. Only these two fields are ever persisted.
type ReportPreference struct {
	ReportType     string `json:"reportType"`
	InvestmentType string `json:"investmentType"`
}

// Default returns the fail-soft fallback preference.
func Default() ReportPreference {
	return ReportPreference{ReportType: ReportTypeFull, InvestmentType: ""}
}

// IsInvestmentType reports whether key is one of the known category keys.
func IsInvestmentType(key string) bool {
	return investmentTypes[key]
}

package profile

import "errors"

// Storage keys for the two detail documents owned by the collection screens.
const (
	KeyMandatoryDetails = "mandatoryDetails"
	KeyOptionalDetails  = "optionalDetails"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrIncomplete = errors.New("profile incomplete")
)

// UserProfile is the merged, canonical view of the stored detail documents.
// Age, InvestmentAmount and RiskPreference are mandatory; the rest may be nil
// or empty and are omitted from advisor requests rather than sent as zero.
type UserProfile struct {
	Age              int      `json:"age"`
	InvestmentAmount float64  `json:"investmentAmount"`
	RiskPreference   string   `json:"riskPreference"`
	MonthlyIncome    *float64 `json:"monthlyIncome,omitempty"`
	Savings          *float64 `json:"savings,omitempty"`
	TimeHorizon      string   `json:"timeHorizon,omitempty"`
	ExperienceLevel  string   `json:"experienceLevel,omitempty"`
	FinancialGoals   string   `json:"financialGoals,omitempty"`
	MonthlyExpenses  *float64 `json:"monthlyExpenses,omitempty"`
}

package recommend

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"investease-gateway/internal/preference"
	"investease-gateway/internal/profile"
)

// Request builder defaults for mandatory fields. The advisor distinguishes
// "unknown" from "zero", so mandatory fields default while optional fields
// are omitted when absent.
const (
	defaultAge            = 30
	defaultRiskPreference = "Medium"
)

// RequestPayload is the advisor engine's POST /api/recommend body.
type RequestPayload struct {
	Age              int      `json:"age"`
	InvestmentAmount float64  `json:"investment_amount"`
	RiskPreference   string   `json:"risk_preference"`
	MonthlyIncome    *float64 `json:"monthly_income,omitempty"`
	Savings          *float64 `json:"savings,omitempty"`
	TimeHorizon      string   `json:"time_horizon,omitempty"`
	ExperienceLevel  string   `json:"experience_level,omitempty"`
	FinancialGoals   string   `json:"financial_goals,omitempty"`
	MonthlyExpenses  *float64 `json:"monthly_expenses,omitempty"`
	ReportType       string   `json:"report_type"`
	InvestmentType   string   `json:"investment_type,omitempty"`
}

// BuildRequest maps the assembled profile and the report preference into the
// advisor request contract. investment_type is carried only in single mode;
// full mode omits the key entirely rather than sending an empty string.
func BuildRequest(p profile.UserProfile, pref preference.ReportPreference) RequestPayload {
	age := p.Age
	if age <= 0 {
		age = defaultAge
	}
	amount := p.InvestmentAmount
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amount = 0
	}
	risk := strings.TrimSpace(p.RiskPreference)
	if risk == "" {
		risk = defaultRiskPreference
	}

	payload := RequestPayload{
		Age:              age,
		InvestmentAmount: amount,
		RiskPreference:   risk,
		MonthlyIncome:    parseOptionalNumber(p.MonthlyIncome),
		Savings:          parseOptionalNumber(p.Savings),
		TimeHorizon:      strings.TrimSpace(p.TimeHorizon),
		ExperienceLevel:  strings.TrimSpace(p.ExperienceLevel),
		FinancialGoals:   strings.TrimSpace(p.FinancialGoals),
		MonthlyExpenses:  parseOptionalNumber(p.MonthlyExpenses),
		ReportType:       pref.ReportType,
	}
	if pref.ReportType == preference.ReportTypeSingle {
		payload.InvestmentType = pref.InvestmentType
	}
	return payload
}

// parseOptionalNumber is total over every shape an optional numeric field can
// arrive in: nil, empty string, and unparsable strings mean "absent" (nil
// result, field omitted); "0" is a real 0, never absent.
func parseOptionalNumber(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case *float64:
		if v == nil {
			return nil
		}
		return parseOptionalNumber(*v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		out := v
		return &out
	case float32:
		return parseOptionalNumber(float64(v))
	case int:
		out := float64(v)
		return &out
	case int64:
		out := float64(v)
		return &out
	case json.Number:
		return parseOptionalNumber(v.String())
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

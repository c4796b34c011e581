package profile

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field aliases tolerated in the stored detail documents. The collection
// screens have stored both camelCase and snake_case shapes over time, so
// each logical field probes an ordered alias list.
var (
	ageAliases              = []string{"age"}
	investmentAmountAliases = []string{"investmentAmount", "investment_amount", "amount"}
	riskPreferenceAliases   = []string{"riskPreference", "risk_preference", "risk"}
	monthlyIncomeAliases    = []string{"monthlyIncome", "monthly_income", "income"}
	savingsAliases          = []string{"savings"}
	timeHorizonAliases      = []string{"timeHorizon", "time_horizon"}
	experienceLevelAliases  = []string{"experienceLevel", "experience_level", "investmentExperience"}
	financialGoalsAliases   = []string{"financialGoals", "financial_goals", "goals"}
	monthlyExpensesAliases  = []string{"monthlyExpenses", "monthly_expenses", "expenses"}
)

// Assemble merges the mandatory and optional detail documents into one
// UserProfile. Optional fields that are missing or unparsable are dropped.
// Missing mandatory fields return ErrIncomplete wrapped with the field names
// so the caller can route the user back to the collection flow.
func Assemble(mandatory, optional json.RawMessage) (UserProfile, error) {
	mandatoryFields := decodeObject(mandatory)
	optionalFields := decodeObject(optional)

	var out UserProfile
	var missing []string

	if age, ok := lookupNumber(mandatoryFields, ageAliases); ok && age > 0 {
		out.Age = int(age)
	} else {
		missing = append(missing, "age")
	}
	if amount, ok := lookupNumber(mandatoryFields, investmentAmountAliases); ok && amount > 0 {
		out.InvestmentAmount = amount
	} else {
		missing = append(missing, "investmentAmount")
	}
	if risk, ok := lookupString(mandatoryFields, riskPreferenceAliases); ok {
		out.RiskPreference = normalizeRisk(risk)
	} else {
		missing = append(missing, "riskPreference")
	}

	if len(missing) > 0 {
		return UserProfile{}, fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	if v, ok := lookupNumber(optionalFields, monthlyIncomeAliases); ok {
		out.MonthlyIncome = &v
	}
	if v, ok := lookupNumber(optionalFields, savingsAliases); ok {
		out.Savings = &v
	}
	if v, ok := lookupString(optionalFields, timeHorizonAliases); ok {
		out.TimeHorizon = v
	}
	if v, ok := lookupString(optionalFields, experienceLevelAliases); ok {
		out.ExperienceLevel = v
	}
	if v, ok := lookupString(optionalFields, financialGoalsAliases); ok {
		out.FinancialGoals = v
	}
	if v, ok := lookupNumber(optionalFields, monthlyExpensesAliases); ok {
		out.MonthlyExpenses = &v
	}

	return out, nil
}

func decodeObject(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}

func lookupNumber(fields map[string]any, aliases []string) (float64, bool) {
	for _, key := range aliases {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if v, ok := coerceNumber(raw); ok {
			return v, true
		}
	}
	return 0, false
}

func lookupString(fields map[string]any, aliases []string) (string, bool) {
	for _, key := range aliases {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if s, ok := raw.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed, true
			}
		}
	}
	return "", false
}

// coerceNumber accepts JSON numbers and numeric strings; anything else is
// treated as absent rather than zero.
func coerceNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func normalizeRisk(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return "Low"
	case "medium", "moderate":
		return "Medium"
	case "high":
		return "High"
	default:
		return strings.TrimSpace(raw)
	}
}

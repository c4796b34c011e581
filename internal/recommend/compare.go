package recommend

import "encoding/json"

const maxComparePlans = 9

// ComparePlan is one row of the top-plan comparison table. Metric pointers
// are nil when the advisor supplied nothing usable; the aum and expense
// ratio columns stay strings because the upstream mixes numbers with "N/A".
type ComparePlan struct {
	Category     string   `json:"category"`
	Name         string   `json:"name"`
	FundHouse    string   `json:"fund_house,omitempty"`
	Returns3Y    *float64 `json:"returns_3yr"`
	Returns5Y    *float64 `json:"returns_5yr"`
	Volatility   *float64 `json:"volatility"`
	NAV          *float64 `json:"nav,omitempty"`
	AUM          string   `json:"aum,omitempty"`
	ExpenseRatio string   `json:"expense_ratio,omitempty"`
}

var (
	returns3YAliases  = []string{"returns_3yr", "return_3yr", "3y_return"}
	returns5YAliases  = []string{"returns_5yr", "return_5yr", "5y_return"}
	volatilityAliases = []string{"volatility"}
	navAliases        = []string{"nav", "current_price"}
)

// NormalizeCompare reconciles a raw comparison response into plan rows. It
// accepts a `plans` envelope or a bare array; malformed input yields an
// empty slice.
func NormalizeCompare(raw json.RawMessage) []ComparePlan {
	entries := comparePlanEntries(raw)
	if len(entries) > maxComparePlans {
		entries = entries[:maxComparePlans]
	}

	plans := make([]ComparePlan, 0, len(entries))
	for _, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		plans = append(plans, normalizeComparePlan(fields))
	}
	return plans
}

func comparePlanEntries(raw json.RawMessage) []any {
	if len(raw) == 0 {
		return nil
	}
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err == nil {
		entries, _ := root["plans"].([]any)
		return entries
	}
	var bare []any
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare
	}
	return nil
}

func normalizeComparePlan(fields map[string]any) ComparePlan {
	name := placeholderName
	if resolved, ok := firstStringAlias(fields, nameAliases); ok {
		name = resolved
	}
	category, _ := stringField(fields, "category")
	fundHouse, _ := stringField(fields, "fund_house")

	return ComparePlan{
		Category:     category,
		Name:         name,
		FundHouse:    fundHouse,
		Returns3Y:    firstNumberAlias(fields, returns3YAliases),
		Returns5Y:    firstNumberAlias(fields, returns5YAliases),
		Volatility:   firstNumberAlias(fields, volatilityAliases),
		NAV:          firstNumberAlias(fields, navAliases),
		AUM:          metricOrNA(fields, "aum"),
		ExpenseRatio: metricOrNA(fields, "expense_ratio"),
	}
}

// metricOrNA keeps the upstream's string-or-number column as display text;
// absent values render as "N/A" like the advisor's own rows.
func metricOrNA(fields map[string]any, key string) string {
	if value, ok := stringField(fields, key); ok {
		return value
	}
	if value, ok := asNumber(fields[key]); ok {
		return formatMetricValue(value)
	}
	return "N/A"
}

package recommend

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	maxItemsPerCategory = 5
	placeholderName     = "Unnamed Product"
)

// categorySpec binds a canonical category label to the backend key aliases
// that may carry its bucket, in priority order. The mapping is data so it is
// testable apart from the fetch path.
type categorySpec struct {
	Label   string
	Aliases []string
}

// Alias order is the contract: the first alias with a non-empty bucket wins,
// regardless of key order in the response. gold_etf outranks gold.
var fullModeCategories = []categorySpec{
	{Label: "Equity Funds", Aliases: []string{"equity", "equity_funds", "mutualfunds", "mutual_funds"}},
	{Label: "Debt Funds", Aliases: []string{"debt", "debt_funds", "bonds"}},
	{Label: "Hybrid Funds", Aliases: []string{"hybrid", "hybrid_funds"}},
	{Label: "Gold ETFs", Aliases: []string{"gold_etf", "gold", "gold_etfs"}},
	{Label: "Stocks", Aliases: []string{"stocks", "stock"}},
}

var nameAliases = []string{"name", "scheme_name", "schemeName", "fund_name"}

var scoreAliases = []string{"score", "combined_score", "rating"}

// NormalizeFull reconciles a raw full-mode advisor response into ordered
// category sections. Categories with no data are omitted; an all-empty
// response yields an empty slice, never an error.
func NormalizeFull(raw json.RawMessage, riskPreference string) []CategorySection {
	buckets := recommendationBuckets(raw)
	if buckets == nil {
		return []CategorySection{}
	}

	sections := make([]CategorySection, 0, len(fullModeCategories))
	for _, spec := range fullModeCategories {
		entries := firstNonEmptyBucket(buckets, spec.Aliases)
		if len(entries) == 0 {
			continue
		}
		if len(entries) > maxItemsPerCategory {
			entries = entries[:maxItemsPerCategory]
		}
		items := make([]DisplayItem, 0, len(entries))
		for _, entry := range entries {
			items = append(items, normalizeItem(entry, spec.Label, riskPreference))
		}
		sections = append(sections, CategorySection{Label: spec.Label, Items: items})
	}
	return sections
}

// recommendationBuckets unwraps the response envelope: a `recommendations`
// object when present, otherwise the root object itself.
func recommendationBuckets(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil
	}
	if inner, ok := root["recommendations"].(map[string]any); ok {
		return inner
	}
	return root
}

func firstNonEmptyBucket(buckets map[string]any, aliases []string) []any {
	for _, alias := range aliases {
		if entries, ok := buckets[alias].([]any); ok && len(entries) > 0 {
			return entries
		}
	}
	return nil
}

func normalizeItem(entry any, categoryLabel, riskPreference string) DisplayItem {
	fields, _ := entry.(map[string]any)

	name := placeholderName
	if resolved, ok := firstStringAlias(fields, nameAliases); ok {
		name = resolved
	}

	explanation := SynthesizeExplanation(riskPreference, categoryLabel)
	if own, ok := stringField(fields, "explanation"); ok {
		explanation = own
	}

	return DisplayItem{
		Name:        name,
		Score:       firstNumberAlias(fields, scoreAliases),
		Explanation: explanation,
	}
}

func firstStringAlias(fields map[string]any, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if value, ok := stringField(fields, alias); ok {
			return value, true
		}
	}
	return "", false
}

func stringField(fields map[string]any, key string) (string, bool) {
	raw, ok := fields[key].(string)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

func firstNumberAlias(fields map[string]any, aliases []string) *float64 {
	for _, alias := range aliases {
		value, ok := fields[alias]
		if !ok {
			continue
		}
		if parsed, ok := asNumber(value); ok {
			return &parsed
		}
	}
	return nil
}

// asNumber coerces JSON numbers and numeric strings; anything else (and
// non-finite values) is "unknown", never 0.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

package recommend

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// metricPriority drives top-item explanations in single mode: the first
// return fragment that applies (5-year preferred over 3-year), then the
// remaining metrics in fixed order, numeric values only.
type metricSpec struct {
	Label   string
	Aliases []string
	Percent bool
}

var returnMetrics = []metricSpec{
	{Label: "5Y Return", Aliases: []string{"5y_return", "return_5yr", "5yr_return"}, Percent: true},
	{Label: "3Y Return", Aliases: []string{"3y_return", "return_3yr", "3yr_return"}, Percent: true},
}

var secondaryMetrics = []metricSpec{
	{Label: "Yield", Aliases: []string{"yield", "dividend_yield"}, Percent: true},
	{Label: "Expense Ratio", Aliases: []string{"expense_ratio"}, Percent: true},
	{Label: "Consistency", Aliases: []string{"consistency"}},
	{Label: "Volatility", Aliases: []string{"volatility"}},
	{Label: "Duration", Aliases: []string{"duration"}},
	{Label: "Beta", Aliases: []string{"beta"}},
}

const fragmentSeparator = " • "

var metricPrinter = message.NewPrinter(language.English)

// NormalizeSingle reconciles a raw single-category response. It accepts
// either a `single_report` envelope (recommendation flow) or the report
// object at the root (category report endpoint); every nested field has a
// defined fallback.
func NormalizeSingle(raw json.RawMessage) *SingleReport {
	report := singleReportObject(raw)

	out := &SingleReport{
		Insights:        Insights{Examples: []string{}, Pros: []string{}, Cons: []string{}},
		Metrics:         []MetricEntry{},
		TopItems:        []DisplayItem{},
		FactorsAnalyzed: []string{},
	}
	if report == nil {
		return out
	}

	if overview, ok := stringField(report, "overview"); ok {
		out.Overview = overview
	}
	if insights, ok := report["insights"].(map[string]any); ok {
		out.Insights.Examples = stringList(insights["examples"])
		out.Insights.Pros = stringList(insights["pros"])
		out.Insights.Cons = stringList(insights["cons"])
	}

	// Analytics may be nested (recommendation flow) or flat (report endpoint).
	analytics, ok := report["analytics"].(map[string]any)
	if !ok {
		analytics = report
	}
	if metrics, ok := analytics["metrics"].(map[string]any); ok {
		out.Metrics = formatMetrics(metrics)
	}
	if topItems, ok := analytics["top_items"].([]any); ok {
		for _, entry := range topItems {
			out.TopItems = append(out.TopItems, normalizeTopItem(entry))
		}
	}
	out.FactorsAnalyzed = stringList(analytics["factors_analyzed"])

	return out
}

func stringList(value any) []string {
	entries, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if str, ok := entry.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

func singleReportObject(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil
	}
	if inner, ok := root["single_report"].(map[string]any); ok {
		return inner
	}
	return root
}

// formatMetrics renders an arbitrary metrics mapping without a schema:
// numbers are locale-formatted, nested objects flattened to "key: value"
// pairs, everything else shown as-is. Keys are sorted for stable output.
func formatMetrics(metrics map[string]any) []MetricEntry {
	keys := make([]string, 0, len(metrics))
	for key := range metrics {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]MetricEntry, 0, len(keys))
	for _, key := range keys {
		out = append(out, MetricEntry{Label: key, Value: formatMetricValue(metrics[key])})
	}
	return out
}

func formatMetricValue(value any) string {
	if parsed, ok := asNumber(value); ok {
		return formatNumber(parsed)
	}
	if nested, ok := value.(map[string]any); ok {
		keys := make([]string, 0, len(nested))
		for key := range nested {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, fmt.Sprintf("%s: %s", key, formatMetricValue(nested[key])))
		}
		return strings.Join(pairs, ", ")
	}
	return fmt.Sprintf("%v", value)
}

func formatNumber(value float64) string {
	return metricPrinter.Sprint(number.Decimal(value, number.MaxFractionDigits(2)))
}

// normalizeTopItem reuses the full-mode name/score resolution but builds the
// explanation from the item's own metrics. When no fragment applies the
// explanation stays empty and the renderer tolerates it.
func normalizeTopItem(entry any) DisplayItem {
	fields, _ := entry.(map[string]any)

	name := placeholderName
	if resolved, ok := firstStringAlias(fields, nameAliases); ok {
		name = resolved
	}

	explanation := ""
	if own, ok := stringField(fields, "explanation"); ok {
		explanation = own
	} else {
		explanation = metricExplanation(fields)
	}

	return DisplayItem{
		Name:        name,
		Score:       firstNumberAlias(fields, scoreAliases),
		Explanation: explanation,
	}
}

func metricExplanation(fields map[string]any) string {
	lookup := mergedMetricFields(fields)

	var fragments []string
	for _, spec := range returnMetrics {
		if fragment, ok := metricFragment(lookup, spec); ok {
			fragments = append(fragments, fragment)
			break
		}
	}
	for _, spec := range secondaryMetrics {
		if fragment, ok := metricFragment(lookup, spec); ok {
			fragments = append(fragments, fragment)
		}
	}
	return strings.Join(fragments, fragmentSeparator)
}

// mergedMetricFields overlays extra_metrics onto the item fields so metrics
// resolve regardless of which level the advisor placed them at.
func mergedMetricFields(fields map[string]any) map[string]any {
	extra, ok := fields["extra_metrics"].(map[string]any)
	if !ok {
		return fields
	}
	merged := make(map[string]any, len(fields)+len(extra))
	for key, value := range extra {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return merged
}

func metricFragment(fields map[string]any, spec metricSpec) (string, bool) {
	for _, alias := range spec.Aliases {
		value, ok := fields[alias]
		if !ok {
			continue
		}
		parsed, ok := asNumber(value)
		if !ok {
			continue
		}
		rendered := formatNumber(parsed)
		if spec.Percent {
			rendered += "%"
		}
		return fmt.Sprintf("%s: %s", spec.Label, rendered), true
	}
	return "", false
}

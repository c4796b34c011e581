package recommend

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestNormalizeCompareEnvelope(t *testing.T) {
	raw := json.RawMessage(`{
		"status": "success",
		"plans": [
			{"category": "Debt Mutual Fund", "scheme_name": "Steady Income", "fund_house": "Acme AMC", "returns_3yr": 7.1, "returns_5yr": 7.8, "volatility": 2.4, "nav": 31.5, "aum": "N/A", "expense_ratio": 0.45}
		]
	}`)

	plans := NormalizeCompare(raw)
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
	plan := plans[0]
	if plan.Category != "Debt Mutual Fund" || plan.Name != "Steady Income" {
		t.Fatalf("unexpected plan %+v", plan)
	}
	if plan.Returns3Y == nil || *plan.Returns3Y != 7.1 {
		t.Fatalf("expected returns_3yr 7.1, got %+v", plan.Returns3Y)
	}
	if plan.AUM != "N/A" {
		t.Fatalf("expected aum passed through, got %q", plan.AUM)
	}
	if plan.ExpenseRatio != "0.45" {
		t.Fatalf("expected numeric expense ratio formatted, got %q", plan.ExpenseRatio)
	}
}

func TestNormalizeCompareBareArray(t *testing.T) {
	raw := json.RawMessage(`[{"category": "Blue-Chip Stock", "name": "MegaCorp", "returns_5yr": 18.2}]`)

	plans := NormalizeCompare(raw)
	if len(plans) != 1 || plans[0].Name != "MegaCorp" {
		t.Fatalf("expected bare array accepted, got %+v", plans)
	}
}

func TestNormalizeCompareMissingFields(t *testing.T) {
	raw := json.RawMessage(`{"plans": [{}]}`)

	plans := NormalizeCompare(raw)
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
	plan := plans[0]
	if plan.Name != "Unnamed Product" {
		t.Fatalf("expected placeholder name, got %q", plan.Name)
	}
	if plan.Returns3Y != nil || plan.Returns5Y != nil || plan.Volatility != nil || plan.NAV != nil {
		t.Fatalf("absent metrics must stay nil: %+v", plan)
	}
	if plan.AUM != "N/A" || plan.ExpenseRatio != "N/A" {
		t.Fatalf("absent display columns must render N/A: %+v", plan)
	}
}

func TestNormalizeCompareSkipsNonObjectEntries(t *testing.T) {
	raw := json.RawMessage(`{"plans": ["junk", 42, {"name": "Kept Fund"}]}`)

	plans := NormalizeCompare(raw)
	if len(plans) != 1 || plans[0].Name != "Kept Fund" {
		t.Fatalf("expected non-object entries skipped, got %+v", plans)
	}
}

func TestNormalizeCompareCapsPlanCount(t *testing.T) {
	entries := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		entries = append(entries, fmt.Sprintf(`{"name": "Fund %d"}`, i))
	}
	raw := json.RawMessage(`{"plans": [` + strings.Join(entries, ",") + `]}`)

	plans := NormalizeCompare(raw)
	if len(plans) != 9 {
		t.Fatalf("expected 9 plans, got %d", len(plans))
	}
	if plans[0].Name != "Fund 0" || plans[8].Name != "Fund 8" {
		t.Fatalf("expected head truncation preserving order, got %+v", plans)
	}
}

func TestNormalizeCompareMalformed(t *testing.T) {
	for _, raw := range []string{``, `not json`, `{"plans": "nope"}`, `{}`} {
		if plans := NormalizeCompare(json.RawMessage(raw)); len(plans) != 0 {
			t.Fatalf("expected empty slice for %q, got %+v", raw, plans)
		}
	}
}

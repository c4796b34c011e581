package recommend

// DisplayItem is one rendered product row. Score is nil when the advisor
// supplied no usable score; a real 0 stays 0.
type DisplayItem struct {
	Name        string   `json:"name"`
	Score       *float64 `json:"score"`
	Explanation string   `json:"explanation,omitempty"`
}

// CategorySection is one canonical category with its surfaced items.
type CategorySection struct {
	Label string        `json:"label"`
	Items []DisplayItem `json:"items"`
}

// MetricEntry is one generically formatted analytics metric.
type MetricEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Insights holds the single-mode narrative lists.
type Insights struct {
	Examples []string `json:"examples"`
	Pros     []string `json:"pros"`
	Cons     []string `json:"cons"`
}

// SingleReport is the normalized single-category report.
type SingleReport struct {
	Overview        string        `json:"overview,omitempty"`
	Insights        Insights      `json:"insights"`
	Metrics         []MetricEntry `json:"metrics"`
	TopItems        []DisplayItem `json:"topItems"`
	FactorsAnalyzed []string      `json:"factorsAnalyzed"`
}

package analytics

import "sort"

// WealthDistributionAnalyzer computes inequality measures over wealth
// distributions pulled from the collector's agent aggregates.
type WealthDistributionAnalyzer struct{}

// NewWealthDistributionAnalyzer creates a WealthDistributionAnalyzer.
func NewWealthDistributionAnalyzer() *WealthDistributionAnalyzer {
	return &WealthDistributionAnalyzer{}
}

// Gini computes the Gini coefficient over a sequence of non-negative wealth
// values using the discrete rank-weighted formula on values sorted ascending:
//
//	G = (2 * sum(i * x_i) / (n * sum(x))) - (n + 1) / n
//
// with 1-based rank i. A perfectly equal distribution yields 0; the result
// approaches 1 as inequality grows and stays in [0, 1) for valid
// non-degenerate input. Empty input and all-zero totals yield 0.
func (a *WealthDistributionAnalyzer) Gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var total, weighted float64
	for i, v := range sorted {
		total += v
		weighted += float64(i+1) * v
	}
	if total == 0 {
		return 0
	}

	fn := float64(n)
	return (2*weighted)/(fn*total) - (fn+1)/fn
}

// DistributionSummary describes a wealth distribution.
type DistributionSummary struct {
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Summarize returns count, total, mean and median of the values. The median
// of an even-sized distribution is the mean of the two middle values.
func (a *WealthDistributionAnalyzer) Summarize(values []float64) DistributionSummary {
	n := len(values)
	if n == 0 {
		return DistributionSummary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var total float64
	for _, v := range sorted {
		total += v
	}

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return DistributionSummary{
		Count:  n,
		Total:  total,
		Mean:   total / float64(n),
		Median: median,
	}
}

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGini_PerfectEquality(t *testing.T) {
	a := NewWealthDistributionAnalyzer()

	assert.InDelta(t, 0, a.Gini([]float64{10, 10, 10, 10}), 1e-9)
}

func TestGini_Inequality(t *testing.T) {
	a := NewWealthDistributionAnalyzer()

	g := a.Gini([]float64{10, 20, 30, 40, 100})

	assert.Greater(t, g, 0.2)
	assert.Less(t, g, 1.0)
}

func TestGini_EdgeCases(t *testing.T) {
	a := NewWealthDistributionAnalyzer()

	assert.Equal(t, 0.0, a.Gini(nil))
	assert.Equal(t, 0.0, a.Gini([]float64{42}))
	assert.Equal(t, 0.0, a.Gini([]float64{0, 0, 0}))
}

func TestGini_ExtremeConcentration(t *testing.T) {
	a := NewWealthDistributionAnalyzer()

	// One agent holds everything; G = (n-1)/n for n agents.
	g := a.Gini([]float64{0, 0, 0, 100})

	assert.InDelta(t, 0.75, g, 1e-9)
}

func TestGini_DoesNotMutateInput(t *testing.T) {
	a := NewWealthDistributionAnalyzer()
	values := []float64{30, 10, 20}

	a.Gini(values)

	assert.Equal(t, []float64{30, 10, 20}, values)
}

func TestSummarize(t *testing.T) {
	a := NewWealthDistributionAnalyzer()

	s := a.Summarize([]float64{40, 10, 20, 30})

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 100, s.Total, 1e-9)
	assert.InDelta(t, 25, s.Mean, 1e-9)
	assert.InDelta(t, 25, s.Median, 1e-9)
}

func TestSummarize_OddCount(t *testing.T) {
	a := NewWealthDistributionAnalyzer()

	s := a.Summarize([]float64{5, 1, 3})

	assert.InDelta(t, 3, s.Median, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	a := NewWealthDistributionAnalyzer()

	assert.Equal(t, DistributionSummary{}, a.Summarize(nil))
}

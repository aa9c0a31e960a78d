// Package profile computes per-column numeric summaries for inspection output.
package profile

import (
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// NumericThreshold is the share of non-missing values that must parse as
// numbers before a column is summarized
const NumericThreshold = 0.8

// ColumnSummary holds summary statistics for one numeric column
type ColumnSummary struct {
	Column   string  `json:"column"`
	Count    int     `json:"count"`   // values that parsed as numbers
	Missing  int     `json:"missing"` // empty or absent cells
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	StdDev   float64 `json:"std_dev"`
	Skewness float64 `json:"skewness"`
	IsNormal bool    `json:"is_normal"`
	NormalP  float64 `json:"normal_p"`
}

// Summarize computes statistics for one column of raw string values.
// It returns false when the column is not predominantly numeric.
func Summarize(name string, values []string) (ColumnSummary, bool) {
	summary := ColumnSummary{Column: name}

	nums := make([]float64, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			summary.Missing++
			continue
		}
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			nums = append(nums, n)
		}
	}

	present := len(values) - summary.Missing
	if present == 0 || float64(len(nums))/float64(present) < NumericThreshold {
		return summary, false
	}
	summary.Count = len(nums)

	mean, err := stats.Mean(nums)
	if err != nil {
		return summary, false
	}
	median, _ := stats.Median(nums)
	min, _ := stats.Min(nums)
	max, _ := stats.Max(nums)
	stdDev, _ := stats.StandardDeviation(nums)

	summary.Mean = mean
	summary.Median = median
	summary.Min = min
	summary.Max = max
	summary.StdDev = stdDev
	summary.Skewness = sampleSkewness(nums, mean, stdDev)
	summary.IsNormal, summary.NormalP = testNormality(nums, mean, stdDev)

	return summary, true
}

// SummarizeColumns profiles every predominantly numeric column, in header order
func SummarizeColumns(headers []string, column func(string) []string) []ColumnSummary {
	var summaries []ColumnSummary
	for _, h := range headers {
		if s, ok := Summarize(h, column(h)); ok {
			summaries = append(summaries, s)
		}
	}
	return summaries
}

// sampleSkewness computes the adjusted Fisher-Pearson coefficient of skewness
func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}
	skewness := sumCubed / n

	// bias correction for sample skewness
	return skewness * math.Sqrt(n*(n-1)) / (n - 2)
}

// sampleKurtosis computes sample kurtosis (not excess)
func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 3
	}

	n := float64(len(data))
	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}
	return sumFourth / n
}

// testNormality approximates a normality test from skewness and kurtosis,
// with the p-value taken from a chi-squared tail
func testNormality(data []float64, mean, stdDev float64) (isNormal bool, pValue float64) {
	if len(data) < 3 || stdDev == 0 {
		return false, 1.0
	}

	skewness := sampleSkewness(data, mean, stdDev)
	kurtosis := sampleKurtosis(data, mean, stdDev)

	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	return pValue > 0.05, pValue
}

// Package stats implements the interquartile-range outlier filter used to
// average page dimensions without extreme pages (covers, fold-outs) skewing
// the result.
package stats

import "sort"

// minFilterLen is the smallest sample size that yields meaningful quartiles.
const minFilterLen = 4

// iqrFactor is the conventional Tukey fence multiplier.
const iqrFactor = 1.5

// Quartiles returns Q1 and Q3 of data using the exclusive estimator, which
// partitions the sorted sample into four equal-probability groups. The input
// is not modified.
func Quartiles(data []float64) (q1, q3 float64) {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	q1 = quantileExclusive(sorted, 1)
	q3 = quantileExclusive(sorted, 3)
	return q1, q3
}

// quantileExclusive computes the k-th quartile (k in 1..3) of sorted data.
// Positions are j + rem/4 where j, rem = divmod(k*(n+1), 4), with j clamped
// to [1, n-1] so the interpolation never leaves the sample.
func quantileExclusive(sorted []float64, k int) float64 {
	n := len(sorted)
	j := k * (n + 1) / 4
	rem := k * (n + 1) % 4
	if j < 1 {
		j = 1
		rem = 0
	} else if j > n-1 {
		j = n - 1
		rem = 0
	}
	return (sorted[j-1]*float64(4-rem) + sorted[j]*float64(rem)) / 4
}

// FilterOutliers drops values outside the Tukey fences Q1-1.5*IQR and
// Q3+1.5*IQR. Samples with fewer than four values are returned as-is since
// quartiles are not defined for them. Surviving values keep their original
// order.
func FilterOutliers(data []float64) []float64 {
	if len(data) < minFilterLen {
		return data
	}

	q1, q3 := Quartiles(data)
	iqr := q3 - q1
	lower := q1 - iqrFactor*iqr
	upper := q3 + iqrFactor*iqr

	filtered := make([]float64, 0, len(data))
	for _, v := range data {
		if lower <= v && v <= upper {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// Mean returns the arithmetic mean of data, or 0 for an empty sample.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

package comps

import "sort"

// Median returns the order-statistic median of the valid values in the
// series, averaging the two middle values for even counts. An empty or
// all-missing input yields Missing, never zero and never an error.
func Median(values []float64) float64 {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if !IsMissing(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return Missing
	}
	sort.Float64s(valid)
	mid := len(valid) / 2
	if len(valid)%2 == 1 {
		return valid[mid]
	}
	return (valid[mid-1] + valid[mid]) / 2
}

// MedianWhere computes the median over the rows selected by mask.
func MedianWhere(values []float64, mask []bool) float64 {
	subset := make([]float64, 0, len(values))
	for i, v := range values {
		if i < len(mask) && mask[i] {
			subset = append(subset, v)
		}
	}
	return Median(subset)
}

// Package stattable aggregates table columns for footer rows.
package stattable

import "math"

type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// SumColumn adds value(row) over rows. Empty rows sum to zero.
func SumColumn[R any, N Number](rows []R, value func(R) N) N {
	var total N
	for _, row := range rows {
		total += value(row)
	}
	return total
}

// AverageColumn is the arithmetic mean of value(row). Empty rows yield NaN.
//
// Only use it for columns where a plain mean is meaningful; rate statistics must be recomputed
// from summed counting columns instead.
func AverageColumn[R any, N Number](rows []R, value func(R) N) float64 {
	if len(rows) == 0 {
		return math.NaN()
	}
	return float64(SumColumn(rows, value)) / float64(len(rows))
}

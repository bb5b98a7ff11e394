package table

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Present returns the non-missing values of data column col.
func (t *Table) Present(col int) []float64 {
	return present(t.Values[col])
}

// Mean is the arithmetic mean of the present values of data column col. A
// column with no present values has a NaN mean.
func (t *Table) Mean(col int) float64 {
	return Mean(t.Values[col])
}

// Means returns the mean of every data column, in column order.
func (t *Table) Means() []float64 {
	out := make([]float64, len(t.Values))
	for c := range t.Values {
		out[c] = t.Mean(c)
	}
	return out
}

// Mean is the arithmetic mean of the non-NaN values in x, or NaN if there are
// none.
func Mean(x []float64) float64 {
	p := present(x)
	if len(p) == 0 {
		return math.NaN()
	}
	return stat.Mean(p, nil)
}

func present(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

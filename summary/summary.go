// Package summary describes each filtering strategy's counts on the console.
package summary

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/denovoplot/table"
	"github.com/carbocation/pfx"
	"github.com/carbocation/runningvariance"
	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
	"gopkg.in/guregu/null.v3"
)

// HistogramWidth is the length, in characters, of the longest histogram bar.
const HistogramWidth = 40

// Strategy summarises the counts recorded under one filtering strategy.
// Statistics are over present values only and are null when there are none.
type Strategy struct {
	Variable string
	N        int
	Missing  int
	Mean     null.Float
	SD       null.Float
	Median   null.Float
	Min      null.Float
	Max      null.Float

	values []float64
}

// Describe summarises every variable of the long-form table, in order.
func Describe(long table.Long) ([]Strategy, error) {
	var out []Strategy
	for _, v := range long.Variables() {
		s := Strategy{Variable: v}
		rv := runningvariance.NewRunningStat()

		for _, x := range long.Values(v) {
			if math.IsNaN(x) {
				s.Missing++
				continue
			}
			s.values = append(s.values, x)
			rv.Push(x)
		}
		s.N = len(s.values)

		if s.N > 0 {
			data := stats.Float64Data(s.values)

			median, err := data.Median()
			if err != nil {
				return nil, pfx.Err(err)
			}
			min, err := data.Min()
			if err != nil {
				return nil, pfx.Err(err)
			}
			max, err := data.Max()
			if err != nil {
				return nil, pfx.Err(err)
			}

			s.Mean = null.FloatFrom(table.Mean(s.values))
			s.Median = null.FloatFrom(median)
			s.Min = null.FloatFrom(min)
			s.Max = null.FloatFrom(max)
		}
		if s.N > 1 {
			s.SD = null.FloatFrom(rv.StandardDeviation())
		}

		out = append(out, s)
	}

	return out, nil
}

// row is the printed form of a Strategy.
type row struct {
	Strategy string `csv:"strategy"`
	N        int    `csv:"n"`
	Missing  int    `csv:"missing"`
	Mean     string `csv:"mean"`
	SD       string `csv:"sd"`
	Median   string `csv:"median"`
	Min      string `csv:"min"`
	Max      string `csv:"max"`
}

// nullFloatFormatter prints a statistic with three decimals, or N/A when it
// is null.
func nullFloatFormatter(n null.Float) string {
	if !n.Valid {
		return "N/A"
	}

	return strconv.FormatFloat(n.Float64, 'f', 3, 64)
}

// Fprint writes a tab-delimited table with one line per strategy and then,
// unless bins is zero, a text histogram of each strategy's counts.
func Fprint(w io.Writer, strategies []Strategy, bins int) error {
	rows := make([]row, 0, len(strategies))
	for _, s := range strategies {
		rows = append(rows, row{
			Strategy: s.Variable,
			N:        s.N,
			Missing:  s.Missing,
			Mean:     nullFloatFormatter(s.Mean),
			SD:       nullFloatFormatter(s.SD),
			Median:   nullFloatFormatter(s.Median),
			Min:      nullFloatFormatter(s.Min),
			Max:      nullFloatFormatter(s.Max),
		})
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return pfx.Err(err)
	}

	if bins < 1 {
		return nil
	}

	for _, s := range strategies {
		if s.N == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", s.Variable); err != nil {
			return pfx.Err(err)
		}
		hist := histogram.Hist(bins, s.values)
		if err := histogram.Fprint(w, hist, histogram.Linear(HistogramWidth)); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}

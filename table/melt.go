package table

import (
	"fmt"
	"math"
)

// Field names of the long-form table.
const (
	VariableField         = "variable"
	NumberOfVariantsField = "number_of_variants"
)

// Record is one observation of the long-form table: the strategy (the
// original column name) and the variant count observed under it.
type Record struct {
	Variable         string
	NumberOfVariants float64
}

// Long is the long-form ("melted") table. Records are grouped by variable in
// the original column order, and within a variable follow the original row
// order.
type Long []Record

// Melt reshapes t so that every (row, column) pair becomes one Record.
// Missing values are kept as NaN records, so len(Melt()) == N * columns.
func (t *Table) Melt() Long {
	out := make(Long, 0, t.N()*len(t.Columns))
	for c, name := range t.Columns {
		for _, v := range t.Values[c] {
			out = append(out, Record{Variable: name, NumberOfVariants: v})
		}
	}
	return out
}

// Variables lists the distinct variables in first-seen order.
func (l Long) Variables() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range l {
		if _, ok := seen[rec.Variable]; ok {
			continue
		}
		seen[rec.Variable] = struct{}{}
		out = append(out, rec.Variable)
	}
	return out
}

// Values returns the values recorded for variable, in record order, missing
// values included.
func (l Long) Values(variable string) []float64 {
	var out []float64
	for _, rec := range l {
		if rec.Variable == variable {
			out = append(out, rec.NumberOfVariants)
		}
	}
	return out
}

// Pivot turns a long-form table back into a wide one. Row identifiers are not
// part of the long form, so the result is indexed by 0-based row position.
// Every variable must have the same number of records.
func (l Long) Pivot() (*Table, error) {
	vars := l.Variables()
	out := &Table{
		Columns: vars,
		Values:  make([][]float64, len(vars)),
	}

	for c, name := range vars {
		out.Values[c] = l.Values(name)
		if c > 0 && len(out.Values[c]) != len(out.Values[0]) {
			return nil, fmt.Errorf("variable %q has %d records but %q has %d", name, len(out.Values[c]), vars[0], len(out.Values[0]))
		}
	}

	if len(vars) > 0 {
		out.Index = make([]string, len(out.Values[0]))
		for i := range out.Index {
			out.Index[i] = fmt.Sprint(i)
		}
	}

	return out, nil
}

// Equal reports whether t and u have the same columns and values, treating
// two missing values as equal. Row identifiers are not compared.
func (t *Table) Equal(u *Table) bool {
	if len(t.Columns) != len(u.Columns) || t.N() != u.N() {
		return false
	}
	for c := range t.Columns {
		if t.Columns[c] != u.Columns[c] || len(t.Values[c]) != len(u.Values[c]) {
			return false
		}
		for r, v := range t.Values[c] {
			w := u.Values[c][r]
			if math.IsNaN(v) && math.IsNaN(w) {
				continue
			}
			if v != w {
				return false
			}
		}
	}
	return true
}

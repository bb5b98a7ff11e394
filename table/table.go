// Package table loads the two-strategy variant count table and provides the
// column summaries and long-form reshaping used for plotting.
package table

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/denovoplot"
	"github.com/carbocation/pfx"
)

// NDataColumns is the number of data columns expected after the index.
const NDataColumns = 2

// missingTokens are the cell values read as missing rather than as a parse
// failure. These follow the defaults most tabular tools write for NA.
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// Table is a wide table: one identifier per row plus two numeric columns.
// Missing values are NaN.
type Table struct {
	IndexName string
	Index     []string

	// Columns holds the data column names in file order.
	Columns []string

	// Values is column-major: Values[c][r] is row r of column c.
	Values [][]float64
}

// N is the number of data rows.
func (t *Table) N() int {
	return len(t.Index)
}

// Load reads the table at path, which may be local or gs:// (when client is
// non-nil) and may be compressed.
func Load(ctx context.Context, path string, client *storage.Client) (*Table, error) {
	b, err := denovoplot.ReadInput(ctx, path, client)
	if err != nil {
		return nil, err
	}

	t, err := Read(bytes.NewReader(b))
	if err != nil {
		var fe *denovoplot.FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}

	return t, nil
}

// Read parses a tab-delimited table with a header row. The first column is
// the row identifier; exactly two numeric data columns must follow.
// Failures are *denovoplot.FormatError.
func Read(r io.Reader) (*Table, error) {
	// Keep a copy of what we read so that the delimiter can be sniffed if the
	// header turns out not to be tab-delimited.
	var seen bytes.Buffer
	rdr := csv.NewReader(io.TeeReader(r, &seen))
	rdr.Comma = '\t'
	rdr.LazyQuotes = true

	header, err := rdr.Read()
	if err == io.EOF {
		return nil, &denovoplot.FormatError{Msg: "missing header row"}
	} else if err != nil {
		return nil, parseError(err)
	}

	if len(header) != NDataColumns+1 {
		msg := fmt.Sprintf("expected a tab-delimited header with an index column and %d data columns, found %d column(s)", NDataColumns, len(header)-1)
		if len(header) < NDataColumns+1 {
			// Read the rest so that the sniffer sees more than one line.
			io.Copy(io.Discard, io.TeeReader(r, &seen))
			if delim := denovoplot.DetermineDelimiter(bytes.NewReader(seen.Bytes())); delim != '\t' {
				msg += fmt.Sprintf(" (the file looks %s-delimited)", denovoplot.DelimiterName(delim))
			}
		}
		return nil, &denovoplot.FormatError{Line: 1, Msg: msg}
	}

	header = dedupe(header)

	out := &Table{
		IndexName: header[0],
		Columns:   append([]string(nil), header[1:]...),
		Values:    make([][]float64, NDataColumns),
	}

	for {
		row, err := rdr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, parseError(err)
		}

		line, _ := rdr.FieldPos(0)

		out.Index = append(out.Index, row[0])
		for c := 0; c < NDataColumns; c++ {
			v, err := parseValue(row[c+1])
			if err != nil {
				return nil, &denovoplot.FormatError{
					Line: line,
					Msg:  fmt.Sprintf("column %q has a non-numeric value %q", out.Columns[c], row[c+1]),
					Err:  err,
				}
			}
			out.Values[c] = append(out.Values[c], v)
		}
	}

	return out, nil
}

// dedupe renames repeated header names by appending ".1", ".2", ... to the
// later occurrences, skipping suffixes that are already taken, so that every
// column keeps its own identity after melting.
func dedupe(header []string) []string {
	out := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, name := range header {
		col := name
		for n := counts[col]; n > 0; n = counts[col] {
			counts[col] = n + 1
			col = fmt.Sprintf("%s.%d", col, n)
		}
		counts[col]++
		out[i] = col
	}
	return out
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if _, missing := missingTokens[s]; missing {
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, pfx.Err(err)
	}

	// ParseFloat accepts spellings of NaN and Inf that are not in the
	// missing list; only finite numbers are counts.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}

	return v, nil
}

func parseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		msg := "malformed row"
		if errors.Is(pe.Err, csv.ErrFieldCount) {
			msg = fmt.Sprintf("row does not have %d tab-delimited columns", NDataColumns+1)
		}
		return &denovoplot.FormatError{Line: pe.Line, Msg: msg, Err: pe.Err}
	}

	return &denovoplot.FormatError{Msg: "unreadable table", Err: err}
}

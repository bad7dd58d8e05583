package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Table holds parsed CSV content: a header row and the data rows beneath it.
// Missing or unparsable companion files are represented as single-cell
// placeholder tables rather than errors.
type Table struct {
	Columns []string
	Rows    [][]string
}

// InfoTable returns a single-cell table carrying an informational message,
// used when a sample has no CSV companion.
func InfoTable(msg string) Table {
	return Table{Columns: []string{"Info"}, Rows: [][]string{{msg}}}
}

// ErrorTable returns a single-cell table carrying a parse failure message.
func ErrorTable(msg string) Table {
	return Table{Columns: []string{"Error"}, Rows: [][]string{{msg}}}
}

// ParseTable reads comma-delimited content with a header row. Data rows may
// have varying field counts.
func ParseTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, err
	}
	if len(records) == 0 {
		return Table{}, nil
	}
	return Table{Columns: records[0], Rows: records[1:]}, nil
}

// ColumnStat summarizes one fully numeric column.
type ColumnStat struct {
	Column string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// ColumnStats computes summaries for every column whose cells all parse as
// numbers. Columns containing any non-numeric cell are skipped.
func (t Table) ColumnStats() []ColumnStat {
	var out []ColumnStat

	for col, name := range t.Columns {
		vals := numericColumn(t.Rows, col)
		if len(vals) == 0 {
			continue
		}

		cs := ColumnStat{Column: name, Count: len(vals), Min: vals[0], Max: vals[0]}
		for _, v := range vals {
			if v < cs.Min {
				cs.Min = v
			}
			if v > cs.Max {
				cs.Max = v
			}
		}
		cs.Mean = stat.Mean(vals, nil)
		if len(vals) > 1 {
			cs.StdDev = stat.StdDev(vals, nil)
		}
		out = append(out, cs)
	}
	return out
}

// numericColumn extracts column col as floats, or nil if any cell is absent
// or non-numeric.
func numericColumn(rows [][]string, col int) []float64 {
	if len(rows) == 0 {
		return nil
	}
	vals := make([]float64, 0, len(rows))
	for _, row := range rows {
		if col >= len(row) {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return nil
		}
		vals = append(vals, v)
	}
	return vals
}

// Package dataset loads the loan CSV into a gota DataFrame and derives the
// summaries the report prints: shape, schema, describe tables, value counts
// and the above/below-mean split of a numeric column.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// MissingLabel is how a missing cell is printed.
const MissingLabel = "NaN"

// naValues are the raw cell texts treated as missing.
var naValues = []string{"", "NA", "NaN", "<nil>"}

// Table is the loaded dataset. It is never mutated after Load.
type Table struct {
	df     dataframe.DataFrame
	source string
}

// Shape holds the table dimensions.
type Shape struct {
	Rows     int
	Columns  int
	Features int
	Cells    int
}

// ColumnInfo is one line of the schema listing.
type ColumnInfo struct {
	Name       string
	Type       series.Type
	NonMissing int
}

// Load reads the CSV file at path.
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &notFound{path: path, err: err}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	t, err := Read(bytes.NewReader(b))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	t.source = path
	return t, nil
}

// Read parses CSV from r. The first record is the header.
func Read(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(naValues),
	)
	if df.Err != nil {
		return nil, &LoadError{Path: "<reader>", Err: df.Err}
	}
	return &Table{df: df, source: "<reader>"}, nil
}

// FromRecords builds a table from in-memory records, header first.
func FromRecords(records [][]string) (*Table, error) {
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(naValues),
	)
	if df.Err != nil {
		return nil, &LoadError{Path: "<records>", Err: df.Err}
	}
	return &Table{df: df, source: "<records>"}, nil
}

// Source is the path the table was loaded from.
func (t *Table) Source() string { return t.source }

// Frame exposes the underlying DataFrame for read-only use.
func (t *Table) Frame() dataframe.DataFrame { return t.df }

// Names returns the column names in file order.
func (t *Table) Names() []string { return t.df.Names() }

// Shape returns rows, columns, features (columns minus the target) and cells.
func (t *Table) Shape() Shape {
	rows, cols := t.df.Dims()
	return Shape{
		Rows:     rows,
		Columns:  cols,
		Features: cols - 1,
		Cells:    rows * cols,
	}
}

// Schema lists every column with its detected type and non-missing count.
func (t *Table) Schema() []ColumnInfo {
	names := t.df.Names()
	types := t.df.Types()
	out := make([]ColumnInfo, len(names))
	for i, name := range names {
		s := t.df.Col(name)
		nonMissing := 0
		for j := 0; j < s.Len(); j++ {
			if !s.Elem(j).IsNA() {
				nonMissing++
			}
		}
		out[i] = ColumnInfo{Name: name, Type: types[i], NonMissing: nonMissing}
	}
	return out
}

// Column returns the named series.
func (t *Table) Column(name string) (series.Series, error) {
	for _, n := range t.df.Names() {
		if n == name {
			return t.df.Col(name), nil
		}
	}
	return series.Series{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Head returns up to n rows as formatted cell text.
func (t *Table) Head(n int) [][]string {
	rows, cols := t.df.Dims()
	if n > rows {
		n = rows
	}
	if n < 0 {
		n = 0
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, cols)
		for j := 0; j < cols; j++ {
			row[j] = CellText(t.df.Elem(i, j))
		}
		out[i] = row
	}
	return out
}

// IsNumeric reports whether a series holds int or float cells.
func IsNumeric(s series.Series) bool {
	return s.Type() == series.Int || s.Type() == series.Float
}

// CellText formats a cell. Floats keep at least one decimal so that 360 and
// 360.0 read the same way across int and float columns.
func CellText(e series.Element) string {
	if e.IsNA() {
		return MissingLabel
	}
	switch e.Type() {
	case series.Float:
		s := strconv.FormatFloat(e.Float(), 'f', -1, 64)
		for _, c := range s {
			if c == '.' || c == 'e' {
				return s
			}
		}
		return s + ".0"
	case series.Int:
		v, err := e.Int()
		if err != nil {
			return MissingLabel
		}
		return strconv.Itoa(v)
	default:
		return e.String()
	}
}

// values returns the non-missing cells of a numeric series.
func values(s series.Series) []float64 {
	out := make([]float64, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		out = append(out, e.Float())
	}
	return out
}

// NumericValues returns the non-missing values of a numeric column.
func (t *Table) NumericValues(column string) ([]float64, error) {
	s, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if !IsNumeric(s) {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotNumeric, column, s.Type())
	}
	return values(s), nil
}

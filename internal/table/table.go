package table

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// maxLineSize bounds a single source line.
const maxLineSize = 1 << 20

// Table is a read-only rectangular array of samples, one row per line of the
// source file.
type Table struct {
	m *mat.Dense
}

// Load reads the table stored at path. The file is closed before Load
// returns.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "table: could not open data file")
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "table: could not load %s", path)
	}
	return t, nil
}

// Parse reads whitespace-delimited rows of floating-point numbers from r.
// Every row must have the column count of the first one.
func Parse(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		data       []float64
		rows, cols int
		line       int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}

		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, &ParseError{
				Line:    line,
				Wrapped: errors.Wrapf(ErrRagged, "got %d columns, want %d", len(fields), cols),
			}
		}

		for _, tok := range fields {
			v, err := parseValue(tok)
			if err != nil {
				return nil, &ParseError{
					Line:    line,
					Wrapped: errors.Wrapf(ErrMalformed, "%q", tok),
				}
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "table: could not read rows")
	}
	if rows == 0 {
		return nil, ErrEmpty
	}

	return &Table{m: mat.NewDense(rows, cols, data)}, nil
}

// Rows returns the number of samples.
func (t *Table) Rows() int {
	r, _ := t.m.Dims()
	return r
}

// Cols returns the number of columns per sample.
func (t *Table) Cols() int {
	_, c := t.m.Dims()
	return c
}

// At returns the value at row i, column j. It panics on out-of-range
// indices, like mat.Dense.
func (t *Table) At(i, j int) float64 {
	return t.m.At(i, j)
}

// Col returns a copy of column j in row order.
func (t *Table) Col(j int) ([]float64, error) {
	if j < 0 || j >= t.Cols() {
		return nil, errors.Wrapf(ErrColumnRange, "column %d of %d", j, t.Cols())
	}
	return mat.Col(nil, j, t.m), nil
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}

// parseValue accepts overflowing literals as ±Inf. Hex floats are refused.
func parseValue(tok string) (float64, error) {
	digits := strings.TrimLeft(tok, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, errors.New("hexadecimal literal")
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, err
	}
	return v, nil
}

package table

import (
	"fmt"

	"github.com/pkg/errors"
)

// Load and lookup errors.
var (
	// ErrMalformed indicates a token that is not a floating-point number.
	ErrMalformed = errors.New("table: malformed numeric value")

	// ErrRagged indicates a row whose column count differs from the first row.
	ErrRagged = errors.New("table: inconsistent column count")

	// ErrEmpty indicates a source without any data rows.
	ErrEmpty = errors.New("table: no data rows")

	// ErrColumnRange indicates a column index outside the table.
	ErrColumnRange = errors.New("table: column index out of range")
)

// ParseError wraps a load error with the 1-based source line it occurred on.
type ParseError struct {
	Line    int
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

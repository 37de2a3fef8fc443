package trajectory

import (
	"fmt"

	"github.com/san-kum/trajviz/internal/table"
)

// Column positions of a pendulum table.
const (
	ColTime = iota
	ColAngle
	ColAngularVelocity

	// NumColumns is the number of columns Extract needs.
	NumColumns
)

// Series holds the sampled pendulum state in row order.
type Series struct {
	Time            []float64 // s
	Angle           []float64 // rad
	AngularVelocity []float64 // rad/s
}

// Extract copies the time, angle, and angular velocity columns out of t.
// Columns past the third are ignored.
func Extract(t *table.Table) (*Series, error) {
	if t.Cols() < NumColumns {
		return nil, fmt.Errorf("trajectory: need %d columns, table has %d: %w", NumColumns, t.Cols(), table.ErrColumnRange)
	}

	cols := make([][]float64, NumColumns)
	for j := range cols {
		v, err := t.Col(j)
		if err != nil {
			return nil, err
		}
		cols[j] = v
	}

	return &Series{
		Time:            cols[ColTime],
		Angle:           cols[ColAngle],
		AngularVelocity: cols[ColAngularVelocity],
	}, nil
}

func (s *Series) Len() int { return len(s.Time) }

//go:build !cgo

package window

import (
	"context"
	"errors"
	"log/slog"

	"github.com/san-kum/trajviz/internal/viz"
)

func Show(_ context.Context, _ []viz.Figure, _, _ int, _ *slog.Logger) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}

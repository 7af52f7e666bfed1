package suite

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// Mover is anything that plays a cell and reports whether it was accepted.
type Mover interface {
	ApplyMove(cell int) bool
}

func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &Suite{
		T:      t,
		Logger: logger,
	}
}

// Play - applies the cells in order and fails the test if one is rejected.
func (that *Suite) Play(mover Mover, cells ...int) {
	that.Helper()

	for i, cell := range cells {
		require.True(that.T, mover.ApplyMove(cell), "move %d on cell %d was rejected", i+1, cell)
	}
}

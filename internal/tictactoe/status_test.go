package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

func TestDeriveStatus(t *testing.T) {
	x, o, e := entity.PlayerX, entity.PlayerO, entity.EmptyCell

	tests := []struct {
		name        string
		board       entity.Board
		currentMove int
		kind        StatusKind
		text        string
	}{
		{
			name:        "empty board",
			board:       entity.Board{},
			currentMove: 0,
			kind:        StatusNext,
			text:        "Next player: X",
		},
		{
			name:        "after one move",
			board:       entity.Board{x, e, e, e, e, e, e, e, e},
			currentMove: 1,
			kind:        StatusNext,
			text:        "Next player: O",
		},
		{
			name:        "winner on the board",
			board:       entity.Board{x, o, e, x, o, e, x, e, e},
			currentMove: 5,
			kind:        StatusWinner,
			text:        "Winner: X",
		},
		{
			name:        "winning ninth move is a win, not a draw",
			board:       entity.Board{x, o, x, o, x, o, o, x, x},
			currentMove: 9,
			kind:        StatusWinner,
			text:        "Winner: X",
		},
		{
			name:        "full board without a line",
			board:       entity.Board{x, o, x, x, o, o, o, x, x},
			currentMove: 9,
			kind:        StatusDraw,
			text:        "The game is a draw.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := DeriveStatus(tt.board, tt.currentMove)

			assert.Equal(t, tt.kind, status.Kind)
			assert.Equal(t, tt.text, status.Text)
			assert.Equal(t, tt.kind != StatusNext, status.IsFinished())
		})
	}
}

func TestDeriveStatus_WinnerLine(t *testing.T) {
	x, o, e := entity.PlayerX, entity.PlayerO, entity.EmptyCell

	status := DeriveStatus(entity.Board{o, o, o, x, x, e, x, e, e}, 6)

	assert.Equal(t, entity.PlayerO, status.Mark)
	assert.Equal(t, [3]int{0, 1, 2}, status.Line.Cells)
}

package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type StatusKind int

const (
	StatusNext StatusKind = iota
	StatusWinner
	StatusDraw
)

const drawMove = entity.BoardSize

// Status is derived from the displayed board on every call and never stored.
type Status struct {
	Kind StatusKind
	// Mark is the winner for StatusWinner and the next player for StatusNext.
	Mark string
	Line entity.WinLine
	Text string
}

// DeriveStatus - the winner check runs before the draw check.
func DeriveStatus(board entity.Board, currentMove int) Status {
	if line, ok := entity.EvaluateWinner(board); ok {
		return Status{
			Kind: StatusWinner,
			Mark: line.Mark,
			Line: line,
			Text: "Winner: " + line.Mark,
		}
	}

	if currentMove == drawMove {
		return Status{
			Kind: StatusDraw,
			Text: "The game is a draw.",
		}
	}

	mark := entity.MarkForMove(currentMove)

	return Status{
		Kind: StatusNext,
		Mark: mark,
		Text: "Next player: " + mark,
	}
}

func (that Status) IsFinished() bool {
	return that.Kind == StatusWinner || that.Kind == StatusDraw
}

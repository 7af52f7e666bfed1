// Package view turns game state into a display tree and display gestures
// back into game operations. Render is pure: the same state always produces
// the same tree.
package view

import (
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

const (
	classBoard      = "game-board"
	classDrawEffect = "draw-effect"
	classStatus     = "status"
	classWinner     = "winner"
	classDraw       = "draw"

	labelGameStart = "Go to game start"
	labelSortAsc   = "Sort Ascending"
	labelSortDesc  = "Sort Descending"
	prefixGoToMove = "Go to move #"
	prefixAtMove   = "You are at move #"
)

// State is the read-only part of the game the view needs.
type State interface {
	CurrentBoard() entity.Board
	CurrentMove() int
	History() []entity.HistoryEntry
	IsAscending() bool
}

type Square struct {
	Index     int
	Value     string
	Highlight bool
}

// MoveItem is one entry of the move list. Current items are inert labels,
// the rest are controls that jump to Move.
type MoveItem struct {
	Move    int
	Label   string
	Current bool
}

type Tree struct {
	BoardClass string
	Rows       [entity.BoardSide][entity.BoardSide]Square

	Status      tictactoe.Status
	StatusClass string

	SortLabel string
	Moves     []MoveItem
}

func Render(state State) Tree {
	board := state.CurrentBoard()
	currentMove := state.CurrentMove()
	status := tictactoe.DeriveStatus(board, currentMove)

	tree := Tree{
		BoardClass:  classBoard,
		Status:      status,
		StatusClass: classStatus,
		SortLabel:   SortLabel(state.IsAscending()),
		Moves:       renderMoves(state.History(), currentMove, state.IsAscending()),
	}

	switch status.Kind {
	case tictactoe.StatusWinner:
		tree.StatusClass += " " + classWinner
	case tictactoe.StatusDraw:
		tree.StatusClass += " " + classDraw
		tree.BoardClass += " " + classDrawEffect
	}

	for row := 0; row < entity.BoardSide; row++ {
		for col := 0; col < entity.BoardSide; col++ {
			index := row*entity.BoardSide + col
			tree.Rows[row][col] = Square{
				Index:     index,
				Value:     board[index],
				Highlight: status.Kind == tictactoe.StatusWinner && status.Line.Contains(index),
			}
		}
	}

	return tree
}

// SortLabel - names the order the toggle switches to.
func SortLabel(ascending bool) string {
	if ascending {
		return labelSortDesc
	}
	return labelSortAsc
}

// MoveLabel - text of the move list item for history entry move.
func MoveLabel(move, currentMove int, entry entity.HistoryEntry) string {
	if move == 0 || entry.Location == nil {
		return labelGameStart
	}

	if move == currentMove {
		return prefixAtMove + entry.Location.String()
	}

	return prefixGoToMove + entry.Location.String()
}

func renderMoves(history []entity.HistoryEntry, currentMove int, ascending bool) []MoveItem {
	moves := make([]MoveItem, len(history))
	for move, entry := range history {
		item := MoveItem{
			Move:    move,
			Label:   MoveLabel(move, currentMove, entry),
			Current: move == currentMove,
		}

		if ascending {
			moves[move] = item
		} else {
			moves[len(history)-1-move] = item
		}
	}

	return moves
}

func (that Tree) IsDraw() bool {
	return that.Status.Kind == tictactoe.StatusDraw
}

// Square - the square for a board index.
func (that Tree) Square(index int) Square {
	return that.Rows[index/entity.BoardSide][index%entity.BoardSide]
}

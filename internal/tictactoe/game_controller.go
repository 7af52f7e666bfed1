package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Game owns the move history, the pointer to the displayed move and the
// display order of the move list. It is not safe for concurrent use.
type Game struct {
	logger *slog.Logger

	history     []entity.HistoryEntry
	currentMove int
	ascending   bool

	listeners      map[int]Listener
	nextListenerID int
}

func NewGame(logger *slog.Logger) *Game {
	return &Game{
		logger: logger.With("component", "game"),

		history:   []entity.HistoryEntry{entity.StartEntry()},
		ascending: true,

		listeners: make(map[int]Listener),
	}
}

// ApplyMove - plays the cell for the player to move. Returns false and leaves
// the game untouched if the move is not legal.
func (that *Game) ApplyMove(cell int) bool {
	log := that.logger.With("method", "ApplyMove")

	if err := that.MakeMove(cell); err != nil {
		log.Debug("move ignored", "cell", cell, "move", that.currentMove, "reason", err)
		return false
	}

	return true
}

// MakeMove - same as ApplyMove but reports why a move was rejected.
func (that *Game) MakeMove(cell int) error {
	if err := that.validateMove(cell); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	mark := that.NextMark()
	board := that.CurrentBoard().With(cell, mark)

	// the abandoned future is dropped, earlier entries are shared
	history := make([]entity.HistoryEntry, that.currentMove+2)
	copy(history, that.history[:that.currentMove+1])
	history[len(history)-1] = entity.NewHistoryEntry(board, cell)

	that.history = history
	that.currentMove = len(history) - 1

	that.notify(Event{Kind: EventMove, Cell: cell, Mark: mark, Move: that.currentMove})

	return nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	board := that.CurrentBoard()

	if _, won := entity.EvaluateWinner(board); won {
		return apperror.ErrGameFinished
	}

	if board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// JumpTo - displays the board of the given history entry. Returns false if
// the entry does not exist.
func (that *Game) JumpTo(move int) bool {
	log := that.logger.With("method", "JumpTo")

	if err := that.JumpToMove(move); err != nil {
		log.Debug("jump ignored", "move", move, "reason", err)
		return false
	}

	return true
}

func (that *Game) JumpToMove(move int) error {
	if move < 0 || move >= len(that.history) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrMoveOutOfRange, move, len(that.history))
	}

	that.currentMove = move
	that.notify(Event{Kind: EventJump, Cell: -1, Move: move})

	return nil
}

func (that *Game) ToggleSortOrder() {
	that.ascending = !that.ascending
	that.notify(Event{Kind: EventSort, Cell: -1, Move: that.currentMove})
}

func (that *Game) CurrentMove() int {
	return that.currentMove
}

func (that *Game) CurrentBoard() entity.Board {
	return that.history[that.currentMove].Board
}

// History - returns a copy of every recorded entry.
func (that *Game) History() []entity.HistoryEntry {
	history := make([]entity.HistoryEntry, len(that.history))
	for i, entry := range that.history {
		history[i] = entry.Clone()
	}

	return history
}

func (that *Game) IsAscending() bool {
	return that.ascending
}

// NextMark - the mark placed by the next move from the displayed board.
func (that *Game) NextMark() string {
	return entity.MarkForMove(that.currentMove)
}

func (that *Game) Winner() (entity.WinLine, bool) {
	return entity.EvaluateWinner(that.CurrentBoard())
}

func (that *Game) Status() Status {
	return DeriveStatus(that.CurrentBoard(), that.currentMove)
}

package entity

import "fmt"

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9
	BoardSide = 3
)

// WinCombos - every winning line, in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a row-major snapshot of the nine cells.
type Board [BoardSize]string

// WinLine holds the mark that completed a line and the cells of that line.
type WinLine struct {
	Mark  string `json:"mark"`
	Cells [3]int `json:"cells"`
}

func (that Board) With(cell int, mark string) Board {
	that[cell] = mark
	return that
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EvaluateWinner - returns the first complete line in WinCombos order.
func EvaluateWinner(board Board) (WinLine, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return WinLine{Mark: a, Cells: combo}, true
		}
	}

	return WinLine{}, false
}

func (that WinLine) Contains(cell int) bool {
	for _, c := range that.Cells {
		if c == cell {
			return true
		}
	}

	return false
}

// MarkForMove - X moves on even history indexes, O on odd ones.
func MarkForMove(move int) string {
	if move%2 == 0 {
		return PlayerX
	}
	return PlayerO
}

// Location is the 0-based row and column of a played cell.
type Location struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func LocationOf(cell int) Location {
	return Location{Row: cell / BoardSide, Col: cell % BoardSide}
}

func (that Location) Cell() int {
	return that.Row*BoardSide + that.Col
}

// String renders the location in 1-based display coordinates.
func (that Location) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row+1, that.Col+1)
}

type HistoryEntry struct {
	Board    Board     `json:"board"`
	Location *Location `json:"location,omitempty"`
}

func StartEntry() HistoryEntry {
	return HistoryEntry{}
}

func NewHistoryEntry(board Board, cell int) HistoryEntry {
	location := LocationOf(cell)

	return HistoryEntry{
		Board:    board,
		Location: &location,
	}
}

func (that HistoryEntry) Clone() HistoryEntry {
	if that.Location == nil {
		return that
	}

	location := *that.Location
	that.Location = &location

	return that
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/view"
)

const (
	title    = "Tic-Tac-Toe"
	helpText = "arrows/hjkl move • enter play • 1-9 play cell • tab move list • s sort • q quit"
)

func (m Model) View() string {
	tree := view.Render(m.game)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderBoard(tree), m.renderInfo(tree))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		body,
		m.styles.Help.Render(helpText),
	)
}

func (m Model) renderBoard(tree view.Tree) string {
	separator := m.styles.Grid.Render(strings.Repeat("───┼", entity.BoardSide-1) + "───")

	rows := make([]string, 0, 2*entity.BoardSide-1)
	for r, row := range tree.Rows {
		if r > 0 {
			rows = append(rows, separator)
		}

		cells := make([]string, len(row))
		for c, square := range row {
			cells[c] = m.renderSquare(square)
		}
		rows = append(rows, strings.Join(cells, m.styles.Grid.Render("│")))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if tree.IsDraw() {
		return m.styles.DrawBoard.Render(grid)
	}

	return m.styles.Board.Render(grid)
}

func (m Model) renderSquare(square view.Square) string {
	text := " " + square.Value + " "
	style := m.styles.Empty

	switch square.Value {
	case entity.PlayerX:
		style = m.styles.X
	case entity.PlayerO:
		style = m.styles.O
	default:
		text = "   "
	}

	if square.Highlight {
		style = m.styles.Highlight
	}

	if m.focus == focusBoard && square.Index == m.cursor {
		style = style.Copy().Inherit(m.styles.Cursor)
	}

	return style.Render(text)
}

func (m Model) renderInfo(tree view.Tree) string {
	lines := []string{
		m.renderStatus(tree.Status),
		m.styles.SortButton.Render("[s] " + tree.SortLabel),
		"",
	}

	for i, item := range tree.Moves {
		marker := "  "
		if m.focus == focusMoves && i == m.selected {
			marker = m.styles.Selected.Render("› ")
		}

		label := m.styles.MoveButton.Render(item.Label)
		if item.Current {
			label = m.styles.CurrentMove.Render(item.Label)
		}

		lines = append(lines, fmt.Sprintf("%s%d. %s", marker, i+1, label))
	}

	return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderStatus(status tictactoe.Status) string {
	switch status.Kind {
	case tictactoe.StatusWinner:
		return m.styles.StatusWinner.Render(status.Text)
	case tictactoe.StatusDraw:
		return m.styles.StatusDraw.Render(status.Text)
	default:
		return m.styles.Status.Render(status.Text)
	}
}

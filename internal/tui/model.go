// Package tui draws the game in a terminal and maps key presses to view
// actions.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/view"
)

type focus int

const (
	focusBoard focus = iota
	focusMoves
)

type Model struct {
	logger *slog.Logger
	game   *tictactoe.Game
	styles Styles

	focus    focus
	cursor   int
	selected int

	width  int
	height int
}

func New(logger *slog.Logger, game *tictactoe.Game, styles Styles) Model {
	return Model{
		logger: logger.With("component", "tui"),
		game:   game,
		styles: styles,
		cursor: 4,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q", "esc":
			m.logger.Info("quit requested", "key", key)
			return m, tea.Quit
		case "tab", "shift+tab":
			m.switchFocus()
			return m, nil
		case "s", "S":
			m.toggleSort()
			return m, nil
		default:
			if m.focus == focusMoves {
				m.handleMovesKey(key)
			} else {
				m.handleBoardKey(key)
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) switchFocus() {
	if m.focus == focusBoard {
		m.focus = focusMoves
		m.selected = m.currentItem()
		return
	}
	m.focus = focusBoard
}

// toggleSort - keeps the selection on the same history entry.
func (m *Model) toggleSort() {
	view.Dispatch(m.game, view.ClickSort())
	m.selected = len(m.game.History()) - 1 - m.selected
	m.clampSelection()
}

func (m *Model) handleBoardKey(key string) {
	switch key {
	case "left", "h":
		if m.cursor%entity.BoardSide > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%entity.BoardSide < entity.BoardSide-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor >= entity.BoardSide {
			m.cursor -= entity.BoardSide
		}
	case "down", "j":
		if m.cursor < entity.BoardSize-entity.BoardSide {
			m.cursor += entity.BoardSide
		}
	case "enter", " ":
		m.play(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.cursor = int(key[0] - '1')
		m.play(m.cursor)
	}
}

func (m *Model) handleMovesKey(key string) {
	switch key {
	case "up", "k":
		m.selected--
	case "down", "j":
		m.selected++
	case "home", "g":
		m.selected = 0
	case "end", "G":
		m.selected = len(m.game.History()) - 1
	case "enter", " ":
		m.jump()
	}
	m.clampSelection()
}

func (m *Model) play(cell int) {
	view.Dispatch(m.game, view.ClickSquare(cell))
	m.clampSelection()
}

func (m *Model) jump() {
	tree := view.Render(m.game)
	action, ok := view.ClickMove(tree.Moves[m.selected])
	if !ok {
		return
	}

	view.Dispatch(m.game, action)
}

// currentItem - position of the current move in the displayed list.
func (m *Model) currentItem() int {
	for i, item := range view.Render(m.game).Moves {
		if item.Current {
			return i
		}
	}

	return 0
}

func (m *Model) clampSelection() {
	last := len(m.game.History()) - 1
	if m.selected > last {
		m.selected = last
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
)

type Styles struct {
	Title lipgloss.Style
	Help  lipgloss.Style

	Board     lipgloss.Style
	DrawBoard lipgloss.Style
	Grid      lipgloss.Style

	X         lipgloss.Style
	O         lipgloss.Style
	Empty     lipgloss.Style
	Highlight lipgloss.Style
	Cursor    lipgloss.Style

	Status       lipgloss.Style
	StatusWinner lipgloss.Style
	StatusDraw   lipgloss.Style

	SortButton  lipgloss.Style
	MoveButton  lipgloss.Style
	CurrentMove lipgloss.Style
	Selected    lipgloss.Style
	Panel       lipgloss.Style
}

func NewStyles(theme config.Theme) Styles {
	accent := lipgloss.Color(theme.AccentColor)
	highlight := lipgloss.Color(theme.HighlightColor)
	draw := lipgloss.Color(theme.DrawColor)

	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Help:  lipgloss.NewStyle().Faint(true).MarginTop(1),

		Board:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		DrawBoard: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(draw).Padding(0, 1),
		Grid:      lipgloss.NewStyle().Faint(true),

		X:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.XColor)),
		O:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.OColor)),
		Empty:     lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(highlight),
		Cursor:    lipgloss.NewStyle().Reverse(true),

		Status:       lipgloss.NewStyle().Bold(true),
		StatusWinner: lipgloss.NewStyle().Bold(true).Foreground(highlight),
		StatusDraw:   lipgloss.NewStyle().Bold(true).Foreground(draw),

		SortButton:  lipgloss.NewStyle().Foreground(accent),
		MoveButton:  lipgloss.NewStyle(),
		CurrentMove: lipgloss.NewStyle().Italic(true).Faint(true),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Panel:       lipgloss.NewStyle().PaddingLeft(3),
	}
}

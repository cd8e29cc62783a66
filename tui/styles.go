package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tilegrid/grid"
	"github.com/young1lin/tilegrid/internal/layout"
)

// Styles contains the Lipgloss styles for the chrome around the grid
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
}

// StylesFor returns the chrome styles for a theme
func StylesFor(theme grid.Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Padding(0, 1),
		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Label: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Value: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Secondary),
		Error: lipgloss.NewStyle().
			Foreground(theme.Danger).
			Bold(true),
	}
}

// tileStyle draws a rounded border around every tile, highlighted on focus
func tileStyle(g *grid.Grid[layout.Tile], x, y int, theme grid.Theme, _ layout.Tile) lipgloss.Style {
	border := theme.Secondary
	if g.Position().Equal(grid.NewPosition(x, y)) {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// pressableStyle colors the interior of a tile by its status
func pressableStyle(_ *grid.Grid[layout.Tile], _, _ int, theme grid.Theme, status grid.Status, _ layout.Tile) lipgloss.Style {
	style := lipgloss.NewStyle().Align(lipgloss.Center)
	switch status {
	case grid.StatusPressed:
		return style.Bold(true).
			Foreground(theme.Background).
			Background(theme.Primary)
	case grid.StatusFocused:
		return style.Bold(true).
			Foreground(theme.Primary)
	case grid.StatusDisabled:
		return style.Faint(true).
			Foreground(theme.Muted)
	default:
		return style.Foreground(theme.Foreground)
	}
}

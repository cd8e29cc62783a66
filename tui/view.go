package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	// Show error if any
	if m.err != nil {
		return m.renderError()
	}

	// Show loading until a layout arrives
	if m.state.layout == nil {
		return m.renderLoading()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderer.Render(m.grid.Element()),
		m.renderStatus(),
		m.renderHelp(),
	)

	if m.zones != nil {
		return m.zones.Scan(content)
	}
	return content
}

// renderHeader renders the layout name and counts
func (m Model) renderHeader() string {
	l := m.state.layout
	title := m.styles.Title.Render(l.Name)

	info := fmt.Sprintf("%d rows, %d tiles", len(l.Rows), l.TileCount())
	if hidden := l.HiddenCount(); hidden > 0 {
		if m.state.showHidden {
			info += fmt.Sprintf(", %d hidden shown", hidden)
		} else {
			info += fmt.Sprintf(", %d hidden", hidden)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", m.styles.Subtitle.Render(info))
}

// renderStatus renders the focused position and the last press
func (m Model) renderStatus() string {
	pos := m.grid.Position()
	status := m.styles.Label.Render("Focus: ") + m.styles.Value.Render(pos.String())
	if tile, ok := m.grid.At(pos); ok {
		status += " " + m.styles.Muted.Render(tile.Key())
	}

	last := m.lastPress
	if last == "" {
		last = "-"
	}
	status += m.styles.Label.Render("  Last: ") + m.styles.Value.Render(last)

	if n := len(m.history); n > 0 {
		status += m.styles.Muted.Render(fmt.Sprintf(" (%d recent)", n))
	}
	return status
}

// renderHelp renders the key binding help line
func (m Model) renderHelp() string {
	return m.help.View(m.keys)
}

// renderLoading renders the loading state
func (m Model) renderLoading() string {
	return m.styles.Subtitle.Render("Loading layout...") + "\n"
}

// renderError renders an error message
func (m Model) renderError() string {
	return m.styles.Error.Render("Error: "+m.err.Error()) + "\n\n" +
		m.styles.Muted.Render("Press q to quit") + "\n"
}

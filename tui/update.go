package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tilegrid/grid"
	"github.com/young1lin/tilegrid/internal/layout"
	"github.com/young1lin/tilegrid/internal/store"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.env = m.env.WithWindowSize(msg.Width, msg.Height)
		m.grid.WithGridSize(m.env.Viewport(chromeHeight, m.grid.Padding()))
		m.help.Width = msg.Width
		m.ready = true
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height, "scale", m.env.ScaleFactor())
		return m, tea.Batch(m.grid.Measure(), m.followFocus())

	case grid.EventMsg:
		return m.Update(msg.Event)

	case grid.NavigateMsg:
		if !m.hasCells() {
			return m, nil
		}
		cmd := m.grid.MoveOnGridWithCallback(msg.Direction, grid.FollowFocus[layout.Tile](m.offsets))
		return m, tea.Batch(cmd, m.saveFocusCmd())

	case grid.SelectMsg:
		if !m.hasCells() {
			return m, nil
		}
		return m, m.grid.Select()

	case grid.BackMsg:
		m.quitting = true
		return m, tea.Quit

	case grid.ButtonPressedMsg:
		return m.handlePress(msg.Position)

	case grid.ItemSelectedMsg:
		pos, ok := m.grid.Find(msg.ID)
		if !ok {
			return m, nil
		}
		if err := m.grid.SetPosition(pos); err != nil {
			return m, nil
		}
		return m, tea.Batch(m.followFocus(), m.saveFocusCmd())

	case grid.ScrollUpdatedMsg:
		if msg.ID == m.grid.ScrollID() {
			m.offsets.Apply(msg)
		}
		return m, nil

	case grid.BoundsFoundMsg:
		if msg.ID == m.grid.ScrollID() {
			m.bounds = grid.Vec2[int]{X: msg.Width, Y: msg.Height}
		}
		return m, nil

	case LayoutLoadedMsg:
		return m.handleLayout(msg)

	case LayoutFailedMsg:
		m.err = msg.Err
		return m, nil

	case HistoryLoadedMsg:
		m.history = msg.Presses
		if len(m.history) > 0 && m.lastPress == "" {
			m.lastPress = m.history[0].Label
		}
		return m, nil

	case PressRecordedMsg:
		m.history = append([]store.PressRecord{msg.Record}, m.history...)
		if m.historyLimit > 0 && len(m.history) > m.historyLimit {
			m.history = m.history[:m.historyLimit]
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		return m, grid.Send(grid.NavigateMsg{Direction: grid.Up})
	case key.Matches(msg, m.keys.Down):
		return m, grid.Send(grid.NavigateMsg{Direction: grid.Down})
	case key.Matches(msg, m.keys.Left):
		return m, grid.Send(grid.NavigateMsg{Direction: grid.Left})
	case key.Matches(msg, m.keys.Right):
		return m, grid.Send(grid.NavigateMsg{Direction: grid.Right})
	case key.Matches(msg, m.keys.Select):
		return m, grid.Send(grid.SelectMsg{})
	case key.Matches(msg, m.keys.Back):
		return m, grid.Send(grid.BackMsg{})
	case key.Matches(msg, m.keys.ToggleHidden):
		m.state.showHidden = !m.state.showHidden
		return m, tea.Batch(m.grid.Measure(), m.followFocus())
	}

	return m, nil
}

// handleMouseMsg turns clicks into presses and wheel motion into scrolling
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if press, ok := m.renderer.Resolve(msg); ok {
		return m, func() tea.Msg { return press }
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m, m.scrollBy(-1)
	case tea.MouseButtonWheelDown:
		return m, m.scrollBy(1)
	}
	return m, nil
}

// handlePress marks the pressed tile and stores the press
func (m Model) handlePress(pos grid.Position) (tea.Model, tea.Cmd) {
	tile, ok := m.grid.At(pos)
	if !ok || tile.Disabled() {
		return m, nil
	}

	m.grid.MarkPressed(pos)
	m.lastPress = tile.Label()
	m.logger.Info("tile pressed", "key", tile.Key(), "position", pos.String())

	if m.recorder == nil {
		return m, nil
	}
	record := store.PressRecord{
		Layout:   m.state.layout.Name,
		TileID:   tile.ID(),
		Label:    tile.Label(),
		Position: pos,
	}
	recorder := m.recorder
	return m, func() tea.Msg {
		if err := recorder.RecordPress(record); err != nil {
			return ErrorMsg{Err: err}
		}
		return PressRecordedMsg{Record: record}
	}
}

// handleLayout swaps in a new table of tiles
func (m Model) handleLayout(msg LayoutLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Layout == nil {
		return m, nil
	}

	m.state.layout = msg.Layout
	m.grid.SetLocations(msg.Layout.Rows)
	if msg.Focus != nil {
		if err := m.grid.SetPosition(*msg.Focus); err != nil {
			m.logger.Debug("saved focus no longer fits", "position", msg.Focus.String(), "error", err)
		}
	}
	m.err = nil
	m.logger.Info("layout loaded", "name", msg.Layout.Name, "rows", len(msg.Layout.Rows), "tiles", msg.Layout.TileCount())

	return m, tea.Batch(m.grid.Measure(), m.followFocus())
}

// followFocus scrolls so the focused row is visible
func (m Model) followFocus() tea.Cmd {
	if !m.hasCells() {
		return nil
	}
	pos := m.grid.Position()
	follow := grid.FollowFocus[layout.Tile](m.offsets)
	return follow(m.grid, grid.Down, m.grid.Focused(), grid.Transition{From: pos, To: pos})
}

// scrollBy moves the scroll region by delta lines within the content
func (m Model) scrollBy(delta int) tea.Cmd {
	id := m.grid.ScrollID()
	limit := max(0, m.bounds.Y-m.grid.ViewportSize().Y)
	next := min(max(0, m.offsets.Get(id)+delta), limit)
	if next == m.offsets.Get(id) {
		return nil
	}
	return grid.ScrollTo(id, next)
}

// saveFocusCmd stores the focused position of the layout
func (m Model) saveFocusCmd() tea.Cmd {
	if m.focus == nil || m.state.layout == nil {
		return nil
	}
	name := m.state.layout.Name
	pos := m.grid.Position()
	focus := m.focus
	return func() tea.Msg {
		if err := focus.SaveFocus(name, pos); err != nil {
			return ErrorMsg{Err: err}
		}
		return nil
	}
}

package grid

import tea "github.com/charmbracelet/bubbletea"

// MoveOnGrid moves the focus one step in dir. Moves past the edge of the
// table leave the focus where it is. No follow-up command is returned.
func (g *Grid[C]) MoveOnGrid(dir Direction) tea.Cmd {
	return g.MoveOnGridWithCallback(dir, nil)
}

// MoveOnGridWithCallback moves the focus one step in dir and hands the grid,
// the direction, the newly focused cell and the old and new positions to fn.
// The command returned by fn is returned to the caller unexecuted.
//
// Vertical moves clamp the column into the new row, horizontal moves never
// touch the row. It panics when the grid is empty or the focus is already
// out of bounds.
func (g *Grid[C]) MoveOnGridWithCallback(dir Direction, fn MoveFunc[C]) tea.Cmd {
	g.mustBeValid()

	old := g.position

	switch dir {
	case Up:
		if g.position.Y > 0 {
			g.position.Y--
		}
		g.position.X = clampInt(g.position.X, 0, len(g.locations[g.position.Y])-1)

	case Down:
		if g.position.Y < len(g.locations)-1 {
			g.position.Y++
		}
		g.position.X = clampInt(g.position.X, 0, len(g.locations[g.position.Y])-1)

	case Left:
		if g.position.X > 0 {
			g.position.X--
		}

	case Right:
		if g.position.X < len(g.locations[g.position.Y])-1 {
			g.position.X++
		}
	}

	// A vertical move onto an empty row leaves no valid column
	g.mustBeValid()

	if !old.Equal(g.position) {
		g.hasPressed = false
	}

	g.logger.Debug("new grid position", "position", g.position.String(), "direction", dir.String())

	if fn == nil {
		return nil
	}

	return fn(g, dir, g.locations[g.position.Y][g.position.X], Transition{From: old, To: g.position})
}

// Select presses the focused cell
func (g *Grid[C]) Select() tea.Cmd {
	return g.Press(g.position)
}

// Press returns a command emitting ButtonPressedMsg for the cell at p.
// Unknown positions and disabled cells yield nil.
func (g *Grid[C]) Press(p Position) tea.Cmd {
	cell, ok := g.At(p)
	if !ok || disabled(cell) {
		return nil
	}
	return Send(ButtonPressedMsg{Position: p})
}

// MarkPressed shows the cell at p as pressed until the focus moves
func (g *Grid[C]) MarkPressed(p Position) {
	if _, ok := g.At(p); !ok {
		return
	}
	g.pressed = p
	g.hasPressed = true
}

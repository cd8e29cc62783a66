package grid

import "github.com/charmbracelet/lipgloss"

// Element composes the grid inside its scroll region
func (g *Grid[C]) Element() Node {
	return g.Compose(true)
}

// Compose builds the render tree for the current state without changing it.
// Rows rejected by the culling callback are left out entirely. With
// withScrollable the rows are wrapped in a viewport tagged with ScrollID.
func (g *Grid[C]) Compose(withScrollable bool) Node {
	rows := make([]Node, 0, len(g.locations))

	for r, row := range g.locations {
		if !g.shouldRenderRow(r) {
			continue
		}

		tiles := make([]Node, 0, len(row))
		for c, cell := range row {
			tiles = append(tiles, g.composeTile(c, r, cell))
		}

		rows = append(rows, Row{
			Spacing: g.spacing.X,
			Items:   tiles,
		})
	}

	var content Node = Column{
		Spacing: g.spacing.Y,
		Items:   rows,
	}

	if withScrollable {
		size := g.ViewportSize()
		content = Scrollable{
			ID:     g.scrollID,
			Width:  size.X,
			Height: size.Y,
			Child:  content,
		}
	}

	return Padding{
		Padding: g.padding,
		Child:   content,
	}
}

// composeTile wraps one cell in its pressable and its tile
func (g *Grid[C]) composeTile(c, r int, cell C) Node {
	status := g.status(c, r, cell)

	button := Button{
		Content: cell.View(),
		Width:   nonNegative(g.tileSize.X - g.buttonInset*2),
		Height:  nonNegative(g.tileSize.Y - g.buttonInset*2),
		Status:  status,
		Style:   g.resolveButtonStyle(c, r, status, cell),
		OnPress: ButtonPressedMsg{Position: NewPosition(c, r)},
	}

	return Container{
		ID:     cell.ID(),
		Width:  g.tileSize.X,
		Height: g.tileSize.Y,
		Style:  g.resolveContainerStyle(c, r, cell),
		Child:  button,
	}
}

// status derives the interaction state of the cell at column c, row r
func (g *Grid[C]) status(c, r int, cell C) Status {
	switch {
	case disabled(cell):
		return StatusDisabled
	case g.hasPressed && g.pressed.Equal(NewPosition(c, r)):
		return StatusPressed
	case g.position.Equal(NewPosition(c, r)):
		return StatusFocused
	default:
		return StatusActive
	}
}

func (g *Grid[C]) shouldRenderRow(row int) bool {
	if g.culling == nil {
		return true
	}
	return g.culling(g, row)
}

func (g *Grid[C]) resolveContainerStyle(c, r int, cell C) lipgloss.Style {
	if g.containerStyle == nil {
		return DefaultContainerStyle()
	}
	return g.containerStyle(g, c, r, g.theme, cell)
}

func (g *Grid[C]) resolveButtonStyle(c, r int, status Status, cell C) lipgloss.Style {
	if g.buttonStyle == nil {
		return DefaultButtonStyle()
	}
	return g.buttonStyle(g, c, r, g.theme, status, cell)
}

package grid

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Offsets holds the line offset of each scroll region, keyed by its id.
// The host owns it and applies ScrollUpdatedMsg to it.
type Offsets struct {
	lines map[ID]int
}

// NewOffsets creates an empty offset table
func NewOffsets() *Offsets {
	return &Offsets{lines: make(map[ID]int)}
}

// Get returns the offset of a region, 0 when unknown
func (o *Offsets) Get(id ID) int {
	return o.lines[id]
}

// Set stores the offset of a region
func (o *Offsets) Set(id ID, line int) {
	o.lines[id] = nonNegative(line)
}

// Apply stores the offset carried by msg
func (o *Offsets) Apply(msg ScrollUpdatedMsg) {
	o.Set(msg.ID, msg.Offset)
}

// ScrollTo returns a command announcing a new offset for a scroll region
func ScrollTo(id ID, line int) tea.Cmd {
	return Send(ScrollUpdatedMsg{ID: id, Offset: nonNegative(line)})
}

// RowHeight returns the height of a row in lines: the tile height, or the
// tallest cell interior when no tile height is set
func RowHeight[C Cell](g *Grid[C], row int) int {
	if g.tileSize.Y > 0 {
		return g.tileSize.Y
	}
	height := 0
	if row < 0 || row >= len(g.locations) {
		return height
	}
	for _, cell := range g.locations[row] {
		if h := lipgloss.Height(cell.View()); h > height {
			height = h
		}
	}
	return height
}

// RowTop returns the first line of a row inside the composed column.
// Culled rows take no space; false is returned for a culled or unknown row.
func RowTop[C Cell](g *Grid[C], row int) (int, bool) {
	if row < 0 || row >= len(g.locations) || !g.shouldRenderRow(row) {
		return 0, false
	}
	top := 0
	for r := 0; r < row; r++ {
		if !g.shouldRenderRow(r) {
			continue
		}
		top += RowHeight(g, r) + g.spacing.Y
	}
	return top, true
}

// FollowFocus returns a move callback that scrolls the grid's viewport so
// the focused row stays visible
func FollowFocus[C Cell](offsets *Offsets) MoveFunc[C] {
	return func(g *Grid[C], _ Direction, _ C, t Transition) tea.Cmd {
		top, ok := RowTop(g, t.To.Y)
		if !ok {
			return nil
		}
		bottom := top + RowHeight(g, t.To.Y)
		view := g.ViewportSize().Y

		current := offsets.Get(g.scrollID)
		next := current

		// Scroll up if the row is above the viewport
		if top < current {
			next = top
		}
		// Scroll down if the row is below the viewport
		if bottom > current+view {
			next = bottom - view
		}

		if next == current {
			return nil
		}
		return ScrollTo(g.scrollID, next)
	}
}

// Measure returns a command reporting the size of the content of the
// scroll region
func (g *Grid[C]) Measure() tea.Cmd {
	var content Node = g.Compose(false)
	if p, ok := content.(Padding); ok {
		content = p.Child
	}
	out := NewRenderer(nil).Render(content)
	return Send(BoundsFoundMsg{
		ID:     g.scrollID,
		Width:  lipgloss.Width(out),
		Height: lipgloss.Height(out),
	})
}

package grid

import "strings"

// testCell is a plain cell used across the package tests
type testCell struct {
	label string
	off   bool
}

func (c testCell) View() string   { return c.label }
func (c testCell) ID() ID         { return IDFor(c.label) }
func (c testCell) Disabled() bool { return c.off }

// table builds a jagged table from rows of labels
func table(rows ...string) [][]testCell {
	out := make([][]testCell, 0, len(rows))
	for _, row := range rows {
		cells := make([]testCell, 0)
		for _, label := range strings.Fields(row) {
			cells = append(cells, testCell{label: label})
		}
		out = append(out, cells)
	}
	return out
}

// pressedPositions collects the press positions of every button in order
func pressedPositions(n Node) []Position {
	var out []Position
	Walk(n, func(n Node) bool {
		if b, ok := n.(Button); ok {
			if msg, ok := b.OnPress.(ButtonPressedMsg); ok {
				out = append(out, msg.Position)
			}
		}
		return true
	})
	return out
}

// containerIDs collects the ids of every tile in order
func containerIDs(n Node) []ID {
	var out []ID
	Walk(n, func(n Node) bool {
		if c, ok := n.(Container); ok {
			out = append(out, c.ID)
		}
		return true
	})
	return out
}

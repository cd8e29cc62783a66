// Package layout loads tables of tiles for the grid from layout files
package layout

import (
	"strings"

	"github.com/young1lin/tilegrid/grid"
)

// Document is the decoded form of a layout file
type Document struct {
	Name   string   `yaml:"name" toml:"name"`
	Format string   `yaml:"format" toml:"format"`
	Rows   []RowDef `yaml:"rows" toml:"rows"`
}

// RowDef describes one row of tiles
type RowDef struct {
	Hidden bool      `yaml:"hidden" toml:"hidden"` // Culled until hidden rows are shown
	Tiles  []TileDef `yaml:"tiles" toml:"tiles"`
}

// TileDef describes one tile
type TileDef struct {
	Key      string `yaml:"key" toml:"key"`
	Label    string `yaml:"label" toml:"label"`
	Detail   string `yaml:"detail" toml:"detail"`
	Disabled bool   `yaml:"disabled" toml:"disabled"`
}

// Tile is a grid cell built from a TileDef
type Tile struct {
	id       grid.ID
	key      string
	label    string
	detail   string
	disabled bool
}

// NewTile creates a tile whose identity is derived from the layout name and key
func NewTile(layoutName string, def TileDef) Tile {
	return Tile{
		id:       grid.IDFor(layoutName + "/" + def.Key),
		key:      def.Key,
		label:    def.Label,
		detail:   def.Detail,
		disabled: def.Disabled,
	}
}

// View renders the label with the detail below it
func (t Tile) View() string {
	if t.detail == "" {
		return t.label
	}
	return t.label + "\n" + t.detail
}

// ID returns the stable identity of the tile
func (t Tile) ID() grid.ID {
	return t.id
}

// Disabled reports whether the tile can be pressed
func (t Tile) Disabled() bool {
	return t.disabled
}

// Key returns the tile key
func (t Tile) Key() string {
	return t.key
}

// Label returns the tile label
func (t Tile) Label() string {
	return t.label
}

// Detail returns the secondary text
func (t Tile) Detail() string {
	return t.detail
}

// Layout is a loaded table of tiles
type Layout struct {
	Name   string
	Path   string
	Rows   [][]Tile
	hidden []bool
}

// IsHidden reports whether a row is marked hidden
func (l *Layout) IsHidden(row int) bool {
	if row < 0 || row >= len(l.hidden) {
		return false
	}
	return l.hidden[row]
}

// HiddenCount returns the number of hidden rows
func (l *Layout) HiddenCount() int {
	count := 0
	for _, h := range l.hidden {
		if h {
			count++
		}
	}
	return count
}

// TileCount returns the number of tiles in all rows
func (l *Layout) TileCount() int {
	count := 0
	for _, row := range l.Rows {
		count += len(row)
	}
	return count
}

// splitLabel splits "label\ndetail" text from a spreadsheet cell
func splitLabel(text string) (string, string) {
	label, detail, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(label), strings.TrimSpace(detail)
}

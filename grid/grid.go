// Package grid provides a focus-navigable grid of cells for Bubble Tea
// programs. The grid tracks which cell has focus, moves the focus with
// row-length aware clamping and composes a render tree whose styling is
// delegated to caller-supplied callbacks.
package grid

import (
	"errors"
	"fmt"
	"log/slog"
)

// DefaultGridSize returns the viewport size used when no grid size is configured
func DefaultGridSize() Vec2[int] {
	return Vec2[int]{X: 80, Y: 24}
}

var (
	// ErrEmpty is returned when the grid has no rows
	ErrEmpty = errors.New("grid has no cells")

	// ErrOutOfBounds is returned for positions outside the table
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Disabler is implemented by cells that can be disabled
type Disabler interface {
	Disabled() bool
}

// Grid owns a jagged table of cells and the focused position
type Grid[C Cell] struct {
	locations [][]C
	position  Position

	// pressed marks the last pressed cell until the focus moves
	pressed    Position
	hasPressed bool

	tileSize    Vec2[int]
	spacing     Vec2[int]
	padding     int
	buttonInset int
	gridSize    *Vec2[int]

	containerStyle ContainerStyleFunc[C]
	buttonStyle    ButtonStyleFunc[C]
	culling        CullingFunc[C]

	theme    Theme
	scrollID ID
	logger   *slog.Logger
}

// New creates an empty grid
func New[C Cell]() *Grid[C] {
	return &Grid[C]{
		locations: make([][]C, 0),
		position:  Zero(),
		theme:     DefaultTheme(),
		scrollID:  NewID(),
		logger:    slog.Default(),
	}
}

// WithLocations sets the table of cells. The position is not touched.
func (g *Grid[C]) WithLocations(locations [][]C) *Grid[C] {
	g.locations = locations
	return g
}

// WithTileSize sets the tile width and height
func (g *Grid[C]) WithTileSize(size int) *Grid[C] {
	return g.WithXTileSize(size).WithYTileSize(size)
}

// WithXTileSize sets the tile width
func (g *Grid[C]) WithXTileSize(width int) *Grid[C] {
	g.tileSize.X = nonNegative(width)
	return g
}

// WithYTileSize sets the tile height
func (g *Grid[C]) WithYTileSize(height int) *Grid[C] {
	g.tileSize.Y = nonNegative(height)
	return g
}

// WithSpacing sets the gap between columns and between rows
func (g *Grid[C]) WithSpacing(spacing int) *Grid[C] {
	return g.WithXSpacing(spacing).WithYSpacing(spacing)
}

// WithXSpacing sets the gap between columns
func (g *Grid[C]) WithXSpacing(spacing int) *Grid[C] {
	g.spacing.X = nonNegative(spacing)
	return g
}

// WithYSpacing sets the gap between rows
func (g *Grid[C]) WithYSpacing(spacing int) *Grid[C] {
	g.spacing.Y = nonNegative(spacing)
	return g
}

// WithPadding sets the padding around the whole grid
func (g *Grid[C]) WithPadding(padding int) *Grid[C] {
	g.padding = nonNegative(padding)
	return g
}

// WithButtonInset sets the space kept free on each side of the pressable
// inside its tile
func (g *Grid[C]) WithButtonInset(inset int) *Grid[C] {
	g.buttonInset = nonNegative(inset)
	return g
}

// WithGridSize fixes the viewport size
func (g *Grid[C]) WithGridSize(size Vec2[int]) *Grid[C] {
	size.X = nonNegative(size.X)
	size.Y = nonNegative(size.Y)
	g.gridSize = &size
	return g
}

// WithoutGridSize falls back to DefaultGridSize
func (g *Grid[C]) WithoutGridSize() *Grid[C] {
	g.gridSize = nil
	return g
}

// WithContainerStyle sets the tile style callback. Nil restores the default.
func (g *Grid[C]) WithContainerStyle(fn ContainerStyleFunc[C]) *Grid[C] {
	g.containerStyle = fn
	return g
}

// WithButtonStyle sets the pressable style callback. Nil restores the default.
func (g *Grid[C]) WithButtonStyle(fn ButtonStyleFunc[C]) *Grid[C] {
	g.buttonStyle = fn
	return g
}

// WithCulling sets the row culling callback. Nil renders every row.
func (g *Grid[C]) WithCulling(fn CullingFunc[C]) *Grid[C] {
	g.culling = fn
	return g
}

// WithTheme sets the palette passed to style callbacks
func (g *Grid[C]) WithTheme(theme Theme) *Grid[C] {
	g.theme = theme
	return g
}

// WithLogger sets the diagnostics logger
func (g *Grid[C]) WithLogger(logger *slog.Logger) *Grid[C] {
	if logger == nil {
		logger = slog.Default()
	}
	g.logger = logger
	return g
}

// Locations returns the table of cells
func (g *Grid[C]) Locations() [][]C {
	return g.locations
}

// Len returns the number of rows
func (g *Grid[C]) Len() int {
	return len(g.locations)
}

// RowLen returns the number of cells in a row, or 0 for unknown rows
func (g *Grid[C]) RowLen(row int) int {
	if row < 0 || row >= len(g.locations) {
		return 0
	}
	return len(g.locations[row])
}

// At returns the cell at a position
func (g *Grid[C]) At(p Position) (C, bool) {
	var zero C
	if p.Y < 0 || p.Y >= len(g.locations) || p.X < 0 || p.X >= len(g.locations[p.Y]) {
		return zero, false
	}
	return g.locations[p.Y][p.X], true
}

// Position returns the focused position
func (g *Grid[C]) Position() Position {
	return g.position
}

// Focused returns the cell under focus. It panics when the position
// invariant does not hold.
func (g *Grid[C]) Focused() C {
	g.mustBeValid()
	return g.locations[g.position.Y][g.position.X]
}

// Pressed returns the last pressed position, cleared by the next move
func (g *Grid[C]) Pressed() (Position, bool) {
	return g.pressed, g.hasPressed
}

// TileSize returns the tile width and height
func (g *Grid[C]) TileSize() Vec2[int] {
	return g.tileSize
}

// Spacing returns the column and row gaps
func (g *Grid[C]) Spacing() Vec2[int] {
	return g.spacing
}

// Padding returns the outer padding
func (g *Grid[C]) Padding() int {
	return g.padding
}

// ButtonInset returns the space around each pressable
func (g *Grid[C]) ButtonInset() int {
	return g.buttonInset
}

// GridSize returns the fixed viewport size, if any
func (g *Grid[C]) GridSize() (Vec2[int], bool) {
	if g.gridSize == nil {
		return Vec2[int]{}, false
	}
	return *g.gridSize, true
}

// ViewportSize returns the fixed viewport size or DefaultGridSize
func (g *Grid[C]) ViewportSize() Vec2[int] {
	if size, ok := g.GridSize(); ok {
		return size
	}
	return DefaultGridSize()
}

// ScrollID returns the identity of the scroll region. It never changes.
func (g *Grid[C]) ScrollID() ID {
	return g.scrollID
}

// Theme returns the palette
func (g *Grid[C]) Theme() Theme {
	return g.theme
}

// SetLocations replaces the table and clamps the focus into it
func (g *Grid[C]) SetLocations(locations [][]C) {
	g.locations = locations
	g.hasPressed = false
	g.position = g.clamp(g.position)
}

// SetPosition focuses the cell at p
func (g *Grid[C]) SetPosition(p Position) error {
	if len(g.locations) == 0 {
		return ErrEmpty
	}
	if _, ok := g.At(p); !ok {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	g.position = p
	return nil
}

// Validate reports whether the focused position lies inside the table
func (g *Grid[C]) Validate() error {
	if len(g.locations) == 0 {
		return ErrEmpty
	}
	if _, ok := g.At(g.position); !ok {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, g.position)
	}
	return nil
}

// Find returns the position of the cell with the given identity
func (g *Grid[C]) Find(id ID) (Position, bool) {
	for y, row := range g.locations {
		for x, cell := range row {
			if cell.ID() == id {
				return NewPosition(x, y), true
			}
		}
	}
	return Position{}, false
}

// clamp moves p to the nearest valid position. Empty rows are skipped
// upwards, then downwards.
func (g *Grid[C]) clamp(p Position) Position {
	if len(g.locations) == 0 {
		return Zero()
	}
	p.Y = clampInt(p.Y, 0, len(g.locations)-1)
	for y := p.Y; y >= 0; y-- {
		if n := len(g.locations[y]); n > 0 {
			return Position{X: clampInt(p.X, 0, n-1), Y: y}
		}
	}
	for y := p.Y + 1; y < len(g.locations); y++ {
		if n := len(g.locations[y]); n > 0 {
			return Position{X: clampInt(p.X, 0, n-1), Y: y}
		}
	}
	return Zero()
}

// mustBeValid panics when the host broke the position invariant
func (g *Grid[C]) mustBeValid() {
	if err := g.Validate(); err != nil {
		panic(fmt.Sprintf("grid: %v", err))
	}
}

func disabled(cell Cell) bool {
	d, ok := cell.(Disabler)
	return ok && d.Disabled()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

package grid

import "fmt"

// Vec2 is a generic two-component vector
type Vec2[T any] struct {
	X T
	Y T
}

// NewVec2 creates a vector from its two components
func NewVec2[T any](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Position is a cell coordinate in the grid: X is the column, Y is the row
type Position struct {
	X int
	Y int
}

// NewPosition creates a position from a column and a row
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Zero returns the origin position
func Zero() Position {
	return Position{}
}

// Equal reports whether both coordinates match
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// String renders the position as "[x: 1, y: 0]"
func (p Position) String() string {
	return fmt.Sprintf("[x: %d, y: %d]", p.X, p.Y)
}

// Vec2 converts the position to a vector
func (p Position) Vec2() Vec2[int] {
	return Vec2[int]{X: p.X, Y: p.Y}
}

// PositionFromVec2 converts a vector to a position
func PositionFromVec2(v Vec2[int]) Position {
	return Position{X: v.X, Y: v.Y}
}

// Transition is the pair of positions before and after a move
type Transition struct {
	From Position
	To   Position
}

// Moved reports whether the move changed the focus
func (t Transition) Moved() bool {
	return !t.From.Equal(t.To)
}

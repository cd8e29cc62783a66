package grid

import (
	"fmt"
	"strings"
)

// Direction is a focus movement direction
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns a human-readable name for the direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// IsVertical returns true for Up and Down
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// IsHorizontal returns true for Left and Right
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// ParseDirection parses a direction name, case-insensitively
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

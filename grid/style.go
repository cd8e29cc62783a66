package grid

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Status is the interaction state of a pressable cell
type Status int

const (
	StatusActive Status = iota
	StatusFocused
	StatusPressed
	StatusDisabled
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFocused:
		return "focused"
	case StatusPressed:
		return "pressed"
	case StatusDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Theme is the palette handed to style callbacks
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Danger     lipgloss.Color
}

// DefaultTheme returns the default palette
func DefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: lipgloss.Color("235"),
		Foreground: lipgloss.Color("255"),
		Primary:    lipgloss.Color("86"),  // Green
		Secondary:  lipgloss.Color("239"), // Grey
		Muted:      lipgloss.Color("243"),
		Danger:     lipgloss.Color("196"),
	}
}

// ThemeByName returns a built-in theme. Unknown names get the default theme.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "mono":
		return Theme{
			Name:       "mono",
			Background: lipgloss.Color("0"),
			Foreground: lipgloss.Color("15"),
			Primary:    lipgloss.Color("15"),
			Secondary:  lipgloss.Color("8"),
			Muted:      lipgloss.Color("7"),
			Danger:     lipgloss.Color("15"),
		}
	case "ocean":
		return Theme{
			Name:       "ocean",
			Background: lipgloss.Color("17"),
			Foreground: lipgloss.Color("231"),
			Primary:    lipgloss.Color("39"),
			Secondary:  lipgloss.Color("24"),
			Muted:      lipgloss.Color("67"),
			Danger:     lipgloss.Color("203"),
		}
	default:
		return DefaultTheme()
	}
}

// DefaultContainerStyle is used for tiles when no container callback is set
func DefaultContainerStyle() lipgloss.Style {
	return lipgloss.NewStyle()
}

// DefaultButtonStyle is used for pressables when no button callback is set
func DefaultButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle()
}

// ContainerStyleFunc resolves the style of the tile at column x, row y
type ContainerStyleFunc[C Cell] func(g *Grid[C], x, y int, theme Theme, cell C) lipgloss.Style

// ButtonStyleFunc resolves the style of the pressable at column x, row y
type ButtonStyleFunc[C Cell] func(g *Grid[C], x, y int, theme Theme, status Status, cell C) lipgloss.Style

// CullingFunc reports whether a row should be rendered
type CullingFunc[C Cell] func(g *Grid[C], row int) bool

// MoveFunc is called after a focus move with the cell now under focus.
// The returned command is handed to the host, never run by the grid.
type MoveFunc[C Cell] func(g *Grid[C], dir Direction, cell C, t Transition) tea.Cmd

package tui

import "github.com/young1lin/tilegrid/grid"

// DefaultRenderTarget is the terminal size layouts are designed for
var DefaultRenderTarget = grid.Vec2[int]{X: 80, Y: 24}

// Environment describes the terminal the grid is drawn into
type Environment struct {
	WindowSize   grid.Vec2[int]
	RenderTarget grid.Vec2[int]
}

// NewEnvironment returns an environment whose window matches the render target
func NewEnvironment() Environment {
	return Environment{
		WindowSize:   DefaultRenderTarget,
		RenderTarget: DefaultRenderTarget,
	}
}

// WithWindowSize returns a copy with the window resized
func (e Environment) WithWindowSize(width, height int) Environment {
	e.WindowSize = grid.Vec2[int]{X: width, Y: height}
	return e
}

// ScaleFactor is the smaller of the horizontal and vertical ratios between
// the window and the render target
func (e Environment) ScaleFactor() float64 {
	if e.RenderTarget.X <= 0 || e.RenderTarget.Y <= 0 {
		return 1
	}
	x := float64(e.WindowSize.X) / float64(e.RenderTarget.X)
	y := float64(e.WindowSize.Y) / float64(e.RenderTarget.Y)
	return min(x, y)
}

// Viewport returns the area left for the grid after reserving chrome lines
// and the grid's padding on every side
func (e Environment) Viewport(chrome, padding int) grid.Vec2[int] {
	return grid.Vec2[int]{
		X: max(1, e.WindowSize.X-2*padding),
		Y: max(1, e.WindowSize.Y-chrome-2*padding),
	}
}

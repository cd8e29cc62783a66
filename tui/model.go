package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/young1lin/tilegrid/grid"
	"github.com/young1lin/tilegrid/internal/layout"
	"github.com/young1lin/tilegrid/internal/store"
)

// chromeHeight is the number of lines drawn around the grid
const chromeHeight = 3

// PressRecorder stores tile presses
type PressRecorder interface {
	RecordPress(record store.PressRecord) error
}

// FocusSaver stores the focused position of a layout
type FocusSaver interface {
	SaveFocus(layout string, pos grid.Position) error
}

// Options configures a Model
type Options struct {
	Theme      grid.Theme
	TileSize   grid.Vec2[int]
	Spacing    grid.Vec2[int]
	Padding    int
	Inset      int
	ShowHidden bool
	Mouse      bool
	History    int
	Keys       KeyMap
	Recorder   PressRecorder
	Focus      FocusSaver
	Logger     *slog.Logger
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Theme:    grid.DefaultTheme(),
		TileSize: grid.Vec2[int]{X: 14, Y: 5},
		Spacing:  grid.Vec2[int]{X: 1, Y: 1},
		Padding:  1,
		Inset:    1,
		Mouse:    true,
		History:  5,
		Keys:     DefaultKeyMap(),
	}
}

// hostState is shared by the model and the grid callbacks
type hostState struct {
	layout     *layout.Layout
	showHidden bool
}

// Model represents the application state
type Model struct {
	grid     *grid.Grid[layout.Tile]
	offsets  *grid.Offsets
	renderer *grid.Renderer
	zones    *zone.Manager
	state    *hostState

	env    Environment
	keys   KeyMap
	help   help.Model
	styles Styles

	recorder PressRecorder
	focus    FocusSaver
	logger   *slog.Logger

	// Content size of the scroll region
	bounds grid.Vec2[int]

	// History
	lastPress    string
	history      []store.PressRecord
	historyLimit int

	// Messages delivered by Init
	startup []tea.Msg

	// State
	ready    bool
	quitting bool

	// Error state
	err error
}

// NewModel creates a new Model from options
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	state := &hostState{showHidden: opts.ShowHidden}
	offsets := grid.NewOffsets()
	renderer := grid.NewRenderer(offsets)

	var zones *zone.Manager
	if opts.Mouse {
		zones = zone.New()
		renderer.WithZones(zones)
	}

	env := NewEnvironment()
	g := grid.New[layout.Tile]().
		WithXTileSize(opts.TileSize.X).
		WithYTileSize(opts.TileSize.Y).
		WithXSpacing(opts.Spacing.X).
		WithYSpacing(opts.Spacing.Y).
		WithPadding(opts.Padding).
		WithButtonInset(opts.Inset).
		WithGridSize(env.Viewport(chromeHeight, opts.Padding)).
		WithTheme(opts.Theme).
		WithContainerStyle(tileStyle).
		WithButtonStyle(pressableStyle).
		WithCulling(state.shouldRenderRow).
		WithLogger(logger)

	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	return Model{
		grid:         g,
		offsets:      offsets,
		renderer:     renderer,
		zones:        zones,
		state:        state,
		env:          env,
		keys:         keys,
		help:         help.New(),
		styles:       StylesFor(opts.Theme),
		recorder:     opts.Recorder,
		focus:        opts.Focus,
		logger:       logger,
		history:      make([]store.PressRecord, 0, opts.History),
		historyLimit: opts.History,
	}
}

// shouldRenderRow culls hidden layout rows unless they are shown
func (s *hostState) shouldRenderRow(_ *grid.Grid[layout.Tile], row int) bool {
	if s.showHidden || s.layout == nil {
		return true
	}
	return !s.layout.IsHidden(row)
}

// WithStartup queues messages that Init delivers when the program starts
func (m Model) WithStartup(msgs ...tea.Msg) Model {
	m.startup = append(m.startup, msgs...)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	switch len(m.startup) {
	case 0:
		return nil
	case 1:
		msg := m.startup[0]
		return func() tea.Msg { return msg }
	}
	cmds := make([]tea.Cmd, 0, len(m.startup))
	for _, msg := range m.startup {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return tea.Sequence(cmds...)
}

// Grid returns the embedded grid
func (m Model) Grid() *grid.Grid[layout.Tile] {
	return m.grid
}

// Layout returns the loaded layout, or nil
func (m Model) Layout() *layout.Layout {
	return m.state.layout
}

// Environment returns the terminal environment
func (m Model) Environment() Environment {
	return m.env
}

// Offsets returns the scroll offsets
func (m Model) Offsets() *grid.Offsets {
	return m.offsets
}

// ShowHidden reports whether hidden rows are drawn
func (m Model) ShowHidden() bool {
	return m.state.showHidden
}

// History returns the newest presses first
func (m Model) History() []store.PressRecord {
	return m.history
}

// Err returns the last error
func (m Model) Err() error {
	return m.err
}

// hasCells reports whether navigation can run
func (m Model) hasCells() bool {
	return m.state.layout != nil && m.grid.Validate() == nil
}

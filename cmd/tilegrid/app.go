package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tilegrid/grid"
	"github.com/young1lin/tilegrid/internal/config"
	"github.com/young1lin/tilegrid/internal/layout"
	"github.com/young1lin/tilegrid/internal/logging"
	"github.com/young1lin/tilegrid/internal/store"
	"github.com/young1lin/tilegrid/internal/watch"
	"github.com/young1lin/tilegrid/tui"
)

// ErrNoLayout is returned when no layout file was given
var ErrNoLayout = errors.New("no layout file given")

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	Config         config.Config
	LayoutLoader   func(path, sheet string) (*layout.Layout, error)
	DBOpener       func(string) (*store.DB, error)
	WatcherCreator func(string) (watch.WatcherInterface, error)
	ProgramRunner  func(*tea.Program) error
	LoggerOpener   func(path, level string) (*slog.Logger, io.Closer, error)
}

// defaultDependencies wires the real implementations
func defaultDependencies(cfg config.Config) *AppDependencies {
	return &AppDependencies{
		Config:       cfg,
		LayoutLoader: loadLayout,
		DBOpener:     store.Open,
		WatcherCreator: func(path string) (watch.WatcherInterface, error) {
			return watch.NewWatcher(path)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
		LoggerOpener: logging.OpenFile,
	}
}

// loadLayout reads a layout from disk
func loadLayout(path, sheet string) (*layout.Layout, error) {
	return layout.NewLoader().WithSheet(sheet).Load(path)
}

func run(deps *AppDependencies) error {
	cfg := deps.Config
	if cfg.Layout == "" {
		return ErrNoLayout
	}

	// Log to a file so the terminal stays with the TUI
	logger := logging.Discard()
	if deps.LoggerOpener != nil {
		l, closer, err := deps.LoggerOpener(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer closer.Close()
		logger = l
	}
	ctx := logging.PackageCtx("main")

	// Load layout
	l, err := deps.LayoutLoader(cfg.Layout, cfg.Sheet)
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}
	logger.InfoContext(ctx, "layout loaded", "path", cfg.Layout, "name", l.Name, "tiles", l.TileCount())

	// Open database
	db, err := deps.DBOpener(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	startup := []tea.Msg{loadedMsg(ctx, logger, db, l, cfg.Restore)}

	// Load history
	presses, err := db.RecentPresses(l.Name, cfg.History)
	if err != nil {
		// Warning, not fatal
		logger.WarnContext(ctx, "failed to load press history", "error", err)
	} else {
		startup = append(startup, tui.HistoryLoadedMsg{Presses: presses})
	}

	// Create TUI model
	opts := tui.DefaultOptions()
	opts.Theme = grid.ThemeByName(cfg.Theme)
	opts.TileSize = grid.Vec2[int]{X: cfg.TileWidth, Y: cfg.TileHeight}
	opts.Spacing = grid.Vec2[int]{X: cfg.SpacingX, Y: cfg.SpacingY}
	opts.Padding = cfg.Padding
	opts.Inset = cfg.Inset
	opts.ShowHidden = cfg.ShowHidden
	opts.Mouse = cfg.Mouse
	opts.History = cfg.History
	opts.Recorder = db
	opts.Focus = db
	opts.Logger = logger
	model := tui.NewModel(opts).WithStartup(startup...)

	// Create program options
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)

	// Start file watcher
	if cfg.Watch && deps.WatcherCreator != nil {
		watcher, err := deps.WatcherCreator(cfg.Layout)
		if err != nil {
			logger.WarnContext(ctx, "failed to watch layout", "path", cfg.Layout, "error", err)
		} else {
			defer watcher.Close()
			reload := func() tea.Msg {
				fresh, err := deps.LayoutLoader(cfg.Layout, cfg.Sheet)
				if err != nil {
					return tui.LayoutFailedMsg{Err: err}
				}
				return tui.LayoutLoadedMsg{Layout: fresh}
			}
			go runWatchLoop(ctx, p, watcher, reload, logger)
		}
	}

	// Run the program
	return deps.ProgramRunner(p)
}

// loadedMsg builds the initial layout message with the saved focus
func loadedMsg(ctx context.Context, logger *slog.Logger, db *store.DB, l *layout.Layout, restore bool) tui.LayoutLoadedMsg {
	msg := tui.LayoutLoadedMsg{Layout: l}
	if !restore {
		return msg
	}

	pos, ok, err := db.LoadFocus(l.Name)
	if err != nil {
		logger.WarnContext(ctx, "failed to load saved focus", "error", err)
		return msg
	}
	if ok {
		msg.Focus = &pos
	}
	return msg
}

// runWatchLoop reloads the layout every time the watcher reports a change
func runWatchLoop(ctx context.Context, sender ProgramSender, watcher watch.WatcherInterface, reload func() tea.Msg, logger *slog.Logger) {
	for {
		select {
		case _, ok := <-watcher.Changes():
			if !ok {
				return
			}
			msg := reload()
			if failed, isErr := msg.(tui.LayoutFailedMsg); isErr {
				logger.WarnContext(ctx, "layout reload failed", "error", failed.Err)
			} else {
				logger.InfoContext(ctx, "layout reloaded")
			}
			sender.Send(msg)

		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			logger.ErrorContext(ctx, "watcher error", "error", err)
		}
	}
}

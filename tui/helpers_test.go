package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tilegrid/grid"
	"github.com/young1lin/tilegrid/internal/layout"
	"github.com/young1lin/tilegrid/internal/store"
)

// fakeStore records presses and focus in memory
type fakeStore struct {
	presses []store.PressRecord
	focus   map[string]grid.Position
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{focus: make(map[string]grid.Position)}
}

func (s *fakeStore) RecordPress(record store.PressRecord) error {
	if s.err != nil {
		return s.err
	}
	s.presses = append(s.presses, record)
	return nil
}

func (s *fakeStore) SaveFocus(name string, pos grid.Position) error {
	if s.err != nil {
		return s.err
	}
	s.focus[name] = pos
	return nil
}

var errStore = errors.New("store unavailable")

// testLayout has a hidden middle row and a disabled tile
func testLayout(t *testing.T) *layout.Layout {
	t.Helper()
	l, err := layout.Build(layout.Document{
		Name: "test",
		Rows: []layout.RowDef{
			{Tiles: []layout.TileDef{{Key: "a", Label: "Alpha"}, {Key: "b", Label: "Bravo"}, {Key: "c", Label: "Charlie"}}},
			{Hidden: true, Tiles: []layout.TileDef{{Key: "d", Label: "Delta"}}},
			{Tiles: []layout.TileDef{{Key: "e", Label: "Echo"}, {Key: "f", Label: "Foxtrot", Disabled: true}}},
		},
	})
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}
	return l
}

// tallLayout has one tile per row
func tallLayout(t *testing.T, rows int) *layout.Layout {
	t.Helper()
	doc := layout.Document{Name: "tall"}
	for i := 0; i < rows; i++ {
		doc.Rows = append(doc.Rows, layout.RowDef{Tiles: []layout.TileDef{{Label: "row"}}})
	}
	l, err := layout.Build(doc)
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}
	return l
}

func testOptions(s *fakeStore) Options {
	opts := DefaultOptions()
	opts.Mouse = false
	opts.Logger = nil
	if s != nil {
		opts.Recorder = s
		opts.Focus = s
	}
	return opts
}

// loadedModel returns a model that received l
func loadedModel(t *testing.T, opts Options, l *layout.Layout) Model {
	t.Helper()
	return update(t, NewModel(opts), LayoutLoadedMsg{Layout: l})
}

// update runs one message through the model and drops the command
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model
}

// collect runs cmd and flattens batches into their messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// find returns the first message of type T
func find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

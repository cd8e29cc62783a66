package tui

import (
	"github.com/young1lin/tilegrid/grid"
	"github.com/young1lin/tilegrid/internal/layout"
	"github.com/young1lin/tilegrid/internal/store"
)

// LayoutLoadedMsg is sent when a layout was read, initially or after a change
type LayoutLoadedMsg struct {
	Layout *layout.Layout
	// Focus is the position to restore, if one was saved
	Focus *grid.Position
}

// LayoutFailedMsg is sent when a layout could not be read
type LayoutFailedMsg struct {
	Err error
}

// HistoryLoadedMsg is sent when the press history is loaded
type HistoryLoadedMsg struct {
	Presses []store.PressRecord
}

// PressRecordedMsg is sent after a press was stored
type PressRecordedMsg struct {
	Record store.PressRecord
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

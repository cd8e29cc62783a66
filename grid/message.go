package grid

import tea "github.com/charmbracelet/bubbletea"

// Msg is the closed set of signals a grid sends to its host.
// Every value is also a tea.Msg.
type Msg interface {
	gridMsg()
}

// ButtonPressedMsg is sent when the cell at Position is pressed
type ButtonPressedMsg struct {
	Position Position
}

// EventMsg passes a raw terminal event through to the host
type EventMsg struct {
	Event tea.Msg
}

// ItemSelectedMsg is sent when a cell is selected by identity
type ItemSelectedMsg struct {
	ID ID
}

// BoundsFoundMsg reports the measured size of a region
type BoundsFoundMsg struct {
	ID     ID
	Width  int
	Height int
}

// ScrollUpdatedMsg is sent when a scroll region moves to a new line offset
type ScrollUpdatedMsg struct {
	ID     ID
	Offset int
}

// NavigateMsg requests a focus move
type NavigateMsg struct {
	Direction Direction
}

// SelectMsg requests activation of the focused cell
type SelectMsg struct{}

// BackMsg requests leaving the grid
type BackMsg struct{}

// CustomMsg carries an application-defined payload
type CustomMsg[T any] struct {
	Payload T
}

// NilMsg is the no-op signal
type NilMsg struct{}

func (ButtonPressedMsg) gridMsg() {}
func (EventMsg) gridMsg()         {}
func (ItemSelectedMsg) gridMsg()  {}
func (BoundsFoundMsg) gridMsg()   {}
func (ScrollUpdatedMsg) gridMsg() {}
func (NavigateMsg) gridMsg()      {}
func (SelectMsg) gridMsg()        {}
func (BackMsg) gridMsg()          {}
func (CustomMsg[T]) gridMsg()     {}
func (NilMsg) gridMsg()           {}

// Send wraps a message in a command
func Send(msg Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

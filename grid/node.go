package grid

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Kind identifies the type of a render tree node
type Kind int

const (
	KindButton Kind = iota
	KindContainer
	KindRow
	KindColumn
	KindScrollable
	KindPadding
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindContainer:
		return "container"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindScrollable:
		return "scrollable"
	case KindPadding:
		return "padding"
	default:
		return "unknown"
	}
}

// Node is an element of a composed render tree
type Node interface {
	Kind() Kind
	Children() []Node
}

// Button is a pressable holding the interior of a cell.
// A zero Width or Height leaves that axis at its natural size.
type Button struct {
	Content string
	Width   int
	Height  int
	Status  Status
	Style   lipgloss.Style

	// OnPress is emitted when the button is clicked; nil disables it
	OnPress tea.Msg
}

// Container is a tile: a box of fixed size that centers its child
type Container struct {
	ID     ID
	Width  int
	Height int
	Style  lipgloss.Style
	Child  Node
}

// Row lays out items left to right
type Row struct {
	Spacing int
	Items   []Node
}

// Column stacks items top to bottom
type Column struct {
	Spacing int
	Items   []Node
}

// Scrollable is a viewport of fixed size over its child
type Scrollable struct {
	ID     ID
	Width  int
	Height int
	Child  Node
}

// Padding surrounds its child with blank space
type Padding struct {
	Padding int
	Child   Node
}

func (Button) Kind() Kind     { return KindButton }
func (Container) Kind() Kind  { return KindContainer }
func (Row) Kind() Kind        { return KindRow }
func (Column) Kind() Kind     { return KindColumn }
func (Scrollable) Kind() Kind { return KindScrollable }
func (Padding) Kind() Kind    { return KindPadding }

func (Button) Children() []Node       { return nil }
func (c Container) Children() []Node  { return single(c.Child) }
func (r Row) Children() []Node        { return r.Items }
func (c Column) Children() []Node     { return c.Items }
func (s Scrollable) Children() []Node { return single(s.Child) }
func (p Padding) Children() []Node    { return single(p.Child) }

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of that node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, fn)
	}
}

func single(n Node) []Node {
	if n == nil {
		return nil
	}
	return []Node{n}
}

package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
)

// ellipsis marks cell text cut at the edge of its button
const ellipsis = "…"

// Renderer turns a render tree into terminal output.
// Scroll regions are drawn at the offsets held in Offsets. With a zone
// manager attached, every line of a pressable is marked so that mouse clicks
// can be resolved back to its press message.
type Renderer struct {
	offsets *Offsets
	zones   *zone.Manager
	prefix  string

	// presses maps zone ids marked by the last Render to press messages
	presses map[string]tea.Msg
	order   []string
	marked  int
}

// NewRenderer creates a renderer reading scroll positions from offsets.
// A nil offsets renders every scroll region at the top.
func NewRenderer(offsets *Offsets) *Renderer {
	if offsets == nil {
		offsets = NewOffsets()
	}
	return &Renderer{
		offsets: offsets,
		presses: make(map[string]tea.Msg),
	}
}

// WithZones enables mouse hit-testing through a bubblezone manager.
// The host must pass its final view through the manager's Scan.
func (r *Renderer) WithZones(m *zone.Manager) *Renderer {
	r.zones = m
	if m != nil {
		r.prefix = m.NewPrefix()
	}
	return r
}

// Offsets returns the scroll offsets used by the renderer
func (r *Renderer) Offsets() *Offsets {
	return r.offsets
}

// Render draws the tree
func (r *Renderer) Render(n Node) string {
	r.presses = make(map[string]tea.Msg)
	r.order = r.order[:0]
	r.marked = 0
	return r.render(n)
}

// Resolve returns the press message of the button under a mouse click
func (r *Renderer) Resolve(msg tea.MouseMsg) (tea.Msg, bool) {
	if r.zones == nil {
		return nil, false
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil, false
	}
	for _, id := range r.order {
		info := r.zones.Get(id)
		if info != nil && info.InBounds(msg) {
			return r.presses[id], true
		}
	}
	return nil, false
}

func (r *Renderer) render(n Node) string {
	switch n := n.(type) {
	case Button:
		return r.renderButton(n)
	case Container:
		return r.renderContainer(n)
	case Row:
		return r.renderRow(n)
	case Column:
		return r.renderColumn(n)
	case Scrollable:
		return r.renderScrollable(n)
	case Padding:
		return lipgloss.NewStyle().Padding(n.Padding).Render(r.render(n.Child))
	case nil:
		return ""
	default:
		panic(fmt.Sprintf("grid: cannot render %T", n))
	}
}

func (r *Renderer) renderButton(b Button) string {
	style := b.Style
	textWidth, textHeight := 0, 0

	if b.Width > 0 {
		w := nonNegative(b.Width - style.GetHorizontalBorderSize() - style.GetHorizontalMargins())
		textWidth = nonNegative(w - style.GetHorizontalPadding())
		style = style.Width(w).MaxWidth(b.Width)
	}
	if b.Height > 0 {
		h := nonNegative(b.Height - style.GetVerticalBorderSize() - style.GetVerticalMargins())
		textHeight = nonNegative(h - style.GetVerticalPadding())
		style = style.Height(h).MaxHeight(b.Height)
	}

	out := style.Render(fit(b.Content, textWidth, textHeight))

	if r.zones != nil && b.OnPress != nil {
		out = r.mark(out, b.OnPress)
	}

	return out
}

// mark zones each line of a button on its own; scroll regions crop by line
func (r *Renderer) mark(out string, press tea.Msg) string {
	button := r.marked
	r.marked++

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		id := fmt.Sprintf("%s%d.%d", r.prefix, button, i)
		r.order = append(r.order, id)
		r.presses[id] = press
		lines[i] = r.zones.Mark(id, line)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderContainer(c Container) string {
	style := c.Style.Align(lipgloss.Center, lipgloss.Center)

	if c.Width > 0 {
		w := nonNegative(c.Width - style.GetHorizontalBorderSize() - style.GetHorizontalMargins())
		style = style.Width(w).MaxWidth(c.Width)
	}
	if c.Height > 0 {
		h := nonNegative(c.Height - style.GetVerticalBorderSize() - style.GetVerticalMargins())
		style = style.Height(h).MaxHeight(c.Height)
	}

	return style.Render(r.render(c.Child))
}

func (r *Renderer) renderRow(row Row) string {
	gap := strings.Repeat(" ", row.Spacing)
	parts := make([]string, 0, len(row.Items)*2)
	for i, item := range row.Items {
		if i > 0 && gap != "" {
			parts = append(parts, gap)
		}
		parts = append(parts, r.render(item))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) renderColumn(col Column) string {
	parts := make([]string, 0, len(col.Items)*2)
	for i, item := range col.Items {
		if i > 0 && col.Spacing > 0 {
			// n-1 newlines make n blank lines
			parts = append(parts, strings.Repeat("\n", col.Spacing-1))
		}
		parts = append(parts, r.render(item))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) renderScrollable(s Scrollable) string {
	vp := viewport.New(s.Width, s.Height)
	vp.SetContent(r.render(s.Child))
	vp.SetYOffset(r.offsets.Get(s.ID))
	return vp.View()
}

// fit truncates every line to width and keeps at most height lines.
// Zero means no limit.
func fit(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	if width > 0 {
		for i, line := range lines {
			if runewidth.StringWidth(line) > width {
				lines[i] = runewidth.Truncate(line, width, ellipsis)
			}
		}
	}
	return strings.Join(lines, "\n")
}

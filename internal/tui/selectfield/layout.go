package selectfield

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	"github.com/alexisbeaulieu97/dropdown/internal/ui/components"
)

type hitKind int

const (
	hitNone hitKind = iota
	hitLabel
	hitTrigger
	hitSearch
	hitTag
	hitTagRemove
	hitClear
	hitOption
	hitMenu
)

type hit struct {
	kind  hitKind
	id    dropdown.ID
	index int
}

// part is one rendered piece of the trigger line.
type part struct {
	view     string
	kind     hitKind
	id       dropdown.ID
	removeAt int
}

// geometry gives the rows of each region relative to the field origin.
type geometry struct {
	labelRows     int
	triggerTop    int
	triggerHeight int
	contentY      int
	contentX      int
	menuTop       int
	menuHeight    int
	rowsTop       int
	rows          int
}

func (m *Model) geometry() geometry {
	d := m.theme.Dropdown
	g := geometry{}
	if m.props.Label != "" {
		g.labelRows = 1
	}
	g.triggerTop = g.labelRows
	g.triggerHeight = 3 + 2*d.PaddingVertical
	g.contentY = g.triggerTop + 1 + d.PaddingVertical
	g.contentX = 1 + d.PaddingHorizontal
	if m.engine.IsOpen() {
		g.menuTop = g.triggerTop + g.triggerHeight
		g.rows = m.menuRowCount()
		g.rowsTop = g.menuTop + 1
		g.menuHeight = g.rows + 2
	}
	return g
}

// innerWidth is the trigger content width between border and padding.
func (m *Model) innerWidth() int {
	return max(m.width-2-2*m.theme.Dropdown.PaddingHorizontal, 1)
}

func (m *Model) listShown() bool {
	return !m.props.Loading && len(m.engine.Visible()) > 0
}

func (m *Model) menuRowCount() int {
	if !m.listShown() {
		return 1
	}
	return min(len(m.engine.Visible()), m.menuHeight)
}

func (m *Model) showClear() bool {
	if m.props.Loading || m.props.Disabled {
		return false
	}
	state := m.engine.State()
	return len(m.engine.Selected()) > 0 || (state.Open && m.props.Searchable && state.Search != "")
}

func (m *Model) showSearch() bool {
	return m.props.Searchable && (m.engine.IsOpen() || len(m.engine.Selected()) == 0)
}

func (m *Model) rightParts() []part {
	var parts []part
	if m.props.Loading {
		parts = append(parts, part{view: m.spinner.View(), kind: hitTrigger, removeAt: -1})
	}
	if m.showClear() {
		glyph := lipgloss.NewStyle().Foreground(m.theme.Dropdown.Placeholder).Render(components.RemoveGlyph)
		parts = append(parts, part{view: glyph, kind: hitClear, removeAt: -1})
	}
	chevron := "▾"
	if m.engine.IsOpen() {
		chevron = "▴"
	}
	parts = append(parts, part{view: chevron, kind: hitTrigger, removeAt: -1})
	return parts
}

func partsWidth(parts []part) int {
	width := 0
	for i, p := range parts {
		if i > 0 {
			width++
		}
		width += lipgloss.Width(p.view)
	}
	return width
}

// leftWidth is the room left of the icons, one cell of gap included.
func (m *Model) leftWidth() int {
	return max(m.innerWidth()-partsWidth(m.rightParts())-1, 1)
}

func (m *Model) leftParts() []part {
	width := m.leftWidth()
	selected := m.engine.Selected()
	label := m.engine.Props().Label

	switch {
	case m.showSearch():
		return []part{{view: fit(m.search.View(), width), kind: hitSearch, removeAt: -1}}

	case len(selected) == 0:
		text := components.NewText(m.placeholder()).
			WithMaxWidth(width).
			WithAppliers(components.DropdownPlaceholder())
		return []part{{view: text.ViewWithContext(m.renderContext()), kind: hitTrigger, removeAt: -1}}

	case m.props.MultiSelect:
		return m.tagParts(selected, label, width)

	default:
		text := components.NewText(label(selected[0])).WithMaxWidth(width)
		return []part{{view: text.ViewWithContext(m.renderContext()), kind: hitTrigger, removeAt: -1}}
	}
}

// tagParts lays tags out left to right and collapses whatever does not fit
// into a "+N" counter.
func (m *Model) tagParts(selected []dropdown.Option, label dropdown.LabelFunc, width int) []part {
	ctx := m.renderContext()
	parts := make([]part, 0, len(selected))
	used := 0

	for i, opt := range selected {
		gap := 0
		if i > 0 {
			gap = 1
		}

		tag := components.NewTag(label(opt)).WithRemovable(true).WithMaxWidth(max(width/2, 4))
		view := tag.ViewWithContext(ctx)
		w := tag.Width(ctx)

		rest := len(selected) - i - 1
		reserve := 0
		if rest > 0 {
			reserve = 1 + len("+"+strconv.Itoa(rest))
		}

		if used+gap+w+reserve > width {
			more := components.NewText("+" + strconv.Itoa(len(selected)-i)).
				WithMaxWidth(max(width-used-gap, 0)).
				WithAppliers(components.DropdownPlaceholder())
			if view := more.ViewWithContext(ctx); view != "" && used+gap < width {
				parts = append(parts, part{view: view, kind: hitTrigger, removeAt: -1})
			}
			break
		}

		parts = append(parts, part{view: view, kind: hitTag, id: opt.Value, removeAt: tag.RemoveOffset(ctx)})
		used += gap + w
	}

	return parts
}

func (m *Model) placeholder() string {
	if m.props.Placeholder != "" {
		return m.props.Placeholder
	}
	return defaultPlaceholder
}

// hitTest maps a point relative to the field origin to the region under it.
func (m *Model) hitTest(x, y int) hit {
	if x < 0 || x >= m.width || y < 0 {
		return hit{}
	}

	g := m.geometry()
	if g.labelRows == 1 && y == 0 {
		return hit{kind: hitLabel}
	}

	if y >= g.triggerTop && y < g.triggerTop+g.triggerHeight {
		if y == g.contentY {
			if h, ok := m.hitTriggerLine(x - g.contentX); ok {
				return h
			}
		}
		return hit{kind: hitTrigger}
	}

	if g.menuHeight > 0 && y >= g.menuTop && y < g.menuTop+g.menuHeight {
		row := y - g.rowsTop
		if m.listShown() && row >= 0 && row < g.rows {
			index := m.menu.YOffset + row
			if index < len(m.engine.Visible()) {
				return hit{kind: hitOption, index: index}
			}
		}
		return hit{kind: hitMenu}
	}

	return hit{}
}

func (m *Model) hitTriggerLine(cx int) (hit, bool) {
	if cx < 0 {
		return hit{}, false
	}

	pos := 0
	for _, p := range m.leftParts() {
		w := lipgloss.Width(p.view)
		if cx >= pos && cx < pos+w {
			if p.kind == hitTag && p.removeAt >= 0 && cx-pos == p.removeAt {
				return hit{kind: hitTagRemove, id: p.id}, true
			}
			return hit{kind: p.kind, id: p.id}, true
		}
		pos += w + 1
	}

	pos = m.leftWidth() + 1
	for _, p := range m.rightParts() {
		w := lipgloss.Width(p.view)
		if cx >= pos && cx < pos+w {
			return hit{kind: p.kind}, true
		}
		pos += w + 1
	}

	return hit{}, false
}

// contains reports whether a point relative to the origin lies on the field.
func (m *Model) contains(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 {
		return false
	}
	return y < m.Height()
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if lipgloss.Width(s) > width {
		s = lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

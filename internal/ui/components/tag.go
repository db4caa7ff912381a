package components

import (
	"github.com/charmbracelet/lipgloss"
)

// RemoveGlyph is drawn after a removable tag's label.
const RemoveGlyph = "×"

// Tag is a chip showing one selected value, with an optional remove glyph.
type Tag struct {
	BaseComponent
	label     string
	removable bool
	maxWidth  int
}

// NewTag creates a tag styled as a multi-select chip.
func NewTag(label string) *Tag {
	t := &Tag{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
	t.SetAppliers(DropdownTag())
	return t
}

// View renders with the default context.
func (t *Tag) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the tag.
func (t *Tag) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content())
}

func (t *Tag) content() string {
	label := Truncate(t.label, t.maxWidth)
	if t.removable {
		return label + " " + RemoveGlyph
	}
	return label
}

// Width is the rendered width in cells.
func (t *Tag) Width(ctx RenderContext) int {
	return lipgloss.Width(t.ViewWithContext(ctx))
}

// RemoveOffset is the cell offset of the remove glyph within the rendered
// tag, or -1 when the tag is not removable.
func (t *Tag) RemoveOffset(ctx RenderContext) int {
	if !t.removable {
		return -1
	}
	style := t.ComputeStyle(ctx.Theme)
	return style.GetPaddingLeft() + style.GetBorderLeftSize() + lipgloss.Width(t.content()) - lipgloss.Width(RemoveGlyph)
}

// WithRemovable toggles the remove glyph.
func (t *Tag) WithRemovable(removable bool) *Tag {
	t.removable = removable
	return t
}

// WithMaxWidth limits the label to width display cells.
func (t *Tag) WithMaxWidth(width int) *Tag {
	t.maxWidth = width
	return t
}

// WithAppliers appends theme-based style modifiers.
func (t *Tag) WithAppliers(appliers ...StyleFunc) *Tag {
	t.AddAppliers(appliers...)
	return t
}

package components

import "github.com/mattn/go-runewidth"

// Ellipsis terminates truncated text.
const Ellipsis = "…"

// Text renders a single run of styled text, optionally truncated to a
// display width.
type Text struct {
	BaseComponent
	content  string
	maxWidth int
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text, truncating it to the smaller of its own
// limit and the context width.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	limit := t.maxWidth
	if ctx.Width > 0 && (limit == 0 || ctx.Width < limit) {
		limit = ctx.Width
	}
	return t.ComputeStyle(ctx.Theme).Render(Truncate(t.content, limit))
}

// Content returns the unstyled text.
func (t *Text) Content() string {
	return t.content
}

// WithMaxWidth limits the text to width display cells.
func (t *Text) WithMaxWidth(width int) *Text {
	t.maxWidth = width
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// Truncate shortens s to at most width display cells, ending in Ellipsis
// when anything was cut. A width of zero or less disables truncation.
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// TitleText creates title text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// SubtitleText creates subtitle text.
func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantSubtitle))
}

// ErrorText creates text in the danger colour.
func ErrorText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantError))
}

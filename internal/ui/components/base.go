package components

import (
	"github.com/alexisbeaulieu97/dropdown/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent carries the raw style and the theme-aware strategy shared by
// every component. Embed it and expose fluent With* setters.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy turns a base style into the final style for a theme.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a single theme-aware style transformation.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies its functions in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply runs every function over base.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy builds a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// When applies fn only if cond holds. Used for state-dependent styling such
// as focus or disabled.
func When(cond bool, fn StyleFunc) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if !cond {
			return base
		}
		return fn(base, theme)
	}
}

// NewBaseComponent returns a component base with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the style for theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetAppliers replaces the strategy with the given functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends functions after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// RenderContext is passed down the component tree at render time.
// Width is the number of cells available; zero means unbounded.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext renders with DefaultTheme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a copy limited to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	if width < 0 {
		width = 0
	}
	r.Width = width
	return r
}

// ContextualRenderable is a component that can render with an explicit context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws r with ctx when it supports contexts.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// Alignment specifies how content is aligned on the cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

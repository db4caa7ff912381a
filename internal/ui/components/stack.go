package components

import (
	"strings"

	"github.com/alexisbeaulieu97/dropdown/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every non-empty child and joins them. Children
// of a vertical stack inherit the full width.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return ""
	}

	if s.direction == DirectionHorizontal {
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, s.interleave(views, strings.Repeat(" ", s.gap))...))
	}
	// n blank lines are n-1 newlines
	return style.Render(lipgloss.JoinVertical(s.align.ToLipglossPosition(), s.interleave(views, strings.Repeat("\n", max(s.gap-1, 0)))...))
}

func (s *Stack) interleave(views []string, spacer string) []string {
	if s.gap <= 0 {
		return views
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment of a vertical stack.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

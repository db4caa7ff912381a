package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the semantic colours used for the chrome around the
// dropdown: titles, captions and error lines. Every colour adapts to light
// and dark terminals.
type Palette struct {
	Text    lipgloss.AdaptiveColor
	Primary lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor
}

// TypographyVariant is a typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantError
)

// TypographyScale contains the typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
}

// Theme is an immutable styling theme. Modifications return a new value.
type Theme struct {
	Palette    Palette
	Typography TypographyScale
	Dropdown   DropdownPalette
}

// WithDropdown returns a copy whose dropdown palette is resolved from o.
func (t Theme) WithDropdown(o DropdownOverrides) Theme {
	t.Dropdown = ResolveDropdownPalette(o)
	return t
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Text:    ac("#111827", "#f9fafb"),
		Primary: ac("#3b82f6", "#60a5fa"),
		Muted:   ac("#64748b", "#94a3b8"),
		Danger:  ac("#ef4444", "#f87171"),
	}

	return Theme{
		Palette:    palette,
		Typography: defaultTypography(palette),
		Dropdown:   ResolveDropdownPalette(DropdownOverrides{}),
	}
}

// DarkTheme returns a theme tuned for dark terminals. The dropdown palette
// is derived through the same override chains a consumer would use.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Palette.Text = lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"}
	theme.Typography = defaultTypography(theme.Palette)

	return theme.WithDropdown(DropdownOverrides{
		PrimaryColor:    "#60a5fa",
		BackgroundColor: "#111827",
		HoverColor:      "#1e3a8a",
		TextColor:       "#e5e7eb",
		BorderColor:     "#374151",

		MultiSelectSelectedOptionTextColor:       "#dbeafe",
		MultiSelectSelectedOptionBackgroundColor: "#1e40af",
	})
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Text)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary),
		Subtitle: body.Foreground(p.Muted).Faint(true),
		Error:    body.Bold(true).Foreground(p.Danger),
	}
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantError:
		return typo.Error
	default:
		return typo.Body
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

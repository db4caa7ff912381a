package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default dropdown colours. They are plain hex values because overrides are
// plain hex values too; both light and dark terminals get the same palette
// unless the consumer overrides it.
const (
	DefaultDropdownPrimary          = "#3b82f6"
	DefaultDropdownBackground       = "#ffffff"
	DefaultDropdownHover            = "#eff6ff"
	DefaultDropdownText             = "#1f2937"
	DefaultDropdownBorder           = "#d1d5db"
	DefaultDropdownPadding          = "0 1"
	DefaultDropdownBorderStyle      = "rounded"
	DefaultDropdownMultiSelectedFg  = "#1e40af"
	DefaultDropdownMultiSelectedBg  = "#dbeafe"
	DefaultDropdownPlaceholderColor = "#9ca3af"
	DefaultDropdownDisabledColor    = "#9ca3af"
)

// BorderStyles lists the accepted border style names.
var BorderStyles = []string{"normal", "rounded", "thick", "double", "hidden"}

// DropdownOverrides is a sparse set of theme values supplied by a consumer.
// Empty fields fall back along the chains documented on ResolveDropdownPalette.
type DropdownOverrides struct {
	PrimaryColor                             string `yaml:"primary_color" toml:"primary_color" json:"primary_color,omitempty" validate:"omitempty,color"`
	BackgroundColor                          string `yaml:"background_color" toml:"background_color" json:"background_color,omitempty" validate:"omitempty,color"`
	HoverColor                               string `yaml:"hover_color" toml:"hover_color" json:"hover_color,omitempty" validate:"omitempty,color"`
	TextColor                                string `yaml:"text_color" toml:"text_color" json:"text_color,omitempty" validate:"omitempty,color"`
	BorderColor                              string `yaml:"border_color" toml:"border_color" json:"border_color,omitempty" validate:"omitempty,color"`
	BorderStyle                              string `yaml:"border_style" toml:"border_style" json:"border_style,omitempty" validate:"omitempty,oneof=normal rounded thick double hidden"`
	Padding                                  string `yaml:"padding" toml:"padding" json:"padding,omitempty" validate:"omitempty,padding"`
	MenuBackgroundColor                      string `yaml:"menu_background_color" toml:"menu_background_color" json:"menu_background_color,omitempty" validate:"omitempty,color"`
	OptionTextColor                          string `yaml:"option_text_color" toml:"option_text_color" json:"option_text_color,omitempty" validate:"omitempty,color"`
	SelectedOptionTextColor                  string `yaml:"selected_option_text_color" toml:"selected_option_text_color" json:"selected_option_text_color,omitempty" validate:"omitempty,color"`
	SelectedOptionBackgroundColor            string `yaml:"selected_option_background_color" toml:"selected_option_background_color" json:"selected_option_background_color,omitempty" validate:"omitempty,color"`
	MultiSelectSelectedOptionTextColor       string `yaml:"multi_select_selected_option_text_color" toml:"multi_select_selected_option_text_color" json:"multi_select_selected_option_text_color,omitempty" validate:"omitempty,color"`
	MultiSelectSelectedOptionBackgroundColor string `yaml:"multi_select_selected_option_background_color" toml:"multi_select_selected_option_background_color" json:"multi_select_selected_option_background_color,omitempty" validate:"omitempty,color"`
	FocusBorderColor                         string `yaml:"focus_border_color" toml:"focus_border_color" json:"focus_border_color,omitempty" validate:"omitempty,color"`
}

// DropdownPalette is the fully resolved set of values used to draw a dropdown.
type DropdownPalette struct {
	Primary            lipgloss.Color
	Background         lipgloss.Color
	Hover              lipgloss.Color
	Text               lipgloss.Color
	Border             lipgloss.Color
	FocusBorder        lipgloss.Color
	MenuBackground     lipgloss.Color
	OptionText         lipgloss.Color
	SelectedText       lipgloss.Color
	SelectedBackground lipgloss.Color
	MultiSelectedText  lipgloss.Color
	MultiSelectedBg    lipgloss.Color
	Placeholder        lipgloss.Color
	Disabled           lipgloss.Color
	PaddingVertical    int
	PaddingHorizontal  int
	BorderStyle        string
}

// ResolveDropdownPalette fills every slot of the palette from o.
//
//	menu background   <- MenuBackgroundColor <- BackgroundColor <- default
//	option text       <- OptionTextColor <- TextColor <- default
//	selected text     <- SelectedOptionTextColor <- PrimaryColor <- default
//	selected bg       <- SelectedOptionBackgroundColor <- HoverColor <- default
//	focus border      <- FocusBorderColor <- PrimaryColor <- default
//	multi-selected    <- own override <- default
//
// An unparsable padding falls back to the default padding.
func ResolveDropdownPalette(o DropdownOverrides) DropdownPalette {
	p := DropdownPalette{
		Primary:            color(o.PrimaryColor, DefaultDropdownPrimary),
		Background:         color(o.BackgroundColor, DefaultDropdownBackground),
		Hover:              color(o.HoverColor, DefaultDropdownHover),
		Text:               color(o.TextColor, DefaultDropdownText),
		Border:             color(o.BorderColor, DefaultDropdownBorder),
		FocusBorder:        color(o.FocusBorderColor, o.PrimaryColor, DefaultDropdownPrimary),
		MenuBackground:     color(o.MenuBackgroundColor, o.BackgroundColor, DefaultDropdownBackground),
		OptionText:         color(o.OptionTextColor, o.TextColor, DefaultDropdownText),
		SelectedText:       color(o.SelectedOptionTextColor, o.PrimaryColor, DefaultDropdownPrimary),
		SelectedBackground: color(o.SelectedOptionBackgroundColor, o.HoverColor, DefaultDropdownHover),
		MultiSelectedText:  color(o.MultiSelectSelectedOptionTextColor, DefaultDropdownMultiSelectedFg),
		MultiSelectedBg:    color(o.MultiSelectSelectedOptionBackgroundColor, DefaultDropdownMultiSelectedBg),
		Placeholder:        lipgloss.Color(DefaultDropdownPlaceholderColor),
		Disabled:           lipgloss.Color(DefaultDropdownDisabledColor),
		BorderStyle:        first(o.BorderStyle, DefaultDropdownBorderStyle),
	}

	v, h, err := ParsePadding(o.Padding)
	if err != nil || o.Padding == "" {
		v, h, _ = ParsePadding(DefaultDropdownPadding)
	}
	p.PaddingVertical, p.PaddingHorizontal = v, h

	return p
}

// ParsePadding reads "n" or "v h" as cell counts.
func ParsePadding(s string) (int, int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, 0, fmt.Errorf("padding %q: expected \"n\" or \"vertical horizontal\"", s)
	}

	values := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("padding %q: %q is not a non-negative cell count", s, field)
		}
		values[i] = n
	}

	if len(values) == 1 {
		return values[0], values[0], nil
	}
	return values[0], values[1], nil
}

// BorderByName maps a border style name to a lipgloss border.
func BorderByName(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

func color(candidates ...string) lipgloss.Color {
	return lipgloss.Color(first(candidates...))
}

func first(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// OptionState describes how a menu row should be drawn.
type OptionState struct {
	Highlighted bool
	Selected    bool
	Multi       bool
	Disabled    bool
}

// DropdownLabel styles the label line above the trigger.
func DropdownLabel() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Dropdown.Text).Bold(true)
	}
}

// DropdownTrigger styles the bordered trigger. The border switches to the
// focus colour while the menu is open.
func DropdownTrigger(open, disabled bool) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		d := theme.Dropdown
		style := base.
			Border(BorderByName(d.BorderStyle)).
			BorderForeground(d.Border).
			Padding(d.PaddingVertical, d.PaddingHorizontal).
			Foreground(d.Text)
		style = When(open, focusBorder())(style, theme)
		return When(disabled, dimmed())(style, theme)
	}
}

// DropdownMenu styles the open option list.
func DropdownMenu() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		d := theme.Dropdown
		return base.
			Border(BorderByName(d.BorderStyle)).
			BorderForeground(d.Border).
			Foreground(d.OptionText)
	}
}

// DropdownPlaceholder styles placeholder and status text.
func DropdownPlaceholder() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Dropdown.Placeholder)
	}
}

// DropdownOption styles one menu row for state.
func DropdownOption(state OptionState) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		d := theme.Dropdown
		style := base.Foreground(d.OptionText)

		switch {
		case state.Disabled:
			return dimmed()(style, theme)
		case state.Selected && state.Multi:
			style = style.Foreground(d.MultiSelectedText).Background(d.MultiSelectedBg).Bold(true)
		case state.Selected:
			style = style.Foreground(d.SelectedText).Background(d.SelectedBackground).Bold(true)
		}

		return When(state.Highlighted, hovered())(style, theme)
	}
}

func focusBorder() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(theme.Dropdown.FocusBorder)
	}
}

func hovered() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(theme.Dropdown.Hover)
	}
}

// dimmed draws disabled parts in the disabled colour.
func dimmed() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Dropdown.Disabled).Faint(true)
	}
}

// DropdownSublabel styles the secondary line of an option.
func DropdownSublabel() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Dropdown.Placeholder).Faint(true)
	}
}

// DropdownTag styles a selected value chip in multi mode.
func DropdownTag() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		d := theme.Dropdown
		return base.Foreground(d.MultiSelectedText).Background(d.MultiSelectedBg).Padding(0, 1)
	}
}

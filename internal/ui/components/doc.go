// Package components provides the theme-aware building blocks used to draw
// the dropdown in a terminal.
//
// Themes are immutable values passed explicitly through RenderContext:
//
//	theme := components.DefaultTheme().WithDropdown(components.DropdownOverrides{
//		PrimaryColor: "#16a34a",
//	})
//	out := components.NewTag("Go").WithRemovable(true).ViewWithContext(
//		components.DefaultContext().WithTheme(theme),
//	)
//
// Style functions (StyleFunc) read the theme at render time, so the same
// component renders differently under different themes without being rebuilt.
// The Dropdown* style functions read Theme.Dropdown, a DropdownPalette
// resolved from sparse consumer overrides by ResolveDropdownPalette.
//
// Components:
//   - Text: styled text, truncated by display width
//   - Tag: a selected-value chip with an optional remove glyph
//   - Stack: vertical or horizontal arrangement with gaps
package components

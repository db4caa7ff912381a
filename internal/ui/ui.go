// Package ui holds the rendering contract shared by the terminal components.
package ui

// Renderable is anything that can draw itself as a terminal string.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View calls f.
func (f RenderFunc) View() string {
	return f()
}

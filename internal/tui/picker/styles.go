package picker

import "github.com/alexisbeaulieu97/dropdown/internal/ui/components"

func (m *Model) renderContext() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme)
}

func (m *Model) titleView(title string) string {
	return components.TitleText(title).ViewWithContext(m.renderContext())
}

func (m *Model) errorView(text string) string {
	return components.ErrorText(text).ViewWithContext(m.renderContext())
}

func (m *Model) summaryView(text string) string {
	return components.SubtitleText(text).ViewWithContext(m.renderContext())
}

package dropdown

// Key is a keyboard input understood by the engine.
type Key int

const (
	KeyEnter Key = iota
	KeyEscape
	KeyDown
	KeyUp
)

// NoHighlight marks the absence of a highlighted option.
const NoHighlight = -1

// State is the ephemeral interaction state owned by the engine.
type State struct {
	Open        bool
	Search      string
	Highlighted int
}

// Change is delivered to the consumer whenever the selection changes.
// In single mode Options holds the chosen option (or nothing after a clear);
// in multi mode it holds every option now selected.
type Change struct {
	Value   Selection
	Options []Option
}

// Option returns the first changed option, which is the chosen option in
// single mode.
func (c Change) Option() (Option, bool) {
	if len(c.Options) == 0 {
		return Option{}, false
	}
	return c.Options[0], true
}

// ChangeFunc receives selection changes synchronously.
type ChangeFunc func(Change)

// Props is everything the consumer supplies on each render.
type Props struct {
	Options     []Option
	Value       Selection
	MultiSelect bool
	Searchable  bool
	Disabled    bool
	Loading     bool
	Label       LabelFunc
	OnChange    ChangeFunc
}

// Engine is the selection state machine. It is fully controlled: the value
// is read from Props and changes are only reported through OnChange.
type Engine struct {
	props        Props
	state        State
	focusPending bool
}

// NewEngine creates an engine in its initial closed state.
func NewEngine(props Props) *Engine {
	e := &Engine{state: State{Highlighted: NoHighlight}}
	e.Sync(props)
	return e
}

// Sync replaces the consumer-supplied props. The highlight is dropped if the
// new option list no longer contains it.
func (e *Engine) Sync(props Props) {
	if props.Label == nil {
		props.Label = DefaultLabel
	}
	e.props = props
	e.clampHighlight()
}

// Props returns the current props.
func (e *Engine) Props() Props {
	return e.props
}

// State returns a snapshot of the interaction state.
func (e *Engine) State() State {
	return e.state
}

// IsOpen reports whether the menu is open.
func (e *Engine) IsOpen() bool {
	return e.state.Open
}

// Visible returns the options currently shown in the menu.
func (e *Engine) Visible() []Option {
	return VisibleOptions(e.props.Options, e.props.Searchable, e.state.Search, e.props.Label)
}

// Selected returns the options matching the current value.
func (e *Engine) Selected() []Option {
	return SelectedOptions(e.props.Options, e.props.Value)
}

// HighlightedOption returns the highlighted visible option.
func (e *Engine) HighlightedOption() (Option, bool) {
	visible := e.Visible()
	if e.state.Highlighted < 0 || e.state.Highlighted >= len(visible) {
		return Option{}, false
	}
	return visible[e.state.Highlighted], true
}

// TakeFocusRequest reports, once, that the search field should receive focus
// after the last open.
func (e *Engine) TakeFocusRequest() bool {
	pending := e.focusPending
	e.focusPending = false
	return pending
}

// Open opens a closed menu with the given highlight. An out-of-range
// highlight becomes NoHighlight.
func (e *Engine) Open(highlight int) bool {
	if e.props.Disabled || e.state.Open {
		return false
	}
	e.state.Open = true
	e.state.Highlighted = highlight
	e.clampHighlight()
	if e.props.Searchable {
		e.focusPending = true
	}
	return true
}

// Close closes the menu. Search text is kept.
func (e *Engine) Close() bool {
	if e.props.Disabled || !e.state.Open {
		return false
	}
	e.state.Open = false
	e.focusPending = false
	return true
}

// ClickTrigger toggles a non-searchable menu and only opens a searchable one.
func (e *Engine) ClickTrigger() bool {
	if e.props.Disabled {
		return false
	}
	if e.state.Open {
		if e.props.Searchable {
			return false
		}
		return e.Close()
	}
	return e.Open(NoHighlight)
}

// ClickLabel toggles the menu regardless of searchability.
func (e *Engine) ClickLabel() bool {
	if e.state.Open {
		return e.Close()
	}
	return e.Open(NoHighlight)
}

// SetSearch replaces the search text and resets the highlight.
func (e *Engine) SetSearch(text string) bool {
	if e.props.Disabled || e.state.Search == text {
		return false
	}
	e.state.Search = text
	e.state.Highlighted = NoHighlight
	return true
}

// Hover highlights the visible option at index.
func (e *Engine) Hover(index int) bool {
	if e.props.Disabled || e.props.Loading || !e.state.Open {
		return false
	}
	if index < 0 || index >= len(e.Visible()) || index == e.state.Highlighted {
		return false
	}
	e.state.Highlighted = index
	return true
}

// Select applies a click on option. Disabled options are ignored.
func (e *Engine) Select(option Option) bool {
	if e.props.Disabled || option.Disabled {
		return false
	}

	next := Toggled(e.props.Value, option, e.props.MultiSelect)
	if e.props.MultiSelect {
		e.notify(Change{Value: next, Options: OptionsFor(e.props.Options, next.IDs())})
		return true
	}

	e.state.Open = false
	e.state.Search = ""
	e.state.Highlighted = NoHighlight
	e.focusPending = false
	e.notify(Change{Value: next, Options: []Option{option}})
	return true
}

// Remove drops id from a multi-select value. The menu is not affected.
func (e *Engine) Remove(id ID) bool {
	if e.props.Disabled || !e.props.MultiSelect || e.props.OnChange == nil {
		return false
	}
	next := Without(e.props.Value, id)
	e.notify(Change{Value: next, Options: OptionsFor(e.props.Options, next.IDs())})
	return true
}

// Clear cancels an active search when the menu is open and searchable;
// otherwise it reports an empty value for the current mode.
func (e *Engine) Clear() bool {
	if e.props.Disabled {
		return false
	}
	if e.state.Open && e.props.Searchable {
		e.state.Search = ""
		e.state.Open = false
		e.state.Highlighted = NoHighlight
		e.focusPending = false
		return true
	}
	e.notify(Change{Value: EmptyValue(e.props.MultiSelect), Options: []Option{}})
	return true
}

// HandleKey applies a keyboard input and reports whether it was consumed.
func (e *Engine) HandleKey(key Key) bool {
	if e.props.Disabled {
		return false
	}

	switch key {
	case KeyEnter:
		if !e.state.Open {
			e.Open(NoHighlight)
			return true
		}
		if e.props.Loading {
			return true
		}
		if opt, ok := e.HighlightedOption(); ok {
			e.Select(opt)
		}
		return true

	case KeyEscape:
		if !e.state.Open {
			return false
		}
		e.Close()
		return true

	case KeyDown:
		if !e.state.Open {
			e.Open(0)
			return true
		}
		if e.props.Loading {
			return true
		}
		if e.state.Highlighted < len(e.Visible())-1 {
			e.state.Highlighted++
		}
		return true

	case KeyUp:
		if e.state.Open && !e.props.Loading && e.state.Highlighted > 0 {
			e.state.Highlighted--
		}
		return true
	}

	return false
}

func (e *Engine) notify(change Change) {
	if e.props.OnChange == nil {
		return
	}
	e.props.OnChange(change)
}

func (e *Engine) clampHighlight() {
	if e.state.Highlighted < 0 {
		e.state.Highlighted = NoHighlight
		return
	}
	if e.state.Highlighted >= len(e.Visible()) {
		e.state.Highlighted = NoHighlight
	}
}

// Package picker is the host program around a single select field. It owns
// the value, forwards pointer events to every subscribed field, loads
// options asynchronously and reports the final selection when it quits.
package picker

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	"github.com/alexisbeaulieu97/dropdown/internal/logger"
	"github.com/alexisbeaulieu97/dropdown/internal/tui/pointer"
	"github.com/alexisbeaulieu97/dropdown/internal/tui/selectfield"
	"github.com/alexisbeaulieu97/dropdown/internal/ui/components"
)

// fieldTop is the row the field is drawn at: the title and one blank line
// sit above it.
const fieldTop = 2

// Loader fetches options. It runs outside the program loop.
type Loader func(ctx context.Context) ([]dropdown.Option, error)

// Config describes one picker session.
type Config struct {
	Title string
	// Field holds the initial props. OnChange is owned by the picker and
	// is overwritten.
	Field selectfield.Props
	// Load, when set, starts the field in the loading state and replaces
	// its options once it returns.
	Load  Loader
	Delay time.Duration

	SubmitOnSelect bool
	Theme          *components.Theme
	Width          int
	MenuHeight     int
	Logger         *logger.Logger
}

// Result is what the picker reports after it quits.
type Result struct {
	Value   dropdown.Selection
	Options []dropdown.Option
	Aborted bool
}

// Model is the Bubble Tea model of the picker program.
type Model struct {
	cfg      Config
	field    *selectfield.Model
	pointers *pointer.Broadcaster
	keys     keyMap
	help     help.Model
	theme    components.Theme
	log      *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	pending  *dropdown.Change
	value    dropdown.Selection
	selected []dropdown.Option
	loadErr  error

	done    bool
	aborted bool
}

// New creates a picker. The field is not mounted until Init runs.
func New(ctx context.Context, cfg Config) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		cfg:      cfg,
		pointers: pointer.NewBroadcaster(),
		help:     help.New(),
		theme:    components.DefaultTheme(),
		log:      cfg.Logger.WithComponent("picker", ""),
		value:    cfg.Field.Value,
	}
	m.ctx, m.cancel = context.WithCancel(ctx)

	props := cfg.Field
	props.OnChange = m.recordChange
	if cfg.Load != nil {
		props.Loading = true
	}

	if cfg.Theme != nil {
		m.theme = *cfg.Theme
	}

	opts := []selectfield.ModelOption{selectfield.WithLogger(cfg.Logger), selectfield.WithTheme(m.theme)}
	if cfg.Width > 0 {
		opts = append(opts, selectfield.WithWidth(cfg.Width))
	}
	if cfg.MenuHeight > 0 {
		opts = append(opts, selectfield.WithMenuHeight(cfg.MenuHeight))
	}

	m.field = selectfield.New(props, opts...)
	m.field.SetOrigin(0, fieldTop)
	m.selected = m.field.Selected()
	m.keys = defaultKeyMap(selectfield.DefaultKeyMap())
	return m
}

// Init mounts the field and starts the option load.
func (m *Model) Init() tea.Cmd {
	m.field.Mount(m.ctx, m.pointers)

	cmds := []tea.Cmd{m.field.Init()}
	if m.cfg.Load != nil {
		m.log.Debug("loading options")
		cmds = append(cmds, loadOptionsCmd(m.ctx, m.cfg.Delay, m.cfg.Load))
	}
	return tea.Batch(cmds...)
}

// Result returns the selection at the time the picker quit.
func (m *Model) Result() Result {
	return Result{
		Value:   m.value,
		Options: m.selected,
		Aborted: m.aborted,
	}
}

// Done reports whether the picker has quit.
func (m *Model) Done() bool {
	return m.done
}

// LoadErr returns the error of the last failed option load.
func (m *Model) LoadErr() error {
	return m.loadErr
}

// recordChange is the field's change handler. The value is applied after the
// field's own update returns.
func (m *Model) recordChange(change dropdown.Change) {
	m.pending = &change
}

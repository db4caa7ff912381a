package picker

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	"github.com/alexisbeaulieu97/dropdown/internal/logger"
	"github.com/alexisbeaulieu97/dropdown/internal/tui/selectfield"
)

func languages() []dropdown.Option {
	return []dropdown.Option{
		{Value: dropdown.StringID("go"), Label: "Go"},
		{Value: dropdown.StringID("rust"), Label: "Rust"},
		{Value: dropdown.StringID("zig"), Label: "Zig"},
	}
}

func send(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	updated, cmd := m.Update(msg)
	require.Same(t, m, updated)
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInitMountsField(t *testing.T) {
	m := New(context.Background(), Config{Field: selectfield.Props{Options: languages()}})
	m.Init()

	assert.True(t, m.field.Mounted())
	assert.Equal(t, 1, m.pointers.Len())
}

func TestKeyboardSelectionUpdatesResult(t *testing.T) {
	m := New(context.Background(), Config{Field: selectfield.Props{Options: languages(), Value: dropdown.None()}})
	m.Init()

	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, isQuit(cmd))

	res := m.Result()
	id, ok := res.Value.ID()
	require.True(t, ok)
	assert.Equal(t, dropdown.StringID("rust"), id)
	require.Len(t, res.Options, 1)
	assert.Equal(t, "Rust", res.Options[0].Label)
	assert.Contains(t, m.View(), "Selected: Rust")
	assert.False(t, m.Done())
}

func TestEscapeClosesMenuBeforeSubmitting(t *testing.T) {
	m := New(context.Background(), Config{Field: selectfield.Props{Options: languages()}})
	m.Init()

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.field.IsOpen())

	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, isQuit(cmd))
	assert.False(t, m.field.IsOpen())

	cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Done())
	assert.False(t, m.Result().Aborted)
	assert.False(t, m.field.Mounted())
	assert.Equal(t, 0, m.pointers.Len())
	assert.Empty(t, m.View())
}

func TestCtrlCAborts(t *testing.T) {
	m := New(context.Background(), Config{Field: selectfield.Props{Options: languages()}})
	m.Init()

	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Result().Aborted)

	assert.Nil(t, send(t, m, tea.KeyMsg{Type: tea.KeyEnter}), "messages after quit are ignored")
}

func TestCtrlSSubmitsWhileOpen(t *testing.T) {
	m := New(context.Background(), Config{Field: selectfield.Props{Options: languages()}})
	m.Init()
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, isQuit(cmd))
	assert.False(t, m.Result().Aborted)
}

func TestSubmitOnSelect(t *testing.T) {
	m := New(context.Background(), Config{
		Field:          selectfield.Props{Options: languages()},
		SubmitOnSelect: true,
	})
	m.Init()

	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	id, _ := m.Result().Value.ID()
	assert.Equal(t, dropdown.StringID("go"), id)
}

func TestReselectingCurrentValueStillSubmits(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	m := New(context.Background(), Config{
		Field:          selectfield.Props{Options: languages(), Value: dropdown.Single(dropdown.StringID("rust"))},
		SubmitOnSelect: true,
		Logger:         log,
	})
	m.Init()

	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	id, _ := m.Result().Value.ID()
	assert.Equal(t, dropdown.StringID("rust"), id)
	assert.NotContains(t, buf.String(), "value changed")
}

func TestSubmitOnSelectIgnoresMultiSelect(t *testing.T) {
	m := New(context.Background(), Config{
		Field:          selectfield.Props{Options: languages(), MultiSelect: true, Value: dropdown.Multi()},
		SubmitOnSelect: true,
	})
	m.Init()

	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, isQuit(cmd))
	assert.Equal(t, []dropdown.ID{dropdown.StringID("go")}, m.Result().Value.IDs())
	assert.True(t, m.field.IsOpen())
}

func TestAsyncLoadReplacesOptions(t *testing.T) {
	loader := func(context.Context) ([]dropdown.Option, error) { return languages(), nil }
	m := New(context.Background(), Config{
		Field: selectfield.Props{Value: dropdown.Single(dropdown.StringID("zig"))},
		Load:  loader,
	})
	require.NotNil(t, m.Init())
	assert.True(t, m.field.Props().Loading)

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Loading options...")

	msg := loadOptionsCmd(m.ctx, 0, loader)()
	send(t, m, msg)

	assert.False(t, m.field.Props().Loading)
	assert.Len(t, m.field.Visible(), 3)
	require.Len(t, m.Result().Options, 1)
	assert.Equal(t, "Zig", m.Result().Options[0].Label)
}

func TestAsyncLoadFailureIsShown(t *testing.T) {
	m := New(context.Background(), Config{
		Load: func(context.Context) ([]dropdown.Option, error) { return nil, errors.New("boom") },
	})
	m.Init()

	send(t, m, loadOptionsCmd(m.ctx, 0, m.cfg.Load)())

	assert.EqualError(t, m.LoadErr(), "boom")
	assert.False(t, m.field.Props().Loading)
	assert.Contains(t, m.View(), "Could not load options: boom")
}

func TestLoadHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	loader := func(context.Context) ([]dropdown.Option, error) {
		called = true
		return languages(), nil
	}

	msg := loadOptionsCmd(ctx, time.Hour, loader)()
	assert.IsType(t, loadCancelledMsg{}, msg)
	assert.False(t, called)
}

func TestOutsideClickClosesMenu(t *testing.T) {
	m := New(context.Background(), Config{Field: selectfield.Props{Options: languages()}})
	m.Init()
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.field.IsOpen())

	send(t, m, tea.MouseMsg{X: 70, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.field.IsOpen())
}

func TestMouseSelectionGoesThroughHost(t *testing.T) {
	m := New(context.Background(), Config{Field: selectfield.Props{Options: languages()}})
	m.Init()
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// trigger occupies rows 2-4, the first menu row is 6
	send(t, m, tea.MouseMsg{X: 4, Y: fieldTop + 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	id, ok := m.Result().Value.ID()
	require.True(t, ok)
	assert.Equal(t, dropdown.StringID("go"), id)
	assert.False(t, m.field.IsOpen())
}

func TestHelpToggle(t *testing.T) {
	m := New(context.Background(), Config{Field: selectfield.Props{Options: languages()}})
	m.Init()

	short := m.View()
	send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/dropdown/internal/tui/picker"
)

const frameworksDoc = `title: Frameworks
label: Framework
searchable: true
options:
  - value: 1
    label: React
  - value: 2
    label: Vue
  - value: 3
    label: Angular
`

func writeDocument(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root, flags := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := run(root, flags)
	return stdout.String(), stderr.String(), err
}

// stubProgram replaces the terminal program with a driver that feeds the
// picker the messages a user would produce.
func stubProgram(t *testing.T, drive func(m *picker.Model)) {
	t.Helper()

	originalRun, originalInteractive := runProgram, interactive
	t.Cleanup(func() {
		runProgram, interactive = originalRun, originalInteractive
	})

	interactive = func(*cobra.Command) bool { return true }
	runProgram = func(_ context.Context, m *picker.Model, _ io.Reader, _ io.Writer) error {
		drain(m, m.Init())
		drive(m)
		return nil
	}
}

// drain runs a command tree once and delivers its messages.
func drain(m *picker.Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(m, c)
		}
		return
	}
	m.Update(msg)
}

func press(m *picker.Model, keys ...tea.KeyType) {
	for _, k := range keys {
		m.Update(tea.KeyMsg{Type: k})
	}
}

func TestPickPrintsSelectedID(t *testing.T) {
	stubProgram(t, func(m *picker.Model) {
		press(m, tea.KeyDown, tea.KeyDown, tea.KeyEnter, tea.KeyCtrlS)
	})

	stdout, _, err := execute(t, "pick", "--config", writeDocument(t, "frameworks.yaml", frameworksDoc))
	require.NoError(t, err)
	require.Equal(t, "2\n", stdout)
}

func TestPickJSONOutput(t *testing.T) {
	stubProgram(t, func(m *picker.Model) {
		press(m, tea.KeyDown, tea.KeyEnter)
	})

	path := writeDocument(t, "frameworks.yaml", frameworksDoc)
	stdout, _, err := execute(t, "pick", "--config", path, "--submit-on-select", "--format", "json")
	require.NoError(t, err)

	var payload struct {
		Value   any `json:"value"`
		Options []struct {
			Value any    `json:"value"`
			Label string `json:"label"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, float64(1), payload.Value)
	require.Len(t, payload.Options, 1)
	require.Equal(t, "React", payload.Options[0].Label)
}

func TestPickWithDelayedOptions(t *testing.T) {
	stubProgram(t, func(m *picker.Model) {
		press(m, tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyEnter, tea.KeyEsc)
	})

	path := writeDocument(t, "frameworks.yaml", frameworksDoc)
	stdout, _, err := execute(t, "pick", "--config", path, "--delay", "1ms")
	require.NoError(t, err)
	require.Equal(t, "3\n", stdout)
}

func TestPickAbort(t *testing.T) {
	stubProgram(t, func(m *picker.Model) {
		press(m, tea.KeyDown, tea.KeyCtrlC)
	})

	stdout, _, err := execute(t, "pick", "--config", writeDocument(t, "frameworks.yaml", frameworksDoc))
	require.ErrorIs(t, err, errAborted)
	require.Empty(t, stdout)
}

func TestPickRequiresTerminal(t *testing.T) {
	original := interactive
	t.Cleanup(func() { interactive = original })
	interactive = func(*cobra.Command) bool { return false }

	_, _, err := execute(t, "pick", "--config", writeDocument(t, "frameworks.yaml", frameworksDoc))
	require.ErrorContains(t, err, "interactive terminal")
}

func TestPickRejectsBadFlags(t *testing.T) {
	_, _, err := execute(t, "pick")
	require.ErrorContains(t, err, "config file is required")

	_, _, err = execute(t, "pick", "--config", writeDocument(t, "frameworks.yaml", frameworksDoc), "--format", "yaml")
	require.ErrorContains(t, err, `unknown format "yaml"`)

	_, _, err = execute(t, "--log-level", "loud", "version")
	require.ErrorContains(t, err, "invalid --log-level")
}

func TestLogFileReceivesDebugOutput(t *testing.T) {
	stubProgram(t, func(m *picker.Model) {
		press(m, tea.KeyCtrlS)
	})

	logPath := filepath.Join(t.TempDir(), "dropdown.log")
	path := writeDocument(t, "frameworks.yaml", frameworksDoc)
	_, _, err := execute(t, "--log-level", "debug", "--log-file", logPath, "pick", "--config", path)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "starting picker")
	require.Contains(t, string(data), `"command":"pick"`)
}

func TestLogFileIsClosedWhenCommandFails(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "dropdown.log")
	path := writeDocument(t, "broken.yaml", "width: 3\n")

	root, flags := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--log-file", logPath, "validate", "--config", path})

	require.Error(t, run(root, flags))
	require.Nil(t, flags.logSink)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "validation failed")
}

func TestPickReportsFailedOptionLoad(t *testing.T) {
	stubProgram(t, func(m *picker.Model) {
		m.Update(picker.OptionsLoadedMsg{Err: errors.New("listing timed out")})
		press(m, tea.KeyCtrlS)
	})

	path := writeDocument(t, "frameworks.yaml", frameworksDoc)
	stdout, _, err := execute(t, "pick", "--config", path, "--delay", "1ms")
	require.ErrorContains(t, err, "load options: listing timed out")
	require.Empty(t, stdout)
}

func TestValidateSummarisesDocument(t *testing.T) {
	doc := frameworksDoc + "  - value: 2\n    label: Vue again\n"
	path := writeDocument(t, "frameworks.yaml", doc)

	stdout, stderr, err := execute(t, "validate", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "valid, 4 options (single-select, searchable)")
	require.Contains(t, stderr, `warning: duplicate option id "2"`)
}

func TestValidateReportsErrors(t *testing.T) {
	path := writeDocument(t, "broken.toml", "multi_select = true\nvalue = 3\n\n[theme]\nprimary_color = \"blue\"\n")

	_, _, err := execute(t, "validate", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 validation errors")
	require.Contains(t, err.Error(), "theme.primary_color")
}

func TestRefsPicksBranch(t *testing.T) {
	dir := initGitRepo(t)
	stubProgram(t, func(m *picker.Model) {
		press(m, tea.KeyEnter, tea.KeyDown, tea.KeyDown, tea.KeyEnter)
	})

	stdout, _, err := execute(t, "refs", "--repo", dir, "--submit-on-select")
	require.NoError(t, err)
	require.Equal(t, "refs/heads/feature", strings.TrimSpace(stdout))
}

func TestRefsOutsideRepository(t *testing.T) {
	stubProgram(t, func(*picker.Model) {})

	_, _, err := execute(t, "refs", "--repo", t.TempDir())
	require.ErrorContains(t, err, "source error [gitrefs]")
}

func initGitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello repo"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Dropdown",
			Email: "dropdown@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewBranchReferenceName("feature"), hash)))
	return dir
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/dropdown/internal/tui/picker"
)

// errAborted is returned when the user leaves the picker with ctrl+c.
var errAborted = errors.New("aborted")

// runProgram drives the picker until it quits. Tests replace it.
var runProgram = func(ctx context.Context, m *picker.Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}

// interactive reports whether the picker can be drawn. The interface goes to
// stderr so that stdout stays free for the result.
var interactive = func(cmd *cobra.Command) bool {
	return isTerminal(cmd.InOrStdin()) && isTerminal(cmd.ErrOrStderr())
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func runPicker(cmd *cobra.Command, cfg picker.Config) (picker.Result, error) {
	if !interactive(cmd) {
		return picker.Result{}, fmt.Errorf("%s needs an interactive terminal on stdin and stderr", cmd.Name())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	m := picker.New(ctx, cfg)
	if err := runProgram(ctx, m, cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
		return picker.Result{}, fmt.Errorf("run picker: %w", err)
	}

	res := m.Result()
	if res.Aborted {
		return res, errAborted
	}
	if err := m.LoadErr(); err != nil {
		return res, fmt.Errorf("load options: %w", err)
	}
	return res, nil
}

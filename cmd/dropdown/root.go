package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/dropdown/internal/logger"
)

type rootFlags struct {
	logLevel string
	logFile  string

	log     *logger.Logger
	logSink io.Closer
}

func newRootCmd() (*cobra.Command, *rootFlags) {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "dropdown",
		Short:         "Pick values from a list in the terminal",
		Long:          "dropdown shows a searchable select field in the terminal and prints what was picked.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.openLogger()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file; logs are discarded when unset")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newRefsCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd, flags
}

// run executes the command tree. cobra skips post-run hooks once a command
// fails, so the log file is closed here on every path.
func run(root *cobra.Command, flags *rootFlags) error {
	err := root.Execute()
	if closeErr := flags.closeLogger(); err == nil && closeErr != nil {
		err = fmt.Errorf("close log file: %w", closeErr)
	}
	return err
}

// openLogger writes to the log file when one is given. The terminal belongs
// to the interface, so nothing is logged there.
func (f *rootFlags) openLogger() error {
	var writer io.Writer = io.Discard
	if f.logFile != "" {
		file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		writer = file
		f.logSink = file
	}

	log, err := logger.New(logger.Options{Level: f.logLevel, Writer: writer})
	if err != nil {
		_ = f.closeLogger()
		return fmt.Errorf("invalid --log-level %q: %w", f.logLevel, err)
	}
	f.log = log
	return nil
}

func (f *rootFlags) closeLogger() error {
	if f.logSink == nil {
		return nil
	}
	err := f.logSink.Close()
	f.logSink = nil
	return err
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/dropdown/internal/config"
	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	"github.com/alexisbeaulieu97/dropdown/internal/tui/picker"
	"github.com/alexisbeaulieu97/dropdown/internal/tui/selectfield"
)

type pickOptions struct {
	ConfigPath     string
	SubmitOnSelect bool
	Delay          time.Duration
	Format         string
}

func newPickCmd(root *rootFlags) *cobra.Command {
	opts := pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick from the options of a dropdown document",
		Long: `Pick from the options defined in a YAML or TOML dropdown document.
The selected ids are printed to stdout when the picker is submitted with esc
(menu closed) or ctrl+s. ctrl+c aborts without output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}
			if err := validateFormat(opts.Format); err != nil {
				return err
			}
			return runPick(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the dropdown document")
	cmd.Flags().BoolVar(&opts.SubmitOnSelect, "submit-on-select", false, "Quit as soon as a single-select value is picked")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 0, "Simulate a slow option source by loading options after this delay")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", formatText, "Output format (text or json)")

	return cmd
}

func runPick(cmd *cobra.Command, root *rootFlags, opts pickOptions) error {
	log := root.log.WithFields(map[string]any{"command": "pick", "config": opts.ConfigPath})

	loaded, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Error(err, "document rejected")
		return err
	}
	printWarnings(cmd, loaded.Warnings)

	doc := loaded.Document
	theme := loaded.Theme()
	cfg := picker.Config{
		Title: doc.Title,
		Field: selectfield.Props{
			Label:       doc.Label,
			Placeholder: doc.Placeholder,
			Options:     loaded.Options,
			Value:       loaded.Value,
			MultiSelect: doc.MultiSelect,
			Searchable:  doc.Searchable,
			Disabled:    doc.Disabled,
		},
		SubmitOnSelect: opts.SubmitOnSelect,
		Theme:          &theme,
		Width:          doc.Width,
		MenuHeight:     doc.MenuHeight,
		Logger:         log,
	}

	if opts.Delay > 0 {
		cfg.Field.Options = nil
		cfg.Load = staticLoader(loaded.Options)
		cfg.Delay = opts.Delay
	}

	log.DebugFields("starting picker", map[string]any{"options": len(loaded.Options), "delay": opts.Delay.String()})
	res, err := runPicker(cmd, cfg)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), opts.Format, res)
}

func staticLoader(options []dropdown.Option) picker.Loader {
	return func(context.Context) ([]dropdown.Option, error) {
		return options, nil
	}
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
}

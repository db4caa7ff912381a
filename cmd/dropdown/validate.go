package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/dropdown/internal/config"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a dropdown document without opening the picker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(path); err != nil {
				return err
			}

			loaded, err := config.Load(path)
			if err != nil {
				root.log.Error(err, "validation failed")
				return err
			}

			printWarnings(cmd, loaded.Warnings)
			fmt.Fprintln(cmd.OutOrStdout(), describeDocument(loaded))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "Path to the dropdown document")

	return cmd
}

func describeDocument(l *config.Loaded) string {
	doc := l.Document

	mode := "single-select"
	if doc.MultiSelect {
		mode = "multi-select"
	}
	traits := []string{mode}
	if doc.Searchable {
		traits = append(traits, "searchable")
	}
	if doc.Disabled {
		traits = append(traits, "disabled")
	}

	disabled := 0
	for _, opt := range l.Options {
		if opt.Disabled {
			disabled++
		}
	}

	noun := "options"
	if len(l.Options) == 1 {
		noun = "option"
	}
	summary := fmt.Sprintf("%s: valid, %d %s (%s)", l.Path, len(l.Options), noun, strings.Join(traits, ", "))
	if disabled > 0 {
		summary += fmt.Sprintf(", %d disabled", disabled)
	}
	if n := l.Value.Len(); n > 0 {
		summary += fmt.Sprintf(", %d preselected", n)
	}
	return summary
}

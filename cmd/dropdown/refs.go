package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	"github.com/alexisbeaulieu97/dropdown/internal/sources/gitrefs"
	"github.com/alexisbeaulieu97/dropdown/internal/tui/picker"
	"github.com/alexisbeaulieu97/dropdown/internal/tui/selectfield"
)

type refsOptions struct {
	Repo           string
	Tags           bool
	Remotes        bool
	Multi          bool
	SubmitOnSelect bool
	Format         string
}

func newRefsCmd(root *rootFlags) *cobra.Command {
	opts := refsOptions{}

	cmd := &cobra.Command{
		Use:   "refs",
		Short: "Pick git branches or tags",
		Long: `Pick branches (and optionally tags or remote branches) of a git repository.
References are read in the background while a loading indicator is shown.
The checked out branch is preselected in single-select mode.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.Format); err != nil {
				return err
			}
			return runRefs(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Repo, "repo", ".", "Repository directory (parents are searched for .git)")
	cmd.Flags().BoolVar(&opts.Tags, "tags", false, "Include tags")
	cmd.Flags().BoolVar(&opts.Remotes, "remotes", false, "Include remote branches")
	cmd.Flags().BoolVar(&opts.Multi, "multi", false, "Allow picking several references")
	cmd.Flags().BoolVar(&opts.SubmitOnSelect, "submit-on-select", false, "Quit as soon as a single-select value is picked")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", formatText, "Output format (text or json)")

	return cmd
}

func runRefs(cmd *cobra.Command, root *rootFlags, opts refsOptions) error {
	log := root.log.WithFields(map[string]any{"command": "refs", "repo": opts.Repo})

	// fail fast on a directory that is not a repository
	head, err := gitrefs.Head(opts.Repo)
	if err != nil {
		log.Error(err, "repository unavailable")
		return err
	}

	value := dropdown.EmptyValue(opts.Multi)
	if head != "" && !opts.Multi {
		value = dropdown.Single(dropdown.StringID(head))
	}

	cfg := picker.Config{
		Title: "Git references",
		Field: selectfield.Props{
			Label:       "Reference",
			Placeholder: "Select a reference...",
			Value:       value,
			MultiSelect: opts.Multi,
			Searchable:  true,
		},
		Load:           gitrefs.Loader(gitrefs.Query{Dir: opts.Repo, Tags: opts.Tags, Remotes: opts.Remotes}),
		SubmitOnSelect: opts.SubmitOnSelect,
		Logger:         log,
	}

	res, err := runPicker(cmd, cfg)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), opts.Format, res)
}

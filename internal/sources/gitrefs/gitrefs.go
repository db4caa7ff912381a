// Package gitrefs lists the branches and tags of a local git repository as
// dropdown options.
package gitrefs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	dderrors "github.com/alexisbeaulieu97/dropdown/pkg/errors"
)

// SourceName identifies this source in errors.
const SourceName = "gitrefs"

const (
	GroupBranch = "branch"
	GroupRemote = "remote"
	GroupTag    = "tag"
)

// Query selects which references are listed.
type Query struct {
	Dir     string
	Tags    bool
	Remotes bool
}

// List opens the repository containing q.Dir and returns one option per
// reference. Local branches come first with the checked out branch at the
// top, then remote branches, then tags. Values are full reference names.
func List(ctx context.Context, q Query) ([]dropdown.Option, error) {
	repo, err := open(q.Dir)
	if err != nil {
		return nil, err
	}

	head := ""
	if ref, err := repo.Head(); err == nil && ref.Name().IsBranch() {
		head = ref.Name().String()
	}

	iter, err := repo.References()
	if err != nil {
		return nil, dderrors.NewSourceError(SourceName, fmt.Errorf("list references: %w", err))
	}
	defer iter.Close()

	var branches, remotes, tags []dropdown.Option
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ref.Type() != plumbing.HashReference {
			return nil
		}

		name := ref.Name()
		switch {
		case name.IsBranch():
			opt, err := describe(repo, ref, GroupBranch)
			if err != nil {
				return err
			}
			if name.String() == head {
				opt.Sublabel = "HEAD " + opt.Sublabel
			}
			branches = append(branches, opt)
		case name.IsRemote() && q.Remotes:
			opt, err := describe(repo, ref, GroupRemote)
			if err != nil {
				return err
			}
			remotes = append(remotes, opt)
		case name.IsTag() && q.Tags:
			opt, err := describe(repo, ref, GroupTag)
			if err != nil {
				return err
			}
			tags = append(tags, opt)
		}
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, dderrors.NewSourceError(SourceName, err)
	}

	sortOptions(branches, head)
	sortOptions(remotes, "")
	sortOptions(tags, "")

	options := make([]dropdown.Option, 0, len(branches)+len(remotes)+len(tags))
	options = append(options, branches...)
	options = append(options, remotes...)
	options = append(options, tags...)
	return options, nil
}

// Head returns the full name of the checked out branch, or an empty string
// for a detached HEAD.
func Head(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	ref, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", dderrors.NewSourceError(SourceName, fmt.Errorf("resolve HEAD: %w", err))
	}
	if !ref.Name().IsBranch() {
		return "", nil
	}
	return ref.Name().String(), nil
}

// Loader adapts List to an asynchronous option loader.
func Loader(q Query) func(context.Context) ([]dropdown.Option, error) {
	return func(ctx context.Context) ([]dropdown.Option, error) {
		return List(ctx, q)
	}
}

func open(dir string) (*git.Repository, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, dderrors.NewSourceError(SourceName, fmt.Errorf("open repository %s: %w", dir, err))
	}
	return repo, nil
}

func describe(repo *git.Repository, ref *plumbing.Reference, group string) (dropdown.Option, error) {
	commit, err := peel(repo, ref)
	if err != nil {
		return dropdown.Option{}, fmt.Errorf("%s: %w", ref.Name(), err)
	}

	hash := commit.Hash.String()
	return dropdown.Option{
		Value:    dropdown.StringID(ref.Name().String()),
		Label:    ref.Name().Short(),
		Sublabel: hash[:7] + " " + summary(commit.Message),
		Group:    group,
		Extra: map[string]any{
			"hash":   hash,
			"author": commit.Author.Name,
			"when":   commit.Author.When,
		},
	}, nil
}

// peel resolves annotated tags to the commit they point at.
func peel(repo *git.Repository, ref *plumbing.Reference) (*object.Commit, error) {
	if tag, err := repo.TagObject(ref.Hash()); err == nil {
		return tag.Commit()
	}
	return repo.CommitObject(ref.Hash())
}

func summary(message string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	return strings.TrimSpace(line)
}

func sortOptions(options []dropdown.Option, first string) {
	sort.SliceStable(options, func(i, j int) bool {
		a, b := options[i].Value.String(), options[j].Value.String()
		if a == first || b == first {
			return a == first && b != first
		}
		return options[i].Label < options[j].Label
	})
}

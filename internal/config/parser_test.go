package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	dderrors "github.com/alexisbeaulieu97/dropdown/pkg/errors"
)

const frameworksYAML = `title: Pick a framework
label: Framework
searchable: true
fields:
  value: id
  label: name
  sublabel: description
value: 2
theme:
  primary_color: "#10b981"
  padding: "0 2"
options:
  - id: 1
    name: React
    description: Frontend Library
  - id: 2
    name: Vue
    stars: 200
  - id: 3
    name: Angular
`

const languagesTOML = `title = "Languages"
multi_select = true
value = ["go", "zig"]

[theme]
border_style = "double"

[[options]]
value = "go"
label = "Go"

[[options]]
value = "rust"
label = "Rust"
disabled = true
`

func TestLoadYAMLDocument(t *testing.T) {
	t.Parallel()

	path := writeTempDocument(t, "frameworks.yaml", frameworksYAML)
	loaded, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, path, loaded.Path)
	require.Equal(t, "Pick a framework", loaded.Document.Title)
	require.True(t, loaded.Document.Searchable)
	require.Len(t, loaded.Options, 3)
	require.Equal(t, "React", loaded.Options[0].Label)
	require.Equal(t, "Frontend Library", loaded.Options[0].Sublabel)
	require.Equal(t, map[string]any{"stars": 200}, loaded.Options[1].Extra)

	id, ok := loaded.Value.ID()
	require.True(t, ok)
	require.Equal(t, dropdown.NumberID(2), id)
	require.Empty(t, loaded.Warnings)

	theme := loaded.Theme()
	require.Equal(t, lipgloss.Color("#10b981"), theme.Dropdown.Primary)
	require.Equal(t, lipgloss.Color("#10b981"), theme.Dropdown.FocusBorder)
	require.Equal(t, 2, theme.Dropdown.PaddingHorizontal)
}

func TestLoadTOMLDocument(t *testing.T) {
	t.Parallel()

	path := writeTempDocument(t, "languages.toml", languagesTOML)
	loaded, err := Load(path)
	require.NoError(t, err)

	require.True(t, loaded.Document.MultiSelect)
	require.Len(t, loaded.Options, 2)
	require.True(t, loaded.Options[1].Disabled)
	require.Equal(t, []dropdown.ID{dropdown.StringID("go"), dropdown.StringID("zig")}, loaded.Value.IDs())
	require.Equal(t, []string{`value "zig" matches no option`}, loaded.Warnings)
	require.Equal(t, "double", loaded.Theme().Dropdown.BorderStyle)
}

func TestLoadMultiSelectWithoutValueStartsEmpty(t *testing.T) {
	t.Parallel()

	path := writeTempDocument(t, "tags.yml", "multi_select: true\noptions:\n  - value: a\n")
	loaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, loaded.Value.IsMulti())
	require.Zero(t, loaded.Value.Len())
}

func TestLoadReportsParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		line     int
		message  string
	}{
		{
			name:     "malformed yaml",
			file:     "broken.yaml",
			contents: "title: ok\noptions: [\n",
			message:  "yaml",
		},
		{
			name:     "unknown yaml key",
			file:     "typo.yaml",
			contents: "title: ok\ncolour: red\n",
			line:     2,
			message:  "colour",
		},
		{
			name:     "unknown toml key",
			file:     "typo.toml",
			contents: "[theme]\nprimary_colour = \"#fff\"\n",
			line:     2,
			message:  "theme.primary_colour",
		},
		{
			name:     "unsupported extension",
			file:     "options.json",
			contents: "{}",
			message:  "unsupported document format",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeTempDocument(t, tc.file, tc.contents))
			var parseErr *dderrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Contains(t, parseErr.Message, tc.message)
			if tc.line > 0 {
				require.Equal(t, tc.line, parseErr.Line)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *dderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveCollectsEveryProblem(t *testing.T) {
	t.Parallel()

	contents := `width: 5
fields:
  label: "bad key!"
value: 1
multi_select: true
theme:
  primary_color: blue
  padding: "a b c"
  border_style: wavy
options:
  - label: no value here
`
	_, err := Load(writeTempDocument(t, "invalid.yaml", contents))
	require.Error(t, err)

	var errs dderrors.ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	require.ElementsMatch(t, []string{
		"width",
		"fields.label",
		"theme.primary_color",
		"theme.padding",
		"theme.border_style",
		"options",
		"value",
	}, fields)

	require.Contains(t, err.Error(), "7 validation errors")
	require.Contains(t, err.Error(), `"blue" is not a colour`)
	require.Contains(t, err.Error(), "must be a list in multi-select mode")
}

func TestResolveRejectsListInSingleMode(t *testing.T) {
	t.Parallel()

	_, err := Resolve("inline", &Document{
		Value:   []any{"a"},
		Options: []map[string]any{{"value": "a"}},
	})

	var validationErr *dderrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "value", validationErr.Field)
}

func TestResolveWarnsAboutDuplicates(t *testing.T) {
	t.Parallel()

	loaded, err := Resolve("inline", &Document{
		Options: []map[string]any{{"value": "a"}, {"value": "b"}, {"value": "a"}},
	})
	require.NoError(t, err)
	require.Len(t, loaded.Warnings, 1)
	require.Contains(t, loaded.Warnings[0], `duplicate option id "a"`)
	require.True(t, loaded.Value.IsNone())
}

func TestResolveNilDocument(t *testing.T) {
	t.Parallel()

	_, err := Resolve("inline", nil)
	var validationErr *dderrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func writeTempDocument(t *testing.T, name, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

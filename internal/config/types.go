package config

import (
	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	"github.com/alexisbeaulieu97/dropdown/internal/ui/components"
)

// Document is a dropdown definition as written on disk.
type Document struct {
	Title       string `yaml:"title" toml:"title" validate:"max=200"`
	Label       string `yaml:"label" toml:"label" validate:"max=100"`
	Placeholder string `yaml:"placeholder" toml:"placeholder" validate:"max=100"`

	MultiSelect bool `yaml:"multi_select" toml:"multi_select"`
	Searchable  bool `yaml:"searchable" toml:"searchable"`
	Disabled    bool `yaml:"disabled" toml:"disabled"`

	Width      int  `yaml:"width" toml:"width" validate:"omitempty,min=12,max=200"`
	MenuHeight int  `yaml:"menu_height" toml:"menu_height" validate:"omitempty,min=1,max=50"`
	Dark       bool `yaml:"dark" toml:"dark"`

	Fields FieldKeys                    `yaml:"fields" toml:"fields"`
	Theme  components.DropdownOverrides `yaml:"theme" toml:"theme"`

	// Value is a scalar in single-select mode and a list in multi-select
	// mode. It may be omitted in both.
	Value   any              `yaml:"value" toml:"value"`
	Options []map[string]any `yaml:"options" toml:"options" validate:"max=10000"`
}

// FieldKeys renames the record keys options are read from.
type FieldKeys struct {
	Label    string `yaml:"label" toml:"label" validate:"omitempty,field_key"`
	Value    string `yaml:"value" toml:"value" validate:"omitempty,field_key"`
	Sublabel string `yaml:"sublabel" toml:"sublabel" validate:"omitempty,field_key"`
	Disabled string `yaml:"disabled" toml:"disabled" validate:"omitempty,field_key"`
	Group    string `yaml:"group" toml:"group" validate:"omitempty,field_key"`
}

// FieldMap converts the keys to the projection field map.
func (f FieldKeys) FieldMap() dropdown.FieldMap {
	return dropdown.FieldMap{
		Label:    f.Label,
		Value:    f.Value,
		Sublabel: f.Sublabel,
		Disabled: f.Disabled,
		Group:    f.Group,
	}
}

// Loaded is a validated document with its options projected and its value
// normalised.
type Loaded struct {
	Path     string
	Document *Document
	Options  []dropdown.Option
	Value    dropdown.Selection
	// Warnings are problems that do not stop the dropdown from working,
	// such as duplicate ids or a value that matches no option.
	Warnings []string
}

// Theme returns the base theme chosen by the document with its dropdown
// overrides applied.
func (l *Loaded) Theme() components.Theme {
	base := components.DefaultTheme()
	if l.Document != nil && l.Document.Dark {
		base = components.DarkTheme()
	}
	if l.Document == nil {
		return base
	}
	return base.WithDropdown(l.Document.Theme)
}

package dropdown

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ID identifies an option. Text and numeric identities never compare equal,
// so StringID("1") and NumberID(1) are distinct values.
type ID struct {
	text    string
	number  float64
	numeric bool
}

// StringID returns a textual identity.
func StringID(s string) ID {
	return ID{text: s}
}

// NumberID returns a numeric identity.
func NumberID(n float64) ID {
	return ID{number: n, numeric: true}
}

// String renders the identity. Numbers use the shortest decimal form.
func (id ID) String() string {
	if id.numeric {
		return strconv.FormatFloat(id.number, 'f', -1, 64)
	}
	return id.text
}

// MarshalJSON encodes the id as a JSON string or number.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return json.Marshal(id.number)
	}
	return json.Marshal(id.text)
}

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseID converts a loosely typed scalar (as produced by YAML, TOML or JSON
// decoders) into an ID.
func ParseID(v any) (ID, error) {
	switch value := v.(type) {
	case ID:
		return value, nil
	case string:
		return StringID(value), nil
	case int:
		return NumberID(float64(value)), nil
	case int8:
		return NumberID(float64(value)), nil
	case int16:
		return NumberID(float64(value)), nil
	case int32:
		return NumberID(float64(value)), nil
	case int64:
		return NumberID(float64(value)), nil
	case uint:
		return NumberID(float64(value)), nil
	case uint8:
		return NumberID(float64(value)), nil
	case uint16:
		return NumberID(float64(value)), nil
	case uint32:
		return NumberID(float64(value)), nil
	case uint64:
		return NumberID(float64(value)), nil
	case float32:
		return numberID(float64(value))
	case float64:
		return numberID(value)
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return ID{}, fmt.Errorf("invalid numeric id %q: %w", value.String(), err)
		}
		return numberID(f)
	case nil:
		return ID{}, fmt.Errorf("id is missing")
	default:
		return ID{}, fmt.Errorf("id must be a string or number, got %T", v)
	}
}

func numberID(f float64) (ID, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ID{}, fmt.Errorf("id must be a finite number")
	}
	return NumberID(f), nil
}

// Option is one selectable entry. Value is its identity; Label is what the
// user sees. Options are owned by the caller and never mutated here.
type Option struct {
	Value    ID
	Label    string
	Sublabel string
	Disabled bool
	Group    string
	Extra    map[string]any
}

// LabelFunc resolves the text an option is displayed and searched by.
type LabelFunc func(Option) string

// DefaultLabel returns the option label, falling back to the id when the
// label is empty.
func DefaultLabel(o Option) string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value.String()
}

// FieldMap names the record keys used when projecting loosely typed records
// into options. Empty fields use the conventional key names.
type FieldMap struct {
	Label    string
	Value    string
	Sublabel string
	Disabled string
	Group    string
}

// WithDefaults fills empty keys with their conventional names.
func (f FieldMap) WithDefaults() FieldMap {
	if f.Label == "" {
		f.Label = "label"
	}
	if f.Value == "" {
		f.Value = "value"
	}
	if f.Sublabel == "" {
		f.Sublabel = "sublabel"
	}
	if f.Disabled == "" {
		f.Disabled = "disabled"
	}
	if f.Group == "" {
		f.Group = "group"
	}
	return f
}

// Project converts decoded records into options using the field map.
// A record whose value is missing or not a scalar is rejected.
func Project(records []map[string]any, fields FieldMap) ([]Option, error) {
	fields = fields.WithDefaults()
	options := make([]Option, 0, len(records))

	for i, record := range records {
		id, err := ParseID(record[fields.Value])
		if err != nil {
			return nil, fmt.Errorf("record %d: field %q: %w", i, fields.Value, err)
		}

		opt := Option{
			Value:    id,
			Label:    textField(record[fields.Label]),
			Sublabel: textField(record[fields.Sublabel]),
			Group:    textField(record[fields.Group]),
		}

		if raw, ok := record[fields.Disabled]; ok && raw != nil {
			disabled, ok := raw.(bool)
			if !ok {
				return nil, fmt.Errorf("record %d: field %q: expected boolean, got %T", i, fields.Disabled, raw)
			}
			opt.Disabled = disabled
		}

		for key, value := range record {
			switch key {
			case fields.Label, fields.Value, fields.Sublabel, fields.Disabled, fields.Group:
				continue
			}
			if opt.Extra == nil {
				opt.Extra = make(map[string]any)
			}
			opt.Extra[key] = value
		}

		options = append(options, opt)
	}

	return options, nil
}

func textField(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

// FindOption returns the first option with the given id.
func FindOption(options []Option, id ID) (Option, bool) {
	for _, opt := range options {
		if opt.Value == id {
			return opt, true
		}
	}
	return Option{}, false
}

// DuplicateIDs lists ids that appear more than once, in order of their
// second occurrence. Selection resolves duplicates to the first match.
func DuplicateIDs(options []Option) []ID {
	seen := make(map[ID]int, len(options))
	var dupes []ID
	for _, opt := range options {
		seen[opt.Value]++
		if seen[opt.Value] == 2 {
			dupes = append(dupes, opt.Value)
		}
	}
	return dupes
}

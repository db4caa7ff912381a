package dropdown

import "encoding/json"

type selectionKind int

const (
	selectionNone selectionKind = iota
	selectionSingle
	selectionMulti
)

// Selection is the externally owned current value: absent, a single id, or an
// ordered sequence of ids.
type Selection struct {
	kind selectionKind
	id   ID
	ids  []ID
}

// None returns the absent value.
func None() Selection {
	return Selection{}
}

// Single returns a scalar value.
func Single(id ID) Selection {
	return Selection{kind: selectionSingle, id: id}
}

// Multi returns a sequence value. Multi() is the empty sequence.
func Multi(ids ...ID) Selection {
	cp := make([]ID, len(ids))
	copy(cp, ids)
	return Selection{kind: selectionMulti, ids: cp}
}

// IsNone reports whether the value is absent.
func (s Selection) IsNone() bool {
	return s.kind == selectionNone
}

// IsMulti reports whether the value is a sequence.
func (s Selection) IsMulti() bool {
	return s.kind == selectionMulti
}

// ID returns the scalar id of a single value.
func (s Selection) ID() (ID, bool) {
	if s.kind != selectionSingle {
		return ID{}, false
	}
	return s.id, true
}

// IDs returns the value as a sequence: the members of a multi value, the id
// of a single value, or nothing for an absent value.
func (s Selection) IDs() []ID {
	switch s.kind {
	case selectionMulti:
		cp := make([]ID, len(s.ids))
		copy(cp, s.ids)
		return cp
	case selectionSingle:
		return []ID{s.id}
	default:
		return []ID{}
	}
}

// Len returns the number of ids held.
func (s Selection) Len() int {
	switch s.kind {
	case selectionMulti:
		return len(s.ids)
	case selectionSingle:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both values have the same shape and ids in the same order.
func (s Selection) Equal(other Selection) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case selectionSingle:
		return s.id == other.id
	case selectionMulti:
		if len(s.ids) != len(other.ids) {
			return false
		}
		for i := range s.ids {
			if s.ids[i] != other.ids[i] {
				return false
			}
		}
	}
	return true
}

// MarshalJSON encodes absent as null, single as a scalar and multi as an array.
func (s Selection) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case selectionSingle:
		return json.Marshal(s.id)
	case selectionMulti:
		return json.Marshal(s.ids)
	default:
		return []byte("null"), nil
	}
}

// SelectionFrom builds a value from a decoded scalar or list.
func SelectionFrom(v any) (Selection, error) {
	switch value := v.(type) {
	case nil:
		return None(), nil
	case Selection:
		return value, nil
	case []any:
		ids := make([]ID, 0, len(value))
		for _, item := range value {
			id, err := ParseID(item)
			if err != nil {
				return Selection{}, err
			}
			ids = append(ids, id)
		}
		return Multi(ids...), nil
	case []string:
		ids := make([]ID, 0, len(value))
		for _, item := range value {
			ids = append(ids, StringID(item))
		}
		return Multi(ids...), nil
	default:
		id, err := ParseID(value)
		if err != nil {
			return Selection{}, err
		}
		return Single(id), nil
	}
}

// SelectedOptions resolves the value against the option list. Ids with no
// matching option are dropped.
func SelectedOptions(options []Option, value Selection) []Option {
	switch value.kind {
	case selectionMulti:
		return OptionsFor(options, value.ids)
	case selectionSingle:
		if opt, ok := FindOption(options, value.id); ok {
			return []Option{opt}
		}
	}
	return []Option{}
}

// OptionsFor returns, in option-list order, the first option for every id in ids.
func OptionsFor(options []Option, ids []ID) []Option {
	members := make(map[ID]bool, len(ids))
	for _, id := range ids {
		members[id] = true
	}

	result := make([]Option, 0, len(ids))
	for _, opt := range options {
		if members[opt.Value] {
			result = append(result, opt)
			delete(members, opt.Value)
		}
	}
	return result
}

// IsSelected tests sequence membership for multi values and equality for single ones.
func IsSelected(value Selection, id ID) bool {
	switch value.kind {
	case selectionMulti:
		for _, member := range value.ids {
			if member == id {
				return true
			}
		}
		return false
	case selectionSingle:
		return value.id == id
	default:
		return false
	}
}

// Toggled returns the value after option is clicked. In multi mode the id is
// removed when present and appended otherwise; in single mode the option's
// id replaces whatever was there.
//
// A single value met in multi mode becomes a one-element sequence, except
// the cleared value Single(StringID("")), which counts as no selection.
// Numeric zero is a real id and is kept.
func Toggled(value Selection, option Option, multi bool) Selection {
	if !multi {
		return Single(option.Value)
	}

	current := members(value)
	if IsSelected(Multi(current...), option.Value) {
		return Without(value, option.Value)
	}
	return Multi(append(current, option.Value)...)
}

// Without returns the value as a sequence with every occurrence of id removed.
func Without(value Selection, id ID) Selection {
	current := members(value)
	kept := make([]ID, 0, len(current))
	for _, member := range current {
		if member != id {
			kept = append(kept, member)
		}
	}
	return Multi(kept...)
}

// members lists the ids of value as a sequence.
func members(value Selection) []ID {
	if value.kind == selectionSingle && value.id == StringID("") {
		return []ID{}
	}
	return value.IDs()
}

// EmptyValue is the value emitted by a clear: an empty sequence in multi mode
// and the empty string in single mode.
func EmptyValue(multi bool) Selection {
	if multi {
		return Multi()
	}
	return Single(StringID(""))
}

package dropdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func labelsOf(opts []Option) []string {
	labels := make([]string, 0, len(opts))
	for _, opt := range opts {
		labels = append(labels, opt.Label)
	}
	return labels
}

func TestVisibleOptionsIdentity(t *testing.T) {
	opts := frameworks()

	notSearchable := VisibleOptions(opts, false, "vue", nil)
	assert.Equal(t, opts, notSearchable)
	assert.Same(t, &opts[0], &notSearchable[0])

	emptySearch := VisibleOptions(opts, true, "", nil)
	assert.Same(t, &opts[0], &emptySearch[0])
}

func TestVisibleOptionsSubstring(t *testing.T) {
	opts := frameworks()

	assert.Equal(t, []string{"Angular"}, labelsOf(VisibleOptions(opts, true, "an", nil)))
	assert.Equal(t, []string{"React"}, labelsOf(VisibleOptions(opts, true, "REA", nil)))
	assert.Empty(t, VisibleOptions(opts, true, "svelte", nil))
}

func TestVisibleOptionsIgnoresSublabel(t *testing.T) {
	assert.Empty(t, VisibleOptions(frameworks(), true, "library", nil))
}

func TestVisibleOptionsFallsBackToID(t *testing.T) {
	opts := []Option{
		{Value: NumberID(42)},
		{Value: StringID("x"), Label: "Answer"},
	}
	got := VisibleOptions(opts, true, "42", nil)
	assert.Len(t, got, 1)
	assert.Equal(t, NumberID(42), got[0].Value)
}

func TestVisibleOptionsCustomLabel(t *testing.T) {
	byGroup := func(o Option) string { return o.Group }
	opts := []Option{
		{Value: StringID("a"), Label: "Alpha", Group: "letters"},
		{Value: StringID("1"), Label: "One", Group: "digits"},
	}
	assert.Equal(t, []string{"One"}, labelsOf(VisibleOptions(opts, true, "dig", byGroup)))
}

func TestVisibleOptionsIsOrderedSubsequence(t *testing.T) {
	opts := []Option{
		{Value: StringID("1"), Label: "banana"},
		{Value: StringID("2"), Label: "Bandana"},
		{Value: StringID("3"), Label: "apple"},
		{Value: StringID("4"), Label: "CABANA"},
		{Value: StringID("5"), Label: "ban"},
	}

	for _, search := range []string{"an", "BAN", "a", "z", "ana"} {
		got := VisibleOptions(opts, true, search, nil)

		cursor := 0
		for _, opt := range got {
			assert.Contains(t, strings.ToLower(opt.Label), strings.ToLower(search))
			for cursor < len(opts) && opts[cursor].Value != opt.Value {
				cursor++
			}
			assert.Less(t, cursor, len(opts), "%q is not an ordered subsequence", search)
			cursor++
		}
	}
}

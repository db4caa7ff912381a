package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollIntoView(t *testing.T) {
	tests := []struct {
		name                        string
		offset, height, top, bottom int
		want                        int
	}{
		{name: "already visible", offset: 2, height: 5, top: 3, bottom: 4, want: 2},
		{name: "exactly fills window", offset: 0, height: 5, top: 4, bottom: 5, want: 0},
		{name: "above window", offset: 6, height: 5, top: 2, bottom: 3, want: 2},
		{name: "below window", offset: 0, height: 5, top: 7, bottom: 8, want: 3},
		{name: "taller item below", offset: 0, height: 3, top: 4, bottom: 6, want: 3},
		{name: "no window", offset: 4, height: 0, top: 9, bottom: 10, want: 4},
		{name: "empty item", offset: 1, height: 3, top: 8, bottom: 8, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScrollIntoView(tt.offset, tt.height, tt.top, tt.bottom))
		})
	}
}

func TestScrollIntoViewIsIdempotent(t *testing.T) {
	offset := 0
	for _, row := range []int{9, 3, 0, 14, 14, 7} {
		offset = ScrollIntoView(offset, 4, row, row+1)
		again := ScrollIntoView(offset, 4, row, row+1)
		assert.Equal(t, offset, again)
		assert.LessOrEqual(t, offset, row)
		assert.Greater(t, offset+4, row)
	}
}

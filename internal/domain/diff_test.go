package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func joinSegments(segs []DiffSegment) string {
	var out string
	for _, s := range segs {
		out += s.Text
	}
	return out
}

func TestRenameDiff(t *testing.T) {
	t.Run("identical names produce one equal segment", func(t *testing.T) {
		old, new := RenameDiff("same.txt", "same.txt")
		assert.Equal(t, []DiffSegment{{Text: "same.txt", Type: DiffEqual}}, old)
		assert.Equal(t, old, new)
	})

	t.Run("empty names produce no segments", func(t *testing.T) {
		old, new := RenameDiff("", "")
		assert.Nil(t, old)
		assert.Nil(t, new)
	})

	t.Run("segments reassemble both names", func(t *testing.T) {
		old, new := RenameDiff("img2.jpg", "Photo02.jpg")
		assert.Equal(t, "img2.jpg", joinSegments(old))
		assert.Equal(t, "Photo02.jpg", joinSegments(new))
	})

	t.Run("old side never contains inserts, new side never deletes", func(t *testing.T) {
		old, new := RenameDiff("holiday_1.png", "Trip01.png")
		for _, s := range old {
			assert.NotEqual(t, DiffInsert, s.Type)
		}
		for _, s := range new {
			assert.NotEqual(t, DiffDelete, s.Type)
		}
	})

	t.Run("shared suffix stays equal", func(t *testing.T) {
		old, _ := RenameDiff("a.jpg", "b.jpg")
		last := old[len(old)-1]
		assert.Equal(t, DiffEqual, last.Type)
		assert.Equal(t, ".jpg", last.Text)
	})
}

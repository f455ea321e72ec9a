package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Run("digit runs compare numerically", func(t *testing.T) {
		assert.Negative(t, Compare("item2", "item10"))
		assert.Negative(t, Compare("file_2", "file_10"))
		assert.Positive(t, Compare("img10.jpg", "img9.jpg"))
	})

	t.Run("never less than itself", func(t *testing.T) {
		for _, s := range []string{"", "a", "item2", "img10.jpg"} {
			assert.Zero(t, Compare(s, s))
		}
	})

	t.Run("total order on collation ties", func(t *testing.T) {
		// "01" and "1" have the same numeric value; the bytewise
		// tiebreak keeps the order deterministic and antisymmetric.
		assert.Equal(t, -Compare("a1", "a01"), Compare("a01", "a1"))
		assert.NotZero(t, Compare("a01", "a1"))
	})

	t.Run("empty string sorts first", func(t *testing.T) {
		assert.Negative(t, Compare("", "anything"))
	})
}

func TestSortItems(t *testing.T) {
	t.Run("natural order within one group", func(t *testing.T) {
		items := []Item{
			{Name: "img2.jpg"},
			{Name: "img10.jpg"},
			{Name: "img1.jpg"},
		}
		SortItems(items)

		got := []string{items[0].Name, items[1].Name, items[2].Name}
		assert.Equal(t, []string{"img1.jpg", "img2.jpg", "img10.jpg"}, got)
	})

	t.Run("groups order before names, ungrouped first", func(t *testing.T) {
		items := []Item{
			{Name: "a.png", Group: "/root/Feb"},
			{Name: "z.png", Group: ""},
			{Name: "b.png", Group: "/root/Album2"},
			{Name: "a.png", Group: "/root/Album10"},
		}
		SortItems(items)

		assert.Equal(t, "", items[0].Group)
		assert.Equal(t, "/root/Album2", items[1].Group)
		assert.Equal(t, "/root/Album10", items[2].Group)
		assert.Equal(t, "/root/Feb", items[3].Group)
	})
}

func TestSortNames(t *testing.T) {
	names := []string{"Feb", "Jan", "Album10", "Album2"}
	SortNames(names)
	assert.Equal(t, []string{"Album2", "Album10", "Feb", "Jan"}, names)
}

package domain

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The comparator uses the root (und) collation with numeric and
// case-insensitive options, so "file2" sorts before "file10" the way Finder
// orders it. The root collation is deliberate: ordering must not drift with
// the host locale between preview and execution. Collators keep internal
// buffers, hence the lock.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
)

// Compare is a total natural order over display names. Names that collate
// equal (case or leading-zero variants) are tie-broken bytewise so the
// order stays deterministic.
func Compare(a, b string) int {
	collatorMu.Lock()
	c := collator.CompareString(a, b)
	collatorMu.Unlock()
	if c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// CompareItems is the canonical application order for previews and
// execution: group path first (ungrouped items sort ahead of any group,
// since the empty key collates first), then item name.
func CompareItems(a, b Item) int {
	if c := Compare(a.Group, b.Group); c != 0 {
		return c
	}
	return Compare(a.Name, b.Name)
}

// SortItems sorts items in place by CompareItems.
func SortItems(items []Item) {
	slices.SortStableFunc(items, CompareItems)
}

// SortNames sorts name strings in place in natural order.
func SortNames(names []string) {
	slices.SortStableFunc(names, Compare)
}

package domain

// DiffType classifies a diff segment.
type DiffType int

const (
	DiffEqual DiffType = iota
	DiffDelete
	DiffInsert
)

// DiffSegment is a run of characters sharing one diff type.
type DiffSegment struct {
	Text string
	Type DiffType
}

// RenameDiff computes a character-level LCS diff between the current and
// proposed name. It returns two segment slices: one for the old name
// (Equal+Delete) and one for the new name (Equal+Insert), used to highlight
// what a rename changes in the preview.
func RenameDiff(oldName, newName string) (old, new []DiffSegment) {
	if oldName == newName {
		if oldName == "" {
			return nil, nil
		}
		seg := []DiffSegment{{Text: oldName, Type: DiffEqual}}
		return seg, seg
	}

	a := []rune(oldName)
	b := []rune(newName)
	table := lcsTable(a, b)

	// Walk the table backwards, then reverse, to get edits in order.
	type edit struct {
		r    rune
		kind DiffType
	}
	var edits []edit
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			edits = append(edits, edit{a[i-1], DiffEqual})
			i--
			j--
		case j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]):
			edits = append(edits, edit{b[j-1], DiffInsert})
			j--
		default:
			edits = append(edits, edit{a[i-1], DiffDelete})
			i--
		}
	}
	for l, r := 0, len(edits)-1; l < r; l, r = l+1, r-1 {
		edits[l], edits[r] = edits[r], edits[l]
	}

	for _, e := range edits {
		switch e.kind {
		case DiffEqual:
			old = appendRun(old, e.r, DiffEqual)
			new = appendRun(new, e.r, DiffEqual)
		case DiffDelete:
			old = appendRun(old, e.r, DiffDelete)
		case DiffInsert:
			new = appendRun(new, e.r, DiffInsert)
		}
	}
	return old, new
}

func appendRun(segs []DiffSegment, r rune, typ DiffType) []DiffSegment {
	if n := len(segs); n > 0 && segs[n-1].Type == typ {
		segs[n-1].Text += string(r)
		return segs
	}
	return append(segs, DiffSegment{Text: string(r), Type: typ})
}

func lcsTable(a, b []rune) [][]int {
	m, n := len(a), len(b)
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case a[i-1] == b[j-1]:
				table[i][j] = table[i-1][j-1] + 1
			case table[i-1][j] >= table[i][j-1]:
				table[i][j] = table[i-1][j]
			default:
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table
}

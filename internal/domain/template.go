package domain

import (
	"fmt"
	"strconv"
)

// Template is a parsed naming template: a literal base plus numbering
// derived from the template's trailing digit run.
type Template struct {
	Base  string
	Start int // first sequence number
	Pad   int // zero-padding width, 0 for plain decimal
}

// ParseTemplate splits input into a base string and numbering. The longest
// run of decimal digits anchored at the end of input supplies the start
// value and the padding width: "Test01" numbers 01, 02, … while "Test2"
// numbers 2, 3, … With no trailing digits the whole input is the base and
// the sequence starts at 1. ParseTemplate never fails.
func ParseTemplate(input string) Template {
	i := len(input)
	for i > 0 && input[i-1] >= '0' && input[i-1] <= '9' {
		i--
	}
	digits := input[i:]
	if digits == "" {
		return Template{Base: input, Start: 1}
	}

	start, err := strconv.Atoi(digits)
	if err != nil {
		// Digit run too long for int; fall back to the default start.
		start = 1
	}
	pad := len(digits)
	if pad == 1 {
		// Width-1 padding never changes output.
		pad = 0
	}
	return Template{Base: input[:i], Start: start, Pad: pad}
}

// MakeName renders the name for one sequence number. Files keep their
// extension; folders never receive one, whatever ext holds.
func MakeName(base string, number, pad int, ext string, isFile bool) string {
	var seq string
	if pad > 0 {
		seq = fmt.Sprintf("%0*d", pad, number)
	} else {
		seq = strconv.Itoa(number)
	}

	name := base + seq
	if isFile && ext != "" {
		if ext[0] != '.' {
			name += "."
		}
		name += ext
	}
	return name
}

// Name renders the sequence name at offset i from the template's start.
func (t Template) Name(i int, ext string, isFile bool) string {
	return MakeName(t.Base, t.Start+i, t.Pad, ext, isFile)
}

// Package grades holds the V-scale bouldering taxonomy and its display order.
package grades

import (
	"cmp"
	"strings"
)

// scale is the fixed bouldering vocabulary from easiest to hardest.
var scale = []string{
	"V0-", "V0", "V1", "V2", "V3", "V4", "V5", "V6", "V7", "V8",
	"V9", "V10", "V11", "V12", "V13", "V14", "V15", "V16", "V17", "V17+",
}

// MaxNameLength matches the width of grades.name column.
const MaxNameLength = 5

var ordinals = func() map[string]int {
	m := make(map[string]int, len(scale))
	for i, name := range scale {
		m[name] = i
	}
	return m
}()

// Names returns a copy of the scale, so callers can't reorder it.
func Names() []string {
	out := make([]string, len(scale))
	copy(out, scale)
	return out
}

func IsValid(name string) bool {
	_, ok := ordinals[name]
	return ok
}

// Ordinal returns position of name in the scale, or -1 for unknown labels.
func Ordinal(name string) int {
	if i, ok := ordinals[name]; ok {
		return i
	}
	return -1
}

// Compare orders grade labels by their place in the scale.
// Unknown labels sort after every known one and among themselves by raw string order.
func Compare(a, b string) int {
	oa, okA := ordinals[a]
	ob, okB := ordinals[b]
	switch {
	case okA && okB:
		return cmp.Compare(oa, ob)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

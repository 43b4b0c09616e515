package lint

import (
	"fmt"
	"strings"
)

// Diff compares two analyses and describes the problems that appeared since
// the earlier one. A nil before is treated as the empty baseline. Only
// strict growth in a flagged-element count contributes; shrinking or
// unchanged counts produce no text even when the actual indices changed.
// Returns "" when nothing grew, meaning no announcement.
func Diff(before *Analysis, after Analysis) string {
	prev := map[string]BadElements{}
	if before != nil {
		for _, r := range before.Reports {
			prev[r.Check.Label] = r.Elems
		}
	}

	var fragments []string
	for _, r := range after.Reports {
		prevElems := prev[r.Check.Label]
		var parts []string
		for _, kind := range ElemKinds {
			growth := len(r.Elems[kind]) - len(prevElems[kind])
			if growth > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", growth, depluralize(growth, string(kind))))
			}
		}
		if len(parts) > 0 {
			fragments = append(fragments, r.Check.Label+": "+strings.Join(parts, ", "))
		}
	}
	if len(fragments) == 0 {
		return ""
	}
	return "Found " + strings.Join(fragments, ", ")
}

// depluralize knocks trailing "s" characters off a noun when the count is
// exactly one. Deliberately naive: "foxes" comes out wrong and "sheep"
// comes out right.
func depluralize(count int, noun string) string {
	if count == 1 {
		return strings.TrimRight(noun, "s")
	}
	return noun
}

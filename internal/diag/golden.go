package diag

import (
	"fmt"
	"strings"
)

// Format renders a bag into a stable, single-line-per-entry representation
// suitable for golden comparisons and CLI output. The bag is sorted and
// deduplicated first, so the result is a pure function of its contents.
func Format(b *Bag, includeNotes bool) string {
	if b == nil || b.Len() == 0 {
		return ""
	}
	b.Sort()
	b.Dedup()

	var sb strings.Builder
	for i, d := range b.Items() {
		fmt.Fprintf(&sb, "%s %s %s: %s", d.Severity, d.Code.ID(), d.Path, d.Message)
		if includeNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(&sb, "\n  note: %s: %s", n.Path, n.Msg)
			}
		}
		if i < b.Len()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

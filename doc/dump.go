package doc

import (
	"fmt"
	"strings"
)

// Dump renders a human-readable, indented tree view of the document
// rooted at h — the pre-render shape the CLI's "doctor doc" subcommand
// prints for engine debugging, one node kind per line.
func (a *Arena) Dump(h Handle) string {
	var sb strings.Builder
	a.dumpNode(&sb, h, 0)
	return sb.String()
}

func (a *Arena) dumpNode(sb *strings.Builder, h Handle, depth int) {
	n := a.get(h)
	indent := strings.Repeat("  ", depth)

	switch n.kind {
	case kEmpty:
		fmt.Fprintf(sb, "%sEmpty\n", indent)
	case kText:
		fmt.Fprintf(sb, "%sText(%q)\n", indent, n.text)
	case kHardLine:
		fmt.Fprintf(sb, "%sHardLine\n", indent)
	case kBreak:
		fmt.Fprintf(sb, "%sBreak(alt=%q)\n", indent, n.text)
	case kConcat:
		fmt.Fprintf(sb, "%sConcat\n", indent)
		a.dumpNode(sb, n.a, depth+1)
		a.dumpNode(sb, n.b, depth+1)
	case kGroup:
		fmt.Fprintf(sb, "%sGroup\n", indent)
		a.dumpNode(sb, n.child, depth+1)
	case kNest:
		fmt.Fprintf(sb, "%sNest\n", indent)
		a.dumpNode(sb, n.child, depth+1)
	case kAlign:
		fmt.Fprintf(sb, "%sAlign\n", indent)
		a.dumpNode(sb, n.child, depth+1)
	case kFlatChoice:
		fmt.Fprintf(sb, "%sFlatChoice\n", indent)
		fmt.Fprintf(sb, "%s  flat:\n", indent)
		a.dumpNode(sb, n.a, depth+2)
		fmt.Fprintf(sb, "%s  break:\n", indent)
		a.dumpNode(sb, n.b, depth+2)
	case kPrefixedReflow:
		fmt.Fprintf(sb, "%sPrefixedReflow(prefix=%q, text=%q)\n", indent, n.text, n.alt)
	default:
		fmt.Fprintf(sb, "%s<unknown kind %d>\n", indent, n.kind)
	}
}

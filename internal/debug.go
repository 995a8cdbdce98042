package internal

import "fmt"

// depthReport renders the resolver's side-table as one line per entry,
// naming the token the hop count was computed for (SPEC_FULL.md §13).
// stmts is unused by the lookup itself — the side-table is already
// complete after resolveAll — but keeping it as a parameter makes the
// call site read as "report on this program" rather than "dump global
// state", and leaves room for a future per-statement breakdown.
func depthReport(state *interpreterState, stmts []stmt) []string {
	var lines []string
	for node, depth := range state.depths {
		lines = append(lines, fmt.Sprintf("%s -> %d", describeDepthNode(node), depth))
	}
	return lines
}

func describeDepthNode(e expr) string {
	switch n := e.(type) {
	case *variableExpr:
		return fmt.Sprintf("var %s (line %d)", n.name.lexeme, n.name.line)
	case *assignExpr:
		return fmt.Sprintf("assign %s (line %d)", n.name.lexeme, n.name.line)
	case *thisExpr:
		return fmt.Sprintf("this (line %d)", n.keyword.line)
	case *superExpr:
		return fmt.Sprintf("super.%s (line %d)", n.method.lexeme, n.method.line)
	default:
		return "expr"
	}
}

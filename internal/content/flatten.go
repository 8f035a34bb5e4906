package content

import (
	"strings"

	"git.home.luguber.info/inful/sigrender/internal/model"
)

// Flatten projects a node tree onto plain text, depth-first. Link nodes contribute
// their display text. Used by the CLI output path and by tests asserting on
// rendered signatures.
func Flatten(n Node) string {
	var sb strings.Builder
	flattenInto(&sb, n, nil)
	return sb.String()
}

// FlattenFor is Flatten restricted to nodes whose scope includes ss. Nodes with an
// empty scope are treated as applying everywhere.
func FlattenFor(n Node, ss model.SourceSet) string {
	var sb strings.Builder
	flattenInto(&sb, n, func(node Node) bool {
		scope := node.Scope()
		return len(scope) == 0 || model.ContainsSourceSet(scope, ss)
	})
	return sb.String()
}

func flattenInto(sb *strings.Builder, n Node, keep func(Node) bool) {
	if keep != nil && !keep(n) {
		return
	}
	switch t := n.(type) {
	case Text:
		sb.WriteString(t.Value)
	case Link:
		sb.WriteString(t.Text)
	case Group:
		for _, child := range t.Children {
			flattenInto(sb, child, keep)
		}
	}
}

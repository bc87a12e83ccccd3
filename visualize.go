package regex

import (
	"fmt"
	"strings"
)

// tabSize is the indentation width per tree depth in Visualisation output.
const tabSize = 4

// Size returns the number of root-level nodes when recursive is false.
// When recursive is true it returns the number of leaves in the whole tree,
// the count of atomic matchable units.
func (c *Composer) Size(recursive bool) int {
	if !recursive {
		return len(c.nodes)
	}
	count := 0
	c.Traverse(func(_ Node, _ int, hasChildren bool) {
		if !hasChildren {
			count++
		}
	})
	return count
}

// nodeSize counts the leaves below n; a leaf counts as one.
func nodeSize(n Node) int {
	kids := n.children()
	if len(kids) == 0 {
		return 1
	}
	total := 0
	for _, k := range kids {
		total += nodeSize(k)
	}
	return total
}

// Visualisation renders the tree as indented text, one line per visited
// item. Composite nodes show their type label, recursive size and full
// serialized form; scalar leaves show their type label and literal value.
// With html set, type labels are wrapped in <strong> and values in <code>
// so downstream renderers can pick the pieces apart.
func (c *Composer) Visualisation(html bool) string {
	var b strings.Builder
	c.Traverse(func(n Node, depth int, hasChildren bool) {
		b.WriteString(strings.Repeat(" ", depth*tabSize))
		label := n.Type().String()
		var value string
		if hasChildren {
			label = fmt.Sprintf("%s (size %d)", label, nodeSize(n))
			value = n.Serialize()
		} else if lit, ok := n.(*Literal); ok {
			value = fmt.Sprintf("%v", lit.Value())
		} else {
			value = n.Serialize()
		}
		if html {
			fmt.Fprintf(&b, "<strong>%s</strong>: <code>%s</code><br/>\n", label, value)
		} else {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	})
	return b.String()
}

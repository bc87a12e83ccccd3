package regex

// Visitor receives each visited item: the node itself, its depth (root
// nodes are at depth 0) and whether the node has children of its own.
// Scalar leaves are visited with hasChildren false; their original value is
// available through (*Literal).Value.
type Visitor func(node Node, depth int, hasChildren bool)

// Traverse walks the root sequence depth-first in pre-order: each composite
// node is visited before its children, children in insertion order. Every
// node is visited exactly once. The walk never mutates the tree and may be
// repeated on the same Composer.
func (c *Composer) Traverse(visit Visitor) {
	for _, n := range c.nodes {
		walk(n, 0, visit)
	}
}

func walk(n Node, depth int, visit Visitor) {
	kids := n.children()
	visit(n, depth, len(kids) > 0)
	for _, k := range kids {
		walk(k, depth+1, visit)
	}
}

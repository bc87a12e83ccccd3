package regex

import (
	"strconv"
	"strings"
)

// NodeType identifies the kind of an expression node.
type NodeType int

const (
	TypeLiteral NodeType = iota
	TypeAnd
	TypeOr
	TypeOption
	TypeRepetition
	TypeRange
	TypeCapturingGroup
	TypeComment
	TypeRaw
)

func (t NodeType) String() string {
	switch t {
	case TypeLiteral:
		return "literal"
	case TypeAnd:
		return "and"
	case TypeOr:
		return "or"
	case TypeOption:
		return "option"
	case TypeRepetition:
		return "repetition"
	case TypeRange:
		return "range"
	case TypeCapturingGroup:
		return "capturing-group"
	case TypeComment:
		return "comment"
	case TypeRaw:
		return "raw"
	}
	return "unknown(" + strconv.Itoa(int(t)) + ")"
}

// Node is the interface implemented by every expression node variant. The
// variant set is closed: nodes are built through a Composer and owned
// exclusively by the composite that created them.
type Node interface {
	Type() NodeType
	// Serialize returns the node's pattern fragment.
	Serialize() string
	// children returns the node's ordered children; nil for leaves.
	children() []Node
}

// Literal is a scalar leaf. Its pattern text is fixed when the parent node
// is built: quoted through the host escape function for auto-quoting
// parents, verbatim inside Range, Comment and Raw.
type Literal struct {
	value any
	text  string
}

func (n *Literal) Type() NodeType    { return TypeLiteral }
func (n *Literal) Serialize() string { return n.text }
func (n *Literal) children() []Node  { return nil }

// Value returns the original scalar the leaf was built from.
func (n *Literal) Value() any { return n.value }

// And concatenates its children with no wrapping syntax.
type And struct {
	nodes []Node
}

func (n *And) Type() NodeType    { return TypeAnd }
func (n *And) Serialize() string { return serializeAll(n.nodes) }
func (n *And) children() []Node  { return n.nodes }

// Or matches one of its children. The branches are wrapped in plain
// parentheses, so every alternation also counts as a capture group.
type Or struct {
	nodes []Node
}

func (n *Or) Type() NodeType   { return TypeOr }
func (n *Or) children() []Node { return n.nodes }

func (n *Or) Serialize() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range n.nodes {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(c.Serialize())
	}
	b.WriteByte(')')
	return b.String()
}

// Option matches its children zero or one time.
type Option struct {
	nodes []Node
}

func (n *Option) Type() NodeType    { return TypeOption }
func (n *Option) Serialize() string { return "(" + serializeAll(n.nodes) + ")?" }
func (n *Option) children() []Node  { return n.nodes }

// Infinite marks a repetition with no upper bound.
const Infinite = -1

// Repetition matches its children between min and max times.
type Repetition struct {
	min   int
	max   int // Infinite for no upper bound
	nodes []Node
}

func (n *Repetition) Type() NodeType   { return TypeRepetition }
func (n *Repetition) children() []Node { return n.nodes }

// Min returns the lower repetition bound.
func (n *Repetition) Min() int { return n.min }

// Max returns the upper repetition bound, Infinite when unbounded.
func (n *Repetition) Max() int { return n.max }

// Serialize appends the shortest quantifier suffix that expresses the
// bounds. The cases are checked in priority order; {1,1} emits no suffix
// at all.
func (n *Repetition) Serialize() string {
	body := serializeAll(n.nodes)
	switch {
	case n.min == 0 && n.max == 1:
		return body + "?"
	case n.min == 1 && n.max == 1:
		return body
	case n.min == n.max:
		return body + "{" + strconv.Itoa(n.min) + "}"
	case n.min == 0 && n.max == Infinite:
		return body + "*"
	case n.min == 1 && n.max == Infinite:
		return body + "+"
	case n.max == Infinite:
		return body + "{" + strconv.Itoa(n.min) + ",}"
	default:
		return body + "{" + strconv.Itoa(n.min) + "," + strconv.Itoa(n.max) + "}"
	}
}

// Range is a bracket expression assembled from raw fragments, e.g.
// [a-z0-9]. Fragments are never quoted.
type Range struct {
	fragments []Node
	inverted  bool
}

func (n *Range) Type() NodeType   { return TypeRange }
func (n *Range) children() []Node { return n.fragments }

// SetInverted toggles negation of the bracket expression.
func (n *Range) SetInverted(inverted bool) { n.inverted = inverted }

// Inverted reports whether the bracket expression is negated.
func (n *Range) Inverted() bool { return n.inverted }

func (n *Range) Serialize() string {
	var b strings.Builder
	b.WriteByte('[')
	if n.inverted {
		b.WriteByte('^')
	}
	for _, f := range n.fragments {
		b.WriteString(f.Serialize())
	}
	b.WriteByte(']')
	return b.String()
}

// CapturingGroup wraps its children in capturing parentheses.
type CapturingGroup struct {
	nodes []Node
}

func (n *CapturingGroup) Type() NodeType    { return TypeCapturingGroup }
func (n *CapturingGroup) Serialize() string { return "(" + serializeAll(n.nodes) + ")" }
func (n *CapturingGroup) children() []Node  { return n.nodes }

// Comment is an inline pattern comment, (?#...). Texts are inserted raw,
// which is why an unescaped ) is rejected at construction.
type Comment struct {
	texts []Node
}

func (n *Comment) Type() NodeType    { return TypeComment }
func (n *Comment) Serialize() string { return "(?#" + serializeAll(n.texts) + ")" }
func (n *Comment) children() []Node  { return n.texts }

// Raw concatenates its fragments verbatim, with no quoting and no wrapping.
type Raw struct {
	nodes []Node
}

func (n *Raw) Type() NodeType    { return TypeRaw }
func (n *Raw) Serialize() string { return serializeAll(n.nodes) }
func (n *Raw) children() []Node  { return n.nodes }

func serializeAll(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Serialize())
	}
	return b.String()
}

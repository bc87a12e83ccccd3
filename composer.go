package regex

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

const defaultDelimiter = '/'

// Modifier shortcuts understood by AddModifier and RemoveModifier.
const (
	ModifierInsensitive = 'i' // case-insensitive matching
	ModifierMultiLine   = 'm' // ^ and $ match at line boundaries
	ModifierSingleLine  = 's' // . matches newline
	ModifierExtended    = 'x' // whitespace-insensitive pattern authoring
)

// DeferredBuilder is a child value resolved at append time: it is invoked
// once with the owning Composer and its result, which must be a Node or a
// scalar, is used in its place. Deferred builders allow nested construction
// that refers back to the Composer without re-entrant Add* calls.
type DeferredBuilder func(*Composer) any

// Composer assembles a pattern string from an ordered sequence of
// expression nodes, wrapped in delimiters and followed by the active
// modifier letters.
//
// A Composer is not internally thread-safe; concurrent mutation must be
// synchronized by the caller. Read-only operations (String, Traverse, Size,
// Visualisation) may run concurrently on an otherwise idle instance.
type Composer struct {
	startDelimiter rune
	endDelimiter   rune
	nodes          []Node
	modifiers      []rune
}

// New returns an empty Composer, or, when called with children, a Composer
// seeded with a single And node built from them.
func New(children ...any) (*Composer, error) {
	c := &Composer{startDelimiter: defaultDelimiter, endDelimiter: defaultDelimiter}
	if len(children) > 0 {
		if _, err := c.AddAnd(children...); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// resolveDeferred substitutes every DeferredBuilder child with its result,
// once, in argument order.
func (c *Composer) resolveDeferred(children []any) []any {
	resolved := make([]any, len(children))
	for i, child := range children {
		if build, ok := child.(DeferredBuilder); ok {
			child = build(c)
		}
		resolved[i] = child
	}
	return resolved
}

// buildChildren resolves deferred builders and converts each child to a
// Node. Scalar children become leaves, quoted through the host escape
// function when quote is set. All invalid children are reported together.
func (c *Composer) buildChildren(children []any, quote bool) ([]Node, error) {
	var errs *multierror.Error
	nodes := make([]Node, 0, len(children))
	for i, child := range c.resolveDeferred(children) {
		if n, ok := child.(Node); ok {
			nodes = append(nodes, n)
			continue
		}
		text, ok := formatScalar(child)
		if !ok {
			errs = multierror.Append(errs, &InvalidArgumentError{Position: i + 1, Value: child})
			continue
		}
		if quote {
			text = c.quoteText(text)
		}
		nodes = append(nodes, &Literal{value: child, text: text})
	}
	return nodes, errs.ErrorOrNil()
}

// And builds a concatenation node without appending it, for use as a child
// of another node. Scalar children are quoted.
func (c *Composer) And(children ...any) (*And, error) {
	nodes, err := c.buildChildren(children, true)
	if err != nil {
		return nil, err
	}
	if len(nodes) < 1 {
		return nil, &InsufficientChildrenError{Type: TypeAnd, Required: 1, Given: len(nodes)}
	}
	return &And{nodes: nodes}, nil
}

// Or builds an alternation node without appending it. At least two children
// are required.
func (c *Composer) Or(children ...any) (*Or, error) {
	nodes, err := c.buildChildren(children, true)
	if err != nil {
		return nil, err
	}
	if len(nodes) < 2 {
		return nil, &InsufficientChildrenError{Type: TypeOr, Required: 2, Given: len(nodes)}
	}
	return &Or{nodes: nodes}, nil
}

// Option builds a zero-or-one node without appending it.
func (c *Composer) Option(children ...any) (*Option, error) {
	nodes, err := c.buildChildren(children, true)
	if err != nil {
		return nil, err
	}
	if len(nodes) < 1 {
		return nil, &InsufficientChildrenError{Type: TypeOption, Required: 1, Given: len(nodes)}
	}
	return &Option{nodes: nodes}, nil
}

// Repetition builds a bounded repetition node without appending it. max may
// be Infinite for no upper bound.
func (c *Composer) Repetition(min, max int, children ...any) (*Repetition, error) {
	if err := validateBounds(min, max); err != nil {
		return nil, err
	}
	nodes, err := c.buildChildren(children, true)
	if err != nil {
		return nil, err
	}
	if len(nodes) < 1 {
		return nil, &InsufficientChildrenError{Type: TypeRepetition, Required: 1, Given: len(nodes)}
	}
	return &Repetition{min: min, max: max, nodes: nodes}, nil
}

// Range builds a bracket-expression node without appending it. Fragments
// are inserted verbatim and must not contain unescaped brackets.
func (c *Composer) Range(fragments ...any) (*Range, error) {
	nodes, err := validateRangeFragments(c.resolveDeferred(fragments))
	if err != nil {
		return nil, err
	}
	if len(nodes) < 1 {
		return nil, &InsufficientChildrenError{Type: TypeRange, Required: 1, Given: len(nodes)}
	}
	return &Range{fragments: nodes}, nil
}

// CapturingGroup builds a capturing-group node without appending it.
func (c *Composer) CapturingGroup(children ...any) (*CapturingGroup, error) {
	nodes, err := c.buildChildren(children, true)
	if err != nil {
		return nil, err
	}
	if len(nodes) < 1 {
		return nil, &InsufficientChildrenError{Type: TypeCapturingGroup, Required: 1, Given: len(nodes)}
	}
	return &CapturingGroup{nodes: nodes}, nil
}

// Comment builds an inline-comment node without appending it. Texts are
// inserted verbatim and must not contain an unescaped ')'.
func (c *Composer) Comment(texts ...any) (*Comment, error) {
	nodes, err := validateCommentTexts(c.resolveDeferred(texts))
	if err != nil {
		return nil, err
	}
	if len(nodes) < 1 {
		return nil, &InsufficientChildrenError{Type: TypeComment, Required: 1, Given: len(nodes)}
	}
	return &Comment{texts: nodes}, nil
}

// Raw builds a verbatim-concatenation node without appending it. Scalar
// children are inserted unquoted.
func (c *Composer) Raw(children ...any) (*Raw, error) {
	nodes, err := c.buildChildren(children, false)
	if err != nil {
		return nil, err
	}
	if len(nodes) < 1 {
		return nil, &InsufficientChildrenError{Type: TypeRaw, Required: 1, Given: len(nodes)}
	}
	return &Raw{nodes: nodes}, nil
}

// AddAnd builds a concatenation node and appends it to the root sequence.
// The append is atomic: on a validation error the Composer is unchanged.
func (c *Composer) AddAnd(children ...any) (*And, error) {
	n, err := c.And(children...)
	if err != nil {
		return nil, err
	}
	c.nodes = append(c.nodes, n)
	return n, nil
}

// AddOr builds an alternation node and appends it to the root sequence.
func (c *Composer) AddOr(children ...any) (*Or, error) {
	n, err := c.Or(children...)
	if err != nil {
		return nil, err
	}
	c.nodes = append(c.nodes, n)
	return n, nil
}

// AddOption builds a zero-or-one node and appends it to the root sequence.
func (c *Composer) AddOption(children ...any) (*Option, error) {
	n, err := c.Option(children...)
	if err != nil {
		return nil, err
	}
	c.nodes = append(c.nodes, n)
	return n, nil
}

// AddRepetition builds a repetition node and appends it to the root
// sequence.
func (c *Composer) AddRepetition(min, max int, children ...any) (*Repetition, error) {
	n, err := c.Repetition(min, max, children...)
	if err != nil {
		return nil, err
	}
	c.nodes = append(c.nodes, n)
	return n, nil
}

// AddRange builds a bracket-expression node and appends it to the root
// sequence. The returned node's SetInverted toggles negation afterwards.
func (c *Composer) AddRange(fragments ...any) (*Range, error) {
	n, err := c.Range(fragments...)
	if err != nil {
		return nil, err
	}
	c.nodes = append(c.nodes, n)
	return n, nil
}

// AddCapturingGroup builds a capturing-group node and appends it to the
// root sequence.
func (c *Composer) AddCapturingGroup(children ...any) (*CapturingGroup, error) {
	n, err := c.CapturingGroup(children...)
	if err != nil {
		return nil, err
	}
	c.nodes = append(c.nodes, n)
	return n, nil
}

// AddNonCapturingGroup behaves exactly like AddAnd: children are
// concatenated with no group syntax of any kind, (?:...) included. The
// name is kept for API compatibility.
func (c *Composer) AddNonCapturingGroup(children ...any) (*And, error) {
	return c.AddAnd(children...)
}

// AddComment builds an inline-comment node and appends it to the root
// sequence.
func (c *Composer) AddComment(texts ...any) (*Comment, error) {
	n, err := c.Comment(texts...)
	if err != nil {
		return nil, err
	}
	c.nodes = append(c.nodes, n)
	return n, nil
}

// AddRaw builds a verbatim node and appends it to the root sequence.
func (c *Composer) AddRaw(children ...any) (*Raw, error) {
	n, err := c.Raw(children...)
	if err != nil {
		return nil, err
	}
	c.nodes = append(c.nodes, n)
	return n, nil
}

// AddModifier activates the modifier m. Activating an already-active
// modifier is a no-op; insertion order of the active set is preserved.
func (c *Composer) AddModifier(m rune) error {
	if err := validateModifier(m); err != nil {
		return err
	}
	for _, active := range c.modifiers {
		if active == m {
			return nil
		}
	}
	c.modifiers = append(c.modifiers, m)
	return nil
}

// RemoveModifier deactivates the modifier m. Deactivating an inactive
// modifier is a no-op.
func (c *Composer) RemoveModifier(m rune) error {
	if err := validateModifier(m); err != nil {
		return err
	}
	for i, active := range c.modifiers {
		if active == m {
			c.modifiers = append(c.modifiers[:i], c.modifiers[i+1:]...)
			return nil
		}
	}
	return nil
}

// Modifiers returns the active modifiers in insertion order.
func (c *Composer) Modifiers() []rune {
	return append([]rune(nil), c.modifiers...)
}

// SetStartDelimiter replaces the delimiter emitted before the expression
// body. It is also the delimiter escaped by Quote.
func (c *Composer) SetStartDelimiter(d rune) { c.startDelimiter = d }

// SetEndDelimiter replaces the delimiter emitted after the expression body.
func (c *Composer) SetEndDelimiter(d rune) { c.endDelimiter = d }

// StartDelimiter returns the active start delimiter.
func (c *Composer) StartDelimiter() rune { return c.startDelimiter }

// EndDelimiter returns the active end delimiter.
func (c *Composer) EndDelimiter() rune { return c.endDelimiter }

// Nodes returns the root-level nodes in insertion order.
func (c *Composer) Nodes() []Node {
	return append([]Node(nil), c.nodes...)
}

// Clear resets the Composer to its freshly-constructed state: no nodes, no
// modifiers, default delimiters.
func (c *Composer) Clear() {
	c.nodes = nil
	c.modifiers = nil
	c.startDelimiter = defaultDelimiter
	c.endDelimiter = defaultDelimiter
}

// String returns the assembled pattern string: the start delimiter, each
// root node's serialization in insertion order, the end delimiter, then the
// active modifier letters.
func (c *Composer) String() string {
	var b strings.Builder
	b.WriteRune(c.startDelimiter)
	for _, n := range c.nodes {
		b.WriteString(n.Serialize())
	}
	b.WriteRune(c.endDelimiter)
	for _, m := range c.modifiers {
		b.WriteRune(m)
	}
	return b.String()
}

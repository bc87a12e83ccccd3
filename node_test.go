package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVariantSerialization covers the fixed syntax of each node variant.
func TestVariantSerialization(t *testing.T) {
	tests := []struct {
		name  string
		build func(c *Composer) error
		want  string
	}{
		{
			name: "and concatenates without wrapping",
			build: func(c *Composer) error {
				_, err := c.AddAnd("http", "bin")
				return err
			},
			want: "/httpbin/",
		},
		{
			name: "or wraps branches in parentheses",
			build: func(c *Composer) error {
				_, err := c.AddOr("http", "https")
				return err
			},
			want: "/(http|https)/",
		},
		{
			name: "option appends question mark",
			build: func(c *Composer) error {
				_, err := c.AddOption("s")
				return err
			},
			want: "/(s)?/",
		},
		{
			name: "capturing group wraps in parentheses",
			build: func(c *Composer) error {
				_, err := c.AddCapturingGroup("ab")
				return err
			},
			want: "/(ab)/",
		},
		{
			name: "range assembles bracket expression",
			build: func(c *Composer) error {
				_, err := c.AddRange("a-z", "0-9")
				return err
			},
			want: "/[a-z0-9]/",
		},
		{
			name: "comment uses inline comment syntax",
			build: func(c *Composer) error {
				_, err := c.AddComment("ok")
				return err
			},
			want: "/(?#ok)/",
		},
		{
			name: "comment concatenates texts",
			build: func(c *Composer) error {
				_, err := c.AddComment("one", "two")
				return err
			},
			want: "/(?#onetwo)/",
		},
		{
			name: "raw inserts verbatim",
			build: func(c *Composer) error {
				_, err := c.AddRaw(`\d+`, "(?:x)")
				return err
			},
			want: `/\d+(?:x)/`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New()
			require.NoError(t, err)
			require.NoError(t, tt.build(c))
			assert.Equal(t, tt.want, c.String())
		})
	}
}

// TestRepetitionSuffixes covers the quantifier tie-break table.
func TestRepetitionSuffixes(t *testing.T) {
	tests := []struct {
		min  int
		max  int
		want string
	}{
		{0, 1, "ab?"},
		{1, 1, "ab"}, // no suffix
		{3, 3, "ab{3}"},
		{0, 0, "ab{0}"},
		{0, Infinite, "ab*"},
		{1, Infinite, "ab+"},
		{2, Infinite, "ab{2,}"},
		{2, 5, "ab{2,5}"},
	}

	for _, tt := range tests {
		c, err := New()
		require.NoError(t, err)
		n, err := c.AddRepetition(tt.min, tt.max, "ab")
		require.NoError(t, err)
		assert.Equal(t, tt.want, n.Serialize(), "repetition {%d,%d}", tt.min, tt.max)
		assert.Equal(t, tt.min, n.Min())
		assert.Equal(t, tt.max, n.Max())
	}
}

// TestRangeInversion checks that the inverted toggle works after
// construction and can be flipped back.
func TestRangeInversion(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	r, err := c.AddRange("a-z", "0-9")
	require.NoError(t, err)
	assert.Equal(t, "[a-z0-9]", r.Serialize())
	assert.False(t, r.Inverted())

	r.SetInverted(true)
	assert.Equal(t, "[^a-z0-9]", r.Serialize())
	assert.Equal(t, "/[^a-z0-9]/", c.String())

	r.SetInverted(false)
	assert.Equal(t, "[a-z0-9]", r.Serialize())
}

// TestScalarChildren checks quoting and formatting of scalar children per
// parent variant.
func TestScalarChildren(t *testing.T) {
	tests := []struct {
		name  string
		build func(c *Composer) error
		want  string
	}{
		{
			name: "and quotes metacharacters",
			build: func(c *Composer) error {
				_, err := c.AddAnd("a.b")
				return err
			},
			want: `/a\.b/`,
		},
		{
			name: "raw keeps metacharacters",
			build: func(c *Composer) error {
				_, err := c.AddRaw("a.b")
				return err
			},
			want: "/a.b/",
		},
		{
			name: "integer child",
			build: func(c *Composer) error {
				_, err := c.AddAnd(42)
				return err
			},
			want: "/42/",
		},
		{
			name: "float child",
			build: func(c *Composer) error {
				_, err := c.AddRaw(1.5)
				return err
			},
			want: "/1.5/",
		},
		{
			name: "bool child",
			build: func(c *Composer) error {
				_, err := c.AddRaw(true)
				return err
			},
			want: "/true/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New()
			require.NoError(t, err)
			require.NoError(t, tt.build(c))
			assert.Equal(t, tt.want, c.String())
		})
	}
}

// TestNestedComposition builds nodes bottom-up and attaches them as
// children of other nodes.
func TestNestedComposition(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	or, err := c.Or("a", "b")
	require.NoError(t, err)

	rep, err := c.Repetition(1, Infinite, or)
	require.NoError(t, err)

	_, err = c.AddAnd("http", rep)
	require.NoError(t, err)

	assert.Equal(t, "/http(a|b)+/", c.String())
	// Building without appending must not touch the root sequence.
	assert.Equal(t, 1, c.Size(false))
}

func TestTypeLabels(t *testing.T) {
	tests := []struct {
		typ  NodeType
		want string
	}{
		{TypeLiteral, "literal"},
		{TypeAnd, "and"},
		{TypeOr, "or"},
		{TypeOption, "option"},
		{TypeRepetition, "repetition"},
		{TypeRange, "range"},
		{TypeCapturingGroup, "capturing-group"},
		{TypeComment, "comment"},
		{TypeRaw, "raw"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}

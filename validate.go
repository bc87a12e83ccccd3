package regex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// formatScalar renders a scalar value as pattern text. ok is false for
// anything that is not a string, bool, integer or float.
func formatScalar(v any) (text string, ok bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case int:
		return strconv.Itoa(s), true
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", s), true
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), true
	}
	return "", false
}

// hasUnescaped reports whether text contains more occurrences of c than of
// the escaped sequence \c, i.e. at least one unescaped c.
func hasUnescaped(text string, c byte) bool {
	return strings.Count(text, string(c)) > strings.Count(text, `\`+string(c))
}

// unescapedIndex returns the byte offset of the first occurrence of c in
// text that is not preceded by a backslash, or -1.
func unescapedIndex(text string, c byte) int {
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' {
			i++
			continue
		}
		if text[i] == c {
			return i
		}
	}
	return -1
}

// validateRangeFragments checks that every fragment is a scalar containing
// no unescaped bracket and converts the valid ones to leaves. All
// violations in the argument list are reported together.
func validateRangeFragments(fragments []any) ([]Node, error) {
	var errs *multierror.Error
	nodes := make([]Node, 0, len(fragments))
	for i, f := range fragments {
		text, ok := formatScalar(f)
		if !ok {
			errs = multierror.Append(errs, &InvalidArgumentError{Position: i + 1, Value: f})
			continue
		}
		if hasUnescaped(text, ']') || hasUnescaped(text, '[') {
			errs = multierror.Append(errs, &MalformedRangeError{Position: i + 1, Fragment: text})
			continue
		}
		nodes = append(nodes, &Literal{value: f, text: text})
	}
	return nodes, errs.ErrorOrNil()
}

// validateCommentTexts checks that every text is a scalar containing no
// unescaped group terminator and converts the valid ones to leaves.
func validateCommentTexts(texts []any) ([]Node, error) {
	var errs *multierror.Error
	nodes := make([]Node, 0, len(texts))
	for i, t := range texts {
		text, ok := formatScalar(t)
		if !ok {
			errs = multierror.Append(errs, &InvalidArgumentError{Position: i + 1, Value: t})
			continue
		}
		if off := unescapedIndex(text, ')'); off >= 0 {
			errs = multierror.Append(errs, &MalformedCommentError{Position: i + 1, Offset: off, Text: text})
			continue
		}
		nodes = append(nodes, &Literal{value: t, text: text})
	}
	return nodes, errs.ErrorOrNil()
}

func validateBounds(min, max int) error {
	if min < 0 || (max != Infinite && max < min) {
		return &InvalidRepetitionBoundsError{Min: min, Max: max}
	}
	return nil
}

func validateModifier(m rune) error {
	switch m {
	case ModifierInsensitive, ModifierMultiLine, ModifierSingleLine, ModifierExtended:
		return nil
	}
	return &InvalidModifierError{Modifier: m}
}

package regex

import "fmt"

// InvalidArgumentError reports a value that is not a scalar where a scalar
// was required. Position is the 1-based index of the offending argument.
type InvalidArgumentError struct {
	Position int
	Value    any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("argument %d must be a scalar, got %T", e.Position, e.Value)
}

// MalformedRangeError reports a range fragment containing an unescaped
// bracket. Position is the 1-based index of the fragment argument.
type MalformedRangeError struct {
	Position int
	Fragment string
}

func (e *MalformedRangeError) Error() string {
	return fmt.Sprintf("range fragment %d contains an unescaped bracket: %q", e.Position, e.Fragment)
}

// MalformedCommentError reports a comment text containing an unescaped
// group terminator. Position is the 1-based index of the text argument,
// Offset the byte offset of the ')' within it.
type MalformedCommentError struct {
	Position int
	Offset   int
	Text     string
}

func (e *MalformedCommentError) Error() string {
	return fmt.Sprintf("comment text %d contains an unescaped ')' at offset %d: %q", e.Position, e.Offset, e.Text)
}

// InvalidModifierError reports a modifier shortcut outside the recognized
// alphabet.
type InvalidModifierError struct {
	Modifier rune
}

func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf("invalid modifier %q, valid modifiers are %q, %q, %q and %q",
		e.Modifier, ModifierInsensitive, ModifierMultiLine, ModifierSingleLine, ModifierExtended)
}

// InvalidRepetitionBoundsError reports a negative bound or max < min.
type InvalidRepetitionBoundsError struct {
	Min int
	Max int
}

func (e *InvalidRepetitionBoundsError) Error() string {
	return fmt.Sprintf("repetition bounds must satisfy 0 <= min <= max, got min=%d, max=%d", e.Min, e.Max)
}

// InsufficientChildrenError reports a node built with fewer children than
// its variant requires.
type InsufficientChildrenError struct {
	Type     NodeType
	Required int
	Given    int
}

func (e *InsufficientChildrenError) Error() string {
	return fmt.Sprintf("%s requires at least %d children, got %d", e.Type, e.Required, e.Given)
}

// EngineExecutionError reports that the host engine failed to execute the
// pattern. It is never used for a plain "no match" result.
type EngineExecutionError struct {
	Pattern string
	Err     error
}

func (e *EngineExecutionError) Error() string {
	return fmt.Sprintf("engine failed to execute pattern %s: %v", e.Pattern, e.Err)
}

func (e *EngineExecutionError) Unwrap() error { return e.Err }

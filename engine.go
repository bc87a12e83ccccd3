package regex

import (
	"fmt"
	"regexp"
	"strings"
)

// engineMeta lists the characters regexp.QuoteMeta already escapes. Quote
// only needs to handle the active delimiter when it falls outside this set.
const engineMeta = `\.+*?()|[]{}^$`

// Quote escapes v so the host engine treats it as a literal: every regex
// metacharacter and the active start delimiter are backslash-escaped.
// Non-scalar values are formatted with %v before escaping.
func (c *Composer) Quote(v any) string {
	text, ok := formatScalar(v)
	if !ok {
		text = fmt.Sprintf("%v", v)
	}
	return c.quoteText(text)
}

func (c *Composer) quoteText(text string) string {
	quoted := regexp.QuoteMeta(text)
	d := string(c.startDelimiter)
	if !strings.Contains(engineMeta, d) {
		quoted = strings.ReplaceAll(quoted, d, `\`+d)
	}
	return quoted
}

// enginePattern translates the composed pattern into host engine syntax:
// the delimiters are dropped and the active modifiers become an inline flag
// group. The extended modifier has no engine equivalent and is passed
// through, to be rejected at compile time.
func (c *Composer) enginePattern() string {
	var b strings.Builder
	if len(c.modifiers) > 0 {
		b.WriteString("(?")
		for _, m := range c.modifiers {
			b.WriteRune(m)
		}
		b.WriteByte(')')
	}
	for _, n := range c.nodes {
		b.WriteString(n.Serialize())
	}
	return b.String()
}

// compile hands the translated pattern to the host engine. A compile
// failure is an engine failure, never a "no match".
func (c *Composer) compile() (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.enginePattern())
	if err != nil {
		return nil, &EngineExecutionError{Pattern: c.String(), Err: err}
	}
	return re, nil
}

// Test reports whether the composed pattern matches subject. A false result
// with a nil error means the engine ran and found no match.
func (c *Composer) Test(subject string) (bool, error) {
	re, err := c.compile()
	if err != nil {
		return false, err
	}
	return re.MatchString(subject), nil
}

// Match returns the leftmost match of the composed pattern in subject: the
// full match first, followed by one entry per capture group. It returns nil
// with a nil error when the pattern does not match.
func (c *Composer) Match(subject string) ([]string, error) {
	re, err := c.compile()
	if err != nil {
		return nil, err
	}
	return re.FindStringSubmatch(subject), nil
}

// Replace substitutes every match of the composed pattern in subject with
// replacement. Inside replacement, $1 and ${name} expand to capture groups
// as the host engine defines.
func (c *Composer) Replace(subject, replacement string) (string, error) {
	re, err := c.compile()
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(subject, replacement), nil
}

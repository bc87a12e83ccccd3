// Package regex builds regular-expression pattern strings compositionally.
//
// Callers assemble a tree of typed expression nodes through a Composer and
// serialize it to a single delimited pattern string, instead of
// hand-concatenating fragments:
//
//	c, _ := regex.New()
//	c.AddOr("http", "https")
//	c.AddRaw(":")
//	c.String() // "/(http|https):/"
//
// Node construction is validated up front: malformed range fragments,
// unescaped group terminators in comments, bad repetition bounds and
// unknown modifiers are rejected inside the Add* call that introduced
// them, before the Composer is touched.
//
// Matching and replacement are delegated to the standard library regexp
// engine through Test, Match and Replace; the package itself only produces
// the pattern string.
package regex

package codec

import "strings"

// Decode reverses Encode: \c becomes ":", \n a newline and \b a backslash,
// applied in that order.
func Decode(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	s = strings.ReplaceAll(s, `\c`, ":")
	s = strings.ReplaceAll(s, `\n`, "\n")
	return strings.ReplaceAll(s, `\b`, `\`)
}

// Encode escapes the characters reserved inside a colon-delimited field.
// Backslashes must be escaped before colons and newlines, otherwise the
// backslashes those escapes introduce would be escaped again.
func Encode(s string) string {
	if !strings.ContainsAny(s, ":\\\n") {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\b`)
	s = strings.ReplaceAll(s, ":", `\c`)
	return strings.ReplaceAll(s, "\n", `\n`)
}

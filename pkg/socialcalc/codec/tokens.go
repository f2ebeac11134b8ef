package codec

import "strings"

// tokenReader walks the colon-separated fields of one line.
type tokenReader struct {
	tokens []string
	pos    int
}

func newTokenReader(tokens []string) *tokenReader {
	return &tokenReader{tokens: tokens}
}

// next returns the next field, or false at the end of the line.
func (r *tokenReader) next() (string, bool) {
	if r.pos >= len(r.tokens) {
		return "", false
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok, true
}

// operand returns the next field, which tag requires.
func (r *tokenReader) operand(tag string) (string, error) {
	tok, ok := r.next()
	if !ok {
		return "", &DecodeError{Kind: KindMissingOperand, Token: tag}
	}
	return tok, nil
}

// rest returns the remaining fields joined back with ':'.
func (r *tokenReader) rest() string {
	if r.pos >= len(r.tokens) {
		return ""
	}
	s := strings.Join(r.tokens[r.pos:], ":")
	r.pos = len(r.tokens)
	return s
}

// intOperand reads an integer operand where blank means zero.
func (r *tokenReader) intOperand(tag string) (int, error) {
	tok, err := r.operand(tag)
	if err != nil {
		return 0, err
	}
	return ParseIntOrBlank(tok, 0)
}

// lineBuilder assembles one output line, separating fields with ':'.
// Values are written as given; callers escape them first.
type lineBuilder struct {
	sb strings.Builder
}

func newLine(fields ...string) *lineBuilder {
	b := &lineBuilder{}
	return b.add(fields...)
}

func (b *lineBuilder) add(fields ...string) *lineBuilder {
	for _, f := range fields {
		if b.sb.Len() > 0 {
			b.sb.WriteByte(':')
		}
		b.sb.WriteString(f)
	}
	return b
}

// optInt adds key:n when n is not zero.
func (b *lineBuilder) optInt(key string, n int) *lineBuilder {
	if n != 0 {
		b.add(key, formatInt(n))
	}
	return b
}

// optString adds key:s when s is not empty.
func (b *lineBuilder) optString(key, s string) *lineBuilder {
	if s != "" {
		b.add(key, s)
	}
	return b
}

// optBool adds key:yes when v is set.
func (b *lineBuilder) optBool(key string, v bool) *lineBuilder {
	if v {
		b.add(key, formatBool(true))
	}
	return b
}

func (b *lineBuilder) String() string {
	return b.sb.String()
}

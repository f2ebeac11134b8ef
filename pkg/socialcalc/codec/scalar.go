package codec

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt reads a decimal integer literal.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &FormatError{Token: s, Err: err}
	}
	return n, nil
}

// ParseIntOrBlank is ParseInt, except that an empty or all-whitespace field
// yields def.
func ParseIntOrBlank(s string, def int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return ParseInt(s)
}

// ParseNumber reads a floating-point literal using '.' as the decimal
// separator. Hexadecimal literals are rejected.
func ParseNumber(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if isHexLiteral(t) {
		return 0, &FormatError{Token: s, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, &FormatError{Token: s, Err: err}
	}
	return f, nil
}

func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// ParseNumberOrBlank is ParseNumber, except that an empty or all-whitespace
// field yields def.
func ParseNumberOrBlank(s string, def float64) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return ParseNumber(s)
}

// IsYes reports whether s is "yes" in any letter case.
func IsYes(s string) bool {
	return strings.EqualFold(s, "yes")
}

// FormatNumber renders f the way the browser control does: the shortest
// representation that reads back as f, in exponent form only below 1e-7
// or from 1e21 up.
func FormatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs < 1e-7 || abs >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

package models

import (
	"fmt"
	"net/url"
)

// ValueKind discriminates the payload held by a Value.
type ValueKind int

const (
	// KindNone is an absent value.
	KindNone ValueKind = iota
	KindNumber
	KindText
	// KindBool is a logical formula or constant result.
	KindBool
	// KindURL is text that parsed as a URL reference.
	KindURL
)

var valueKindNames = [...]string{
	KindNone:   "none",
	KindNumber: "number",
	KindText:   "text",
	KindBool:   "bool",
	KindURL:    "url",
}

func (k ValueKind) String() string {
	if k < 0 || int(k) >= len(valueKindNames) {
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
	return valueKindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k ValueKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(valueKindNames) {
		return nil, fmt.Errorf("invalid value kind %d", int(k))
	}
	return []byte(valueKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ValueKind) UnmarshalText(b []byte) error {
	for i, name := range valueKindNames {
		if name == string(b) {
			*k = ValueKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown value kind %q", string(b))
}

// Value is a cell's data value. Only the field selected by Kind is
// meaningful; URL values keep their source text in Text.
type Value struct {
	Kind   ValueKind `json:"kind"`
	Number float64   `json:"number,omitempty"`
	Text   string    `json:"text,omitempty"`
	Bool   bool      `json:"bool,omitempty"`
}

// NumberValue returns a numeric Value.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// TextValue returns a text Value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// BoolValue returns a logical Value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// URLValue parses s as a URL reference and returns it as a Value.
func URLValue(s string) (Value, error) {
	if _, err := url.Parse(s); err != nil {
		return Value{}, err
	}
	return Value{Kind: KindURL, Text: s}, nil
}

// IsNone reports whether the value is absent.
func (v Value) IsNone() bool {
	return v.Kind == KindNone
}

// AsNumber returns the numeric payload.
func (v Value) AsNumber() (float64, bool) {
	return v.Number, v.Kind == KindNumber
}

// AsText returns the text payload of a text or URL value.
func (v Value) AsText() (string, bool) {
	return v.Text, v.Kind == KindText || v.Kind == KindURL
}

// AsBool returns the logical payload.
func (v Value) AsBool() (bool, bool) {
	return v.Bool, v.Kind == KindBool
}

// AsURL returns the parsed URL of a URL value.
func (v Value) AsURL() (*url.URL, bool) {
	if v.Kind != KindURL {
		return nil, false
	}
	u, err := url.Parse(v.Text)
	if err != nil {
		return nil, false
	}
	return u, true
}

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return fmt.Sprint(v.Number)
	case KindText, KindURL:
		return v.Text
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	}
	return ""
}

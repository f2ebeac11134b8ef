package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode matches every *DecodeError.
	ErrDecode = errors.New("invalid save format")
	// ErrFormat matches every *FormatError.
	ErrFormat = errors.New("invalid numeric field")
)

// DecodeKind says which part of the grammar rejected a token.
type DecodeKind int

const (
	KindLineType DecodeKind = iota
	KindCellToken
	KindValueType
	KindColumnAttr
	KindRowAttr
	KindSheetAttr
	KindMissingOperand
)

var decodeKindNames = [...]string{
	KindLineType:       "line type",
	KindCellToken:      "cell token",
	KindValueType:      "value type",
	KindColumnAttr:     "column attribute",
	KindRowAttr:        "row attribute",
	KindSheetAttr:      "sheet attribute",
	KindMissingOperand: "operand",
}

func (k DecodeKind) String() string {
	if k < 0 || int(k) >= len(decodeKindNames) {
		return fmt.Sprintf("DecodeKind(%d)", int(k))
	}
	return decodeKindNames[k]
}

// DecodeError reports a token the save format grammar does not allow.
type DecodeError struct {
	Kind DecodeKind
	// Token is the offending tag, or for KindMissingOperand the tag whose
	// operands ran out.
	Token string
}

func (e *DecodeError) Error() string {
	if e.Kind == KindMissingOperand {
		return fmt.Sprintf("missing operand for %q", e.Token)
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Token)
}

// Is makes errors.Is(err, ErrDecode) succeed.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// FormatError reports a field that failed strict numeric parsing.
type FormatError struct {
	Token string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", e.Token, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFormat) succeed.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// LineError locates a decode or format failure in the input.
type LineError struct {
	// Line is 1-based.
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Package models defines the passive data structures of a SocialCalc sheet.
package models

import "fmt"

// DataType tells where a cell's value comes from.
type DataType int

const (
	// DataUndefined marks a cell that carries no value (formatting only).
	DataUndefined DataType = iota
	// DataText is a plain text literal.
	DataText
	// DataNumber is a plain numeric literal.
	DataNumber
	// DataFormula is a value computed from a formula.
	DataFormula
	// DataConstant is a formatted constant such as "$1.20" or "10%".
	DataConstant
)

var dataTypeNames = [...]string{
	DataUndefined: "undefined",
	DataText:      "text",
	DataNumber:    "number",
	DataFormula:   "formula",
	DataConstant:  "constant",
}

func (t DataType) String() string {
	if t < 0 || int(t) >= len(dataTypeNames) {
		return fmt.Sprintf("DataType(%d)", int(t))
	}
	return dataTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t DataType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(dataTypeNames) {
		return nil, fmt.Errorf("invalid data type %d", int(t))
	}
	return []byte(dataTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DataType) UnmarshalText(b []byte) error {
	for i, name := range dataTypeNames {
		if name == string(b) {
			*t = DataType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown data type %q", string(b))
}

// ValueType is the semantic subtype of a cell's resulting value.
type ValueType int

const (
	ValueUndefined ValueType = iota
	ValueText
	ValueHTML
	ValueURL
	ValueNumber
	ValueLogical
	ValuePercentage
	ValueCurrency
	ValueDate
	ValueTime
	ValueDateTime
	ValueErrorNA
	ValueErrorNull
	ValueErrorNum
	ValueErrorDiv0
	ValueErrorValue
	ValueErrorRef
	ValueErrorName
)

var valueTypeNames = [...]string{
	ValueUndefined:  "undefined",
	ValueText:       "text",
	ValueHTML:       "html",
	ValueURL:        "url",
	ValueNumber:     "number",
	ValueLogical:    "logical",
	ValuePercentage: "percentage",
	ValueCurrency:   "currency",
	ValueDate:       "date",
	ValueTime:       "time",
	ValueDateTime:   "datetime",
	ValueErrorNA:    "error-na",
	ValueErrorNull:  "error-null",
	ValueErrorNum:   "error-num",
	ValueErrorDiv0:  "error-div0",
	ValueErrorValue: "error-value",
	ValueErrorRef:   "error-ref",
	ValueErrorName:  "error-name",
}

// ValueTypes lists every defined value type except ValueUndefined.
func ValueTypes() []ValueType {
	types := make([]ValueType, 0, len(valueTypeNames)-1)
	for i := ValueText; int(i) < len(valueTypeNames); i++ {
		types = append(types, i)
	}
	return types
}

func (t ValueType) String() string {
	if t < 0 || int(t) >= len(valueTypeNames) {
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
	return valueTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t ValueType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(valueTypeNames) {
		return nil, fmt.Errorf("invalid value type %d", int(t))
	}
	return []byte(valueTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ValueType) UnmarshalText(b []byte) error {
	for i, name := range valueTypeNames {
		if name == string(b) {
			*t = ValueType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown value type %q", string(b))
}

// IsNumeric reports whether cells of this type carry a numeric data value.
func (t ValueType) IsNumeric() bool {
	switch t {
	case ValueNumber, ValueLogical, ValuePercentage, ValueCurrency,
		ValueDate, ValueTime, ValueDateTime:
		return true
	}
	return false
}

// IsError reports whether t is one of the spreadsheet error values.
func (t ValueType) IsError() bool {
	return t >= ValueErrorNA && t <= ValueErrorName
}

// IsDate reports whether t holds an OLE Automation date or time.
func (t ValueType) IsDate() bool {
	return t == ValueDate || t == ValueTime || t == ValueDateTime
}

// IsText reports whether t is one of the text types (plain, HTML or URL).
func (t ValueType) IsText() bool {
	return t == ValueText || t == ValueHTML || t == ValueURL
}

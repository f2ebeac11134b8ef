package models

import (
	"time"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/oadate"
)

// Cell holds the data and formatting of a single cell. Its coordinate is
// the key under which it is stored in a Sheet.
type Cell struct {
	// Data is the cell's value; numeric value types always hold a number.
	Data Value `json:"data"`
	// DataType is whether the value is a literal, formula or constant.
	DataType DataType `json:"data_type"`
	// ValueType is the semantic subtype of the value.
	ValueType ValueType `json:"value_type"`
	// Formula is the formula source, or the constant text for DataConstant.
	Formula string `json:"formula,omitempty"`
	// ReadOnly marks a cell the control will not let users edit.
	ReadOnly bool `json:"read_only,omitempty"`
	// Errors is the formula parse or calculation error message.
	Errors string `json:"errors,omitempty"`

	// Border style indices into Sheet.BorderStyles (0 means none).
	BorderTop    int `json:"bt,omitempty"`
	BorderRight  int `json:"br,omitempty"`
	BorderBottom int `json:"bb,omitempty"`
	BorderLeft   int `json:"bl,omitempty"`

	Layout             int `json:"layout,omitempty"`
	Font               int `json:"font,omitempty"`
	Color              int `json:"color,omitempty"`
	BgColor            int `json:"bgcolor,omitempty"`
	CellFormat         int `json:"cellformat,omitempty"`
	TextValueFormat    int `json:"tvf,omitempty"`
	NonTextValueFormat int `json:"ntvf,omitempty"`

	// ColSpan and RowSpan are the merged-cell extents.
	ColSpan int `json:"colspan,omitempty"`
	RowSpan int `json:"rowspan,omitempty"`

	// CSSClass replaces the computed class when the sheet is published.
	CSSClass string `json:"cssc,omitempty"`
	// CSSStyle is explicit inline CSS.
	CSSStyle string `json:"csss,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// HasBorder reports whether any border index is set.
func (c *Cell) HasBorder() bool {
	return c.BorderTop != 0 || c.BorderRight != 0 || c.BorderBottom != 0 || c.BorderLeft != 0
}

// Time converts the numeric value of a date, time or date-time cell to a
// calendar timestamp.
func (c *Cell) Time() (time.Time, bool) {
	if !c.ValueType.IsDate() {
		return time.Time{}, false
	}
	n, ok := c.Data.AsNumber()
	if !ok {
		return time.Time{}, false
	}
	t, err := oadate.ToTime(n)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

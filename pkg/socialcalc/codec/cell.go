package codec

import (
	"fmt"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// cellTag is one of the type tags of a cell line.
type cellTag int

const (
	tagValue cellTag = iota
	tagText
	tagValueTyped
	tagFormula
	tagConstant
	tagReadOnly
	tagErrors
	tagBorders
	tagLayout
	tagFont
	tagColor
	tagBgColor
	tagCellFormat
	tagNonTextValueFormat
	tagTextValueFormat
	tagColSpan
	tagRowSpan
	tagCSSClass
	tagCSSStyle
	tagModify
	tagComment
)

var cellTags = map[string]cellTag{
	"v":       tagValue,
	"t":       tagText,
	"vt":      tagValueTyped,
	"vtf":     tagFormula,
	"vtc":     tagConstant,
	"ro":      tagReadOnly,
	"e":       tagErrors,
	"b":       tagBorders,
	"l":       tagLayout,
	"f":       tagFont,
	"c":       tagColor,
	"bg":      tagBgColor,
	"cf":      tagCellFormat,
	"ntvf":    tagNonTextValueFormat,
	"tvf":     tagTextValueFormat,
	"colspan": tagColSpan,
	"rowspan": tagRowSpan,
	"cssc":    tagCSSClass,
	"csss":    tagCSSStyle,
	"mod":     tagModify,
	"comment": tagComment,
}

// decodeCell reads the type:value groups that follow "cell:coord".
func decodeCell(r *tokenReader) (models.Cell, error) {
	var cell models.Cell
	for name, ok := r.next(); ok; name, ok = r.next() {
		tag, known := cellTags[name]
		if !known {
			return models.Cell{}, &DecodeError{Kind: KindCellToken, Token: name}
		}
		if err := decodeCellTag(r, &cell, tag, name); err != nil {
			return models.Cell{}, err
		}
	}
	return cell, nil
}

func decodeCellTag(r *tokenReader, cell *models.Cell, tag cellTag, name string) error {
	var err error
	switch tag {
	case tagValue:
		var s string
		if s, err = r.operand(name); err != nil {
			return err
		}
		var n float64
		if n, err = ParseNumberOrBlank(s, 0); err != nil {
			return err
		}
		cell.Data = models.NumberValue(n)
		cell.DataType = models.DataNumber
		cell.ValueType = models.ValueNumber
		cell.Formula = ""

	case tagText:
		var s string
		if s, err = r.operand(name); err != nil {
			return err
		}
		cell.Data = models.TextValue(Decode(s))
		cell.DataType = models.DataText
		cell.ValueType = models.ValueText
		cell.Formula = ""

	case tagValueTyped:
		return decodeTypedValue(r, cell, name)

	case tagFormula, tagConstant:
		return decodeFormula(r, cell, tag, name)

	case tagReadOnly:
		var s string
		if s, err = r.operand(name); err != nil {
			return err
		}
		cell.ReadOnly = IsYes(Decode(s))

	case tagErrors:
		var s string
		if s, err = r.operand(name); err != nil {
			return err
		}
		cell.Errors = Decode(s)

	case tagBorders:
		for _, p := range []*int{&cell.BorderTop, &cell.BorderRight, &cell.BorderBottom, &cell.BorderLeft} {
			if *p, err = r.intOperand(name); err != nil {
				return err
			}
		}

	case tagLayout:
		cell.Layout, err = r.intOperand(name)
	case tagFont:
		cell.Font, err = r.intOperand(name)
	case tagColor:
		cell.Color, err = r.intOperand(name)
	case tagBgColor:
		cell.BgColor, err = r.intOperand(name)
	case tagCellFormat:
		cell.CellFormat, err = r.intOperand(name)
	case tagNonTextValueFormat:
		cell.NonTextValueFormat, err = r.intOperand(name)
	case tagTextValueFormat:
		cell.TextValueFormat, err = r.intOperand(name)
	case tagColSpan:
		cell.ColSpan, err = r.intOperand(name)
	case tagRowSpan:
		cell.RowSpan, err = r.intOperand(name)

	case tagCSSClass:
		cell.CSSClass, err = r.operand(name)

	case tagCSSStyle:
		var s string
		if s, err = r.operand(name); err != nil {
			return err
		}
		cell.CSSStyle = Decode(s)

	case tagModify:
		// legacy "allow modification" flag; not kept
		_, err = r.operand(name)

	case tagComment:
		var s string
		if s, err = r.operand(name); err != nil {
			return err
		}
		cell.Comment = Decode(s)
	}
	return err
}

// decodeTypedValue handles vt:mnemonic:value.
func decodeTypedValue(r *tokenReader, cell *models.Cell, name string) error {
	code, err := r.operand(name)
	if err != nil {
		return err
	}
	vt, err := ParseValueType(code)
	if err != nil {
		return err
	}
	s, err := r.operand(name)
	if err != nil {
		return err
	}

	// a plain typed value replaces any formula read earlier on the line
	cell.ValueType = vt
	cell.Formula = ""
	if vt.IsNumeric() {
		n, err := ParseNumberOrBlank(s, 0)
		if err != nil {
			return err
		}
		cell.DataType = models.DataNumber
		cell.Data = models.NumberValue(n)
		return nil
	}

	cell.DataType = models.DataText
	text := Decode(s)
	if vt != models.ValueURL {
		cell.Data = models.TextValue(text)
		return nil
	}
	v, err := models.URLValue(text)
	if err != nil {
		return &FormatError{Token: text, Err: err}
	}
	cell.Data = v
	return nil
}

// decodeFormula handles vtf:mnemonic:value:formula and
// vtc:mnemonic:value:constanttext.
func decodeFormula(r *tokenReader, cell *models.Cell, tag cellTag, name string) error {
	code, err := r.operand(name)
	if err != nil {
		return err
	}
	vt, err := ParseValueType(code)
	if err != nil {
		return err
	}
	s, err := r.operand(name)
	if err != nil {
		return err
	}

	var v models.Value
	switch {
	case vt == models.ValueLogical:
		n, err := ParseIntOrBlank(s, 0)
		if err != nil {
			return err
		}
		v = models.BoolValue(n != 0)
	case vt.IsNumeric():
		n, err := ParseNumberOrBlank(s, 0)
		if err != nil {
			return err
		}
		v = models.NumberValue(n)
	default:
		v = models.TextValue(Decode(s))
	}

	formula, err := r.operand(name)
	if err != nil {
		return err
	}

	cell.ValueType = vt
	cell.Data = v
	cell.Formula = Decode(formula)
	if tag == tagConstant {
		cell.DataType = models.DataConstant
	} else {
		cell.DataType = models.DataFormula
	}
	return nil
}

// encodeCell renders a cell line. Fields at their zero value are left out.
func encodeCell(coord string, cell *models.Cell) (string, error) {
	b := newLine("cell", coord)

	value := encodeValue(cell.Data)
	switch cell.DataType {
	case models.DataNumber, models.DataText:
		plain := (cell.DataType == models.DataNumber && cell.ValueType == models.ValueNumber) ||
			(cell.DataType == models.DataText && cell.ValueType == models.ValueText)
		switch {
		case plain && cell.DataType == models.DataNumber:
			b.add("v", value)
		case plain:
			b.add("t", value)
		default:
			code, err := FormatValueType(cell.ValueType)
			if err != nil {
				return "", err
			}
			b.add("vt", code, value)
		}

	case models.DataFormula, models.DataConstant:
		code, err := FormatValueType(cell.ValueType)
		if err != nil {
			return "", err
		}
		tag := "vtf"
		if cell.DataType == models.DataConstant {
			tag = "vtc"
		}
		b.add(tag, code, value, Encode(cell.Formula))

	case models.DataUndefined:
	default:
		return "", fmt.Errorf("invalid data type %v", cell.DataType)
	}

	b.optBool("ro", cell.ReadOnly)
	b.optString("e", Encode(cell.Errors))
	if cell.HasBorder() {
		b.add("b",
			formatInt(cell.BorderTop), formatInt(cell.BorderRight),
			formatInt(cell.BorderBottom), formatInt(cell.BorderLeft))
	}

	b.optInt("l", cell.Layout).
		optInt("f", cell.Font).
		optInt("c", cell.Color).
		optInt("bg", cell.BgColor).
		optInt("cf", cell.CellFormat).
		optInt("tvf", cell.TextValueFormat).
		optInt("ntvf", cell.NonTextValueFormat).
		optInt("colspan", cell.ColSpan).
		optInt("rowspan", cell.RowSpan).
		optString("cssc", cell.CSSClass).
		optString("csss", Encode(cell.CSSStyle)).
		optString("comment", Encode(cell.Comment))

	return b.String(), nil
}

// encodeValue renders a data value as a single field.
func encodeValue(v models.Value) string {
	switch v.Kind {
	case models.KindNumber:
		return FormatNumber(v.Number)
	case models.KindText, models.KindURL:
		return Encode(v.Text)
	case models.KindBool:
		if v.Bool {
			return "1"
		}
		return "0"
	}
	return ""
}

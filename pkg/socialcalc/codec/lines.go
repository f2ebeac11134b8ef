package codec

import (
	"strings"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// lineType is the leading field of a save format line.
type lineType int

const (
	lineIgnored lineType = iota
	lineCell
	lineCol
	lineRow
	lineSheet
	lineName
	lineLayout
	lineFont
	lineColor
	lineBorder
	lineCellFormat
	lineValueFormat
	lineCopiedFrom
)

var lineTypes = map[string]lineType{
	"":               lineIgnored,
	"version":        lineIgnored,
	"clipboard":      lineIgnored,
	"clipboardrange": lineIgnored,
	"cell":           lineCell,
	"col":            lineCol,
	"row":            lineRow,
	"sheet":          lineSheet,
	"name":           lineName,
	"layout":         lineLayout,
	"font":           lineFont,
	"color":          lineColor,
	"border":         lineBorder,
	"cellformat":     lineCellFormat,
	"valueformat":    lineValueFormat,
	"copiedfrom":     lineCopiedFrom,
}

// sheetBuilder accumulates parsed lines into a sheet.
type sheetBuilder struct {
	sheet models.Sheet
}

// addLine classifies line by its first field and folds it into the sheet.
func (b *sheetBuilder) addLine(line string) error {
	r := newTokenReader(strings.Split(line, ":"))
	name, _ := r.next()
	lt, ok := lineTypes[name]
	if !ok {
		return &DecodeError{Kind: KindLineType, Token: name}
	}

	switch lt {
	case lineIgnored:
		return nil
	case lineCell:
		return b.addCell(r)
	case lineCol:
		return b.addCol(r)
	case lineRow:
		return b.addRow(r)
	case lineSheet:
		return b.addSheetAttrs(r)
	case lineName:
		return b.addName(r)
	case lineLayout:
		// layouts contain ':' themselves
		index, err := indexOperand(r, name)
		if err != nil {
			return err
		}
		b.sheet.Layouts = append(b.sheet.Layouts, models.StyleEntry{Index: index, Value: r.rest()})
		return nil
	case lineFont:
		return addStyle(r, name, &b.sheet.Fonts, false)
	case lineColor:
		return addStyle(r, name, &b.sheet.Colors, false)
	case lineBorder:
		return addStyle(r, name, &b.sheet.BorderStyles, false)
	case lineCellFormat:
		return addStyle(r, name, &b.sheet.CellFormats, true)
	case lineValueFormat:
		return addStyle(r, name, &b.sheet.ValueFormats, true)
	case lineCopiedFrom:
		from, err := r.operand(name)
		if err != nil {
			return err
		}
		to, err := r.operand(name)
		if err != nil {
			return err
		}
		b.sheet.CopiedFrom = from + ":" + to
		return nil
	}
	return nil
}

func (b *sheetBuilder) addCell(r *tokenReader) error {
	coord, err := r.operand("cell")
	if err != nil {
		return err
	}
	cell, err := decodeCell(r)
	if err != nil {
		return err
	}
	b.sheet.Cells = append(b.sheet.Cells, models.CellEntry{Coord: coord, Cell: cell})
	return nil
}

func (b *sheetBuilder) addCol(r *tokenReader) error {
	col, err := r.operand("col")
	if err != nil {
		return err
	}
	for attr, ok := r.next(); ok; attr, ok = r.next() {
		v, err := r.operand(attr)
		if err != nil {
			return err
		}
		switch attr {
		case "w":
			// "auto", "50%" and blank are all legal
			b.sheet.ColWidths = append(b.sheet.ColWidths, models.ColWidth{Col: col, Width: v})
		case "hide":
			b.sheet.ColHides = append(b.sheet.ColHides, models.ColHide{Col: col, Hidden: IsYes(v)})
		default:
			return &DecodeError{Kind: KindColumnAttr, Token: attr}
		}
	}
	return nil
}

func (b *sheetBuilder) addRow(r *tokenReader) error {
	s, err := r.operand("row")
	if err != nil {
		return err
	}
	row, err := ParseInt(s)
	if err != nil {
		return err
	}
	for attr, ok := r.next(); ok; attr, ok = r.next() {
		v, err := r.operand(attr)
		if err != nil {
			return err
		}
		switch attr {
		case "h":
			h, err := ParseIntOrBlank(v, 0)
			if err != nil {
				return err
			}
			b.sheet.RowHeights = append(b.sheet.RowHeights, models.RowHeight{Row: row, Height: h})
		case "hide":
			b.sheet.RowHides = append(b.sheet.RowHides, models.RowHide{Row: row, Hidden: IsYes(v)})
		default:
			return &DecodeError{Kind: KindRowAttr, Token: attr}
		}
	}
	return nil
}

// addSheetAttrs applies a sheet line. Attributes are singletons, so a later
// value replaces an earlier one.
func (b *sheetBuilder) addSheetAttrs(r *tokenReader) error {
	s := &b.sheet
	for attr, ok := r.next(); ok; attr, ok = r.next() {
		v, err := r.operand(attr)
		if err != nil {
			return err
		}

		var target *int
		switch attr {
		case "c":
			target = &s.LastCol
		case "r":
			target = &s.LastRow
		case "h":
			target = &s.DefaultRowHeight
		case "tf":
			target = &s.DefaultTextFormat
		case "ntf":
			target = &s.DefaultNonTextFormat
		case "layout":
			target = &s.DefaultLayout
		case "font":
			target = &s.DefaultFont
		case "tvf":
			target = &s.DefaultTextValueFormat
		case "ntvf":
			target = &s.DefaultNonTextValueFormat
		case "color":
			target = &s.DefaultColor
		case "bgcolor":
			target = &s.DefaultBgColor
		case "usermaxcol":
			target = &s.UserMaxCol
		case "usermaxrow":
			target = &s.UserMaxRow
		case "w":
			s.DefaultColWidth = v
		case "circularreferencecell":
			s.CircularReferenceCell = v
		case "recalc":
			s.Recalc = v
		case "needsrecalc":
			s.NeedsRecalc = IsYes(v)
		default:
			return &DecodeError{Kind: KindSheetAttr, Token: attr}
		}

		if target != nil {
			if *target, err = ParseIntOrBlank(v, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *sheetBuilder) addName(r *tokenReader) error {
	var fields [3]string
	for i := range fields {
		v, err := r.operand("name")
		if err != nil {
			return err
		}
		fields[i] = Decode(v)
	}
	b.sheet.Names = append(b.sheet.Names, models.NamedRange{
		Name:        strings.ToUpper(fields[0]),
		Description: fields[1],
		Definition:  fields[2],
	})
	return nil
}

func indexOperand(r *tokenReader, name string) (int, error) {
	s, err := r.operand(name)
	if err != nil {
		return 0, err
	}
	return ParseInt(s)
}

// addStyle reads index:value into a style table.
func addStyle(r *tokenReader, name string, table *[]models.StyleEntry, escaped bool) error {
	index, err := indexOperand(r, name)
	if err != nil {
		return err
	}
	v, err := r.operand(name)
	if err != nil {
		return err
	}
	if escaped {
		v = Decode(v)
	}
	*table = append(*table, models.StyleEntry{Index: index, Value: v})
	return nil
}

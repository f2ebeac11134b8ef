package codec

import (
	"fmt"
	"strings"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// Version is the save format version written by Format.
const Version = "1.5"

// FormatOptions configures Format.
type FormatOptions struct {
	// LineEnding separates output lines (default "\n").
	LineEnding string
}

// DefaultFormatOptions returns the options used by Format.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{LineEnding: "\n"}
}

// Format renders a sheet as save format text.
func Format(sheet *models.Sheet) (string, error) {
	return FormatWithOptions(sheet, DefaultFormatOptions())
}

// FormatWithOptions renders a sheet as save format text. Sections come in a
// fixed order: version, cells, column widths, column hides, row heights,
// hidden rows, sheet attributes, borders, cell formats, colors, fonts,
// layouts, value formats, names and the clipboard source range.
func FormatWithOptions(sheet *models.Sheet, opts FormatOptions) (string, error) {
	if opts.LineEnding == "" {
		opts.LineEnding = "\n"
	}

	lines := []string{"version:" + Version}

	for i := range sheet.Cells {
		e := &sheet.Cells[i]
		line, err := encodeCell(e.Coord, &e.Cell)
		if err != nil {
			return "", fmt.Errorf("cell %s: %w", e.Coord, err)
		}
		lines = append(lines, line)
	}

	for _, w := range sheet.ColWidths {
		lines = append(lines, newLine("col", w.Col, "w", w.Width).String())
	}
	for _, h := range sheet.ColHides {
		lines = append(lines, newLine("col", h.Col, "hide", formatBool(h.Hidden)).String())
	}
	for _, h := range sheet.RowHeights {
		lines = append(lines, newLine("row", formatInt(h.Row), "h", formatInt(h.Height)).String())
	}
	for _, h := range sheet.RowHides {
		if h.Hidden {
			lines = append(lines, newLine("row", formatInt(h.Row), "hide", formatBool(true)).String())
		}
	}

	lines = append(lines, formatSheetAttrs(sheet))

	lines = appendStyles(lines, "border", sheet.BorderStyles, false)
	lines = appendStyles(lines, "cellformat", sheet.CellFormats, true)
	lines = appendStyles(lines, "color", sheet.Colors, false)
	lines = appendStyles(lines, "font", sheet.Fonts, false)
	lines = appendStyles(lines, "layout", sheet.Layouts, false)
	lines = appendStyles(lines, "valueformat", sheet.ValueFormats, true)

	for _, n := range sheet.Names {
		lines = append(lines, newLine("name", Encode(n.Name), Encode(n.Description), Encode(n.Definition)).String())
	}

	if sheet.CopiedFrom != "" {
		lines = append(lines, "copiedfrom:"+sheet.CopiedFrom)
	}

	return strings.Join(lines, opts.LineEnding), nil
}

// formatSheetAttrs renders the sheet line with non-default attributes only.
func formatSheetAttrs(s *models.Sheet) string {
	return newLine("sheet").
		optInt("c", s.LastCol).
		optInt("r", s.LastRow).
		optString("w", s.DefaultColWidth).
		optInt("h", s.DefaultRowHeight).
		optInt("tf", s.DefaultTextFormat).
		optInt("tvf", s.DefaultTextValueFormat).
		optInt("ntf", s.DefaultNonTextFormat).
		optInt("ntvf", s.DefaultNonTextValueFormat).
		optInt("layout", s.DefaultLayout).
		optInt("font", s.DefaultFont).
		optInt("color", s.DefaultColor).
		optInt("bgcolor", s.DefaultBgColor).
		optString("circularreferencecell", s.CircularReferenceCell).
		optString("recalc", s.Recalc).
		optBool("needsrecalc", s.NeedsRecalc).
		optInt("usermaxcol", s.UserMaxCol).
		optInt("usermaxrow", s.UserMaxRow).
		String()
}

func appendStyles(lines []string, tag string, table []models.StyleEntry, escaped bool) []string {
	for _, e := range table {
		v := e.Value
		if escaped {
			v = Encode(v)
		}
		lines = append(lines, newLine(tag, formatInt(e.Index), v).String())
	}
	return lines
}

package xlsx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// Number formats used for typed values that carry no value format.
const (
	DateFormat     = "yyyy-mm-dd"
	TimeFormat     = "h:mm:ss"
	DateTimeFormat = "yyyy-mm-dd h:mm:ss"
	PercentFormat  = "0%"
	CurrencyFormat = "$#,##0.00"
)

// styleKey is the resolved set of style table values of one cell.
type styleKey struct {
	font, color, bgColor     string
	align, layout            string
	top, right, bottom, left string
	numFmt                   string
}

// styleCache creates one excelize style per distinct styleKey.
type styleCache struct {
	f     *excelize.File
	sheet *models.Sheet
	ids   map[styleKey]int
}

func newStyleCache(f *excelize.File, sheet *models.Sheet) *styleCache {
	return &styleCache{f: f, sheet: sheet, ids: make(map[styleKey]int)}
}

// id returns the style for cell, or 0 when the cell needs none.
func (c *styleCache) id(cell *models.Cell) (int, error) {
	key := c.key(cell)
	if key == (styleKey{}) {
		return 0, nil
	}
	if id, ok := c.ids[key]; ok {
		return id, nil
	}

	id, err := c.f.NewStyle(buildStyle(key))
	if err != nil {
		return 0, err
	}
	c.ids[key] = id
	return id, nil
}

func (c *styleCache) key(cell *models.Cell) styleKey {
	s := c.sheet
	cellFormat := cell.CellFormat
	if cellFormat == 0 {
		if cell.ValueType.IsText() {
			cellFormat = s.DefaultTextFormat
		} else {
			cellFormat = s.DefaultNonTextFormat
		}
	}

	return styleKey{
		font:    c.lookup(s.Fonts, cell.Font, s.DefaultFont),
		color:   c.lookup(s.Colors, cell.Color, s.DefaultColor),
		bgColor: c.lookup(s.Colors, cell.BgColor, s.DefaultBgColor),
		align:   c.lookup(s.CellFormats, cellFormat, 0),
		layout:  c.lookup(s.Layouts, cell.Layout, s.DefaultLayout),
		top:     c.lookup(s.BorderStyles, cell.BorderTop, 0),
		right:   c.lookup(s.BorderStyles, cell.BorderRight, 0),
		bottom:  c.lookup(s.BorderStyles, cell.BorderBottom, 0),
		left:    c.lookup(s.BorderStyles, cell.BorderLeft, 0),
		numFmt:  c.numFmt(cell),
	}
}

func (c *styleCache) lookup(table []models.StyleEntry, index, def int) string {
	if index == 0 {
		index = def
	}
	if index == 0 {
		return ""
	}
	v, _ := models.StyleValue(table, index)
	return v
}

// numFmt picks the number format for a numeric cell.
func (c *styleCache) numFmt(cell *models.Cell) string {
	if !cell.ValueType.IsNumeric() {
		return ""
	}
	vf := c.lookup(c.sheet.ValueFormats, cell.NonTextValueFormat, c.sheet.DefaultNonTextValueFormat)
	if ValidNumberFormat(vf) {
		return vf
	}

	switch cell.ValueType {
	case models.ValueDate:
		return DateFormat
	case models.ValueTime:
		return TimeFormat
	case models.ValueDateTime:
		return DateTimeFormat
	case models.ValuePercentage:
		return PercentFormat
	case models.ValueCurrency:
		return CurrencyFormat
	}
	return ""
}

// ValidNumberFormat reports whether a SocialCalc value format is an Excel
// number format. Text formats and the control's pseudo formats are not.
func ValidNumberFormat(vf string) bool {
	switch {
	case vf == "", strings.EqualFold(vf, "general"),
		vf == "hidden", vf == "formula", vf == "none",
		strings.HasPrefix(vf, "text-"):
		return false
	}
	parser := nfp.NumberFormatParser()
	for _, section := range parser.Parse(vf) {
		for _, tok := range section.Items {
			if tok.TType == nfp.TokenTypeUnknown {
				return false
			}
		}
	}
	return true
}

// ClassifyNumberFormat maps an Excel number format to the value type of
// the numbers it displays. Plain number formats give ValueNumber.
func ClassifyNumberFormat(format string) models.ValueType {
	parser := nfp.NumberFormatParser()
	sections := parser.Parse(format)
	if len(sections) == 0 {
		return models.ValueNumber
	}

	// Only the positive section decides.
	var hasDate, hasTime bool
	for _, tok := range sections[0].Items {
		switch tok.TType {
		case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
			switch v := strings.ToLower(tok.TValue); {
			case strings.ContainsAny(v, "hs"), v == "am/pm", v == "a/p":
				hasTime = true
			case strings.ContainsAny(v, "ydm"):
				// "m" after an hour token is minutes.
				if strings.Trim(v, "m") == "" && hasTime {
					continue
				}
				hasDate = true
			}
		case nfp.TokenTypePercent:
			return models.ValuePercentage
		case nfp.TokenTypeCurrencyLanguage:
			return models.ValueCurrency
		case nfp.TokenTypeLiteral:
			if strings.ContainsAny(tok.TValue, "$€£¥") {
				return models.ValueCurrency
			}
		}
	}

	switch {
	case hasDate && hasTime:
		return models.ValueDateTime
	case hasDate:
		return models.ValueDate
	case hasTime:
		return models.ValueTime
	}
	return models.ValueNumber
}

// builtinNumFmtType classifies Excel's built-in number format ids.
func builtinNumFmtType(id int) models.ValueType {
	switch {
	case id == 9 || id == 10:
		return models.ValuePercentage
	case id >= 5 && id <= 8:
		return models.ValueCurrency
	case id >= 14 && id <= 17:
		return models.ValueDate
	case id >= 18 && id <= 21:
		return models.ValueTime
	case id == 22:
		return models.ValueDateTime
	case id >= 45 && id <= 47:
		return models.ValueTime
	}
	return models.ValueNumber
}

func buildStyle(key styleKey) *excelize.Style {
	st := &excelize.Style{}

	if font := parseFont(key.font); font != nil || key.color != "" {
		if font == nil {
			font = &excelize.Font{}
		}
		font.Color = hexColor(key.color)
		st.Font = font
	}
	if bg := hexColor(key.bgColor); bg != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{bg}}
	}

	align := &excelize.Alignment{}
	switch key.align {
	case "left", "center", "right", "justify":
		align.Horizontal = key.align
	}
	align.Vertical = verticalAlign(key.layout)
	if align.Horizontal != "" || align.Vertical != "" {
		st.Alignment = align
	}

	for _, b := range []struct{ side, value string }{
		{"top", key.top}, {"right", key.right}, {"bottom", key.bottom}, {"left", key.left},
	} {
		if border, ok := parseBorder(b.side, b.value); ok {
			st.Border = append(st.Border, border)
		}
	}

	if key.numFmt != "" {
		numFmt := key.numFmt
		st.CustomNumFmt = &numFmt
	}
	return st
}

// parseFont reads a SocialCalc font: "style weight size family", where any
// part may be "*" for the sheet default.
func parseFont(s string) *excelize.Font {
	fields := strings.SplitN(strings.TrimSpace(s), " ", 4)
	if len(fields) < 3 {
		return nil
	}

	font := &excelize.Font{
		Italic: fields[0] == "italic",
		Bold:   fields[1] == "bold",
	}
	size := fields[2]
	switch {
	case strings.HasSuffix(size, "pt"):
		if n, err := strconv.ParseFloat(strings.TrimSuffix(size, "pt"), 64); err == nil {
			font.Size = n
		}
	case strings.HasSuffix(size, "px"):
		if n, err := strconv.ParseFloat(strings.TrimSuffix(size, "px"), 64); err == nil {
			font.Size = n * PointsPerPixel
		}
	}
	if len(fields) == 4 && fields[3] != "*" {
		family, _, _ := strings.Cut(fields[3], ",")
		font.Family = strings.Trim(strings.TrimSpace(family), `"'`)
	}

	if !font.Bold && !font.Italic && font.Size == 0 && font.Family == "" {
		return nil
	}
	return font
}

// hexColor converts "rgb(r,g,b)" or "#RRGGBB" to "RRGGBB".
func hexColor(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if hex, ok := strings.CutPrefix(s, "#"); ok && len(hex) == 6 {
		return strings.ToUpper(hex)
	}
	var r, g, b int
	if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
		return ""
	}
	return fmt.Sprintf("%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

// rgbColor converts "RRGGBB" or "FFRRGGBB" to SocialCalc's "rgb(r,g,b)".
func rgbColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		hex = hex[2:]
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if len(hex) != 6 || err != nil {
		return ""
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", n>>16&0xff, n>>8&0xff, n&0xff)
}

func clampByte(n int) int {
	return max(0, min(255, n))
}

// verticalAlign extracts vertical-align from a layout's CSS.
func verticalAlign(layout string) string {
	for _, decl := range strings.Split(layout, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(prop) != "vertical-align" {
			continue
		}
		switch strings.TrimSpace(value) {
		case "top":
			return "top"
		case "middle":
			return "center"
		case "bottom":
			return "bottom"
		}
	}
	return ""
}

// parseBorder reads a CSS border such as "1px solid rgb(0,0,0)".
func parseBorder(side, css string) (excelize.Border, bool) {
	fields := strings.Fields(css)
	if len(fields) < 2 {
		return excelize.Border{}, false
	}

	var width, style, color string
	for _, f := range fields {
		switch {
		case strings.HasSuffix(f, "px"):
			width = f
		case f == "solid" || f == "dashed" || f == "dotted" || f == "double":
			style = f
		default:
			color = hexColor(f)
		}
	}

	b := excelize.Border{Type: side, Color: color, Style: 1}
	switch style {
	case "dashed":
		b.Style = 3
	case "dotted":
		b.Style = 4
	case "double":
		b.Style = 6
	default:
		switch width {
		case "2px":
			b.Style = 2
		case "3px":
			b.Style = 5
		}
	}
	return b, true
}

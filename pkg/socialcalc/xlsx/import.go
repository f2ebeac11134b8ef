package xlsx

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// Excel's widths and heights for columns and rows without explicit sizes.
const (
	defaultColWidth  = 9.140625
	defaultRowHeight = 15.0
)

// ImportFile reads one worksheet of an .xlsx file. An empty sheetName
// selects the active worksheet.
func ImportFile(path, sheetName string) (*models.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Import(f, sheetName)
}

// Import converts one worksheet into a SocialCalc sheet. An empty
// sheetName selects the active worksheet.
func Import(f *excelize.File, sheetName string) (*models.Sheet, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	im := &importer{
		f:      f,
		name:   sheetName,
		sheet:  &models.Sheet{},
		tables: make(map[*[]models.StyleEntry]map[string]int),
		styles: make(map[int]*excelize.Style),
	}
	if err := im.cells(); err != nil {
		return nil, err
	}
	if err := im.merges(); err != nil {
		return nil, err
	}
	if err := im.comments(); err != nil {
		return nil, err
	}
	if err := im.dimensions(); err != nil {
		return nil, err
	}
	im.sheet.Names = importNames(f, sheetName)

	return im.sheet, nil
}

// importer accumulates one worksheet and the style tables it needs.
type importer struct {
	f     *excelize.File
	name  string
	sheet *models.Sheet

	// tables interns style table values by the table they belong to.
	tables map[*[]models.StyleEntry]map[string]int
	styles map[int]*excelize.Style
}

// cells reads every non-empty cell, row by row. Cells holding only a
// formula are found through the sheet dimension.
func (im *importer) cells() error {
	rows, err := im.f.GetRows(im.name, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}

	maxRow, maxCol := len(rows), 0
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}
	if dim, err := im.f.GetSheetDimension(im.name); err == nil {
		if _, end, ok := strings.Cut(dim, ":"); ok {
			if col, row, err := excelize.CellNameToCoordinates(end); err == nil {
				maxRow, maxCol = max(maxRow, row), max(maxCol, col)
			}
		}
	}

	for rowNum := 1; rowNum <= maxRow; rowNum++ {
		var row []string
		if rowNum <= len(rows) {
			row = rows[rowNum-1]
		}
		for colNum := 1; colNum <= maxCol; colNum++ {
			var raw string
			if colNum <= len(row) {
				raw = row[colNum-1]
			}
			coord, err := excelize.CoordinatesToCellName(colNum, rowNum)
			if err != nil {
				return err
			}
			formula, err := im.f.GetCellFormula(im.name, coord)
			if err != nil {
				return &CellError{Coord: coord, Op: "formula", Err: err}
			}
			if raw == "" && formula == "" {
				continue
			}

			cell, err := im.cell(coord, raw, formula)
			if err != nil {
				return err
			}
			im.sheet.Cells = append(im.sheet.Cells, models.CellEntry{Coord: coord, Cell: cell})
			im.extend(colNum, rowNum)
		}
	}
	return nil
}

func (im *importer) cell(coord, raw, formula string) (models.Cell, error) {
	typ, err := im.f.GetCellType(im.name, coord)
	if err != nil {
		return models.Cell{}, &CellError{Coord: coord, Op: "type", Err: err}
	}

	var cell models.Cell
	switch typ {
	case excelize.CellTypeBool:
		cell.ValueType = models.ValueLogical
		cell.Data = models.NumberValue(boolNumber(raw))
	case excelize.CellTypeError:
		cell.ValueType = errorValueType(raw)
		cell.Data = models.TextValue(raw)
	default:
		cell.Data, cell.ValueType = parseValue(raw)
	}

	if formula != "" {
		cell.DataType = models.DataFormula
		cell.Formula = strings.TrimPrefix(formula, "=")
	} else if cell.Data.Kind == models.KindNumber {
		cell.DataType = models.DataNumber
	} else {
		cell.DataType = models.DataText
	}

	if linked, target, err := im.f.GetCellHyperLink(im.name, coord); err == nil && linked && target != "" {
		if raw == "" || raw == target {
			if v, err := models.URLValue(target); err == nil {
				cell.Data = v
				cell.ValueType = models.ValueURL
			}
		}
	}

	if err := im.style(coord, &cell); err != nil {
		return models.Cell{}, err
	}
	return cell, nil
}

// parseValue reads a raw cell value as a number where possible, or text.
func parseValue(s string) (models.Value, models.ValueType) {
	if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return models.NumberValue(n), models.ValueNumber
	}
	return models.TextValue(s), models.ValueText
}

func boolNumber(raw string) float64 {
	if raw == "1" || strings.EqualFold(raw, "true") {
		return 1
	}
	return 0
}

// errorValueType maps an Excel error literal to its value type.
func errorValueType(raw string) models.ValueType {
	switch strings.ToUpper(raw) {
	case "#N/A":
		return models.ValueErrorNA
	case "#NULL!":
		return models.ValueErrorNull
	case "#NUM!":
		return models.ValueErrorNum
	case "#DIV/0!":
		return models.ValueErrorDiv0
	case "#REF!":
		return models.ValueErrorRef
	case "#NAME?":
		return models.ValueErrorName
	}
	return models.ValueErrorValue
}

// style maps the cell's excelize style onto SocialCalc style tables and
// refines numeric value types from the number format.
func (im *importer) style(coord string, cell *models.Cell) error {
	id, err := im.f.GetCellStyle(im.name, coord)
	if err != nil {
		return &CellError{Coord: coord, Op: "style", Err: err}
	}
	if id == 0 {
		return nil
	}
	st, ok := im.styles[id]
	if !ok {
		if st, err = im.f.GetStyle(id); err != nil {
			return &CellError{Coord: coord, Op: "style", Err: err}
		}
		im.styles[id] = st
	}

	if cell.ValueType == models.ValueNumber {
		if st.CustomNumFmt != nil && *st.CustomNumFmt != "" {
			cell.ValueType = ClassifyNumberFormat(*st.CustomNumFmt)
			cell.NonTextValueFormat = im.intern(&im.sheet.ValueFormats, *st.CustomNumFmt)
		} else {
			cell.ValueType = builtinNumFmtType(st.NumFmt)
		}
	}

	if st.Font != nil {
		if !isDefaultFont(st.Font) {
			cell.Font = im.intern(&im.sheet.Fonts, fontSpec(st.Font))
		}
		if st.Font.Color != "" {
			cell.Color = im.intern(&im.sheet.Colors, rgbColor(st.Font.Color))
		}
	}
	if len(st.Fill.Color) > 0 && st.Fill.Pattern == 1 {
		cell.BgColor = im.intern(&im.sheet.Colors, rgbColor(st.Fill.Color[0]))
	}
	if st.Alignment != nil {
		switch st.Alignment.Horizontal {
		case "left", "center", "right", "justify":
			cell.CellFormat = im.intern(&im.sheet.CellFormats, st.Alignment.Horizontal)
		}
	}
	return nil
}

// intern returns the index of value in table, appending it if missing.
// Blank values get index 0.
func (im *importer) intern(table *[]models.StyleEntry, value string) int {
	if value == "" {
		return 0
	}
	seen, ok := im.tables[table]
	if !ok {
		seen = make(map[string]int)
		im.tables[table] = seen
	}
	if idx, ok := seen[value]; ok {
		return idx
	}
	idx := len(*table) + 1
	*table = append(*table, models.StyleEntry{Index: idx, Value: value})
	seen[value] = idx
	return idx
}

// isDefaultFont reports whether font is the workbook's 11pt Calibri.
func isDefaultFont(font *excelize.Font) bool {
	return !font.Bold && !font.Italic &&
		(font.Size == 0 || font.Size == 11) &&
		(font.Family == "" || font.Family == "Calibri")
}

// fontSpec renders an excelize font as "style weight size family".
func fontSpec(font *excelize.Font) string {
	if !font.Bold && !font.Italic && font.Size == 0 && font.Family == "" {
		return ""
	}
	style, weight, size, family := "normal", "normal", "*", "*"
	if font.Italic {
		style = "italic"
	}
	if font.Bold {
		weight = "bold"
	}
	if font.Size > 0 {
		size = strconv.FormatFloat(font.Size, 'f', -1, 64) + "pt"
	}
	if font.Family != "" {
		family = font.Family
	}
	return strings.Join([]string{style, weight, size, family}, " ")
}

// merges records merged ranges as spans on their top-left cell.
func (im *importer) merges() error {
	merged, err := im.f.GetMergeCells(im.name)
	if err != nil {
		return err
	}

	for _, mc := range merged {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return err
		}

		cell := im.cellAt(mc.GetStartAxis())
		cell.ColSpan = endCol - startCol + 1
		cell.RowSpan = endRow - startRow + 1
		im.extend(endCol, endRow)
	}
	return nil
}

func (im *importer) comments() error {
	comments, err := im.f.GetComments(im.name)
	if err != nil {
		return err
	}

	for _, c := range comments {
		text := c.Text
		if text == "" {
			var sb strings.Builder
			for _, run := range c.Paragraph {
				sb.WriteString(run.Text)
			}
			text = sb.String()
		}
		if text == "" {
			continue
		}
		im.cellAt(c.Cell).Comment = text
	}
	return nil
}

// cellAt returns the cell at coord, adding an empty one if needed.
func (im *importer) cellAt(coord string) *models.Cell {
	if cell, ok := im.sheet.Cell(coord); ok {
		return cell
	}
	im.sheet.Cells = append(im.sheet.Cells, models.CellEntry{Coord: coord})
	if col, row, err := excelize.CellNameToCoordinates(coord); err == nil {
		im.extend(col, row)
	}
	return &im.sheet.Cells[len(im.sheet.Cells)-1].Cell
}

func (im *importer) extend(col, row int) {
	im.sheet.LastCol = max(im.sheet.LastCol, col)
	im.sheet.LastRow = max(im.sheet.LastRow, row)
}

// dimensions reads explicit column widths, row heights and visibility
// within the used range.
func (im *importer) dimensions() error {
	for col := 1; col <= im.sheet.LastCol; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}

		width, err := im.f.GetColWidth(im.name, name)
		if err != nil {
			return err
		}
		if math.Abs(width-defaultColWidth) > 0.01 {
			im.sheet.ColWidths = append(im.sheet.ColWidths, models.ColWidth{
				Col:   name,
				Width: strconv.Itoa(ColWidthToPixels(width)),
			})
		}

		visible, err := im.f.GetColVisible(im.name, name)
		if err != nil {
			return err
		}
		if !visible {
			im.sheet.ColHides = append(im.sheet.ColHides, models.ColHide{Col: name, Hidden: true})
		}
	}

	for row := 1; row <= im.sheet.LastRow; row++ {
		height, err := im.f.GetRowHeight(im.name, row)
		if err != nil {
			return err
		}
		if math.Abs(height-defaultRowHeight) > 0.01 {
			im.sheet.RowHeights = append(im.sheet.RowHeights, models.RowHeight{
				Row:    row,
				Height: PointsToPixels(height),
			})
		}

		visible, err := im.f.GetRowVisible(im.name, row)
		if err != nil {
			return err
		}
		if !visible {
			im.sheet.RowHides = append(im.sheet.RowHides, models.RowHide{Row: row, Hidden: true})
		}
	}
	return nil
}

package xlsx

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// DefaultSheetName is the name excelize gives the first worksheet.
const DefaultSheetName = "Sheet1"

// ExportOptions configures Export.
type ExportOptions struct {
	// SheetName names the worksheet the sheet is written to.
	SheetName string
	// Author is recorded on exported comments.
	Author string
}

// DefaultExportOptions returns the default export options.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		SheetName: DefaultSheetName,
		Author:    "SocialCalc",
	}
}

// Export writes a sheet into a new single-worksheet workbook. The caller
// closes the returned file.
func Export(sheet *models.Sheet, opts ExportOptions) (*excelize.File, error) {
	if opts.SheetName == "" {
		opts.SheetName = DefaultSheetName
	}

	f := excelize.NewFile()
	if opts.SheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, opts.SheetName); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := export(f, sheet, opts); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// ExportFile writes a sheet to an .xlsx file at path.
func ExportFile(sheet *models.Sheet, path string, opts ExportOptions) error {
	f, err := Export(sheet, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

func export(f *excelize.File, sheet *models.Sheet, opts ExportOptions) error {
	name := opts.SheetName
	styles := newStyleCache(f, sheet)

	for i := range sheet.Cells {
		entry := &sheet.Cells[i]
		if err := exportCell(f, name, entry.Coord, &entry.Cell, opts); err != nil {
			return err
		}

		styleID, err := styles.id(&entry.Cell)
		if err != nil {
			return &CellError{Coord: entry.Coord, Op: "style", Err: err}
		}
		if styleID != 0 {
			if err := f.SetCellStyle(name, entry.Coord, entry.Coord, styleID); err != nil {
				return &CellError{Coord: entry.Coord, Op: "style", Err: err}
			}
		}
	}

	for _, cw := range sheet.ColWidths {
		px, err := strconv.Atoi(cw.Width)
		if err != nil {
			// "auto", percentages and blanks keep Excel's default width.
			continue
		}
		if err := f.SetColWidth(name, cw.Col, cw.Col, PixelsToColWidth(px)); err != nil {
			return err
		}
	}
	for _, ch := range sheet.ColHides {
		if err := f.SetColVisible(name, ch.Col, !ch.Hidden); err != nil {
			return err
		}
	}
	for _, rh := range sheet.RowHeights {
		if rh.Height <= 0 {
			continue
		}
		if err := f.SetRowHeight(name, rh.Row, PixelsToPoints(rh.Height)); err != nil {
			return err
		}
	}
	for _, rh := range sheet.RowHides {
		if err := f.SetRowVisible(name, rh.Row, !rh.Hidden); err != nil {
			return err
		}
	}

	return exportNames(f, name, sheet.Names)
}

// exportCell writes the value, formula, span and comment of one cell.
func exportCell(f *excelize.File, sheetName, coord string, cell *models.Cell, opts ExportOptions) error {
	if err := f.SetCellValue(sheetName, coord, exportValue(cell)); err != nil {
		return &CellError{Coord: coord, Op: "value", Err: err}
	}

	if cell.DataType == models.DataFormula && cell.Formula != "" {
		if err := f.SetCellFormula(sheetName, coord, cell.Formula); err != nil {
			return &CellError{Coord: coord, Op: "formula", Err: err}
		}
	}

	if u, ok := cell.Data.AsURL(); ok {
		if err := f.SetCellHyperLink(sheetName, coord, u.String(), "External"); err != nil {
			return &CellError{Coord: coord, Op: "hyperlink", Err: err}
		}
	}

	if cell.ColSpan > 1 || cell.RowSpan > 1 {
		col, row, err := excelize.CellNameToCoordinates(coord)
		if err != nil {
			return &CellError{Coord: coord, Op: "merge", Err: err}
		}
		end, err := excelize.CoordinatesToCellName(col+max(cell.ColSpan, 1)-1, row+max(cell.RowSpan, 1)-1)
		if err != nil {
			return &CellError{Coord: coord, Op: "merge", Err: err}
		}
		if err := f.MergeCell(sheetName, coord, end); err != nil {
			return &CellError{Coord: coord, Op: "merge", Err: err}
		}
	}

	if cell.Comment != "" {
		err := f.AddComment(sheetName, excelize.Comment{
			Author: opts.Author,
			Cell:   coord,
			Text:   cell.Comment,
		})
		if err != nil {
			return &CellError{Coord: coord, Op: "comment", Err: err}
		}
	}

	return nil
}

// exportValue converts a cell value to the Go value excelize stores.
func exportValue(cell *models.Cell) any {
	v := cell.Data
	switch v.Kind {
	case models.KindNumber:
		if cell.ValueType == models.ValueLogical {
			return v.Number != 0
		}
		return v.Number
	case models.KindBool:
		return v.Bool
	case models.KindText, models.KindURL:
		if cell.ValueType == models.ValueHTML {
			return FlattenHTML(v.Text)
		}
		return v.Text
	}
	return nil
}

// Package inspect reports on the contents of a parsed sheet.
package inspect

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// Bounds is the bounding box of the cells holding data.
type Bounds struct {
	Range   string  `json:"range"`
	MinCol  int     `json:"min_col"`
	MinRow  int     `json:"min_row"`
	MaxCol  int     `json:"max_col"`
	MaxRow  int     `json:"max_row"`
	Cells   int     `json:"cells"`
	Density float64 `json:"density"`
}

// DataBounds finds the bounding box of non-empty cells. ok is false when
// the sheet holds no data.
func DataBounds(sheet *models.Sheet) (b Bounds, ok bool) {
	b.MinCol, b.MinRow, b.MaxCol, b.MaxRow = -1, -1, -1, -1
	seen := make(map[string]bool)

	for _, entry := range sheet.Cells {
		if entry.Cell.Data.IsNone() && entry.Cell.Formula == "" {
			continue
		}
		col, row, err := excelize.CellNameToCoordinates(entry.Coord)
		if err != nil {
			continue
		}
		if !seen[entry.Coord] {
			seen[entry.Coord] = true
			b.Cells++
		}

		if b.MinRow < 0 || row < b.MinRow {
			b.MinRow = row
		}
		if b.MaxRow < 0 || row > b.MaxRow {
			b.MaxRow = row
		}
		if b.MinCol < 0 || col < b.MinCol {
			b.MinCol = col
		}
		if b.MaxCol < 0 || col > b.MaxCol {
			b.MaxCol = col
		}
	}

	if b.Cells == 0 {
		return Bounds{}, false
	}

	totalCells := (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
	b.Density = float64(b.Cells) / float64(totalCells)

	startCell, _ := excelize.CoordinatesToCellName(b.MinCol, b.MinRow)
	endCell, _ := excelize.CoordinatesToCellName(b.MaxCol, b.MaxRow)
	b.Range = fmt.Sprintf("%s:%s", startCell, endCell)
	return b, true
}

// DetectTable reports the data range of a sheet if it is dense enough to
// look like a table.
func DetectTable(sheet *models.Sheet, params TableDetectionParams) (string, bool) {
	b, ok := DataBounds(sheet)
	if !ok {
		return "", false
	}
	if b.Cells < params.MinNonemptyCells || b.Density < params.DensityMin {
		return "", false
	}
	return b.Range, true
}

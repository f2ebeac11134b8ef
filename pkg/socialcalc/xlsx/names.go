package xlsx

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// exportNames adds the sheet's named ranges as workbook defined names.
// Cell and range definitions become absolute references on sheetName;
// "=formula" definitions are stored as the formula.
func exportNames(f *excelize.File, sheetName string, names []models.NamedRange) error {
	for _, n := range names {
		dn := &excelize.DefinedName{
			Name:     n.Name,
			Comment:  n.Description,
			RefersTo: refersTo(sheetName, n.Definition),
		}
		if err := f.SetDefinedName(dn); err != nil {
			return &NameError{Name: n.Name, Err: err}
		}
	}
	return nil
}

// refersTo renders a SocialCalc name definition as an Excel reference.
func refersTo(sheetName, def string) string {
	if formula, ok := strings.CutPrefix(def, "="); ok {
		return formula
	}
	if !isRangeReference(def) {
		return def
	}

	var parts []string
	for _, cell := range strings.Split(def, ":") {
		parts = append(parts, absoluteCell(cell))
	}
	return quoteSheetName(sheetName) + "!" + strings.Join(parts, ":")
}

// importNames reads the workbook defined names that apply to sheetName.
func importNames(f *excelize.File, sheetName string) []models.NamedRange {
	var result []models.NamedRange

	for _, dn := range f.GetDefinedName() {
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheetName {
			continue
		}
		// Built-in names such as _xlnm.Print_Area have no SocialCalc form.
		if strings.HasPrefix(dn.Name, "_xlnm.") {
			continue
		}

		result = append(result, models.NamedRange{
			Name:        strings.ToUpper(dn.Name),
			Description: dn.Comment,
			Definition:  definition(sheetName, dn.RefersTo),
		})
	}

	return result
}

// definition parses an Excel reference back into a SocialCalc definition.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1
func definition(sheetName, ref string) string {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")

	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet := strings.Trim(ref[:idx], "'")
		rangeStr := strings.ReplaceAll(ref[idx+1:], "$", "")
		if sheet == sheetName && isRangeReference(rangeStr) {
			return rangeStr
		}
	}

	plain := strings.ReplaceAll(ref, "$", "")
	if isRangeReference(plain) {
		return plain
	}
	return "=" + ref
}

// isRangeReference reports whether s is "A1" or "A1:B2".
func isRangeReference(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) > 2 {
		return false
	}
	for _, p := range parts {
		if _, _, err := excelize.CellNameToCoordinates(strings.ReplaceAll(p, "$", "")); err != nil {
			return false
		}
	}
	return true
}

// absoluteCell turns "B7" into "$B$7".
func absoluteCell(cell string) string {
	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(cell, "$", ""))
	if err != nil {
		return cell
	}
	abs, err := excelize.CoordinatesToCellName(col, row, true)
	if err != nil {
		return cell
	}
	return abs
}

func quoteSheetName(name string) string {
	if strings.ContainsAny(name, " '!-") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}

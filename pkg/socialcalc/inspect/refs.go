package inspect

import (
	"strings"

	"github.com/xuri/efp"
	"github.com/xuri/excelize/v2"
)

// FormulaRefs holds the operands of a formula that point at other cells.
type FormulaRefs struct {
	Cell string `json:"cell"`
	// Ranges are cell references and ranges ("A1", "B2:C9", "Other!A1").
	Ranges []string `json:"ranges,omitempty"`
	// Names are operands that are neither references nor literals.
	Names []string `json:"names,omitempty"`
}

// ParseFormulaRefs tokenizes a formula and collects its reference operands
// in the order they appear, without duplicates.
func ParseFormulaRefs(formula string) (ranges, names []string) {
	if !strings.HasPrefix(formula, "=") {
		formula = "=" + formula
	}

	seen := make(map[string]bool)
	ps := efp.ExcelParser()
	for _, token := range ps.Parse(formula) {
		if token.TType != efp.TokenTypeOperand || token.TSubType != efp.TokenSubTypeRange {
			continue
		}
		ref := token.TValue
		if seen[ref] {
			continue
		}
		seen[ref] = true

		if isReference(ref) {
			ranges = append(ranges, ref)
		} else {
			names = append(names, strings.ToUpper(ref))
		}
	}
	return ranges, names
}

// isReference reports whether ref addresses cells: "A1", "$A$1:B2",
// "A:A", "1:3", or any of those behind a "Sheet!" prefix.
func isReference(ref string) bool {
	if strings.Contains(ref, "!") {
		return true
	}
	for _, part := range strings.Split(ref, ":") {
		part = strings.ReplaceAll(part, "$", "")
		if part == "" {
			return false
		}
		if _, _, err := excelize.CellNameToCoordinates(part); err == nil {
			continue
		}
		if _, err := excelize.ColumnNameToNumber(part); err == nil && strings.Contains(ref, ":") {
			continue
		}
		if isDigits(part) && strings.Contains(ref, ":") {
			continue
		}
		return false
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

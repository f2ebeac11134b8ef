package inspect

import (
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// Summary describes the contents of a sheet.
type Summary struct {
	Cells      int            `json:"cells"`
	DataTypes  map[string]int `json:"data_types"`
	ValueTypes map[string]int `json:"value_types"`
	Formulas   int            `json:"formulas"`
	Merged     int            `json:"merged"`
	Comments   int            `json:"comments"`
	ReadOnly   int            `json:"read_only"`
	CellErrors int            `json:"cell_errors"`
	Names      int            `json:"names"`
	Bounds     *Bounds        `json:"bounds,omitempty"`
	Table      string         `json:"table,omitempty"`
	// LastCol and LastRow are the extent the sheet declares.
	LastCol int `json:"last_col"`
	LastRow int `json:"last_row"`

	References []FormulaRefs `json:"references,omitempty"`
	// UndefinedNames are names used by formulas that the sheet does not define.
	UndefinedNames []string `json:"undefined_names,omitempty"`
	// DanglingStyles are style indices with no entry in their table.
	DanglingStyles []DanglingStyle `json:"dangling_styles,omitempty"`
}

// DanglingStyle is a style index that resolves to nothing.
type DanglingStyle struct {
	// Cell is empty for sheet-level defaults.
	Cell  string `json:"cell,omitempty"`
	Attr  string `json:"attr"`
	Index int    `json:"index"`
}

// Summarize builds a Summary of sheet.
func Summarize(sheet *models.Sheet) Summary {
	s := Summary{
		DataTypes:  make(map[string]int),
		ValueTypes: make(map[string]int),
		Names:      len(sheet.Names),
		LastCol:    sheet.LastCol,
		LastRow:    sheet.LastRow,
	}

	defined := make(map[string]bool, len(sheet.Names))
	for _, n := range sheet.Names {
		defined[n.Name] = true
	}
	undefined := make(map[string]bool)

	for _, entry := range sheet.Cells {
		c := &entry.Cell
		s.Cells++
		s.DataTypes[c.DataType.String()]++
		s.ValueTypes[c.ValueType.String()]++

		if c.ColSpan > 1 || c.RowSpan > 1 {
			s.Merged++
		}
		if c.Comment != "" {
			s.Comments++
		}
		if c.ReadOnly {
			s.ReadOnly++
		}
		if c.Errors != "" {
			s.CellErrors++
		}

		if c.DataType == models.DataFormula && c.Formula != "" {
			s.Formulas++
			ranges, names := ParseFormulaRefs(c.Formula)
			if len(ranges) > 0 || len(names) > 0 {
				s.References = append(s.References, FormulaRefs{Cell: entry.Coord, Ranges: ranges, Names: names})
			}
			for _, n := range names {
				if !defined[n] && !undefined[n] {
					undefined[n] = true
					s.UndefinedNames = append(s.UndefinedNames, n)
				}
			}
		}

		s.DanglingStyles = append(s.DanglingStyles, danglingCellStyles(sheet, entry.Coord, c)...)
	}
	s.DanglingStyles = append(s.DanglingStyles, danglingSheetStyles(sheet)...)

	if b, ok := DataBounds(sheet); ok {
		s.Bounds = &b
	}
	if table, ok := DetectTable(sheet, DefaultTableParams()); ok {
		s.Table = table
	}
	return s
}

type styleRef struct {
	attr  string
	index int
	table []models.StyleEntry
}

func danglingCellStyles(sheet *models.Sheet, coord string, c *models.Cell) []DanglingStyle {
	return dangling(coord, []styleRef{
		{"bt", c.BorderTop, sheet.BorderStyles},
		{"br", c.BorderRight, sheet.BorderStyles},
		{"bb", c.BorderBottom, sheet.BorderStyles},
		{"bl", c.BorderLeft, sheet.BorderStyles},
		{"layout", c.Layout, sheet.Layouts},
		{"font", c.Font, sheet.Fonts},
		{"color", c.Color, sheet.Colors},
		{"bgcolor", c.BgColor, sheet.Colors},
		{"cellformat", c.CellFormat, sheet.CellFormats},
		{"tvf", c.TextValueFormat, sheet.ValueFormats},
		{"ntvf", c.NonTextValueFormat, sheet.ValueFormats},
	})
}

func danglingSheetStyles(sheet *models.Sheet) []DanglingStyle {
	return dangling("", []styleRef{
		{"tf", sheet.DefaultTextFormat, sheet.CellFormats},
		{"ntf", sheet.DefaultNonTextFormat, sheet.CellFormats},
		{"layout", sheet.DefaultLayout, sheet.Layouts},
		{"font", sheet.DefaultFont, sheet.Fonts},
		{"tvf", sheet.DefaultTextValueFormat, sheet.ValueFormats},
		{"ntvf", sheet.DefaultNonTextValueFormat, sheet.ValueFormats},
		{"color", sheet.DefaultColor, sheet.Colors},
		{"bgcolor", sheet.DefaultBgColor, sheet.Colors},
	})
}

func dangling(coord string, refs []styleRef) []DanglingStyle {
	var result []DanglingStyle
	for _, r := range refs {
		if r.index <= 0 {
			continue
		}
		if _, ok := models.StyleValue(r.table, r.index); !ok {
			result = append(result, DanglingStyle{Cell: coord, Attr: r.attr, Index: r.index})
		}
	}
	return result
}

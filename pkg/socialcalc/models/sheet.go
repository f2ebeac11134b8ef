package models

import "github.com/tiendc/go-deepcopy"

// CellEntry pairs a cell with its coordinate (e.g. "B7").
type CellEntry struct {
	Coord string `json:"coord"`
	Cell  Cell   `json:"cell"`
}

// ColWidth is a column width. Width is kept as text: a number, "auto",
// a percentage, or blank.
type ColWidth struct {
	Col   string `json:"col"`
	Width string `json:"width"`
}

// ColHide is a column visibility flag.
type ColHide struct {
	Col    string `json:"col"`
	Hidden bool   `json:"hidden"`
}

// RowHeight is a row height in pixels.
type RowHeight struct {
	Row    int `json:"row"`
	Height int `json:"height"`
}

// RowHide is a row visibility flag.
type RowHide struct {
	Row    int  `json:"row"`
	Hidden bool `json:"hidden"`
}

// StyleEntry is one entry of a shared style table. Indices are not
// required to be unique.
type StyleEntry struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// NamedRange is a sheet-level name definition.
type NamedRange struct {
	// Name is upper case once parsed.
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Definition is a cell reference, a range, or "=formula".
	Definition string `json:"definition"`
}

// Sheet represents a SocialCalc spreadsheet document.
type Sheet struct {
	// Cells are kept in the order they were read or added.
	Cells []CellEntry `json:"cells,omitempty"`

	ColWidths  []ColWidth   `json:"col_widths,omitempty"`
	ColHides   []ColHide    `json:"col_hides,omitempty"`
	RowHeights []RowHeight  `json:"row_heights,omitempty"`
	RowHides   []RowHide    `json:"row_hides,omitempty"`
	Names      []NamedRange `json:"names,omitempty"`

	Layouts      []StyleEntry `json:"layouts,omitempty"`
	Fonts        []StyleEntry `json:"fonts,omitempty"`
	Colors       []StyleEntry `json:"colors,omitempty"`
	BorderStyles []StyleEntry `json:"border_styles,omitempty"`
	CellFormats  []StyleEntry `json:"cell_formats,omitempty"`
	ValueFormats []StyleEntry `json:"value_formats,omitempty"`

	LastCol                   int    `json:"last_col,omitempty"`
	LastRow                   int    `json:"last_row,omitempty"`
	DefaultColWidth           string `json:"default_col_width,omitempty"`
	DefaultRowHeight          int    `json:"default_row_height,omitempty"`
	DefaultTextFormat         int    `json:"default_text_format,omitempty"`
	DefaultNonTextFormat      int    `json:"default_non_text_format,omitempty"`
	DefaultLayout             int    `json:"default_layout,omitempty"`
	DefaultFont               int    `json:"default_font,omitempty"`
	DefaultTextValueFormat    int    `json:"default_text_value_format,omitempty"`
	DefaultNonTextValueFormat int    `json:"default_non_text_value_format,omitempty"`
	DefaultColor              int    `json:"default_color,omitempty"`
	DefaultBgColor            int    `json:"default_bgcolor,omitempty"`
	CircularReferenceCell     string `json:"circular_reference_cell,omitempty"`
	// Recalc is "off" to disable automatic recalculation; anything else means on.
	Recalc      string `json:"recalc,omitempty"`
	NeedsRecalc bool   `json:"needs_recalc,omitempty"`
	// UserMaxCol and UserMaxRow limit the displayed area; 0 is unlimited.
	UserMaxCol int `json:"user_max_col,omitempty"`
	UserMaxRow int `json:"user_max_row,omitempty"`

	// CopiedFrom is the "A1:B2" source range of clipboard contents.
	CopiedFrom string `json:"copied_from,omitempty"`
}

// Cell returns the first cell stored under coord.
func (s *Sheet) Cell(coord string) (*Cell, bool) {
	for i := range s.Cells {
		if s.Cells[i].Coord == coord {
			return &s.Cells[i].Cell, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the sheet.
func (s *Sheet) Clone() (*Sheet, error) {
	var c Sheet
	if err := deepcopy.Copy(&c, *s); err != nil {
		return nil, err
	}
	return &c, nil
}

// StyleValue looks up index in a style table. The first matching entry wins.
func StyleValue(table []StyleEntry, index int) (string, bool) {
	for _, e := range table {
		if e.Index == index {
			return e.Value, true
		}
	}
	return "", false
}

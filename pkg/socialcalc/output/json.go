// Package output serializes sheets and reports to JSON.
package output

import (
	"encoding/json"
	"time"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/inspect"
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// sheetJSON adds calendar values for date cells to the sheet model.
type sheetJSON struct {
	*models.Sheet
	Dates map[string]time.Time `json:"dates,omitempty"`
}

// ToJSON serializes a sheet. Date, time and date-time cells are also
// listed under "dates" with their calendar value.
func ToJSON(sheet *models.Sheet, pretty bool) ([]byte, error) {
	out := sheetJSON{Sheet: sheet}
	for i := range sheet.Cells {
		if t, ok := sheet.Cells[i].Cell.Time(); ok {
			if out.Dates == nil {
				out.Dates = make(map[string]time.Time)
			}
			out.Dates[sheet.Cells[i].Coord] = t
		}
	}
	return marshal(out, pretty)
}

// FromJSON reads a sheet written by ToJSON.
func FromJSON(data []byte) (*models.Sheet, error) {
	var sheet models.Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

// SummaryToJSON serializes an inspection summary.
func SummaryToJSON(s *inspect.Summary, pretty bool) ([]byte, error) {
	return marshal(s, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

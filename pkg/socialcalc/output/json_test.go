package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/codec"
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/inspect"
)

const jsonSave = `cell:A1:v:42:f:1
cell:A2:vt:nd:45000
cell:A3:vtf:nl:1:TRUE()
cell:A4:vt:tl:http\c//example.com
col:A:w:80
sheet:c:1:r:4
font:1:normal bold * *
name:ANSWER::A1`

func TestToJSON(t *testing.T) {
	sheet, err := codec.Parse(jsonSave)
	require.NoError(t, err)

	data, err := ToJSON(sheet, false)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]any{"A2": "2023-03-15T00:00:00Z"}, raw["dates"])
	assert.Equal(t, float64(4), raw["last_row"])

	cells := raw["cells"].([]any)
	first := cells[0].(map[string]any)
	assert.Equal(t, "A1", first["coord"])
	cell := first["cell"].(map[string]any)
	assert.Equal(t, map[string]any{"kind": "number", "number": float64(42)}, cell["data"])
	assert.Equal(t, "number", cell["data_type"])
	assert.Equal(t, "number", cell["value_type"])
}

func TestToJSONPretty(t *testing.T) {
	sheet, err := codec.Parse("cell:A1:t:x")
	require.NoError(t, err)

	data, err := ToJSON(sheet, true)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  \"cells\""), string(data))
	assert.NotContains(t, string(data), "dates")
}

func TestFromJSONRoundTrip(t *testing.T) {
	sheet, err := codec.Parse(jsonSave)
	require.NoError(t, err)

	data, err := ToJSON(sheet, true)
	require.NoError(t, err)

	back, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, sheet, back)
}

func TestSummaryToJSON(t *testing.T) {
	sheet, err := codec.Parse(jsonSave)
	require.NoError(t, err)

	s := inspect.Summarize(sheet)
	data, err := SummaryToJSON(&s, false)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(4), raw["cells"])
	assert.Equal(t, float64(1), raw["formulas"])
	assert.Equal(t, float64(1), raw["names"])
}

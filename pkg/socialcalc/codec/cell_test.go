package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

func decodeCellLine(t *testing.T, tokens string) (models.Cell, error) {
	t.Helper()
	return decodeCell(newTokenReader(strings.Split(tokens, ":")))
}

func TestDecodeCellValues(t *testing.T) {
	tests := []struct {
		name      string
		tokens    string
		data      models.Value
		dataType  models.DataType
		valueType models.ValueType
		formula   string
	}{
		{"number", "v:42", models.NumberValue(42), models.DataNumber, models.ValueNumber, ""},
		{"blank number", "v:", models.NumberValue(0), models.DataNumber, models.ValueNumber, ""},
		{"text", `t:foo\cbar`, models.TextValue("foo:bar"), models.DataText, models.ValueText, ""},
		{"percentage", "vt:n%:0.5", models.NumberValue(0.5), models.DataNumber, models.ValuePercentage, ""},
		{"date", "vt:nd:38406", models.NumberValue(38406), models.DataNumber, models.ValueDate, ""},
		{"html", `vt:th:<b>x</b>`, models.TextValue("<b>x</b>"), models.DataText, models.ValueHTML, ""},
		{"url", `vt:tl:http\c//example.com/`, models.Value{Kind: models.KindURL, Text: "http://example.com/"}, models.DataText, models.ValueURL, ""},
		{"error", "vt:e#DIV/0!:", models.TextValue(""), models.DataText, models.ValueErrorDiv0, ""},
		{"formula", "vtf:n:84:A1*2", models.NumberValue(84), models.DataFormula, models.ValueNumber, "A1*2"},
		{"value after formula", "vtf:n:1:A2:v:2", models.NumberValue(2), models.DataNumber, models.ValueNumber, ""},
		{"text after constant", "vtc:n%:0.25:25%:t:x", models.TextValue("x"), models.DataText, models.ValueText, ""},
		{"typed value after formula", "vtf:n:1:A2:vt:nd:3", models.NumberValue(3), models.DataNumber, models.ValueDate, ""},
		{"text formula", `vtf:t:a\cb:CONCATENATE("a"\c"b")`, models.TextValue("a:b"), models.DataFormula, models.ValueText, `CONCATENATE("a":"b")`},
		{"logical formula", "vtf:nl:1:TRUE()", models.BoolValue(true), models.DataFormula, models.ValueLogical, "TRUE()"},
		{"logical false", "vtf:nl:0:1>2", models.BoolValue(false), models.DataFormula, models.ValueLogical, "1>2"},
		{"error formula", "vtf:e#REF!:#REF!:A1+#REF!", models.TextValue("#REF!"), models.DataFormula, models.ValueErrorRef, "A1+#REF!"},
		{"constant", "vtc:n$:1.2:$1.20", models.NumberValue(1.2), models.DataConstant, models.ValueCurrency, "$1.20"},
		{"untyped formula", "vtf::x:A1", models.TextValue("x"), models.DataFormula, models.ValueUndefined, "A1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, err := decodeCellLine(t, tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.data, cell.Data)
			assert.Equal(t, tt.dataType, cell.DataType)
			assert.Equal(t, tt.valueType, cell.ValueType)
			assert.Equal(t, tt.formula, cell.Formula)
		})
	}
}

func TestDecodeCellAttributes(t *testing.T) {
	cell, err := decodeCellLine(t, `v:1:ro:yes:e:bad\cthing:b:1:2::4:l:3:f:4:c:5:bg:6:cf:7:ntvf:8:tvf:9:colspan:2:rowspan:3:cssc:hdr:csss:color\cred:mod:y:comment:note\nline2`)
	require.NoError(t, err)

	assert.True(t, cell.ReadOnly)
	assert.Equal(t, "bad:thing", cell.Errors)
	assert.Equal(t, [4]int{1, 2, 0, 4}, [4]int{cell.BorderTop, cell.BorderRight, cell.BorderBottom, cell.BorderLeft})
	assert.Equal(t, 3, cell.Layout)
	assert.Equal(t, 4, cell.Font)
	assert.Equal(t, 5, cell.Color)
	assert.Equal(t, 6, cell.BgColor)
	assert.Equal(t, 7, cell.CellFormat)
	assert.Equal(t, 8, cell.NonTextValueFormat)
	assert.Equal(t, 9, cell.TextValueFormat)
	assert.Equal(t, 2, cell.ColSpan)
	assert.Equal(t, 3, cell.RowSpan)
	assert.Equal(t, "hdr", cell.CSSClass)
	assert.Equal(t, "color:red", cell.CSSStyle)
	assert.Equal(t, "note\nline2", cell.Comment)
}

func TestDecodeCellErrors(t *testing.T) {
	tests := []struct {
		tokens string
		kind   DecodeKind
		token  string
	}{
		{"zz:1", KindCellToken, "zz"},
		{"v:1:cvf:2", KindCellToken, "cvf"},
		{"vt:q:1", KindValueType, "q"},
		{"v", KindMissingOperand, "v"},
		{"b:1:2:3", KindMissingOperand, "b"},
		{"vtf:n:1", KindMissingOperand, "vtf"},
	}

	for _, tt := range tests {
		_, err := decodeCellLine(t, tt.tokens)
		var de *DecodeError
		require.ErrorAs(t, err, &de, "decode %q", tt.tokens)
		assert.Equal(t, tt.kind, de.Kind, "decode %q", tt.tokens)
		assert.Equal(t, tt.token, de.Token, "decode %q", tt.tokens)
	}

	for _, tokens := range []string{"v:abc", "l:x", "vt:n:1.2.3", "vtf:nl:yes:TRUE()"} {
		_, err := decodeCellLine(t, tokens)
		assert.ErrorIs(t, err, ErrFormat, "decode %q", tokens)
	}
}

func TestEncodeCell(t *testing.T) {
	tests := []struct {
		name string
		cell models.Cell
		want string
	}{
		{
			name: "number",
			cell: models.Cell{Data: models.NumberValue(42), DataType: models.DataNumber, ValueType: models.ValueNumber},
			want: "cell:A1:v:42",
		},
		{
			name: "text",
			cell: models.Cell{Data: models.TextValue("foo:bar"), DataType: models.DataText, ValueType: models.ValueText},
			want: `cell:A1:t:foo\cbar`,
		},
		{
			name: "typed number",
			cell: models.Cell{Data: models.NumberValue(0.5), DataType: models.DataNumber, ValueType: models.ValuePercentage},
			want: "cell:A1:vt:n%:0.5",
		},
		{
			name: "error",
			cell: models.Cell{Data: models.TextValue(""), DataType: models.DataText, ValueType: models.ValueErrorDiv0},
			want: "cell:A1:vt:e#DIV/0!:",
		},
		{
			name: "formula",
			cell: models.Cell{Data: models.NumberValue(84), DataType: models.DataFormula, ValueType: models.ValueNumber, Formula: "A1*2"},
			want: "cell:A1:vtf:n:84:A1*2",
		},
		{
			name: "logical formula",
			cell: models.Cell{Data: models.BoolValue(true), DataType: models.DataFormula, ValueType: models.ValueLogical, Formula: "TRUE()"},
			want: "cell:A1:vtf:nl:1:TRUE()",
		},
		{
			name: "constant",
			cell: models.Cell{Data: models.NumberValue(1.2), DataType: models.DataConstant, ValueType: models.ValueCurrency, Formula: "$1.20"},
			want: "cell:A1:vtc:n$:1.2:$1.20",
		},
		{
			name: "format only",
			cell: models.Cell{Font: 2, BorderBottom: 1},
			want: "cell:A1:b:0:0:1:0:f:2",
		},
		{
			name: "attributes",
			cell: models.Cell{
				Data: models.NumberValue(1), DataType: models.DataNumber, ValueType: models.ValueNumber,
				ReadOnly: true, Errors: "x:y", Layout: 1, Color: 3, BgColor: 4, CellFormat: 5,
				TextValueFormat: 6, NonTextValueFormat: 7, ColSpan: 2, RowSpan: 3,
				CSSClass: "hdr", CSSStyle: "color:red", Comment: "a\nb",
			},
			want: `cell:A1:v:1:ro:yes:e:x\cy:l:1:c:3:bg:4:cf:5:tvf:6:ntvf:7:colspan:2:rowspan:3:cssc:hdr:csss:color\cred:comment:a\nb`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeCell("A1", &tt.cell)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// the decoder must rebuild the same cell
			back, err := decodeCellLine(t, strings.TrimPrefix(got, "cell:A1:"))
			require.NoError(t, err)
			assert.Equal(t, tt.cell, back)
		})
	}
}

func TestEncodeCellInvalidValueType(t *testing.T) {
	cell := models.Cell{Data: models.NumberValue(1), DataType: models.DataNumber, ValueType: models.ValueType(42)}
	_, err := encodeCell("A1", &cell)
	assert.Error(t, err)
}

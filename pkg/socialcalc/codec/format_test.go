package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

const sampleFormatted = `version:1.5
cell:A1:v:42:f:1
cell:B1:t:Total\cdue:cf:1
cell:C1:vtf:n:84:A1*2
cell:A2:vt:n%:0.5:ntvf:1
cell:B2:vtc:nd:38406:2/23/2005:b:1:1:1:1
col:A:w:120
col:B:w:auto
col:C:hide:yes
row:3:h:20
row:3:hide:yes
sheet:c:3:r:3:w:80:h:15:tf:1:tvf:1:ntf:1:ntvf:1:layout:1:font:1:color:1:bgcolor:2:circularreferencecell:C1:recalc:off:needsrecalc:yes:usermaxcol:10:usermaxrow:20
border:1:1px solid rgb(0,0,0)
cellformat:1:left
color:1:rgb(0,0,0)
color:2:rgb(255,255,255)
font:1:normal bold 12pt Arial
layout:1:padding:2px 2px 1px 2px;vertical-align:top;
valueformat:1:#,##0.00
name:TOTAL:Grand total:C1
copiedfrom:A1:C3`

func TestFormatSectionOrder(t *testing.T) {
	sheet, err := Parse(sampleSave)
	require.NoError(t, err)

	got, err := Format(sheet)
	require.NoError(t, err)
	assert.Equal(t, sampleFormatted, got)
}

func TestFormatEmptySheet(t *testing.T) {
	got, err := Format(&models.Sheet{})
	require.NoError(t, err)
	assert.Equal(t, "version:1.5\nsheet", got)
}

func TestFormatLineEnding(t *testing.T) {
	sheet := &models.Sheet{LastCol: 1}
	got, err := FormatWithOptions(sheet, FormatOptions{LineEnding: "\r\n"})
	require.NoError(t, err)
	assert.Equal(t, "version:1.5\r\nsheet:c:1", got)
}

func TestFormatScenarios(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cell:A1:v:42", "cell:A1:v:42"},
		{`cell:A1:t:foo\cbar`, `cell:A1:t:foo\cbar`},
		{"cell:A1:vt:n%:0.5", "cell:A1:vt:n%:0.5"},
		{"cell:A1:vt:e#DIV/0!:", "cell:A1:vt:e#DIV/0!:"},
		{"cell:A1:vt:n:7", "cell:A1:v:7"},
		{"cell:A1:vt:t:x", "cell:A1:t:x"},
		{"cell:A1:v:1:mod:y", "cell:A1:v:1"},
	}

	for _, tt := range tests {
		sheet, err := Parse(tt.input)
		require.NoError(t, err, "Parse(%q)", tt.input)

		got, err := Format(sheet)
		require.NoError(t, err)
		lines := strings.Split(got, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, tt.want, lines[1], "Format(Parse(%q))", tt.input)
	}
}

func TestFormatRowHides(t *testing.T) {
	sheet, err := Parse("row:3:h:20:hide:yes")
	require.NoError(t, err)
	assert.Equal(t, []models.RowHeight{{Row: 3, Height: 20}}, sheet.RowHeights)
	assert.Equal(t, []models.RowHide{{Row: 3, Hidden: true}}, sheet.RowHides)

	visible := &models.Sheet{RowHides: []models.RowHide{{Row: 1, Hidden: false}, {Row: 2, Hidden: false}}}
	got, err := Format(visible)
	require.NoError(t, err)
	assert.NotContains(t, got, "hide")
}

func TestFormatDoesNotMutate(t *testing.T) {
	sheet, err := Parse(sampleSave)
	require.NoError(t, err)
	before, err := sheet.Clone()
	require.NoError(t, err)

	_, err = Format(sheet)
	require.NoError(t, err)
	assert.Equal(t, before, sheet)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		sampleSave,
		"cell:A1:vt:tl:http\\c//example.com/a?b=c\ncell:A2:vt:th:<i>x</i>\\nnext",
		"cell:A1:vtf:nl:0:FALSE()\ncell:A2:vtf:e#N/A:#N/A:NA()\ncell:A3:vtc:n%:0.25:25%",
		"cell:A1:vtf:ndt:45000.5:NOW():ro:yes:e:Circular\\creference",
		"cell:A1:b:1:0:0:2:l:1:cssc:x:csss:a\\cb\\bc:comment:\\c\\n\\b",
		"col:A:w:50%\ncol:B:hide:no\nrow:1:h:",
		"name:MyRange:desc\\cwith colon:=SUM(A1\\cB2)\nname:second::A1",
		"sheet:w:auto:recalc:on",
		"valueformat:2:[$$]#,##0.00\ncellformat:3:center\nlayout:4:*",
		"cell:A1:vtf:n:1:A2:v:2\ncell:B1:vtc:n%:0.5:50%:t:x",
		"cell:A1:l:-1:b:-1:0:0:0:f:-2:colspan:-1",
		"sheet:c:-3:r:-1:font:-4:usermaxrow:-2",
	}

	for _, input := range inputs {
		first, err := Parse(input)
		require.NoError(t, err, "Parse(%q)", input)

		text, err := Format(first)
		require.NoError(t, err)

		second, err := Parse(text)
		require.NoError(t, err, "Parse(%q)", text)
		assert.Equal(t, first, second, "round trip of %q via %q", input, text)
	}
}

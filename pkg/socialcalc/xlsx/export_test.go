package xlsx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/codec"
)

const exportSave = `version:1.5
cell:A1:t:Name:f:1:c:1:bg:2:cf:1
cell:B1:v:42:ntvf:1
cell:C1:vtf:n:84:B1*2
cell:A2:vt:tl:https\c//example.com/:comment:see site
cell:B2:vt:nd:45000
cell:C2:vt:th:<b>bold</b><br>next:colspan:2:rowspan:2
cell:A3:vtf:nl:1:TRUE()
col:A:w:120
col:B:hide:yes
row:2:h:40
row:3:hide:yes
sheet:c:4:r:3
cellformat:1:center
color:1:rgb(255,0,0)
color:2:rgb(0,0,255)
font:1:italic bold 14pt Arial,sans-serif
valueformat:1:#,##0.00
name:TOTAL:Grand total:B1
name:SPAN::A1\cC2`

func exportTestFile(t *testing.T) *excelize.File {
	t.Helper()
	sheet, err := codec.Parse(exportSave)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	f, err := Export(sheet, DefaultExportOptions())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExportValues(t *testing.T) {
	f := exportTestFile(t)

	tests := []struct {
		cell     string
		expected string
	}{
		{"A1", "Name"},
		{"B1", "42.00"},
		{"A2", "https://example.com/"},
		{"C2", "bold\nnext"},
	}

	for _, tt := range tests {
		got, err := f.GetCellValue(DefaultSheetName, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if got != tt.expected {
			t.Errorf("GetCellValue(%s) = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}

func TestExportFormulasAndLinks(t *testing.T) {
	f := exportTestFile(t)

	formula, err := f.GetCellFormula(DefaultSheetName, "C1")
	if err != nil {
		t.Fatalf("GetCellFormula failed: %v", err)
	}
	if formula != "B1*2" && formula != "=B1*2" {
		t.Errorf("C1 formula = %q, expected B1*2", formula)
	}

	linked, target, err := f.GetCellHyperLink(DefaultSheetName, "A2")
	if err != nil {
		t.Fatalf("GetCellHyperLink failed: %v", err)
	}
	if !linked || target != "https://example.com/" {
		t.Errorf("A2 hyperlink = %v %q", linked, target)
	}
}

func TestExportLayout(t *testing.T) {
	f := exportTestFile(t)

	merged, err := f.GetMergeCells(DefaultSheetName)
	if err != nil {
		t.Fatalf("GetMergeCells failed: %v", err)
	}
	if len(merged) != 1 || merged[0].GetStartAxis() != "C2" || merged[0].GetEndAxis() != "D3" {
		t.Errorf("unexpected merges: %v", merged)
	}

	width, err := f.GetColWidth(DefaultSheetName, "A")
	if err != nil {
		t.Fatalf("GetColWidth failed: %v", err)
	}
	if ColWidthToPixels(width) != 120 {
		t.Errorf("column A width = %v (%dpx), expected 120px", width, ColWidthToPixels(width))
	}

	visible, err := f.GetColVisible(DefaultSheetName, "B")
	if err != nil || visible {
		t.Errorf("column B visible = %v, err %v", visible, err)
	}

	height, err := f.GetRowHeight(DefaultSheetName, 2)
	if err != nil {
		t.Fatalf("GetRowHeight failed: %v", err)
	}
	if height != 30 {
		t.Errorf("row 2 height = %v, expected 30", height)
	}

	visible, err = f.GetRowVisible(DefaultSheetName, 3)
	if err != nil || visible {
		t.Errorf("row 3 visible = %v, err %v", visible, err)
	}
}

func TestExportCommentsAndNames(t *testing.T) {
	f := exportTestFile(t)

	comments, err := f.GetComments(DefaultSheetName)
	if err != nil {
		t.Fatalf("GetComments failed: %v", err)
	}
	if len(comments) != 1 || comments[0].Cell != "A2" {
		t.Fatalf("unexpected comments: %+v", comments)
	}

	refs := make(map[string]string)
	for _, dn := range f.GetDefinedName() {
		refs[dn.Name] = dn.RefersTo
	}
	if refs["TOTAL"] != "Sheet1!$B$1" {
		t.Errorf("TOTAL refers to %q", refs["TOTAL"])
	}
	if refs["SPAN"] != "Sheet1!$A$1:$C$2" {
		t.Errorf("SPAN refers to %q", refs["SPAN"])
	}
}

func TestExportStyles(t *testing.T) {
	f := exportTestFile(t)

	id, err := f.GetCellStyle(DefaultSheetName, "A1")
	if err != nil {
		t.Fatalf("GetCellStyle failed: %v", err)
	}
	st, err := f.GetStyle(id)
	if err != nil {
		t.Fatalf("GetStyle failed: %v", err)
	}
	if st.Font == nil || !st.Font.Bold || !st.Font.Italic || st.Font.Family != "Arial" || st.Font.Size != 14 {
		t.Errorf("unexpected font: %+v", st.Font)
	}
	if st.Alignment == nil || st.Alignment.Horizontal != "center" {
		t.Errorf("unexpected alignment: %+v", st.Alignment)
	}
	if len(st.Fill.Color) == 0 || !strings.HasSuffix(strings.ToUpper(st.Fill.Color[0]), "0000FF") {
		t.Errorf("unexpected fill: %+v", st.Fill)
	}

	dateID, err := f.GetCellStyle(DefaultSheetName, "B2")
	if err != nil {
		t.Fatalf("GetCellStyle failed: %v", err)
	}
	if dateID == 0 || dateID == id {
		t.Errorf("B2 style = %d, expected a distinct date style", dateID)
	}
}

func TestExportSheetName(t *testing.T) {
	sheet, err := codec.Parse("cell:A1:v:1\nname:ONE::A1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	f, err := Export(sheet, ExportOptions{SheetName: "My Data"})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != "My Data" {
		t.Errorf("sheet name = %q", got)
	}
	for _, dn := range f.GetDefinedName() {
		if dn.Name == "ONE" && dn.RefersTo != "'My Data'!$A$1" {
			t.Errorf("ONE refers to %q", dn.RefersTo)
		}
	}
}

func TestExportFileRoundTrip(t *testing.T) {
	sheet, err := codec.Parse(exportSave)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	if err := ExportFile(sheet, path, DefaultExportOptions()); err != nil {
		t.Fatalf("ExportFile failed: %v", err)
	}

	back, err := ImportFile(path, "")
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}

	b1, ok := back.Cell("B1")
	if !ok {
		t.Fatal("B1 missing after round trip")
	}
	if n, _ := b1.Data.AsNumber(); n != 42 {
		t.Errorf("B1 = %v, expected 42", b1.Data)
	}

	c2, ok := back.Cell("C2")
	if !ok || c2.ColSpan != 2 || c2.RowSpan != 2 {
		t.Errorf("C2 spans lost: %+v", c2)
	}

	a2, ok := back.Cell("A2")
	if !ok || !strings.Contains(a2.Comment, "see site") {
		t.Errorf("A2 comment lost: %+v", a2)
	}

	if back.LastCol != 4 || back.LastRow != 3 {
		t.Errorf("bounds = %dx%d, expected 4x3", back.LastCol, back.LastRow)
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"rgb(255,0,0)", "FF0000"},
		{"rgb(0, 128, 255)", "0080FF"},
		{"#abcdef", "ABCDEF"},
		{"red", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := hexColor(tt.input); got != tt.expected {
			t.Errorf("hexColor(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}

	if got := rgbColor("FF0080FF"); got != "rgb(0,128,255)" {
		t.Errorf("rgbColor = %q", got)
	}
}

func TestParseFont(t *testing.T) {
	font := parseFont("italic bold 12pt Arial,Helvetica,sans-serif")
	if font == nil || !font.Italic || !font.Bold || font.Size != 12 || font.Family != "Arial" {
		t.Errorf("unexpected font: %+v", font)
	}

	font = parseFont("normal normal 16px *")
	if font == nil || font.Size != 12 || font.Family != "" {
		t.Errorf("unexpected font: %+v", font)
	}

	if font := parseFont("* * *"); font != nil {
		t.Errorf("expected no font, got %+v", font)
	}
}

func TestFlattenHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"<b>bold</b> text", "bold text"},
		{"a<br>b", "a\nb"},
		{"<p>one</p><p>two</p>", "one\ntwo"},
		{"fish &amp; chips", "fish & chips"},
		{"<script>x()</script>shown", "shown"},
	}

	for _, tt := range tests {
		if got := FlattenHTML(tt.input); got != tt.expected {
			t.Errorf("FlattenHTML(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

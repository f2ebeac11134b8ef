package codec

import (
	"strings"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// Parse reads a sheet from save format text. Lines may end in "\n",
// "\r\n" or "\r". The first malformed line aborts the parse with a
// *LineError wrapping a *DecodeError or *FormatError.
func Parse(text string) (*models.Sheet, error) {
	b := &sheetBuilder{}
	for i, line := range SplitLines(text) {
		if err := b.addLine(line); err != nil {
			return nil, &LineError{Line: i + 1, Err: err}
		}
	}
	return &b.sheet, nil
}

// SplitLines splits text on CR LF, LF or a lone CR. A terminator at the very
// end does not start another line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

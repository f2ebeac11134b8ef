package socialcalc

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/codec"
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/envelope"
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
)

// Load reads a save from path.
func Load(path string, opts Options) (*models.Sheet, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, NewLoadError(path, "read", ErrFileNotFound)
	}
	if err != nil {
		return nil, NewLoadError(path, "read", err)
	}

	sheet, err := Parse(string(data), opts)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return sheet, nil
}

// Parse reads a save from text, unwrapping the MIME envelope as opts.Source
// directs.
func Parse(text string, opts Options) (*models.Sheet, error) {
	body, err := Body(text, opts)
	if err != nil {
		return nil, err
	}

	sheet, err := codec.Parse(body)
	if err != nil {
		return nil, NewLoadError("", "parse", err)
	}
	return sheet, nil
}

// Body returns the bare sheet save contained in text.
func Body(text string, opts Options) (string, error) {
	switch opts.Source {
	case SourcePlain:
		return text, nil
	case SourceMIME:
	default:
		if !envelope.IsEnvelope(text) {
			return text, nil
		}
	}

	body, err := envelope.Extract(text)
	if err != nil {
		return "", NewLoadError("", "envelope", err)
	}
	return body, nil
}

// Save renders a sheet, wrapped in the MIME envelope if opts say so.
func Save(sheet *models.Sheet, opts Options) (string, error) {
	text, err := codec.FormatWithOptions(sheet, codec.FormatOptions{LineEnding: opts.LineEnding})
	if err != nil {
		return "", err
	}
	if !opts.ShouldWrap() {
		return text, nil
	}
	return envelope.Wrap(text)
}

// WriteFile saves a sheet to path.
func WriteFile(path string, sheet *models.Sheet, opts Options) error {
	text, err := Save(sheet, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}

// Package socialcalc loads and saves SocialCalc spreadsheet saves.
package socialcalc

// Source says how input text is wrapped.
type Source string

const (
	// SourceAuto detects the MIME envelope and unwraps it when present.
	SourceAuto Source = "auto"
	// SourcePlain is a bare sheet save.
	SourcePlain Source = "plain"
	// SourceMIME is the multipart envelope written by the spreadsheet control.
	SourceMIME Source = "mime"
)

// Options configures loading and saving.
type Options struct {
	// Source specifies how input is wrapped (auto, plain, mime).
	Source Source
	// LineEnding separates lines of saved output. Defaults to "\n".
	LineEnding string
	// Envelope wraps saved output in the MIME envelope.
	// If nil, output is wrapped only when Source is SourceMIME.
	Envelope *bool
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Source:     SourceAuto,
		LineEnding: "\n",
	}
}

// ShouldWrap returns whether saved output goes inside the MIME envelope.
func (o Options) ShouldWrap() bool {
	if o.Envelope != nil {
		return *o.Envelope
	}
	return o.Source == SourceMIME
}

// ParseSource maps a flag value onto a Source.
func ParseSource(s string) (Source, bool) {
	switch Source(s) {
	case SourceAuto, SourcePlain, SourceMIME:
		return Source(s), true
	case "":
		return SourceAuto, true
	}
	return "", false
}

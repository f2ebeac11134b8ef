// Package envelope unwraps and wraps the multipart MIME document that the
// SocialCalc spreadsheet control saves.
//
// A save looks like this:
//
//	socialcalc:version:1.0
//	MIME-Version: 1.0
//	Content-Type: multipart/mixed; boundary=SocialCalcSpreadsheetControlSave
//	--SocialCalcSpreadsheetControlSave
//	Content-type: text/plain; charset=UTF-8
//
//	# SocialCalc Spreadsheet Control Save
//	version:1.0
//	part:sheet
//	part:edit
//	part:audit
//	--SocialCalcSpreadsheetControlSave
//	Content-type: text/plain; charset=UTF-8
//
//	version:1.5
//	cell:A1:v:1
//	...
//	--SocialCalcSpreadsheetControlSave--
//
// The first part lists the parts that follow; the sheet is the one
// announced as "part:sheet".
package envelope

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// Boundary is the fixed multipart boundary used by the control.
const Boundary = "SocialCalcSpreadsheetControlSave"

// ErrInvalidEnvelope indicates the source is not a SocialCalc MIME save.
var ErrInvalidEnvelope = errors.New("invalid SocialCalc MIME format")

// IsEnvelope reports whether source looks like a MIME save rather than a
// bare sheet.
func IsEnvelope(source string) bool {
	return strings.Contains(source, "--"+Boundary)
}

// Extract returns the sheet part of a MIME save as plain text.
func Extract(source string) (string, error) {
	parts, err := readParts(source)
	if err != nil {
		return "", err
	}
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: expected at least 2 parts, found %d", ErrInvalidEnvelope, len(parts))
	}

	index := sheetPartIndex(parts[0])
	if index >= len(parts) {
		return "", fmt.Errorf("%w: sheet is part %d of %d", ErrInvalidEnvelope, index, len(parts))
	}
	return parts[index], nil
}

// readParts decodes every part body to UTF-8.
func readParts(source string) ([]string, error) {
	mr := multipart.NewReader(strings.NewReader(source), Boundary)

	var parts []string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
		}

		body, err := io.ReadAll(p)
		p.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
		}

		text, err := decodeCharset(p.Header.Get("Content-Type"), body)
		if err != nil {
			return nil, err
		}
		parts = append(parts, text)
	}
	return parts, nil
}

// decodeCharset converts body from the charset named in contentType.
func decodeCharset(contentType string, body []byte) (string, error) {
	if contentType == "" {
		return string(body), nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: content type %q: %v", ErrInvalidEnvelope, contentType, err)
	}

	charset := params["charset"]
	if charset == "" || strings.EqualFold(charset, "utf-8") {
		return string(body), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("%w: charset %q: %v", ErrInvalidEnvelope, charset, err)
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("%w: charset %q: %v", ErrInvalidEnvelope, charset, err)
	}
	return string(decoded), nil
}

// sheetPartIndex finds the sheet among the parts listed by the header part.
// Parts are numbered from 1 since the header part itself is 0.
func sheetPartIndex(header string) int {
	n := 0
	for _, line := range strings.Split(header, "\n") {
		line = strings.TrimRight(line, "\r")
		name, ok := strings.CutPrefix(line, "part:")
		if !ok {
			continue
		}
		n++
		if name == "sheet" {
			return n
		}
	}
	return 1
}

// Wrap packs a sheet save into a MIME save containing only the sheet part.
func Wrap(sheet string) (string, error) {
	var sb strings.Builder
	sb.WriteString("socialcalc:version:1.0\n")
	sb.WriteString("MIME-Version: 1.0\n")
	sb.WriteString("Content-Type: multipart/mixed; boundary=" + Boundary + "\n")

	mw := multipart.NewWriter(&sb)
	if err := mw.SetBoundary(Boundary); err != nil {
		return "", err
	}

	header := textproto.MIMEHeader{"Content-Type": {"text/plain; charset=UTF-8"}}
	for _, body := range []string{
		"# SocialCalc Spreadsheet Control Save\nversion:1.0\npart:sheet\n",
		sheet,
	} {
		w, err := mw.CreatePart(header)
		if err != nil {
			return "", err
		}
		if _, err := io.WriteString(w, body); err != nil {
			return "", err
		}
	}

	if err := mw.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

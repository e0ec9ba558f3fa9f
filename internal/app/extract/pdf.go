// Package extract pulls plain text out of uploaded PDF resumes.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	ErrNotPDF = errors.New("file is not a readable PDF")
	ErrNoText = errors.New("no extractable text in PDF")
)

// Text extracts the text of every page of the PDF in data. Pages that
// fail to decode are skipped, matching how lenient resume parsers need
// to be with real-world exports. Returns ErrNoText when nothing useful
// came out.
func Text(data []byte) (text string, err error) {
	// the pdf package panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrNotPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	var parts []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, perr := page.GetPlainText(nil)
		if perr != nil {
			continue
		}
		if content = strings.TrimSpace(content); content != "" {
			parts = append(parts, content)
		}
	}

	text = strings.TrimSpace(strings.Join(parts, "\n"))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

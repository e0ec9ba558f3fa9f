// Package renderer turns resume text back into downloadable files.
package renderer

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Render produces the resume as a file in the requested format
// (pdf, docx or txt) together with its media type and a filename
// suitable for a Content-Disposition header.
func Render(resume, format string) (data []byte, mediaType, filename string, err error) {
	switch format {
	case "pdf":
		data, err = renderPDF(resume)
		return data, "application/pdf", "resume.pdf", err
	case "docx":
		data, err = renderDOCX(resume)
		return data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "resume.docx", err
	case "txt":
		return []byte(resume), "text/plain; charset=utf-8", "resume.txt", nil
	default:
		return nil, "", "", fmt.Errorf("unsupported format %q", format)
	}
}

func renderPDF(resume string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Resume", true)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	// core fonts are cp1252, translate what we can
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, tr("Resume"), "", 1, "L", false, 0, "")

	if resume == "" {
		resume = "(No content provided)"
	}
	doc.SetFont("Helvetica", "", 11)
	for _, paragraph := range strings.Split(resume, "\n\n") {
		doc.MultiCell(0, 6, tr(paragraph), "", "L", false)
		doc.Ln(1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

// renderDOCX writes a minimal WordprocessingML package: a .docx is a
// zip holding fixed boilerplate plus word/document.xml with a bold
// "Resume" heading and one paragraph per blank-line-separated block.
func renderDOCX(resume string) ([]byte, error) {
	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	doc.WriteString(`<w:p><w:r><w:rPr><w:b/><w:sz w:val="32"/></w:rPr><w:t>Resume</w:t></w:r></w:p>`)
	for _, paragraph := range strings.Split(resume, "\n\n") {
		doc.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		if err := xml.EscapeText(&doc, []byte(paragraph)); err != nil {
			return nil, fmt.Errorf("render docx: %w", err)
		}
		doc.WriteString(`</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct{ name, body string }{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", doc.String()},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("render docx: %w", err)
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("render docx: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return buf.Bytes(), nil
}

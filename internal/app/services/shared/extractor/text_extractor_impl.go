package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"github.com/ledongthuc/pdf"
)

const pageBreakMarker = "\n--- Page Break ---\n"

type textExtractor struct{}

func NewTextExtractor() contracts.TextExtractor {
	return &textExtractor{}
}

// Extract pulls readable text out of an uploaded record. The MIME type picks
// the strategy; unsupported types are rejected rather than silently skipped.
func (e *textExtractor) Extract(ctx context.Context, fileName, mimeType string, reader io.Reader, size int64) (string, error) {
	switch {
	case mimeType == constvars.MIMEApplicationPDF:
		return e.extractPDF(reader, size)
	case mimeType == constvars.MIMEApplicationDocx:
		return e.extractDocx(reader, size)
	case mimeType == constvars.MIMETextPlain:
		content, err := io.ReadAll(reader)
		if err != nil {
			return "", exceptions.ErrTextExtraction(err)
		}
		return "[Plain Text Content]\n" + string(content), nil
	case strings.HasPrefix(mimeType, constvars.MIMEImagePrefix):
		return fmt.Sprintf("[Image OCR Required] File: %s", fileName), nil
	default:
		return "", exceptions.ErrUnsupportedFileType(mimeType)
	}
}

func (e *textExtractor) extractPDF(reader io.Reader, size int64) (string, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", exceptions.ErrTextExtraction(err)
	}

	pdfReader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", exceptions.ErrTextExtraction(err)
	}

	var pages []string
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", exceptions.ErrTextExtraction(err)
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return "[PDF Embedded Text Extracted]\n" + strings.Join(pages, pageBreakMarker), nil
}

// docx is a zip archive; the document body lives in word/document.xml and the
// readable text in w:t elements.
func (e *textExtractor) extractDocx(reader io.Reader, size int64) (string, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", exceptions.ErrTextExtraction(err)
	}

	zipReader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", exceptions.ErrTextExtraction(err)
	}

	var document *zip.File
	for _, f := range zipReader.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", exceptions.ErrTextExtraction(fmt.Errorf("word/document.xml not found"))
	}

	rc, err := document.Open()
	if err != nil {
		return "", exceptions.ErrTextExtraction(err)
	}
	defer rc.Close()

	text, err := readDocxText(rc)
	if err != nil {
		return "", exceptions.ErrTextExtraction(err)
	}

	return "[DOCX Text Content Extracted]\n" + text, nil
}

func readDocxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var b strings.Builder
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				var content string
				if err := decoder.DecodeElement(&content, &t); err != nil {
					return "", err
				}
				b.WriteString(content)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFTextBytes caps extracted text; report PDFs carry all relevant
// fields in the first pages.
const maxPDFTextBytes = 50000

// ExtractPDFText extracts plain text from a PDF document. The result
// feeds the OCR-tolerant extractors: text produced this way shares the
// artifacts of scanned-and-recognized reports.
func ExtractPDFText(r io.Reader) (string, error) {
	buf := new(bytes.Buffer)
	size, err := buf.ReadFrom(r)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), size)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	totalPages := reader.NumPage()

	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")

		if sb.Len() > maxPDFTextBytes {
			break
		}
	}

	result := sb.String()
	if len(result) > maxPDFTextBytes {
		result = result[:maxPDFTextBytes]
	}
	return result, nil
}

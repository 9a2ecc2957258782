package resume

import (
	"bytes"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the text layer out of a PDF resume.
// Scanned PDFs without a text layer yield empty output rather than an error.
func extractPDF(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to parse PDF", Cause: err}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to extract PDF text", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read PDF text", Cause: err}
	}
	return buf.String(), nil
}

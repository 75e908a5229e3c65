package extraction

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

var ErrInvalidPDF = errors.New("invalid or unreadable PDF document")

// extractPDFText returns the plain text of every page, concatenated.
func extractPDFText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrInvalidPDF
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	return buf.String(), nil
}

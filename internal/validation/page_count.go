package validation

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func relaxedConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// CountPDFPages counts the number of pages in a PDF file.
func CountPDFPages(pdfPath string) (int, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, &FileReadError{
			Message: fmt.Sprintf("failed to open PDF %s", pdfPath),
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	return countPages(f)
}

// CountPDFPagesBytes counts the number of pages in an in-memory PDF.
func CountPDFPagesBytes(data []byte) (int, error) {
	return countPages(bytes.NewReader(data))
}

func countPages(rs io.ReadSeeker) (int, error) {
	count, err := api.PageCount(rs, relaxedConfig())
	if err != nil {
		return 0, &Error{Message: "failed to count PDF pages", Cause: err}
	}
	return count, nil
}

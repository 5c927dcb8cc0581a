package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDF returns the plain text of every page joined by newlines, in page
// order. A page that is empty or fails to decode contributes an empty string;
// only failing to open the document is an error. Panics raised by the PDF
// parser on malformed input are converted to errors.
func ExtractPDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	pages := make([]string, 0, r.NumPage())
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		pages = append(pages, pageText(r.Page(pageNum)))
	}
	return strings.Join(pages, "\n"), nil
}

// pageText extracts one page, treating any failure as an empty page.
func pageText(p pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	if p.V.IsNull() {
		return ""
	}
	content, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}

package extract

import (
	"strings"

	pdf "github.com/dslipak/pdf"
)

// PDFPage is the text of a single PDF page.
type PDFPage struct {
	Number int
	Text   string
}

// PDFPages extracts plain text page by page. Pages that fail to decode or
// contain no text are skipped rather than failing the whole file; scanned
// corpora routinely carry a few image-only pages.
func PDFPages(path string) ([]PDFPage, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}

	total := r.NumPage()
	var pages []PDFPage
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}

		text = SanitizeUTF8(strings.TrimSpace(text))
		if text == "" {
			continue
		}

		pages = append(pages, PDFPage{Number: i, Text: text})
	}

	return pages, nil
}

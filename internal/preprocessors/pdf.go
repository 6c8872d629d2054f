// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFPages caps per-document extraction time on oversized filings
const maxPDFPages = 200

// PDFPreprocessor extracts text from PDF filings
type PDFPreprocessor struct{}

// NewPDFPreprocessor creates a PDF preprocessor
func NewPDFPreprocessor() *PDFPreprocessor {
	return &PDFPreprocessor{}
}

func (p *PDFPreprocessor) Name() string {
	return "pdf"
}

func (p *PDFPreprocessor) CanProcess(filePath string) bool {
	return hasExtension(filePath, ".pdf")
}

func (p *PDFPreprocessor) ExtractText(filePath string) (*ProcessedContent, error) {
	content := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "pdf",
		ProcessorType: p.Name(),
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		content.Error = err
		return content, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	content.PageCount = r.NumPage()
	pages := content.PageCount
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var sb strings.Builder
	failedPages := 0
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			failedPages++
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			failedPages++
			continue
		}
		sb.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			sb.WriteString("\n")
		}
	}

	if failedPages == pages && pages > 0 {
		content.Error = fmt.Errorf("no extractable text in %d pages", pages)
		return content, content.Error
	}

	content.Text = sb.String()
	content.Success = true
	fillCounts(content)
	return content, nil
}

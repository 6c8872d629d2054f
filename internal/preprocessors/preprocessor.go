// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns filing documents into plain text before
// scanning. Each preprocessor claims file types by extension; plaintext
// is the fallback.
package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProcessedContent represents content that has been processed by a preprocessor
type ProcessedContent struct {
	// Original file information
	OriginalPath string
	Filename     string

	// Extracted content
	Text string

	// Content metadata
	Format    string
	PageCount int
	WordCount int
	CharCount int
	LineCount int

	// Processing information
	ProcessorType string
	Success       bool
	Error         error
}

// Preprocessor converts a document file into scannable text
type Preprocessor interface {
	// Name returns the preprocessor identifier
	Name() string

	// CanProcess reports whether this preprocessor handles the file
	CanProcess(filePath string) bool

	// ExtractText extracts the text content of the file
	ExtractText(filePath string) (*ProcessedContent, error)
}

// registry holds preprocessors in selection order; plaintext last as
// the catch-all
var registry = []Preprocessor{
	NewPDFPreprocessor(),
	NewPlaintextPreprocessor(),
}

// ForFile returns the preprocessor that handles the given file
func ForFile(filePath string) Preprocessor {
	for _, p := range registry {
		if p.CanProcess(filePath) {
			return p
		}
	}
	return NewPlaintextPreprocessor()
}

// ExtractText extracts text from a file using the matching preprocessor
func ExtractText(filePath string) (*ProcessedContent, error) {
	p := ForFile(filePath)
	content, err := p.ExtractText(filePath)
	if err != nil {
		return content, fmt.Errorf("%s preprocessor: %w", p.Name(), err)
	}
	return content, nil
}

// fillCounts populates the derived text statistics on content
func fillCounts(content *ProcessedContent) {
	content.CharCount = len(content.Text)
	content.WordCount = len(strings.Fields(content.Text))
	content.LineCount = strings.Count(content.Text, "\n")
	if content.Text != "" && !strings.HasSuffix(content.Text, "\n") {
		content.LineCount++
	}
}

func hasExtension(filePath string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

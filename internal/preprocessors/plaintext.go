// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
)

// PlaintextPreprocessor reads text files as-is
type PlaintextPreprocessor struct{}

// NewPlaintextPreprocessor creates a plaintext preprocessor
func NewPlaintextPreprocessor() *PlaintextPreprocessor {
	return &PlaintextPreprocessor{}
}

func (p *PlaintextPreprocessor) Name() string {
	return "plaintext"
}

// CanProcess accepts every file; plaintext is the fallback preprocessor
func (p *PlaintextPreprocessor) CanProcess(filePath string) bool {
	return true
}

func (p *PlaintextPreprocessor) ExtractText(filePath string) (*ProcessedContent, error) {
	content := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "text",
		ProcessorType: p.Name(),
	}

	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		content.Error = err
		return content, fmt.Errorf("reading file: %w", err)
	}

	content.Text = string(data)
	content.Success = true
	fillCounts(content)
	return content, nil
}

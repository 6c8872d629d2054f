// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"frcp-scan/internal/detector"
	"frcp-scan/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(report *detector.ScanReport, suppressed []detector.SuppressedFinding, options formatters.FormatterOptions) (string, error) {
	response := formatters.Response{
		ScanReport: report,
		Suppressed: suppressed,
	}

	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", fmt.Errorf("formatting JSON: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}

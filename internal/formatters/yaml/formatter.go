// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	goyaml "gopkg.in/yaml.v3"

	"frcp-scan/internal/detector"
	"frcp-scan/internal/formatters"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML format for configuration-style output"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(report *detector.ScanReport, suppressed []detector.SuppressedFinding, options formatters.FormatterOptions) (string, error) {
	response := formatters.Response{
		ScanReport: report,
		Suppressed: suppressed,
	}
	out, err := goyaml.Marshal(response)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML output: %w", err)
	}
	return string(out), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}

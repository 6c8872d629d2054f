// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"frcp-scan/internal/detector"
	"frcp-scan/internal/formatters"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(report *detector.ScanReport, suppressed []detector.SuppressedFinding, options formatters.FormatterOptions) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"pii_type", "start_position", "end_position", "original_text", "required_format", "suppressed_by"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}

	for _, finding := range report.Findings {
		if err := w.Write(f.row(finding, options, "")); err != nil {
			return "", fmt.Errorf("writing CSV row: %w", err)
		}
	}
	for _, s := range suppressed {
		if err := w.Write(f.row(s.Finding, options, s.SuppressedBy)); err != nil {
			return "", fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing CSV: %w", err)
	}
	return sb.String(), nil
}

func (f *Formatter) row(finding detector.Finding, options formatters.FormatterOptions, suppressedBy string) []string {
	// The matched text is the PII itself; keep it out of the report unless
	// the caller asked for it.
	matched := finding.RequiredRedactedForm
	if options.ShowMatch {
		matched = finding.MatchedText
	}
	return []string{
		string(finding.Category),
		strconv.Itoa(finding.StartByte),
		strconv.Itoa(finding.EndByte),
		matched,
		finding.RequiredRedactedForm,
		suppressedBy,
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}

// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"frcp-scan/internal/detector"
	"frcp-scan/internal/formatters"
)

// Formatter implements human-readable text output
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(report *detector.ScanReport, suppressed []detector.SuppressedFinding, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder

	switch {
	case report.Clean:
		sb.WriteString(f.colors["green"].Sprint("CLEAN") + ": no PII violations, document type not restricted\n")
	case report.Restricted && len(report.Findings) == 0:
		sb.WriteString(f.colors["yellow"].Sprint("RESTRICTED") + ": document type is access-limited\n")
	default:
		sb.WriteString(f.colors["red"].Sprintf("VIOLATIONS FOUND (%d)", len(report.Findings)) + "\n")
	}

	if report.Restricted && report.RestrictionReason != nil {
		sb.WriteString(fmt.Sprintf("Restriction: %s\n", *report.RestrictionReason))
	}

	for i, finding := range report.Findings {
		sb.WriteString(fmt.Sprintf("\n%s %s\n", f.colors["white"].Sprintf("[%d]", i+1), f.colors["cyan"].Sprint(finding.Category)))
		sb.WriteString(fmt.Sprintf("    Position:        bytes %d-%d\n", finding.StartByte, finding.EndByte))
		if options.ShowMatch {
			sb.WriteString(fmt.Sprintf("    Matched text:    %s\n", finding.MatchedText))
		}
		sb.WriteString(fmt.Sprintf("    Required format: %s\n", finding.RequiredRedactedForm))
	}

	if len(suppressed) > 0 {
		sb.WriteString(f.colors["yellow"].Sprintf("\nSuppressed findings: %d\n", len(suppressed)))
		if options.Verbose {
			for _, s := range suppressed {
				sb.WriteString(fmt.Sprintf("    %s at bytes %d-%d (rule %s: %s)\n",
					s.Finding.Category, s.Finding.StartByte, s.Finding.EndByte, s.SuppressedBy, s.RuleReason))
			}
		}
	}

	return sb.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}

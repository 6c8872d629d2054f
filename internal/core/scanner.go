// SPDX-License-Identifier: Apache-2.0

package core

import (
	"sort"

	"frcp-scan/internal/detector"
	"frcp-scan/internal/restricted"
	"frcp-scan/internal/suppressions"
)

// ScanConfig holds configuration for a scan operation.
type ScanConfig struct {
	DocumentText      string
	DocumentTypeLabel string
	// Checks filters which validators run; empty or ["all"] runs every
	// check.
	Checks []string
	// SuppressionManager, when non-nil, is applied to findings before the
	// result is assembled. Suppressed findings do not affect Clean.
	SuppressionManager *suppressions.Manager
}

// ScanResult pairs the report with any suppressed findings.
type ScanResult struct {
	Report     *detector.ScanReport
	Suppressed []detector.SuppressedFinding
}

// Scan runs the restricted-type classifier and all four pattern matchers
// over the document and assembles the report. It is a total function: every
// well-formed input produces a report.
func Scan(documentText, documentTypeLabel string) *detector.ScanReport {
	return ScanWithValidators(documentText, documentTypeLabel, BuildValidatorSet(ParseChecksToRun(nil)))
}

// ScanWithValidators is Scan with an explicit validator list. Validators
// run in list order; each is an independent pure function of the text, so
// the list order only decides tie-breaks between findings that start at the
// same byte.
func ScanWithValidators(documentText, documentTypeLabel string, validators []detector.Validator) *detector.ScanReport {
	report := &detector.ScanReport{
		Findings: []detector.Finding{},
	}

	if category, ok := restricted.Classify(documentTypeLabel); ok {
		reason := category.Reason()
		report.Restricted = true
		report.RestrictionReason = &reason
	}

	for _, v := range validators {
		report.Findings = append(report.Findings, v.Scan(documentText)...)
	}

	// Stable sort keeps discovery order for findings sharing a start byte.
	sort.SliceStable(report.Findings, func(i, j int) bool {
		return report.Findings[i].StartByte < report.Findings[j].StartByte
	})

	report.Clean = len(report.Findings) == 0 && !report.Restricted
	return report
}

// RunScan performs a configured scan, including check filtering and
// suppression handling. This is the entry point shared by the CLI and the
// web server.
func RunScan(cfg ScanConfig) *ScanResult {
	validators := BuildValidatorSet(ParseChecksToRun(cfg.Checks))
	report := ScanWithValidators(cfg.DocumentText, cfg.DocumentTypeLabel, validators)

	result := &ScanResult{Report: report}
	if cfg.SuppressionManager != nil {
		kept, suppressed := cfg.SuppressionManager.Apply(report.Findings)
		report.Findings = kept
		result.Suppressed = suppressed
		report.Clean = len(report.Findings) == 0 && !report.Restricted
	}
	return result
}

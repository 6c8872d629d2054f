// SPDX-License-Identifier: Apache-2.0

// Package restricted classifies document-type labels against the fixed
// taxonomy of filing categories that must be access-limited regardless of
// their textual content. Classification looks only at the supplied label,
// never at the document body.
package restricted

import "strings"

// Category identifies a restricted document category.
type Category string

const (
	UnexecutedWarrantOrSummons Category = "UNEXECUTED_WARRANT_OR_SUMMONS"
	PresentenceReport          Category = "PRESENTENCE_REPORT"
	StatementOfReasons         Category = "STATEMENT_OF_REASONS"
	CjaFinancialAffidavit      Category = "CJA_FINANCIAL_AFFIDAVIT"
	JuvenileRecord             Category = "JUVENILE_RECORD"
	JurorInformation           Category = "JUROR_INFORMATION"
	SealedDocument             Category = "SEALED_DOCUMENT"
)

var reasons = map[Category]string{
	UnexecutedWarrantOrSummons: "Unexecuted warrants/summons restricted under FRCP 5.2(b)",
	PresentenceReport:          "Presentence investigation reports restricted under FRCP 5.2(b)",
	StatementOfReasons:         "Statement of reasons restricted under FRCP 5.2(b)",
	CjaFinancialAffidavit:      "CJA financial affidavits restricted under FRCP 5.2(b)",
	JuvenileRecord:             "Juvenile records restricted under FRCP 5.2(b)",
	JurorInformation:           "Juror information restricted under FRCP 5.2(b)",
	SealedDocument:             "Sealed documents restricted under court order",
}

// Reason returns the fixed justification string for a category.
func (c Category) Reason() string {
	return reasons[c]
}

// Categories returns all restricted categories in classification priority
// order. The slice always has exactly seven entries.
func Categories() []Category {
	return []Category{
		UnexecutedWarrantOrSummons,
		PresentenceReport,
		StatementOfReasons,
		CjaFinancialAffidavit,
		JuvenileRecord,
		JurorInformation,
		SealedDocument,
	}
}

// Classify maps a free-text document-type label to a restricted category.
// Tests run in priority order; the first match wins. The second return is
// false when the label matches no category.
func Classify(label string) (Category, bool) {
	lower := strings.ToLower(label)

	switch {
	case strings.Contains(lower, "warrant") || strings.Contains(lower, "summons"):
		return UnexecutedWarrantOrSummons, true
	case strings.Contains(lower, "presentence") || lower == "psi":
		return PresentenceReport, true
	case strings.Contains(lower, "statement of reasons") || lower == "sor":
		return StatementOfReasons, true
	case strings.Contains(lower, "cja affidavit") || strings.Contains(lower, "cja financial"):
		return CjaFinancialAffidavit, true
	case strings.Contains(lower, "juvenile"):
		return JuvenileRecord, true
	case strings.Contains(lower, "juror"):
		return JurorInformation, true
	case strings.Contains(lower, "sealed"):
		return SealedDocument, true
	}
	return "", false
}

// IsRestrictedDocumentType reports whether the label maps to any restricted
// category.
func IsRestrictedDocumentType(label string) bool {
	_, ok := Classify(label)
	return ok
}

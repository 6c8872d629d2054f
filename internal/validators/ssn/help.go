// SPDX-License-Identifier: Apache-2.0

package ssn

import "frcp-scan/internal/help"

// GetCheckInfo returns standardized information about the SSN check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "SSN",
		ShortDescription: "Detects unredacted Social Security Numbers",
		DetailedDescription: `The SSN check detects Social Security Numbers that appear unmasked in a filing. FRCP 5.2(a) requires public filings to show only the last four digits.

The check looks for the separated form (123-45-6789 or 123 45 6789, same separator in both positions) and the bare nine-digit form. Runs of ten or more digits are never claimed, since those belong to the financial account check.

Two suppressions keep docket text from being flagged: values already in the masked XXX-XX-dddd form, and numbers that sit inside a federal case number such as 5:24-cv-05001.`,

		Patterns: []string{
			"3-2-4 digit groups with dashes (e.g., 123-45-6789)",
			"3-2-4 digit groups with spaces (e.g., 123 45 6789)",
			"9 consecutive digits (e.g., 123456789)",
		},

		RequiredFormat: "XXX-XX-<last four digits>",

		Examples: []string{
			"frcp-scan --file motion.txt --checks SSN",
			"frcp-scan --file filing.pdf --doc-type \"motion to dismiss\"",
		},
	}
}

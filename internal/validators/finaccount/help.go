// SPDX-License-Identifier: Apache-2.0

package finaccount

import "frcp-scan/internal/help"

// GetCheckInfo returns standardized information about the financial-account check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "FINANCIAL_ACCOUNT",
		ShortDescription: "Detects financial account numbers in financial context",
		DetailedDescription: `The financial-account check detects runs of eight or more consecutive digits. FRCP 5.2(a) requires public filings to show only the last four digits of a financial account number.

Bare digit runs are far too common to report on shape alone, so a run is only flagged when a financial keyword (account, routing, bank, acct, deposit, wire, swift, iban, checking, savings, credit card) appears within fifty bytes before or after it. Runs in phone-number or case-number context are dropped.`,

		Patterns: []string{
			"8 or more consecutive digits (e.g., 12345678901234)",
		},

		RequiredFormat: "XXXX<last four digits>",

		Examples: []string{
			"frcp-scan --file garnishment-order.txt --checks FINANCIAL_ACCOUNT",
		},
	}
}

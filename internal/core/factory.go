// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"

	"frcp-scan/internal/detector"
	"frcp-scan/internal/validators/dob"
	"frcp-scan/internal/validators/finaccount"
	"frcp-scan/internal/validators/ssn"
	"frcp-scan/internal/validators/taxpayerid"
)

// ParseChecksToRun converts a slice of check names into an enabled-checks
// map. An empty slice or ["all"] enables every check.
func ParseChecksToRun(checks []string) map[string]bool {
	result := map[string]bool{
		"SSN":               false,
		"TAXPAYER_ID":       false,
		"DOB":               false,
		"FINANCIAL_ACCOUNT": false,
	}

	if len(checks) == 0 || (len(checks) == 1 && strings.TrimSpace(checks[0]) == "all") {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, check := range checks {
		if checkStr := strings.ToUpper(strings.TrimSpace(check)); checkStr != "" {
			if _, exists := result[checkStr]; exists {
				result[checkStr] = true
			}
		}
	}

	return result
}

// BuildValidatorSet constructs the validators for the enabled checks, in
// canonical order: SSN, TAXPAYER_ID, DOB, FINANCIAL_ACCOUNT. The order is
// fixed so that reports are deterministic when findings tie on start byte.
func BuildValidatorSet(enabledChecks map[string]bool) []detector.Validator {
	var result []detector.Validator

	if enabledChecks["SSN"] {
		result = append(result, ssn.NewValidator())
	}
	if enabledChecks["TAXPAYER_ID"] {
		result = append(result, taxpayerid.NewValidator())
	}
	if enabledChecks["DOB"] {
		result = append(result, dob.NewValidator())
	}
	if enabledChecks["FINANCIAL_ACCOUNT"] {
		result = append(result, finaccount.NewValidator())
	}

	return result
}

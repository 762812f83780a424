package utils

import (
	"strconv"
	"strings"
)

// ParseAmount parses a ledger amount stored as text, e.g. "1,000" or "2500".
// Thousands separators are stripped before parsing. Anything that does not
// parse as a non-negative integer yields 0; the error never reaches callers
// because a single bad fee must not abort an aggregation over the whole ledger.
func ParseAmount(text string) int64 {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0
	}
	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

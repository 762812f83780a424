package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"plain digits", "2500", 2500},
		{"thousands separator", "1,000", 1000},
		{"multiple separators", "1,250,000", 1250000},
		{"internal spaces", "12 000", 12000},
		{"surrounding whitespace", "  500  ", 500},
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"non-numeric", "abc", 0},
		{"mixed garbage", "12ab", 0},
		{"negative", "-100", 0},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.input))
		})
	}
}

// A bad fee must degrade to zero rather than poisoning the whole sum.
func TestParseAmountSumSkipsBadEntries(t *testing.T) {
	fees := []string{"1,000", "abc", "2500"}

	var total int64
	for _, fee := range fees {
		total += ParseAmount(fee)
	}

	assert.Equal(t, int64(3500), total)
}

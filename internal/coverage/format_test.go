package coverage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{value: "83.7", expected: "83.7"},
		{value: "90", expected: "90.0"},
		{value: "83.75", expected: "83.8"},
		{value: "83.65", expected: "83.7"},
		{value: "83.749999", expected: "83.7"},
		{value: "99.95", expected: "100.0"},
		{value: "0", expected: "0.0"},
		{value: "0.04", expected: "0.0"},
		{value: "100", expected: "100.0"},
		{value: "66.66666666666666666666666666666667", expected: "66.7"},
		{value: "-0.05", expected: "-0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPercent(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "Line Coverage: 83.7%\t\tBranch Coverage: 91.2%", FormatLine("83.7", "91.2"))
}

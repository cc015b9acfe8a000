package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsChargeID(t *testing.T) {
	tests := []struct {
		name     string
		chargeID string
		expected bool
	}{
		{
			name:     "Typical provider id",
			chargeID: "ch_1GqIC8LzdXK9rLvw",
			expected: true,
		},
		{
			name:     "Allowed punctuation",
			chargeID: "psp:2024-08.0001_a",
			expected: true,
		},
		{
			name:     "Empty",
			chargeID: "",
			expected: false,
		},
		{
			name:     "Too short",
			chargeID: "ch_1",
			expected: false,
		},
		{
			name:     "Too long",
			chargeID: strings.Repeat("a", 129),
			expected: false,
		},
		{
			name:     "Whitespace rejected",
			chargeID: "ch_1GqIC8 LzdXK9rLvw",
			expected: false,
		},
		{
			name:     "Shell metacharacters rejected",
			chargeID: "ch_1GqIC8;rm -rf",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsChargeID(tt.chargeID))
		})
	}
}

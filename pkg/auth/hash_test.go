package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSecret(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		secret      string
		expectError bool
	}{
		{
			name:        "Valid Secret",
			secret:      "gateway-secret",
			expectError: false,
		},
		{
			name:        "Empty Secret",
			secret:      "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedSecret, err := hashService.HashSecret(tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashedSecret)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedSecret)
			}
		})
	}
}

func TestCompareSecret(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name         string
		secret       string
		hashedSecret string
		setup        func() string
		expectMatch  bool
	}{
		{
			name:   "Matching Secret",
			secret: "gateway-secret",
			setup: func() string {
				hashedSecret, _ := hashService.HashSecret("gateway-secret")
				return hashedSecret
			},
			expectMatch: true,
		},
		{
			name:   "Non-Matching Secret",
			secret: "wrong-secret",
			setup: func() string {
				hashedSecret, _ := hashService.HashSecret("gateway-secret")
				return hashedSecret
			},
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hashedSecret string
			if tt.setup != nil {
				hashedSecret = tt.setup()
			} else {
				hashedSecret = tt.hashedSecret
			}

			match := hashService.CompareSecret(hashedSecret, tt.secret)
			assert.Equal(t, tt.expectMatch, match)
		})
	}
}

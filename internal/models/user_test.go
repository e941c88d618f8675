package models

import (
	"strings"
	"testing"
)

func TestValidCardHash(t *testing.T) {
	testCases := []struct {
		name  string
		hash  string
		valid bool
	}{
		{"lowercase hex", strings.Repeat("ab12cd34", 8), true},
		{"uppercase hex", strings.Repeat("AB12CD34", 8), true},
		{"too short", strings.Repeat("a", 63), false},
		{"too long", strings.Repeat("a", 65), false},
		{"empty", "", false},
		{"non-hex characters", strings.Repeat("g", 64), false},
		{"whitespace", strings.Repeat("a", 63) + " ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidCardHash(tc.hash); got != tc.valid {
				t.Errorf("ValidCardHash(%q) = %v, want %v", tc.hash, got, tc.valid)
			}
		})
	}
}

func TestRegistrationToken(t *testing.T) {
	hash := strings.Repeat("1a2b3c4d", 8)
	token := RegistrationToken(hash)
	if token != "1a2b3c4d" {
		t.Errorf("Expected token %q, got %q", "1a2b3c4d", token)
	}
	if len(token) != 8 {
		t.Errorf("Expected 8 character token, got %d", len(token))
	}
}

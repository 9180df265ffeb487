package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  string
	}{
		{"valid simple", "poet_42", ""},
		{"valid minimum length", "abc", ""},
		{"valid maximum length", strings.Repeat("a", 30), ""},
		{"too short", "ab", "at least 3 characters"},
		{"too long", strings.Repeat("a", 31), "not exceed 30 characters"},
		{"contains space", "dead poet", "letters, numbers, and underscores"},
		{"contains dash", "dead-poet", "letters, numbers, and underscores"},
		{"contains unicode", "pöet", "letters, numbers, and underscores"},
		{"empty", "", "at least 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "whitman@leaves.org", false},
		{"valid with plus", "emily+poems@amherst.edu", false},
		{"missing at", "whitman.leaves.org", true},
		{"missing domain", "whitman@", true},
		{"missing tld", "whitman@leaves", true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 250) + "@x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Correct1horse", ""},
		{"valid minimum", "Abcdefg1", ""},
		{"too short", "Ab1", "at least 8 characters"},
		{"too long", "A1" + strings.Repeat("a", 127), "not exceed 128 characters"},
		{"no uppercase", "abcdefg1", "uppercase letter"},
		{"no lowercase", "ABCDEFG1", "lowercase letter"},
		{"no digit", "Abcdefgh", "digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

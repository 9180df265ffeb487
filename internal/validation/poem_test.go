package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePoemTitle(t *testing.T) {
	assert.NoError(t, ValidatePoemTitle("O Captain! My Captain!"))
	assert.Error(t, ValidatePoemTitle(""))
	assert.Error(t, ValidatePoemTitle("   \t\n  "))
}

func TestValidatePoemContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid multi line", "The fog comes\non little cat feet.", false},
		{"valid single line", "Shall I compare thee", false},
		{"exactly minimum", "12345", false},
		{"too short", "hi", true},
		{"whitespace only", "   \n\n   ", true},
		{"short after trim", "  ab  ", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePoemContent(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCommentText(t *testing.T) {
	assert.NoError(t, ValidateCommentText("lovely imagery"))
	assert.Error(t, ValidateCommentText(""))
	assert.Error(t, ValidateCommentText("   "))
	assert.Error(t, ValidateCommentText(strings.Repeat("a", 10001)))
}

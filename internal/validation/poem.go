package validation

import (
	"fmt"
	"strings"
)

const (
	// minPoemLength is the minimum trimmed content length of a poem.
	minPoemLength = 5
	// maxCommentLength caps comment text to keep payloads reasonable.
	maxCommentLength = 10000
)

// ValidatePoemTitle rejects titles that are empty after trimming.
func ValidatePoemTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty or just whitespace")
	}
	return nil
}

// ValidatePoemContent checks that the content carries a minimum amount of text
// and at least one non-empty line.
func ValidatePoemContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < minPoemLength {
		return fmt.Errorf("poem must have at least %d characters", minPoemLength)
	}

	meaningful := 0
	for _, line := range strings.Split(trimmed, "\n") {
		if strings.TrimSpace(line) != "" {
			meaningful++
		}
	}
	if meaningful < 1 {
		return fmt.Errorf("poem must have at least one meaningful line")
	}

	return nil
}

// ValidateCommentText rejects comments that are empty after trimming.
func ValidateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("comment cannot be empty or just whitespace")
	}
	if len(text) > maxCommentLength {
		return fmt.Errorf("comment too long (max %d characters)", maxCommentLength)
	}
	return nil
}

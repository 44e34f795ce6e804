package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// Input bounds for the analyze surface.
const (
	MinInputLength   = 50
	MaxResumeLength  = 50_000
	MaxJobDescLength = 20_000
)

var (
	excessNewlinesRe = regexp.MustCompile(`\n{4,}`)
	controlCharsRe   = regexp.MustCompile("[\x01-\x08\x0b\x0c\x0e-\x1f\x7f]")
)

// SanitizeText strips null bytes and control characters (keeping newlines
// and tabs) and collapses runs of 4+ newlines to 3.
func SanitizeText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = excessNewlinesRe.ReplaceAllString(text, "\n\n\n")
	text = controlCharsRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ValidateResume checks resume text bounds. Returned errors wrap ErrValidation.
func ValidateResume(text string) error {
	return validateInput("resume", text, MaxResumeLength)
}

// ValidateJobDescription checks job description text bounds.
// Returned errors wrap ErrValidation.
func ValidateJobDescription(text string) error {
	return validateInput("job description", text, MaxJobDescLength)
}

func validateInput(field, text string, maxLen int) error {
	stripped := strings.TrimSpace(text)
	if stripped == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if len(stripped) < MinInputLength {
		return fmt.Errorf("%w: %s must be at least %d characters", ErrValidation, field, MinInputLength)
	}
	if len(text) > maxLen {
		return fmt.Errorf("%w: %s exceeds maximum length of %d characters", ErrValidation, field, maxLen)
	}
	return nil
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8.
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

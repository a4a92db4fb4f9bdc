package validation

import (
	"regexp"
	"strings"
)

// Validation rule constants for user-supplied content
var (
	// EmailPattern is the email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// PasswordMinLength is the minimum password length
	PasswordMinLength = 8

	// DisplayNameMinLength / DisplayNameMaxLength bound display names
	DisplayNameMinLength = 2
	DisplayNameMaxLength = 80

	// Poll option arity bounds
	PollMinOptions = 2
	PollMaxOptions = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// NonEmpty reports whether s contains any non-whitespace content.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// PollOptions validates a poll's option texts: arity within bounds, every
// option non-empty after trimming, and no duplicates among the trimmed texts.
// It returns the trimmed options and whether they are valid.
func PollOptions(options []string) ([]string, bool) {
	if len(options) < PollMinOptions || len(options) > PollMaxOptions {
		return nil, false
	}

	trimmed := make([]string, 0, len(options))
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		t := strings.TrimSpace(opt)
		if t == "" {
			return nil, false
		}
		if _, dup := seen[t]; dup {
			return nil, false
		}
		seen[t] = struct{}{}
		trimmed = append(trimmed, t)
	}

	return trimmed, true
}

// Email validates an email address against the configured pattern.
func Email(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(email))
}

// Password validates password strength.
func Password(password string) bool {
	return len(password) >= PasswordMinLength
}

// DisplayName validates a user display name.
func DisplayName(name string) bool {
	n := strings.TrimSpace(name)
	return len(n) >= DisplayNameMinLength && len(n) <= DisplayNameMaxLength
}

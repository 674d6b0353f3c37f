package common

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxPostContentLen caps post bodies. Comments and messages have no cap,
// only the non-empty requirement.
const MaxPostContentLen = 300

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateUsername checks the exact string that will be stored; padded
// input like " alice " is rejected, not silently trimmed, so a padded
// variant can never coexist with the plain name.
func ValidateUsername(username string) error {
	if len(username) < 3 || len(username) > 50 {
		return fmt.Errorf("%w: username must be between 3 and 50 characters", ErrValidation)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("%w: username can only contain letters, numbers, and underscores", ErrValidation)
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters long", ErrValidation)
	}
	if len(password) > 100 {
		return fmt.Errorf("%w: password is too long", ErrValidation)
	}
	return nil
}

func ValidatePostContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: post content cannot be empty", ErrValidation)
	}
	if utf8.RuneCountInString(content) > MaxPostContentLen {
		return fmt.Errorf("%w: post content exceeds %d characters", ErrValidation, MaxPostContentLen)
	}
	return nil
}

func ValidateRequiredContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}
	return nil
}

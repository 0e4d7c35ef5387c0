package entity

import (
	"errors"
	"strings"
)

var (
	ErrMissingCredentials  = errors.New("missing credentials")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrUnsupportedMode     = errors.New("unsupported mode")
)

// CreditMarker is matched case-insensitively against free text when a
// provider gives no structured quota signal.
const CreditMarker = "insufficient credits"

func MentionsInsufficientCredits(text string) bool {
	return strings.Contains(strings.ToLower(text), CreditMarker)
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentionsInsufficientCredits(t *testing.T) {
	cases := map[string]bool{
		"Insufficient Credits remaining":        true,
		"error: INSUFFICIENT CREDITS":           true,
		"insufficient credits":                  true,
		"all applications submitted":            false,
		"insufficient funds":                    false,
		"":                                      false,
	}
	for text, want := range cases {
		assert.Equal(t, want, MentionsInsufficientCredits(text), text)
	}
}

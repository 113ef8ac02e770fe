package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLines_StripsMarkersAndBlanks(t *testing.T) {
	raw := "```\n1. Stand up and stretch.\n\n2) Drink water.\n- \"Roll your shoulders.\"\n* Blink slowly.\n```\n"

	assert.Equal(t, []string{
		"Stand up and stretch.",
		"Drink water.",
		"Roll your shoulders.",
		"Blink slowly.",
	}, ExtractLines(raw))
}

func TestExtractLines_KeepsLeadingNumbersThatAreNotMarkers(t *testing.T) {
	assert.Equal(t, []string{"10 jumping jacks to wake up."}, ExtractLines("10 jumping jacks to wake up."))
}

func TestExtractLines_Empty(t *testing.T) {
	assert.Empty(t, ExtractLines("  \n\n "))
}

func TestParseNudges_KeepsRequestedCount(t *testing.T) {
	got, err := parseNudges("1. Stand.\n2. Stretch.\n3. Sit.", 2, 160)

	require.NoError(t, err)
	assert.Equal(t, []string{"Stand.", "Stretch."}, got)
}

func TestParseNudges_TooFewLines(t *testing.T) {
	_, err := parseNudges("Only one line.", 3, 160)

	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.ErrorContains(t, err, "got 1 nudge lines, need 3")
}

func TestParseNudges_CountsCharactersNotBytes(t *testing.T) {
	// "é" is two bytes in UTF-8; 150 of them is 300 bytes but 150 characters.
	accented := strings.Repeat("é", 150)
	got, err := parseNudges(accented, 1, 160)
	require.NoError(t, err)
	assert.Equal(t, []string{accented}, got)

	_, err = parseNudges(strings.Repeat("é", 161), 1, 160)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.ErrorContains(t, err, "nudge 1 is 161 characters")
}

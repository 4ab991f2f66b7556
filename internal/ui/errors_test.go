package ui

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay_Nil(t *testing.T) {
	assert.Empty(t, formatErrorForDisplay(nil, 80))
}

func TestFormatErrorForDisplay_Short(t *testing.T) {
	got := formatErrorForDisplay(errors.New("branch exists"), 80)

	assert.Equal(t, "Error: branch exists", got)
}

func TestFormatErrorForDisplay_FlattensNewlines(t *testing.T) {
	got := formatErrorForDisplay(errors.New("git failed:\nfatal: something\nbad"), 80)

	assert.NotContains(t, got, "\n")
	assert.Equal(t, "Error: git failed: fatal: something bad", got)
}

func TestFormatErrorForDisplay_TruncatesToWidth(t *testing.T) {
	long := errors.New(strings.Repeat("word ", 50))

	got := formatErrorForDisplay(long, 40)

	assert.LessOrEqual(t, utf8.RuneCountInString(got), 40)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestFormatErrorForDisplay_TinyWidthStillReadable(t *testing.T) {
	got := formatErrorForDisplay(errors.New(strings.Repeat("x", 100)), 5)

	assert.LessOrEqual(t, utf8.RuneCountInString(got), 20)
	assert.True(t, strings.HasPrefix(got, errorPrefix))
}

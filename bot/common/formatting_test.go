package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "0", FormatBalance(0))
	assert.Equal(t, "999", FormatBalance(999))
	assert.Equal(t, "1,000", FormatBalance(1000))
	assert.Equal(t, "12,345", FormatBalance(12345))
	assert.Equal(t, "1,234,567", FormatBalance(1234567))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(0))
	assert.Equal(t, "█████░░░░░", ProgressBar(50))
	assert.Equal(t, "█████░░░░░", ProgressBar(59))
	assert.Equal(t, "██████████", ProgressBar(100))

	// Out of range values clamp instead of panicking
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(-5))
	assert.Equal(t, "██████████", ProgressBar(140))
}

func TestFormatDiscordTimestamp(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "<t:1717243200:R>", FormatDiscordTimestamp(ts, "R"))
}

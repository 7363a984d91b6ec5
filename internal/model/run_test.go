package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeRoundTrip(t *testing.T) {
	in := time.Date(2025, 3, 9, 15, 4, 5, 123456789, time.UTC)
	r := Run{FinishedAt: FormatTime(in)}

	assert.Equal(t, "2025-03-09T15:04:05Z", r.FinishedAt)

	out, ok := r.FinishedTime()
	require.True(t, ok)
	assert.Equal(t, in.Truncate(time.Second), out)
}

func TestFinishedTimeAbsent(t *testing.T) {
	_, ok := Run{}.FinishedTime()
	assert.False(t, ok)

	_, ok = Run{FinishedAt: "garbage"}.FinishedTime()
	assert.False(t, ok)
}

func TestTerminal(t *testing.T) {
	assert.False(t, Run{Status: StatusRunning}.Terminal())
	assert.True(t, Run{Status: StatusSuccess}.Terminal())
	assert.True(t, Run{Status: StatusFailed}.Terminal())
}

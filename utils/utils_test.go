package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"abc", "", "-1", "0", "1.5"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, "ParseID(%q) should fail", raw)
	}
}

func TestParseTime(t *testing.T) {
	parsed, err := ParseTime("2024-03-01T12:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), parsed)

	parsed, err = ParseTime("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseTime("not-a-date")
	assert.Error(t, err)
}

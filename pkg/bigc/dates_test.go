package bigc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRFC2822Date(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Time
	}{
		{"Mon, 01 Jan 1900 00:00:00 +0000", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"1 Jan 1900 00:00 +0000", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Sun, 20 Jul 1969 20:17:40 +0000", time.Date(1969, 7, 20, 20, 17, 40, 0, time.UTC)},
		{"Tue, 05 Mar 2019 21:40:11 +0000", time.Date(2019, 3, 5, 21, 40, 11, 0, time.UTC)},
		{"Sat, 01 Jan 2000 0:00:00 -0400", time.Date(2000, 1, 1, 4, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			parsed, err := ParseRFC2822Date(tt.value)
			require.NoError(t, err)

			assert.True(t, tt.expected.Equal(parsed), "got %s", parsed)
			assert.Equal(t, time.UTC, parsed.Location())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseRFC2822Date("yesterday")
		require.Error(t, err)
	})
}

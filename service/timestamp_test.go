package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "month day year with time",
			input: "1/1/2023 10:00:00",
			want:  time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "month day year",
			input: "9/7/2022",
			want:  time.Date(2022, 9, 7, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "iso date",
			input: "2023-06-15",
			want:  time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "surrounding whitespace",
			input: "  3/2/2023  ",
			want:  time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{name: "garbage", input: "not-a-date", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseTimestamp(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDateParam(t *testing.T) {
	got, ok := parseDateParam("2023-02-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = parseDateParam("02/01/2023")
	assert.False(t, ok, "malformed date params are ignored")

	_, ok = parseDateParam("")
	assert.False(t, ok)
}

func TestEndOfDay(t *testing.T) {
	day := time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)
	got := endOfDay(day)
	assert.Equal(t, time.Date(2023, 2, 28, 23, 59, 59, 0, time.UTC), got)
}

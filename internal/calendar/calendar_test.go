package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		date    string
		weekend bool
	}{
		{"2023-06-01", false}, // Thursday
		{"2023-06-02", false}, // Friday
		{"2023-06-03", true},  // Saturday
		{"2023-06-04", true},  // Sunday
		{"2023-06-05", false}, // Monday
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.weekend, IsWeekend(mustDate(t, tt.date)))
		})
	}
}

func TestIsPublicHoliday(t *testing.T) {
	c := New()

	assert.True(t, c.IsPublicHoliday(mustDate(t, "2023-01-01")))
	assert.True(t, c.IsPublicHoliday(mustDate(t, "2023-12-25")))
	assert.False(t, c.IsPublicHoliday(mustDate(t, "2023-01-02")))
}

func TestExtraHolidays(t *testing.T) {
	c := New("2023-11-13")

	assert.True(t, c.IsPublicHoliday(mustDate(t, "2023-11-13")))
	// defaults survive alongside extras
	assert.True(t, c.IsPublicHoliday(mustDate(t, "2023-08-09")))
}

func TestIsRestrictedDay(t *testing.T) {
	c := New()

	assert.True(t, c.IsRestrictedDay(mustDate(t, "2023-06-03")))  // Saturday
	assert.True(t, c.IsRestrictedDay(mustDate(t, "2023-12-25")))  // holiday on a Monday
	assert.False(t, c.IsRestrictedDay(mustDate(t, "2023-06-01"))) // plain Thursday
}

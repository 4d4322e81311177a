package parsers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimezone_KnownAliases(t *testing.T) {
	assert.Equal(t, "US/Eastern", ParseTimezone("every monday at 9am est"))
	assert.Equal(t, "US/Eastern", ParseTimezone("9am EDT"))
	assert.Equal(t, "US/Central", ParseTimezone("noon cst"))
	assert.Equal(t, "US/Pacific", ParseTimezone("5pm PST"))
	assert.Equal(t, "UTC", ParseTimezone("17:00 utc"))
	assert.Equal(t, "Europe/Stockholm", ParseTimezone("18:00 cet"))
}

func TestParseTimezone_DefaultsToEastern(t *testing.T) {
	assert.Equal(t, "US/Eastern", ParseTimezone("every monday at 9am"))
}

func TestParseRecurrence_WeeklyWithMeridiem(t *testing.T) {
	spec := ParseRecurrence("every Monday at 9am EST")

	assert.NotNil(t, spec)
	assert.Equal(t, "mon", spec.DayOfWeek)
	assert.Equal(t, 9, spec.Hour)
	assert.Equal(t, 0, spec.Minute)
	assert.Equal(t, "US/Eastern", spec.Timezone)
}

func TestParseRecurrence_TwentyFourHourClock(t *testing.T) {
	spec := ParseRecurrence("every friday at 17:30 utc")

	assert.NotNil(t, spec)
	assert.Equal(t, "fri", spec.DayOfWeek)
	assert.Equal(t, 17, spec.Hour)
	assert.Equal(t, 30, spec.Minute)
	assert.Equal(t, "UTC", spec.Timezone)
}

func TestParseRecurrence_NoonAndMidnight(t *testing.T) {
	spec := ParseRecurrence("every sunday at 12pm")
	assert.NotNil(t, spec)
	assert.Equal(t, 12, spec.Hour)

	spec = ParseRecurrence("every sunday at 12am")
	assert.NotNil(t, spec)
	assert.Equal(t, 0, spec.Hour)
}

func TestParseRecurrence_DailyWhenNoWeekday(t *testing.T) {
	spec := ParseRecurrence("every day at 9am")

	assert.NotNil(t, spec)
	assert.Empty(t, spec.DayOfWeek)
}

func TestParseRecurrence_NoneMeansNotRecurring(t *testing.T) {
	assert.Nil(t, ParseRecurrence("none"))
	assert.Nil(t, ParseRecurrence("no"))
	assert.Nil(t, ParseRecurrence("NONE"))
}

func TestParseRecurrence_UnparseableMeansNotRecurring(t *testing.T) {
	assert.Nil(t, ParseRecurrence("whenever feels right"))
	assert.Nil(t, ParseRecurrence("every monday"))
}

func TestParseDuration_Units(t *testing.T) {
	cases := []struct {
		text  string
		hours float64
	}{
		{"24 hours", 24},
		{"2 days", 48},
		{"1.5 hours", 1.5},
		{"48", 48},
		{"90 minutes", 1.5},
		{"30 mins", 0.5},
		{"1d", 24},
		{"2h", 2},
	}

	for _, c := range cases {
		hours, ok := ParseDuration(c.text)
		assert.True(t, ok, c.text)
		assert.Equal(t, c.hours, hours, c.text)
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, text := range []string{"", "soon", "0 hours", "-2 hours"} {
		_, ok := ParseDuration(text)
		assert.False(t, ok, text)
	}
}

func TestParseWeekday(t *testing.T) {
	weekday, ok := ParseWeekday("next monday morning")
	assert.True(t, ok)
	assert.Equal(t, time.Monday, weekday)

	weekday, ok = ParseWeekday("Sunday at noon")
	assert.True(t, ok)
	assert.Equal(t, time.Sunday, weekday)

	_, ok = ParseWeekday("someday")
	assert.False(t, ok)
}

func TestParseTimeOfDay_Forms(t *testing.T) {
	hour, minute, ok := ParseTimeOfDay("at 9am")
	assert.True(t, ok)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 0, minute)

	hour, minute, ok = ParseTimeOfDay("9:45pm est")
	assert.True(t, ok)
	assert.Equal(t, 21, hour)
	assert.Equal(t, 45, minute)

	hour, minute, ok = ParseTimeOfDay("17:05")
	assert.True(t, ok)
	assert.Equal(t, 17, hour)
	assert.Equal(t, 5, minute)

	hour, minute, ok = ParseTimeOfDay("at 17")
	assert.True(t, ok)
	assert.Equal(t, 17, hour)
	assert.Equal(t, 0, minute)
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	_, _, ok := ParseTimeOfDay("sometime soon")
	assert.False(t, ok)

	_, _, ok = ParseTimeOfDay("at 25")
	assert.False(t, ok)
}

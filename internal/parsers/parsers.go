package parsers

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"poll_scheduling_system/internal/db/models"
)

var dayOfWeekNames = []struct {
	name string
	cron string
}{
	{"monday", "mon"},
	{"tuesday", "tue"},
	{"wednesday", "wed"},
	{"thursday", "thu"},
	{"friday", "fri"},
	{"saturday", "sat"},
	{"sunday", "sun"},
}

var timezoneAliases = []struct {
	alias    string
	timezone string
}{
	{"est", "US/Eastern"},
	{"edt", "US/Eastern"},
	{"cst", "US/Central"},
	{"cdt", "US/Central"},
	{"mst", "US/Mountain"},
	{"mdt", "US/Mountain"},
	{"pst", "US/Pacific"},
	{"pdt", "US/Pacific"},
	{"utc", "UTC"},
	{"gmt", "UTC"},
	{"cet", "Europe/Stockholm"},
	{"cest", "Europe/Stockholm"},
	{"set", "Europe/Stockholm"},
}

var (
	meridiemPattern = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	clockPattern    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	atHourPattern   = regexp.MustCompile(`\bat\s+(\d{1,2})\b`)
	durationPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(hours?|hrs?|days?|d|h|minutes?|mins?|m)`)
)

// ParseTimezone extracts a timezone from free text, defaulting to US/Eastern.
func ParseTimezone(text string) string {
	lower := strings.ToLower(text)
	for _, tz := range timezoneAliases {
		if strings.Contains(lower, tz.alias) {
			return tz.timezone
		}
	}
	return models.DefaultTimezone
}

// ParseRecurrence turns text like "every Monday at 9am EST" into a cron spec.
// "none"/"no" and anything without a recognizable time of day mean not
// recurring.
func ParseRecurrence(text string) *models.CronSpec {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "none" || lower == "no" {
		return nil
	}

	cleaned := strings.TrimPrefix(lower, "every ")

	hour, minute, ok := ParseTimeOfDay(cleaned)
	if !ok {
		return nil
	}

	dayOfWeek := ""
	for _, day := range dayOfWeekNames {
		if strings.Contains(lower, day.name) {
			dayOfWeek = day.cron
			break
		}
	}

	return &models.CronSpec{
		DayOfWeek: dayOfWeek,
		Hour:      hour,
		Minute:    minute,
		Timezone:  ParseTimezone(text),
	}
}

// ParseDuration turns text like "24 hours", "2 days" or a bare number into a
// positive hour count.
func ParseDuration(text string) (float64, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return 0, false
	}

	if value, err := strconv.ParseFloat(lower, 64); err == nil {
		return value, value > 0
	}

	match := durationPattern.FindStringSubmatch(lower)
	if match == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil || value <= 0 {
		return 0, false
	}

	switch match[2][0] {
	case 'd':
		return value * 24, true
	case 'h':
		return value, true
	default:
		return value / 60, true
	}
}

// ParseWeekday finds a spelled-out weekday name in text.
func ParseWeekday(text string) (time.Weekday, bool) {
	lower := strings.ToLower(text)
	for i, day := range dayOfWeekNames {
		if strings.Contains(lower, day.name) {
			return time.Weekday((i + 1) % 7), true
		}
	}
	return 0, false
}

// ParseTimeOfDay finds a time-of-day token like "9am", "9:30pm", "17:30" or
// "at 17" in text.
func ParseTimeOfDay(text string) (hour, minute int, ok bool) {
	if match := meridiemPattern.FindStringSubmatch(text); match != nil {
		hour, _ = strconv.Atoi(match[1])
		if match[2] != "" {
			minute, _ = strconv.Atoi(match[2])
		}
		if hour > 12 || minute > 59 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
		if match[3] == "pm" {
			hour += 12
		}
		return hour, minute, true
	}

	if match := clockPattern.FindStringSubmatch(text); match != nil {
		hour, _ = strconv.Atoi(match[1])
		minute, _ = strconv.Atoi(match[2])
		if hour > 23 || minute > 59 {
			return 0, 0, false
		}
		return hour, minute, true
	}

	if match := atHourPattern.FindStringSubmatch(text); match != nil {
		hour, _ = strconv.Atoi(match[1])
		if hour > 23 {
			return 0, 0, false
		}
		return hour, 0, true
	}

	return 0, 0, false
}

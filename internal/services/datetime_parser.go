package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"poll_scheduling_system/internal/parsers"
	"poll_scheduling_system/internal/scheduler"
)

// DateTimeParser turns free text into an instant, preferring future
// interpretations. The zero result with ok=false means the text did not
// describe a point in time.
type DateTimeParser interface {
	Parse(text string) (time.Time, bool)
}

var relativePattern = regexp.MustCompile(`^in\s+(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m|days?|d)$`)

var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"Jan 2 2006 15:04",
	"01/02/2006 15:04",
}

type dateTimeParser struct {
	clock scheduler.Clock
}

func NewDateTimeParser(clock scheduler.Clock) DateTimeParser {
	return &dateTimeParser{clock: clock}
}

func (p *dateTimeParser) Parse(text string) (time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return time.Time{}, false
	}

	now := p.clock.Now()

	if lower == "now" {
		return now, true
	}

	if match := relativePattern.FindStringSubmatch(lower); match != nil {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return time.Time{}, false
		}
		switch match[2][0] {
		case 'd':
			return now.Add(time.Duration(value * 24 * float64(time.Hour))), true
		case 'h':
			return now.Add(time.Duration(value * float64(time.Hour))), true
		default:
			return now.Add(time.Duration(value * float64(time.Minute))), true
		}
	}

	location, err := time.LoadLocation(parsers.ParseTimezone(lower))
	if err != nil {
		location = time.UTC
	}
	local := now.In(location)

	for _, layout := range absoluteLayouts {
		if parsed, err := time.ParseInLocation(layout, strings.TrimSpace(text), location); err == nil {
			return parsed, true
		}
	}

	hour, minute, hasTime := parsers.ParseTimeOfDay(lower)

	if weekday, ok := parsers.ParseWeekday(lower); ok {
		daysAhead := (int(weekday) - int(local.Weekday()) + 7) % 7
		candidate := local.AddDate(0, 0, daysAhead)
		if hasTime {
			candidate = time.Date(candidate.Year(), candidate.Month(), candidate.Day(), hour, minute, 0, 0, location)
		}
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 7)
		}
		return candidate, true
	}

	if strings.Contains(lower, "tomorrow") {
		candidate := local.AddDate(0, 0, 1)
		if hasTime {
			candidate = time.Date(candidate.Year(), candidate.Month(), candidate.Day(), hour, minute, 0, 0, location)
		}
		return candidate, true
	}

	if strings.Contains(lower, "today") && hasTime {
		return time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, location), true
	}

	if hasTime {
		candidate := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, location)
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		return candidate, true
	}

	return time.Time{}, false
}

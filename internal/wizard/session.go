package wizard

import (
	"strconv"
	"strings"
	"time"

	"poll_scheduling_system/internal/db/models"
)

const (
	sessionTimeout = 300 * time.Second

	firstStep        = 1
	confirmationStep = 9
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeModify Mode = "modify"
	ModeClone  Mode = "clone"
)

// Key identifies a wizard session: at most one live session per (guild, user).
type Key struct {
	GuildID string
	UserID  string
}

// answers is the partially-filled poll definition a session accumulates,
// including the raw text staging fields shown back as "Current" hints.
type answers struct {
	Question      string
	OptionsRaw    string
	PingTarget    string
	PostChannelID string
	SendTimeRaw   string
	SendTime      time.Time
	HasSendTime   bool
	Timezone      string
	RepeatRaw     string
	DurationRaw   string
	DurationHours float64
	VoteThreshold int
}

// Session is in-memory only; it is discarded on timeout, cancel or completion
// without side effects on any poll.
type Session struct {
	Key             Key
	ChannelID       string
	Step            int
	Mode            Mode
	TargetPollID    string
	TargetCreatedAt time.Time
	LastInteraction time.Time
	Answers         answers
}

var cronDayNames = map[string]string{
	"mon": "monday",
	"tue": "tuesday",
	"wed": "wednesday",
	"thu": "thursday",
	"fri": "friday",
	"sat": "saturday",
	"sun": "sunday",
}

var timezoneAbbreviations = map[string]string{
	"US/Eastern":       "est",
	"US/Central":       "cst",
	"US/Mountain":      "mst",
	"US/Pacific":       "pst",
	"UTC":              "utc",
	"Europe/Stockholm": "cet",
}

// answersFromPoll reconstructs the staging fields from an existing poll so
// modify and clone sessions can offer "keep" at every step. Clone drops the
// send time, forcing the user to supply a fresh one.
func answersFromPoll(poll *models.Poll, keepSendTime bool) answers {
	labels := make([]string, 0, len(poll.Options))
	for _, option := range poll.Options {
		labels = append(labels, option.Label)
	}

	pingTarget := poll.PingTarget
	if pingTarget == "" {
		pingTarget = "@everyone"
	}

	seeded := answers{
		Question:      poll.Question,
		OptionsRaw:    strings.Join(labels, ", "),
		PingTarget:    pingTarget,
		PostChannelID: poll.EffectiveChannelID(),
		Timezone:      poll.ScheduleTimezone,
		RepeatRaw:     recurrenceText(poll),
		DurationRaw:   strconv.FormatFloat(poll.PollDurationHours, 'f', -1, 64),
		DurationHours: poll.PollDurationHours,
		VoteThreshold: poll.VoteThreshold,
	}

	if keepSendTime {
		seeded.SendTimeRaw = poll.NextSendTime.Format(time.RFC3339)
		seeded.SendTime = poll.NextSendTime
		seeded.HasSendTime = true
	}

	return seeded
}

// recurrenceText renders a poll's cron spec back into the free-text form the
// recurrence parser accepts, so a kept value round-trips.
func recurrenceText(poll *models.Poll) string {
	if !poll.Recurring || poll.ScheduleCron == nil {
		return "none"
	}

	spec := poll.ScheduleCron

	day := "day"
	if name, ok := cronDayNames[spec.DayOfWeek]; ok {
		day = name
	}

	zone := timezoneAbbreviations[spec.Timezone]
	if zone == "" {
		zone = timezoneAbbreviations[models.DefaultTimezone]
	}

	return "every " + day + " at " + strconv.Itoa(spec.Hour) + ":" + pad(spec.Minute) + " " + zone
}

func pad(minute int) string {
	if minute < 10 {
		return "0" + strconv.Itoa(minute)
	}
	return strconv.Itoa(minute)
}

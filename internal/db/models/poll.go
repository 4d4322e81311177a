package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type PollStatus string

const (
	PollStatusScheduled PollStatus = "scheduled"
	PollStatusActive    PollStatus = "active"
	PollStatusCompleted PollStatus = "completed"
)

func (s PollStatus) String() string {
	return string(s)
}

func (s PollStatus) CapitalizedString() string {
	return cases.Title(language.English).String(s.String())
}

// DefaultTimezone is assumed whenever a poll carries no timezone of its own.
const DefaultTimezone = "US/Eastern"

const (
	MinOptions = 2
	MaxOptions = 9
)

// NumberEmojis is the marker palette: keycap digits, one per option, at most 9.
var NumberEmojis = []string{
	"1⃣", "2⃣", "3⃣", "4⃣", "5⃣",
	"6⃣", "7⃣", "8⃣", "9⃣",
}

type PollOption struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// CronSpec describes a recurring poll's send schedule. An empty DayOfWeek
// means every day.
type CronSpec struct {
	DayOfWeek string `json:"day_of_week,omitempty"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	Timezone  string `json:"timezone"`
}

type Poll struct {
	ID                string       `json:"id" pg:",pk"`
	GuildID           string       `json:"guild_id" pg:",notnull"`
	ChannelID         string       `json:"channel_id" pg:",notnull"`
	PostChannelID     string       `json:"post_channel_id"`
	CreatorID         string       `json:"creator_id"`
	Question          string       `json:"question" pg:",notnull"`
	Options           []PollOption `json:"options" pg:",notnull"`
	PingTarget        string       `json:"ping_target"`
	VoteThreshold     int          `json:"vote_threshold" pg:",use_zero"`
	ScheduleCron      *CronSpec    `json:"schedule_cron"`
	ScheduleTimezone  string       `json:"schedule_timezone"`
	NextSendTime      time.Time    `json:"next_send_time"`
	PollDurationHours float64      `json:"poll_duration_hours" pg:",use_zero"`
	Status            PollStatus   `json:"status" pg:",notnull,default:'scheduled'"`
	ActiveMessageID   string       `json:"active_message_id"`
	Recurring         bool         `json:"recurring" pg:",use_zero"`
	IsTiebreaker      bool         `json:"is_tiebreaker" pg:",use_zero"`
	ParentPollID      string       `json:"parent_poll_id"`
	CreatedAt         time.Time    `json:"created_at" pg:"default:now()"`
}

// ShortID is the id form surfaced to users in listings and announcements.
func (p *Poll) ShortID() string {
	if len(p.ID) < 8 {
		return p.ID
	}
	return p.ID[:8]
}

// EffectiveChannelID is where the poll is posted: the configured post channel,
// falling back to the channel the poll was created from.
func (p *Poll) EffectiveChannelID() string {
	if p.PostChannelID != "" {
		return p.PostChannelID
	}
	return p.ChannelID
}

func (p *Poll) Duration() time.Duration {
	return time.Duration(p.PollDurationHours * float64(time.Hour))
}

// ResolveTime is when an active poll closes for voting.
func (p *Poll) ResolveTime() time.Time {
	return p.NextSendTime.Add(p.Duration())
}

func (p *Poll) Timezone() string {
	if p.ScheduleTimezone != "" {
		return p.ScheduleTimezone
	}
	return DefaultTimezone
}

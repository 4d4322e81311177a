package wizard

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"poll_scheduling_system/internal"
	"poll_scheduling_system/internal/db/models"
	"poll_scheduling_system/internal/discord"
	"poll_scheduling_system/internal/parsers"
	"poll_scheduling_system/internal/scheduler"
	"poll_scheduling_system/internal/services"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const colorGold = 0xf1c40f

var confirmationPattern = regexp.MustCompile(`[^a-z]`)

// PollScheduler is the slice of the lifecycle manager the wizard hands
// finished definitions to.
type PollScheduler interface {
	Create(poll *models.Poll) (*models.Poll, error)
	Update(poll *models.Poll) (*models.Poll, error)
}

// SessionManager owns the per-(guild, user) wizard sessions and walks each
// one through the nine-step poll definition protocol.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[Key]*Session

	lifecycle      PollScheduler
	transport      discord.Transport
	dateTimeParser services.DateTimeParser
	clock          scheduler.Clock
	commandPrefix  string
	logger         *zap.SugaredLogger
}

func NewSessionManager(
	lifecycle PollScheduler,
	transport discord.Transport,
	dateTimeParser services.DateTimeParser,
	clock scheduler.Clock,
	commandPrefix string,
	logger *zap.SugaredLogger,
) *SessionManager {
	return &SessionManager{
		sessions:       make(map[Key]*Session),
		lifecycle:      lifecycle,
		transport:      transport,
		dateTimeParser: dateTimeParser,
		clock:          clock,
		commandPrefix:  commandPrefix,
		logger:         logger,
	}
}

// StartCreate opens a fresh creation session. Starting while another session
// exists for the same key is rejected without touching the existing session.
func (m *SessionManager) StartCreate(guildID, userID, channelID string) {
	session, ok := m.startSession(guildID, userID, channelID, ModeCreate, "", answers{})
	if !ok {
		m.announce(channelID, "You already have a poll creation in progress! Finish or cancel it first.")
		return
	}

	m.announce(channelID,
		"Let's create a scheduled poll! I'll ask you a series of questions.\n\n"+
			"**Step 1/9:** What is the poll question?\n"+
			"*(e.g., \"When can everyone play D&D this week?\")*")
	m.logger.Infow("wizard session started", "guild_id", session.Key.GuildID, "user_id", session.Key.UserID, "mode", session.Mode)
}

// StartModify opens a session pre-seeded from an existing poll; finalizing
// overwrites that poll in place.
func (m *SessionManager) StartModify(guildID, userID, channelID string, poll *models.Poll) {
	seeded := answersFromPoll(poll, true)

	session, ok := m.startSession(guildID, userID, channelID, ModeModify, poll.ID, seeded)
	if !ok {
		m.announce(channelID, "You already have a poll creation in progress! Finish or cancel it first.")
		return
	}
	session.TargetCreatedAt = poll.CreatedAt

	m.announce(channelID, fmt.Sprintf(
		"Modifying poll: **%s**\n"+
			"Type your new answer at each step, or type **keep** to keep the current value.\n\n"+
			"**Step 1/9:** What is the poll question?\n"+
			"*Current: %s*",
		poll.Question, seeded.Question))
	m.logger.Infow("wizard session started", "guild_id", session.Key.GuildID, "user_id", session.Key.UserID, "mode", session.Mode, "poll_id", poll.ShortID())
}

// StartClone opens a session pre-seeded from an existing poll that finalizes
// as a brand-new poll. No send time is seeded, so the user must supply one.
func (m *SessionManager) StartClone(guildID, userID, channelID string, poll *models.Poll) {
	seeded := answersFromPoll(poll, false)

	session, ok := m.startSession(guildID, userID, channelID, ModeClone, "", seeded)
	if !ok {
		m.announce(channelID, "You already have a poll creation in progress! Finish or cancel it first.")
		return
	}

	m.announce(channelID, fmt.Sprintf(
		"Cloning poll: **%s**\n"+
			"Type your new answer at each step, or type **keep** to keep the cloned value.\n\n"+
			"**Step 1/9:** What is the poll question?\n"+
			"*Current: %s*",
		poll.Question, seeded.Question))
	m.logger.Infow("wizard session started", "guild_id", session.Key.GuildID, "user_id", session.Key.UserID, "mode", session.Mode, "poll_id", poll.ShortID())
}

// Cancel discards the session for the key, if any.
func (m *SessionManager) Cancel(guildID, userID, channelID string) {
	key := Key{GuildID: guildID, UserID: userID}

	m.mu.Lock()
	_, ok := m.sessions[key]
	delete(m.sessions, key)
	m.mu.Unlock()

	if ok {
		m.announce(channelID, "Poll creation cancelled.")
	} else {
		m.announce(channelID, "No poll creation in progress.")
	}
}

// HandleMessage routes a free-text reply to the active session for the
// (guild, user) key. It reports whether the message was consumed.
func (m *SessionManager) HandleMessage(guildID, userID, channelID, content string) bool {
	key := Key{GuildID: guildID, UserID: userID}

	m.mu.Lock()
	session, ok := m.sessions[key]
	m.mu.Unlock()

	if !ok || session.ChannelID != channelID {
		return false
	}

	now := m.clock.Now()
	if now.Sub(session.LastInteraction) > sessionTimeout {
		m.remove(key)
		m.announce(channelID, fmt.Sprintf(
			"Poll creation timed out (5 minute limit). Use `%s schedule` to start again.", m.commandPrefix))
		return true
	}
	session.LastInteraction = now

	m.handleStep(session, strings.TrimSpace(content))
	return true
}

func (m *SessionManager) startSession(guildID, userID, channelID string, mode Mode, targetPollID string, seeded answers) (*Session, bool) {
	key := Key{GuildID: guildID, UserID: userID}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[key]; exists {
		return nil, false
	}

	session := &Session{
		Key:             key,
		ChannelID:       channelID,
		Step:            firstStep,
		Mode:            mode,
		TargetPollID:    targetPollID,
		LastInteraction: m.clock.Now(),
		Answers:         seeded,
	}
	m.sessions[key] = session
	return session, true
}

func (m *SessionManager) remove(key Key) {
	m.mu.Lock()
	delete(m.sessions, key)
	m.mu.Unlock()
}

func (m *SessionManager) handleStep(session *Session, content string) {
	keep := session.Mode != ModeCreate && strings.EqualFold(content, "keep")
	data := &session.Answers

	switch session.Step {
	case 1:
		if !keep {
			data.Question = content
		}
		session.Step = 2
		m.announce(session.ChannelID,
			"**Step 2/9:** List the response options, separated by commas.\n"+
				"*(e.g., \"Friday Night, Saturday Morning, Saturday Night\")*"+
				m.hint(session, data.OptionsRaw))

	case 2:
		if !keep {
			labels := splitOptions(content)
			if len(labels) < models.MinOptions {
				m.announce(session.ChannelID, "Please provide at least 2 options, separated by commas.")
				return
			}
			if len(labels) > models.MaxOptions {
				m.announce(session.ChannelID, "Maximum 9 options allowed. Please try again.")
				return
			}
			data.OptionsRaw = content
		}
		session.Step = 3
		m.announce(session.ChannelID,
			"**Step 3/9:** Who should be pinged when the poll is posted?\n"+
				"*(e.g., @everyone, @here, or mention a role)*"+
				m.hint(session, data.PingTarget))

	case 3:
		if !keep {
			data.PingTarget = content
		}
		session.Step = 4
		m.askPostChannel(session)

	case 4:
		switch {
		case keep:
		case strings.EqualFold(content, "here"):
			data.PostChannelID = session.ChannelID
		default:
			channelID, ok := m.transport.ResolveChannel(session.Key.GuildID, content)
			if !ok {
				m.announce(session.ChannelID, "I couldn't find that channel. Please mention it with # or type \"here\".")
				return
			}
			data.PostChannelID = channelID
		}
		session.Step = 5
		m.announce(session.ChannelID,
			"**Step 5/9:** When should the poll be sent?\n"+
				"*(e.g., \"Monday at 9am EST\", \"tomorrow at 3pm\", \"in 2 hours\")*"+
				m.hint(session, data.SendTimeRaw))

	case 5:
		if keep {
			if !data.HasSendTime {
				m.announce(session.ChannelID, "No existing send time to keep. Please provide one.")
				return
			}
		} else {
			parsed, ok := m.dateTimeParser.Parse(content)
			if !ok {
				m.announce(session.ChannelID, "I couldn't understand that time. Please try again. (e.g., \"Monday at 9am EST\")")
				return
			}
			data.SendTimeRaw = content
			data.SendTime = parsed
			data.HasSendTime = true
			data.Timezone = parsers.ParseTimezone(content)
			m.announce(session.ChannelID, fmt.Sprintf("Got it! I'll send the poll at: %s (%s)",
				internal.DiscordTimestamp(parsed, "F"), internal.DiscordTimestamp(parsed, "R")))
		}
		session.Step = 6
		m.announce(session.ChannelID,
			"**Step 6/9:** Should this poll repeat? If so, provide the schedule.\n"+
				"*(e.g., \"every Monday at 9am EST\" or type \"none\")*"+
				m.hint(session, data.RepeatRaw))

	case 6:
		if !keep {
			data.RepeatRaw = content
		}
		session.Step = 7
		m.announce(session.ChannelID,
			"**Step 7/9:** How long should the poll stay open for voting?\n"+
				"*(e.g., \"24 hours\", \"2 days\", \"48 hours\")*"+
				m.hint(session, data.DurationRaw))

	case 7:
		if !keep {
			durationHours, ok := parsers.ParseDuration(content)
			if !ok {
				m.announce(session.ChannelID, "I couldn't understand that duration. Please try again. (e.g., \"24 hours\", \"2 days\")")
				return
			}
			data.DurationRaw = content
			data.DurationHours = durationHours
		}
		session.Step = 8
		m.announce(session.ChannelID,
			"**Step 8/9:** Minimum votes for an option to count in results?\n"+
				"*(Enter a number, e.g., \"3\" means options with fewer than 3 votes are excluded. Use \"0\" for no minimum.)*"+
				m.hint(session, strconv.Itoa(data.VoteThreshold)))

	case 8:
		if !keep {
			threshold, err := strconv.Atoi(content)
			if err != nil || threshold < 0 {
				m.announce(session.ChannelID, "Please enter a valid number (0 or higher).")
				return
			}
			data.VoteThreshold = threshold
		}
		session.Step = confirmationStep
		m.showConfirmation(session)

	case confirmationStep:
		cleaned := confirmationPattern.ReplaceAllString(strings.ToLower(content), "")
		switch cleaned {
		case "yes", "y", "confirm":
			m.finalize(session)
			m.remove(session.Key)
		case "no", "n", "cancel":
			m.remove(session.Key)
			m.announce(session.ChannelID, "Poll creation cancelled.")
		default:
			m.announce(session.ChannelID, "Please type **yes** to confirm or **no** to cancel.")
		}

	default:
		m.logger.Errorw("wizard session has unknown step", "step", session.Step)
		m.remove(session.Key)
	}
}

func (m *SessionManager) askPostChannel(session *Session) {
	listing := ""
	if channels, err := m.transport.ListTextChannels(session.Key.GuildID); err == nil {
		if len(channels) > 20 {
			channels = channels[:20]
		}
		var lines strings.Builder
		for _, channel := range channels {
			fmt.Fprintf(&lines, "  - <#%s>\n", channel.ID)
		}
		listing = "\n\nAvailable channels:\n" + lines.String()
	}

	currentHint := ""
	if session.Mode != ModeCreate && session.Answers.PostChannelID != "" {
		currentHint = fmt.Sprintf("\n*Current: <#%s>*", session.Answers.PostChannelID)
	}

	m.announce(session.ChannelID,
		"**Step 4/9:** Which channel should the poll be posted in?\n"+
			"*(Mention a channel like #general, or type \"here\" to post in this channel)*"+
			listing+currentHint)
}

func (m *SessionManager) showConfirmation(session *Session) {
	data := session.Answers

	var options strings.Builder
	for i, label := range splitOptions(data.OptionsRaw) {
		fmt.Fprintf(&options, "  %s %s\n", models.NumberEmojis[i], label)
	}

	repeatText := data.RepeatRaw
	lower := strings.ToLower(repeatText)
	if repeatText == "" || lower == "none" || lower == "no" {
		repeatText = "No (one-time poll)"
	}

	sendTimeDisplay := data.SendTimeRaw
	if data.HasSendTime {
		sendTimeDisplay = internal.DiscordTimestamp(data.SendTime, "F")
	}

	postChannel := "This channel"
	if data.PostChannelID != "" {
		postChannel = fmt.Sprintf("<#%s>", data.PostChannelID)
	}

	embed := &discordgo.MessageEmbed{
		Title: "Poll Summary — Confirm?",
		Color: colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Question", Value: data.Question},
			{Name: "Options", Value: options.String()},
			{Name: "Ping", Value: data.PingTarget, Inline: true},
			{Name: "Post In", Value: postChannel, Inline: true},
			{Name: "Send Time", Value: sendTimeDisplay, Inline: true},
			{Name: "Repeat", Value: repeatText, Inline: true},
			{Name: "Duration", Value: data.DurationRaw, Inline: true},
			{Name: "Vote Threshold", Value: strconv.Itoa(data.VoteThreshold), Inline: true},
		},
	}

	if err := m.transport.AnnounceEmbed(session.ChannelID, "", embed); err != nil {
		m.logger.Errorw("failed to send confirmation summary", "error", err)
	}
	m.announce(session.ChannelID, "Type **yes** to confirm or **no** to cancel.")
}

func (m *SessionManager) finalize(session *Session) {
	data := session.Answers

	labels := splitOptions(data.OptionsRaw)
	options := make([]models.PollOption, 0, len(labels))
	for i, label := range labels {
		options = append(options, models.PollOption{Label: label, Emoji: models.NumberEmojis[i]})
	}

	cronSpec := parsers.ParseRecurrence(data.RepeatRaw)

	durationHours := data.DurationHours
	if durationHours <= 0 {
		if parsed, ok := parsers.ParseDuration(data.DurationRaw); ok {
			durationHours = parsed
		} else {
			durationHours = 24
		}
	}

	timezone := data.Timezone
	if timezone == "" {
		timezone = models.DefaultTimezone
	}

	postChannelID := data.PostChannelID
	if postChannelID == "" {
		postChannelID = session.ChannelID
	}

	pingTarget := data.PingTarget
	if pingTarget == "" {
		pingTarget = "@everyone"
	}

	sendTime := data.SendTime
	if !data.HasSendTime {
		sendTime = m.clock.Now()
	}

	poll := &models.Poll{
		GuildID:           session.Key.GuildID,
		ChannelID:         session.ChannelID,
		PostChannelID:     postChannelID,
		CreatorID:         session.Key.UserID,
		Question:          data.Question,
		Options:           options,
		PingTarget:        pingTarget,
		VoteThreshold:     data.VoteThreshold,
		ScheduleCron:      cronSpec,
		ScheduleTimezone:  timezone,
		NextSendTime:      sendTime,
		PollDurationHours: durationHours,
		Recurring:         cronSpec != nil,
	}

	var err error
	action := "created"
	if session.Mode == ModeModify {
		poll.ID = session.TargetPollID
		// the rebuilt record must keep the original creation instant or the
		// all-column update would null it out
		poll.CreatedAt = session.TargetCreatedAt
		action = "modified"
		_, err = m.lifecycle.Update(poll)
	} else {
		_, err = m.lifecycle.Create(poll)
	}
	if err != nil {
		m.logger.Errorw("failed to finalize poll", "mode", session.Mode, "error", err)
		m.announce(session.ChannelID, "Something went wrong saving the poll. Poll creation cancelled.")
		return
	}

	m.announce(session.ChannelID, fmt.Sprintf(
		"Poll %s and scheduled! ID: `%s`\n"+
			"Poll will be posted in <#%s>.\n"+
			"Use `%s list` to see all scheduled polls.",
		action, poll.ShortID(), postChannelID, m.commandPrefix))
}

func (m *SessionManager) hint(session *Session, current string) string {
	if session.Mode == ModeCreate {
		return ""
	}
	return fmt.Sprintf("\n*Current: %s*", current)
}

func (m *SessionManager) announce(channelID, content string) {
	if err := m.transport.Announce(channelID, content); err != nil {
		m.logger.Errorw("failed to send wizard message", "channel_id", channelID, "error", err)
	}
}

func splitOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

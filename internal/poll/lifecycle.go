package poll

import (
	"fmt"
	"time"

	"poll_scheduling_system/internal/db/models"
	"poll_scheduling_system/internal/db/repositories"
	"poll_scheduling_system/internal/discord"
	"poll_scheduling_system/internal/scheduler"
	"poll_scheduling_system/internal/services"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sendJobPrefix    = "poll_send_"
	resolveJobPrefix = "poll_resolve_"

	tiebreakerDurationMinutes = 30
	eventWindow               = 3 * time.Hour
)

func sendJobKey(pollID string) string {
	return sendJobPrefix + pollID
}

func resolveJobKey(pollID string) string {
	return resolveJobPrefix + pollID
}

// LifecycleManager drives a poll through scheduled -> active ->
// {completed | scheduled (recurring)} with a tiebreaker branch at resolution.
type LifecycleManager struct {
	pollRepository repositories.PollRepository
	scheduler      scheduler.TriggerScheduler
	transport      discord.Transport
	eventCreator   services.EventCreator
	dateTimeParser services.DateTimeParser
	clock          scheduler.Clock
	logger         *zap.SugaredLogger
}

func NewLifecycleManager(
	pollRepository repositories.PollRepository,
	triggerScheduler scheduler.TriggerScheduler,
	transport discord.Transport,
	eventCreator services.EventCreator,
	dateTimeParser services.DateTimeParser,
	clock scheduler.Clock,
	logger *zap.SugaredLogger,
) *LifecycleManager {
	return &LifecycleManager{
		pollRepository: pollRepository,
		scheduler:      triggerScheduler,
		transport:      transport,
		eventCreator:   eventCreator,
		dateTimeParser: dateTimeParser,
		clock:          clock,
		logger:         logger,
	}
}

// Create persists a new scheduled poll and registers its send job. The job is
// registered only after a successful persist so a crash in between is
// recovered by reconciliation.
func (m *LifecycleManager) Create(poll *models.Poll) (*models.Poll, error) {
	if poll.ID == "" {
		poll.ID = uuid.NewString()
	}
	poll.Status = models.PollStatusScheduled
	poll.ActiveMessageID = ""
	poll.CreatedAt = m.clock.Now()

	if _, err := m.pollRepository.Create(poll); err != nil {
		return nil, fmt.Errorf("failed to create poll: %w", err)
	}

	if err := m.registerSendJob(poll); err != nil {
		return nil, err
	}

	m.logger.Infow("poll created", "poll_id", poll.ShortID(), "send_time", poll.NextSendTime, "recurring", poll.Recurring)
	return poll, nil
}

// Update overwrites an existing poll in place, cancels its pending jobs and
// re-registers the send job for the new schedule.
func (m *LifecycleManager) Update(poll *models.Poll) (*models.Poll, error) {
	m.scheduler.Cancel(sendJobKey(poll.ID))
	m.scheduler.Cancel(resolveJobKey(poll.ID))

	poll.Status = models.PollStatusScheduled
	poll.ActiveMessageID = ""

	if _, err := m.pollRepository.Update(poll); err != nil {
		return nil, fmt.Errorf("failed to update poll: %w", err)
	}

	if err := m.registerSendJob(poll); err != nil {
		return nil, err
	}

	m.logger.Infow("poll modified", "poll_id", poll.ShortID(), "send_time", poll.NextSendTime, "recurring", poll.Recurring)
	return poll, nil
}

// Delete cancels both jobs for the poll (cancelling an absent job is a no-op)
// and removes the record.
func (m *LifecycleManager) Delete(poll *models.Poll) error {
	m.scheduler.Cancel(sendJobKey(poll.ID))
	m.scheduler.Cancel(resolveJobKey(poll.ID))

	if err := m.pollRepository.Delete(poll); err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	m.logger.Infow("poll deleted", "poll_id", poll.ShortID())
	return nil
}

// Reconcile re-derives all pending jobs from persisted poll status. Timer
// state does not survive restarts, so this must run once the scheduler's run
// loop is up: scheduled polls get a send job, active polls a resolve job.
func (m *LifecycleManager) Reconcile() error {
	polls, err := m.pollRepository.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load polls for reconciliation: %w", err)
	}

	registered := 0
	for _, poll := range polls {
		switch poll.Status {
		case models.PollStatusScheduled:
			if err := m.registerSendJob(poll); err != nil {
				m.logger.Errorw("failed to reconcile send job", "poll_id", poll.ShortID(), "error", err)
				continue
			}
			registered++
		case models.PollStatusActive:
			if err := m.registerResolveJob(poll); err != nil {
				m.logger.Errorw("failed to reconcile resolve job", "poll_id", poll.ShortID(), "error", err)
				continue
			}
			registered++
		}
	}

	m.logger.Infow("scheduler jobs reconciled", "jobs", registered, "polls", len(polls))
	return nil
}

// Post fires when a poll's send time arrives: renders and sends the poll
// message, seeds one reaction per option, marks the poll active and registers
// its resolve job.
func (m *LifecycleManager) Post(pollID string) {
	poll := m.load(pollID, "post")
	if poll == nil {
		return
	}

	channelID := poll.EffectiveChannelID()
	now := m.clock.Now()
	endTime := now.Add(poll.Duration())

	messageID, err := m.transport.PostMessage(channelID, poll.PingTarget, pollEmbed(poll, now, endTime))
	if err != nil {
		m.logger.Errorw("failed to post poll message", "poll_id", poll.ShortID(), "channel_id", channelID, "error", err)
		return
	}

	for _, option := range poll.Options {
		if err := m.transport.AddReaction(channelID, messageID, option.Emoji); err != nil {
			m.logger.Errorw("failed to add option reaction", "poll_id", poll.ShortID(), "emoji", option.Emoji, "error", err)
		}
	}

	poll.ActiveMessageID = messageID
	poll.PostChannelID = channelID
	poll.Status = models.PollStatusActive
	poll.NextSendTime = now

	if _, err := m.pollRepository.Update(poll); err != nil {
		// without the persist the resolve job must not exist either;
		// reconciliation will re-post from the scheduled state
		m.logger.Errorw("failed to persist active poll", "poll_id", poll.ShortID(), "error", err)
		return
	}

	if err := m.registerResolveJob(poll); err != nil {
		m.logger.Errorw("failed to register resolve job", "poll_id", poll.ShortID(), "error", err)
		return
	}

	m.logger.Infow("poll posted", "poll_id", poll.ShortID(), "message_id", messageID)
}

// Resolve fires when an active poll's voting window closes: counts reactions,
// announces the outcome, branches to a tiebreaker on a tie and finally runs
// recurrence handling.
func (m *LifecycleManager) Resolve(pollID string) {
	poll := m.load(pollID, "resolve")
	if poll == nil {
		return
	}

	channelID := poll.EffectiveChannelID()

	counts, err := m.transport.FetchReactionCounts(channelID, poll.ActiveMessageID)
	if err != nil {
		// leave the poll active so an operator can intervene
		m.logger.Errorw("failed to fetch poll message", "poll_id", poll.ShortID(), "message_id", poll.ActiveMessageID, "error", err)
		m.announce(channelID, fmt.Sprintf("Could not find poll message for **%s**. Poll resolution failed.", poll.Question))
		return
	}

	results := TallyVotes(poll.Options, counts)
	qualifying := Qualifying(results, poll.VoteThreshold)
	now := m.clock.Now()

	switch {
	case IsTie(qualifying):
		tied := TiedLeaders(qualifying)
		if !poll.IsTiebreaker {
			m.runTiebreaker(poll, tied)
			// recurrence is deferred to the tiebreaker's own resolution
			return
		}
		m.announceEmbed(channelID, poll.PingTarget, unresolvedTieEmbed(poll, tied, now))
	case len(qualifying) > 0:
		m.announceEmbed(channelID, poll.PingTarget, resultsEmbed(poll, results, qualifying, poll.VoteThreshold, now))
		m.tryCreateEvent(poll, qualifying[0])
	default:
		m.announceEmbed(channelID, poll.PingTarget, noQualifiersEmbed(poll, poll.VoteThreshold, now))
	}

	m.handleRecurrence(poll)
}

// handleRecurrence applies recurrence to the effective poll: the parent when
// the resolved poll is a tiebreaker, otherwise the poll itself. Tiebreakers
// are always marked completed.
func (m *LifecycleManager) handleRecurrence(poll *models.Poll) {
	if !poll.IsTiebreaker {
		m.reschedule(poll)
		return
	}

	if parent := m.load(poll.ParentPollID, "recurrence"); parent != nil {
		m.reschedule(parent)
	}

	poll.Status = models.PollStatusCompleted
	poll.ActiveMessageID = ""
	if _, err := m.pollRepository.Update(poll); err != nil {
		m.logger.Errorw("failed to complete tiebreaker", "poll_id", poll.ShortID(), "error", err)
	}
}

func (m *LifecycleManager) reschedule(poll *models.Poll) {
	if poll.Recurring && poll.ScheduleCron != nil {
		poll.Status = models.PollStatusScheduled
		poll.ActiveMessageID = ""

		if _, err := m.pollRepository.Update(poll); err != nil {
			m.logger.Errorw("failed to reschedule recurring poll", "poll_id", poll.ShortID(), "error", err)
			return
		}
		if err := m.registerSendJob(poll); err != nil {
			m.logger.Errorw("failed to register recurring send job", "poll_id", poll.ShortID(), "error", err)
		}
		m.logger.Infow("recurring poll rescheduled", "poll_id", poll.ShortID())
		return
	}

	poll.Status = models.PollStatusCompleted
	poll.ActiveMessageID = ""
	if _, err := m.pollRepository.Update(poll); err != nil {
		m.logger.Errorw("failed to complete poll", "poll_id", poll.ShortID(), "error", err)
		return
	}
	m.logger.Infow("poll completed", "poll_id", poll.ShortID())
}

// runTiebreaker spawns a short child poll restricted to the tied options and
// posts it immediately, since its send time is already due.
func (m *LifecycleManager) runTiebreaker(parent *models.Poll, tied []OptionResult) {
	channelID := parent.EffectiveChannelID()

	m.announce(channelID, fmt.Sprintf(
		"**Tie detected!** %d options tied with %d vote(s) each. Running a %d-minute tiebreaker poll...",
		len(tied), tied[0].Votes, tiebreakerDurationMinutes))

	options := make([]models.PollOption, 0, len(tied))
	for i, result := range tied {
		options = append(options, models.PollOption{Label: result.Label, Emoji: models.NumberEmojis[i]})
	}

	now := m.clock.Now()
	tiebreaker := &models.Poll{
		ID:                uuid.NewString(),
		GuildID:           parent.GuildID,
		ChannelID:         parent.ChannelID,
		PostChannelID:     channelID,
		CreatorID:         parent.CreatorID,
		Question:          fmt.Sprintf("Tiebreaker: %s", parent.Question),
		Options:           options,
		PingTarget:        parent.PingTarget,
		VoteThreshold:     0,
		ScheduleTimezone:  parent.Timezone(),
		NextSendTime:      now,
		PollDurationHours: float64(tiebreakerDurationMinutes) / 60,
		Status:            models.PollStatusScheduled,
		Recurring:         false,
		IsTiebreaker:      true,
		ParentPollID:      parent.ID,
		CreatedAt:         now,
	}

	if _, err := m.pollRepository.Create(tiebreaker); err != nil {
		m.logger.Errorw("failed to create tiebreaker poll", "parent_poll_id", parent.ShortID(), "error", err)
		return
	}

	m.logger.Infow("tiebreaker poll created", "poll_id", tiebreaker.ShortID(), "parent_poll_id", parent.ShortID(), "options", len(options))
	m.Post(tiebreaker.ID)
}

// tryCreateEvent derives a calendar instant from the winning option's label
// and requests event creation when it lands in the future. Parse failures and
// past instants are non-fatal.
func (m *LifecycleManager) tryCreateEvent(poll *models.Poll, winner OptionResult) {
	channelID := poll.EffectiveChannelID()

	start, ok := m.dateTimeParser.Parse(winner.Label)
	if !ok {
		m.announce(channelID, fmt.Sprintf(
			"Could not auto-create a server event for **%s** (not parseable as a date/time). You can create it manually!",
			winner.Label))
		return
	}

	if !start.After(m.clock.Now()) {
		m.logger.Infow("winning option parsed to a past instant, skipping event", "poll_id", poll.ShortID(), "label", winner.Label)
		return
	}

	description := fmt.Sprintf("Scheduled via poll. Winning time: %s", winner.Label)
	if err := m.eventCreator.CreateEvent(poll.GuildID, poll.Question, description, start, start.Add(eventWindow)); err != nil {
		return
	}

	m.announce(channelID, fmt.Sprintf("A server event has been created for **%s**!", winner.Label))
}

// registerSendJob picks the firing rule for a poll's next send: a recurring
// poll whose stored send time has already passed goes straight onto its
// periodic rule (the first occurrence already happened), everything else gets
// a one-shot for the stored instant.
func (m *LifecycleManager) registerSendJob(poll *models.Poll) error {
	rule := scheduler.FiringRule{At: poll.NextSendTime}
	if poll.Recurring && poll.ScheduleCron != nil && !poll.NextSendTime.After(m.clock.Now()) {
		rule = scheduler.FiringRule{Cron: poll.ScheduleCron}
	}

	pollID := poll.ID
	return m.scheduler.Schedule(sendJobKey(pollID), rule, func() {
		m.Post(pollID)
	})
}

func (m *LifecycleManager) registerResolveJob(poll *models.Poll) error {
	pollID := poll.ID
	return m.scheduler.Schedule(resolveJobKey(pollID), scheduler.FiringRule{At: poll.ResolveTime()}, func() {
		m.Resolve(pollID)
	})
}

// load fetches a poll by id; absence is not an error, the poll may have been
// deleted after a timer fired.
func (m *LifecycleManager) load(pollID, operation string) *models.Poll {
	if pollID == "" {
		return nil
	}

	poll, err := m.pollRepository.GetOne(pollID)
	if err != nil {
		m.logger.Errorw("failed to load poll", "operation", operation, "poll_id", pollID, "error", err)
		return nil
	}
	if poll == nil {
		m.logger.Warnw("poll not found, skipping", "operation", operation, "poll_id", pollID)
		return nil
	}
	return poll
}

func (m *LifecycleManager) announce(channelID, content string) {
	if err := m.transport.Announce(channelID, content); err != nil {
		m.logger.Errorw("failed to send announcement", "channel_id", channelID, "error", err)
	}
}

func (m *LifecycleManager) announceEmbed(channelID, content string, embed *discordgo.MessageEmbed) {
	if err := m.transport.AnnounceEmbed(channelID, content, embed); err != nil {
		m.logger.Errorw("failed to send announcement", "channel_id", channelID, "error", err)
	}
}

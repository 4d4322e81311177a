package poll

import (
	"errors"
	"testing"
	"time"

	"poll_scheduling_system/internal/db/models"
	mock_repositories "poll_scheduling_system/internal/db/repositories/mocks"
	mock_discord "poll_scheduling_system/internal/discord/mocks"
	"poll_scheduling_system/internal/scheduler"
	mock_scheduler "poll_scheduling_system/internal/scheduler/mocks"
	mock_services "poll_scheduling_system/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type lifecycleFixture struct {
	pollRepository *mock_repositories.MockPollRepository
	scheduler      *mock_scheduler.MockTriggerScheduler
	transport      *mock_discord.MockTransport
	eventCreator   *mock_services.MockEventCreator
	dateTimeParser *mock_services.MockDateTimeParser
	now            time.Time
	manager        *LifecycleManager
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	ctrl := gomock.NewController(t)

	f := &lifecycleFixture{
		pollRepository: mock_repositories.NewMockPollRepository(ctrl),
		scheduler:      mock_scheduler.NewMockTriggerScheduler(ctrl),
		transport:      mock_discord.NewMockTransport(ctrl),
		eventCreator:   mock_services.NewMockEventCreator(ctrl),
		dateTimeParser: mock_services.NewMockDateTimeParser(ctrl),
		now:            time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
	f.manager = NewLifecycleManager(
		f.pollRepository,
		f.scheduler,
		f.transport,
		f.eventCreator,
		f.dateTimeParser,
		fixedClock{now: f.now},
		zap.NewNop().Sugar(),
	)
	return f
}

func (f *lifecycleFixture) newPoll() *models.Poll {
	return &models.Poll{
		ID:            "11111111-2222-3333-4444-555555555555",
		GuildID:       "guild-1",
		ChannelID:     "channel-1",
		PostChannelID: "channel-2",
		CreatorID:     "user-1",
		Question:      "When can everyone play D&D this week?",
		Options: []models.PollOption{
			{Label: "Friday", Emoji: "1⃣"},
			{Label: "Saturday", Emoji: "2⃣"},
		},
		PingTarget:        "@everyone",
		VoteThreshold:     2,
		NextSendTime:      f.now.Add(time.Hour),
		PollDurationHours: 24,
		Status:            models.PollStatusScheduled,
	}
}

func TestCreate_PersistsThenRegistersSendJob(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()
	poll.ID = ""

	var capturedRule scheduler.FiringRule

	f.pollRepository.EXPECT().Create(poll).Return(poll, nil)
	f.scheduler.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(jobKey string, rule scheduler.FiringRule, callback func()) error {
			assert.Equal(t, "poll_send_"+poll.ID, jobKey)
			capturedRule = rule
			return nil
		})

	created, err := f.manager.Create(poll)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.PollStatusScheduled, created.Status)
	assert.Nil(t, capturedRule.Cron)
	assert.Equal(t, poll.NextSendTime, capturedRule.At)
}

func TestCreate_PersistFailureRegistersNoJob(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()

	f.pollRepository.EXPECT().Create(poll).Return(nil, errors.New("database error"))

	_, err := f.manager.Create(poll)

	assert.Error(t, err)
}

func TestCreate_RecurringPollWithDueSendTimeUsesPeriodicRule(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()
	poll.Recurring = true
	poll.ScheduleCron = &models.CronSpec{DayOfWeek: "mon", Hour: 9, Minute: 0, Timezone: "US/Eastern"}
	poll.NextSendTime = f.now.Add(-time.Hour)

	f.pollRepository.EXPECT().Create(poll).Return(poll, nil)
	f.scheduler.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(jobKey string, rule scheduler.FiringRule, callback func()) error {
			assert.NotNil(t, rule.Cron)
			assert.Equal(t, "mon", rule.Cron.DayOfWeek)
			return nil
		})

	_, err := f.manager.Create(poll)
	assert.NoError(t, err)
}

func TestUpdate_ReplacesJobsAndResetsStatus(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()
	poll.Status = models.PollStatusActive
	poll.ActiveMessageID = "message-1"

	f.scheduler.EXPECT().Cancel("poll_send_" + poll.ID)
	f.scheduler.EXPECT().Cancel("poll_resolve_" + poll.ID)
	f.pollRepository.EXPECT().Update(poll).Return(poll, nil)
	f.scheduler.EXPECT().Schedule("poll_send_"+poll.ID, gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.manager.Update(poll)

	assert.NoError(t, err)
	assert.Equal(t, models.PollStatusScheduled, updated.Status)
	assert.Empty(t, updated.ActiveMessageID)
}

func TestDelete_CancelsBothJobs(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()

	f.scheduler.EXPECT().Cancel("poll_send_" + poll.ID)
	f.scheduler.EXPECT().Cancel("poll_resolve_" + poll.ID)
	f.pollRepository.EXPECT().Delete(poll).Return(nil)

	assert.NoError(t, f.manager.Delete(poll))
}

func TestReconcile_RederivesJobsFromStatus(t *testing.T) {
	f := newLifecycleFixture(t)

	scheduled := f.newPoll()
	active := f.newPoll()
	active.ID = "66666666-7777-8888-9999-000000000000"
	active.Status = models.PollStatusActive
	completed := f.newPoll()
	completed.ID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	completed.Status = models.PollStatusCompleted

	f.pollRepository.EXPECT().GetAll().Return([]*models.Poll{scheduled, active, completed}, nil)
	f.scheduler.EXPECT().Schedule("poll_send_"+scheduled.ID, gomock.Any(), gomock.Any()).Return(nil)
	f.scheduler.EXPECT().Schedule("poll_resolve_"+active.ID, gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, f.manager.Reconcile())
}

func TestPost_SendsMessageAndRegistersResolveJob(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()

	f.pollRepository.EXPECT().GetOne(poll.ID).Return(poll, nil)
	f.transport.EXPECT().PostMessage("channel-2", "@everyone", gomock.Any()).Return("message-1", nil)
	f.transport.EXPECT().AddReaction("channel-2", "message-1", "1⃣").Return(nil)
	f.transport.EXPECT().AddReaction("channel-2", "message-1", "2⃣").Return(nil)
	f.pollRepository.EXPECT().Update(poll).Return(poll, nil)
	f.scheduler.EXPECT().Schedule("poll_resolve_"+poll.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(jobKey string, rule scheduler.FiringRule, callback func()) error {
			assert.Equal(t, f.now.Add(24*time.Hour), rule.At)
			return nil
		})

	f.manager.Post(poll.ID)

	assert.Equal(t, models.PollStatusActive, poll.Status)
	assert.Equal(t, "message-1", poll.ActiveMessageID)
	assert.Equal(t, f.now, poll.NextSendTime)
}

func TestPost_MessageFailureLeavesPollScheduled(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()

	f.pollRepository.EXPECT().GetOne(poll.ID).Return(poll, nil)
	f.transport.EXPECT().PostMessage("channel-2", "@everyone", gomock.Any()).Return("", errors.New("discord error"))

	f.manager.Post(poll.ID)

	assert.Equal(t, models.PollStatusScheduled, poll.Status)
}

func TestPost_DeletedPollIsSkipped(t *testing.T) {
	f := newLifecycleFixture(t)

	f.pollRepository.EXPECT().GetOne("gone").Return(nil, nil)

	f.manager.Post("gone")
}

func TestResolve_WinnerAnnouncesResultsAndCreatesEvent(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()
	poll.Status = models.PollStatusActive
	poll.ActiveMessageID = "message-1"

	eventStart := f.now.Add(48 * time.Hour)

	f.pollRepository.EXPECT().GetOne(poll.ID).Return(poll, nil)
	f.transport.EXPECT().FetchReactionCounts("channel-2", "message-1").
		Return(map[string]int{"1⃣": 6, "2⃣": 3}, nil)
	f.transport.EXPECT().AnnounceEmbed("channel-2", "@everyone", gomock.Any()).Return(nil)
	f.dateTimeParser.EXPECT().Parse("Friday").Return(eventStart, true)
	f.eventCreator.EXPECT().
		CreateEvent("guild-1", poll.Question, gomock.Any(), eventStart, eventStart.Add(3*time.Hour)).
		Return(nil)
	f.transport.EXPECT().Announce("channel-2", gomock.Any()).Return(nil)
	f.pollRepository.EXPECT().Update(poll).Return(poll, nil)

	f.manager.Resolve(poll.ID)

	assert.Equal(t, models.PollStatusCompleted, poll.Status)
	assert.Empty(t, poll.ActiveMessageID)
}

func TestResolve_UnparseableWinnerSkipsEvent(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()
	poll.Status = models.PollStatusActive
	poll.ActiveMessageID = "message-1"

	f.pollRepository.EXPECT().GetOne(poll.ID).Return(poll, nil)
	f.transport.EXPECT().FetchReactionCounts("channel-2", "message-1").
		Return(map[string]int{"1⃣": 6, "2⃣": 3}, nil)
	f.transport.EXPECT().AnnounceEmbed("channel-2", "@everyone", gomock.Any()).Return(nil)
	f.dateTimeParser.EXPECT().Parse("Friday").Return(time.Time{}, false)
	f.transport.EXPECT().Announce("channel-2", gomock.Any()).Return(nil)
	f.pollRepository.EXPECT().Update(poll).Return(poll, nil)

	f.manager.Resolve(poll.ID)

	assert.Equal(t, models.PollStatusCompleted, poll.Status)
	assert.Empty(t, poll.ActiveMessageID)
}

func TestResolve_TieSpawnsTiebreakerPoll(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()
	poll.Status = models.PollStatusActive
	poll.ActiveMessageID = "message-1"

	var tiebreaker *models.Poll

	f.pollRepository.EXPECT().GetOne(poll.ID).Return(poll, nil)
	f.transport.EXPECT().FetchReactionCounts("channel-2", "message-1").
		Return(map[string]int{"1⃣": 6, "2⃣": 6}, nil)
	f.transport.EXPECT().Announce("channel-2", gomock.Any()).Return(nil)
	f.pollRepository.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(created *models.Poll) (*models.Poll, error) {
			tiebreaker = created
			return created, nil
		})

	// the tiebreaker is posted immediately
	f.pollRepository.EXPECT().GetOne(gomock.Any()).
		DoAndReturn(func(pollID string) (*models.Poll, error) {
			assert.Equal(t, tiebreaker.ID, pollID)
			return tiebreaker, nil
		})
	f.transport.EXPECT().PostMessage("channel-2", "@everyone", gomock.Any()).Return("message-2", nil)
	f.transport.EXPECT().AddReaction("channel-2", "message-2", "1⃣").Return(nil)
	f.transport.EXPECT().AddReaction("channel-2", "message-2", "2⃣").Return(nil)
	f.pollRepository.EXPECT().Update(gomock.Any()).
		DoAndReturn(func(updated *models.Poll) (*models.Poll, error) {
			return updated, nil
		})
	f.scheduler.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(jobKey string, rule scheduler.FiringRule, callback func()) error {
			assert.Equal(t, "poll_resolve_"+tiebreaker.ID, jobKey)
			assert.Equal(t, f.now.Add(30*time.Minute), rule.At)
			return nil
		})

	f.manager.Resolve(poll.ID)

	assert.True(t, tiebreaker.IsTiebreaker)
	assert.Equal(t, poll.ID, tiebreaker.ParentPollID)
	assert.Equal(t, 0, tiebreaker.VoteThreshold)
	assert.False(t, tiebreaker.Recurring)
	assert.Equal(t, 0.5, tiebreaker.PollDurationHours)
	assert.Len(t, tiebreaker.Options, 2)
	assert.Equal(t, "1⃣", tiebreaker.Options[0].Emoji)
	assert.Equal(t, "2⃣", tiebreaker.Options[1].Emoji)
	// the parent stays untouched until the tiebreaker resolves
	assert.Equal(t, models.PollStatusActive, poll.Status)
}

func TestResolve_TiebreakerTieAnnouncesUnresolvedAndReschedulesParent(t *testing.T) {
	f := newLifecycleFixture(t)

	parent := f.newPoll()
	parent.Recurring = true
	parent.ScheduleCron = &models.CronSpec{DayOfWeek: "mon", Hour: 9, Minute: 0, Timezone: "US/Eastern"}
	parent.Status = models.PollStatusActive

	tiebreaker := f.newPoll()
	tiebreaker.ID = "66666666-7777-8888-9999-000000000000"
	tiebreaker.Status = models.PollStatusActive
	tiebreaker.ActiveMessageID = "message-2"
	tiebreaker.IsTiebreaker = true
	tiebreaker.ParentPollID = parent.ID
	tiebreaker.VoteThreshold = 0

	f.pollRepository.EXPECT().GetOne(tiebreaker.ID).Return(tiebreaker, nil)
	f.transport.EXPECT().FetchReactionCounts("channel-2", "message-2").
		Return(map[string]int{"1⃣": 4, "2⃣": 4}, nil)
	f.transport.EXPECT().AnnounceEmbed("channel-2", "@everyone", gomock.Any()).Return(nil)

	f.pollRepository.EXPECT().GetOne(parent.ID).Return(parent, nil)
	f.pollRepository.EXPECT().Update(parent).Return(parent, nil)
	f.scheduler.EXPECT().Schedule("poll_send_"+parent.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(jobKey string, rule scheduler.FiringRule, callback func()) error {
			assert.NotNil(t, rule.Cron)
			return nil
		})
	f.pollRepository.EXPECT().Update(tiebreaker).Return(tiebreaker, nil)

	f.manager.Resolve(tiebreaker.ID)

	assert.Equal(t, models.PollStatusScheduled, parent.Status)
	assert.Equal(t, models.PollStatusCompleted, tiebreaker.Status)
	assert.Empty(t, tiebreaker.ActiveMessageID)
}

func TestResolve_MissingMessageLeavesPollActive(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()
	poll.Status = models.PollStatusActive
	poll.ActiveMessageID = "message-1"

	f.pollRepository.EXPECT().GetOne(poll.ID).Return(poll, nil)
	f.transport.EXPECT().FetchReactionCounts("channel-2", "message-1").
		Return(nil, errors.New("unknown message"))
	f.transport.EXPECT().Announce("channel-2", "Could not find poll message for **When can everyone play D&D this week?**. Poll resolution failed.").Return(nil)

	f.manager.Resolve(poll.ID)

	assert.Equal(t, models.PollStatusActive, poll.Status)
}

func TestResolve_NoQualifiersAnnouncedAndCompleted(t *testing.T) {
	f := newLifecycleFixture(t)
	poll := f.newPoll()
	poll.Status = models.PollStatusActive
	poll.ActiveMessageID = "message-1"
	poll.VoteThreshold = 5

	f.pollRepository.EXPECT().GetOne(poll.ID).Return(poll, nil)
	f.transport.EXPECT().FetchReactionCounts("channel-2", "message-1").
		Return(map[string]int{"1⃣": 2, "2⃣": 2}, nil)
	f.transport.EXPECT().AnnounceEmbed("channel-2", "@everyone", gomock.Any()).Return(nil)
	f.pollRepository.EXPECT().Update(poll).Return(poll, nil)

	f.manager.Resolve(poll.ID)

	assert.Equal(t, models.PollStatusCompleted, poll.Status)
}

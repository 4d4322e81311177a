package scheduler

import (
	"testing"
	"time"

	"poll_scheduling_system/internal/db/models"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// 2025-06-02 is a Monday.
var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func newTestScheduler() *triggerScheduler {
	return &triggerScheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		clock:     fixedClock{now: testNow},
		logger:    zap.NewNop().Sugar(),
	}
}

func TestNextRun_FutureInstantPassesThrough(t *testing.T) {
	s := newTestScheduler()
	at := testNow.Add(time.Hour)

	runAt, err := s.nextRun(FiringRule{At: at})

	assert.NoError(t, err)
	assert.Equal(t, at, runAt)
}

func TestNextRun_PastInstantGetsGraceDelay(t *testing.T) {
	s := newTestScheduler()

	runAt, err := s.nextRun(FiringRule{At: testNow.Add(-time.Hour)})

	assert.NoError(t, err)
	assert.Equal(t, testNow.Add(pastFireGraceDelay), runAt)
}

func TestNextRun_ExactlyNowGetsGraceDelay(t *testing.T) {
	s := newTestScheduler()

	runAt, err := s.nextRun(FiringRule{At: testNow})

	assert.NoError(t, err)
	assert.Equal(t, testNow.Add(pastFireGraceDelay), runAt)
}

func TestNextRun_CronComputesNextOccurrenceInRuleTimezone(t *testing.T) {
	s := newTestScheduler()
	spec := &models.CronSpec{DayOfWeek: "mon", Hour: 9, Minute: 30, Timezone: "US/Eastern"}

	runAt, err := s.nextRun(FiringRule{Cron: spec})
	assert.NoError(t, err)

	location, err := time.LoadLocation("US/Eastern")
	assert.NoError(t, err)

	local := runAt.In(location)
	assert.Equal(t, time.Monday, local.Weekday())
	assert.Equal(t, 9, local.Hour())
	assert.Equal(t, 30, local.Minute())
	assert.True(t, runAt.After(testNow))
}

func TestNextRun_CronWithoutDayRunsDaily(t *testing.T) {
	s := newTestScheduler()
	spec := &models.CronSpec{Hour: 23, Minute: 0, Timezone: "UTC"}

	runAt, err := s.nextRun(FiringRule{Cron: spec})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC), runAt.UTC())
}

func TestNextRun_CronWithBadTimezoneFails(t *testing.T) {
	s := newTestScheduler()
	spec := &models.CronSpec{Hour: 9, Minute: 0, Timezone: "Not/AZone"}

	_, err := s.nextRun(FiringRule{Cron: spec})

	assert.Error(t, err)
}

func TestSchedule_ReplacesExistingJobWithSameKey(t *testing.T) {
	s := newTestScheduler()

	err := s.Schedule("job-1", FiringRule{At: testNow.Add(time.Hour)}, func() {})
	assert.NoError(t, err)
	err = s.Schedule("job-1", FiringRule{At: testNow.Add(2 * time.Hour)}, func() {})
	assert.NoError(t, err)

	assert.Equal(t, 1, s.scheduler.Len())
}

func TestSchedule_DistinctKeysCoexist(t *testing.T) {
	s := newTestScheduler()

	assert.NoError(t, s.Schedule("job-1", FiringRule{At: testNow.Add(time.Hour)}, func() {}))
	assert.NoError(t, s.Schedule("job-2", FiringRule{At: testNow.Add(time.Hour)}, func() {}))

	assert.Equal(t, 2, s.scheduler.Len())
}

func TestCancel_RemovesJob(t *testing.T) {
	s := newTestScheduler()

	assert.NoError(t, s.Schedule("job-1", FiringRule{At: testNow.Add(time.Hour)}, func() {}))
	s.Cancel("job-1")

	assert.Equal(t, 0, s.scheduler.Len())
}

func TestCancel_UnknownKeyIsNoOp(t *testing.T) {
	s := newTestScheduler()

	s.Cancel("never-registered")

	assert.Equal(t, 0, s.scheduler.Len())
}

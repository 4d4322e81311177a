package scheduler

import (
	"fmt"
	"sync"
	"time"

	"poll_scheduling_system/internal/db/models"

	"github.com/go-co-op/gocron"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// pastFireGraceDelay keeps jobs whose computed instant is already in the past
// from being dropped: registrations that race the run loop's own start are
// re-aimed a few seconds out instead of firing inline.
const pastFireGraceDelay = 5 * time.Second

// FiringRule is either a single instant (At) or a periodic cron-like rule.
// Cron takes precedence when both are set.
type FiringRule struct {
	At   time.Time
	Cron *models.CronSpec
}

// TriggerScheduler registers exactly one pending invocation per job key.
// Re-registering a key replaces the previous registration; cancelling an
// unknown key is a no-op. No timer state survives a restart.
type TriggerScheduler interface {
	Schedule(jobKey string, rule FiringRule, callback func()) error
	Cancel(jobKey string)
	Start()
	Stop()
}

type triggerScheduler struct {
	mu        sync.Mutex
	scheduler *gocron.Scheduler
	clock     Clock
	logger    *zap.SugaredLogger
}

func NewTriggerScheduler(clock Clock, logger *zap.SugaredLogger) TriggerScheduler {
	return &triggerScheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		clock:     clock,
		logger:    logger,
	}
}

func (s *triggerScheduler) Schedule(jobKey string, rule FiringRule, callback func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.scheduler.RemoveByTag(jobKey)

	runAt, err := s.nextRun(rule)
	if err != nil {
		return fmt.Errorf("failed to compute run time for job %s: %w", jobKey, err)
	}

	fn := callback
	if rule.Cron != nil {
		// Periodic rules run as a chain of one-shots so every occurrence is
		// recomputed in the rule's own timezone.
		fn = func() {
			callback()
			if err := s.Schedule(jobKey, rule, callback); err != nil {
				s.logger.Errorw("failed to re-register periodic job", "job_key", jobKey, "error", err)
			}
		}
	}

	_, err = s.scheduler.Every(1).Day().StartAt(runAt).LimitRunsTo(1).Tag(jobKey).Do(fn)
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", jobKey, err)
	}

	s.logger.Infow("job registered", "job_key", jobKey, "run_at", runAt, "periodic", rule.Cron != nil)
	return nil
}

func (s *triggerScheduler) Cancel(jobKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.scheduler.RemoveByTag(jobKey); err == nil {
		s.logger.Infow("job cancelled", "job_key", jobKey)
	}
}

func (s *triggerScheduler) Start() {
	s.scheduler.StartAsync()
}

func (s *triggerScheduler) Stop() {
	s.scheduler.Stop()
}

func (s *triggerScheduler) nextRun(rule FiringRule) (time.Time, error) {
	now := s.clock.Now()

	if rule.Cron != nil {
		schedule, err := cronSchedule(rule.Cron)
		if err != nil {
			return time.Time{}, err
		}
		return schedule.Next(now), nil
	}

	if !rule.At.After(now) {
		return now.Add(pastFireGraceDelay), nil
	}
	return rule.At, nil
}

func cronSchedule(spec *models.CronSpec) (cron.Schedule, error) {
	dayOfWeek := spec.DayOfWeek
	if dayOfWeek == "" {
		dayOfWeek = "*"
	}

	timezone := spec.Timezone
	if timezone == "" {
		timezone = models.DefaultTimezone
	}

	expression := fmt.Sprintf("CRON_TZ=%s %d %d * * %s", timezone, spec.Minute, spec.Hour, dayOfWeek)
	return cron.ParseStandard(expression)
}

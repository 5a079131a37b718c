package scheduler

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// iterationTimeout bounds a single poll so a stuck request cannot hold the
// schedule forever.
const iterationTimeout = 1 * time.Minute

// PollScheduler triggers the poll service on a fixed interval. Iterations
// never overlap: if one is still running when the next tick fires, the
// tick is skipped.
type PollScheduler struct {
	cronEngine *cron.Cron
	pollSvc    app.PollService
	logger     *logrus.Logger
	interval   time.Duration
}

func NewPollScheduler(pollSvc app.PollService, logger *logrus.Logger, interval time.Duration) *PollScheduler {
	return &PollScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local),
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
		),
		pollSvc:  pollSvc,
		logger:   logger,
		interval: interval,
	}
}

// Start registers the poll job and runs it once immediately, so the first
// check does not wait a full interval.
func (s *PollScheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cronEngine.AddFunc(spec, s.runIteration)
	if err != nil {
		return fmt.Errorf("could not add poll job (%s): %w", spec, err)
	}

	s.runIteration()
	s.cronEngine.Start()
	s.logger.Infof("Poll scheduler started, interval %s", s.interval)
	return nil
}

func (s *PollScheduler) runIteration() {
	ctx, cancel := context.WithTimeout(context.Background(), iterationTimeout)
	defer cancel()
	s.pollSvc.Poll(ctx)
}

// Stop halts the schedule and waits for a running iteration to finish.
func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("Poll scheduler gracefully stopped.")
}

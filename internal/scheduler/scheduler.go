package scheduler

import (
	"time"

	"github.com/mentorlink-dev/mentorlink/internal/store"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Scheduler runs periodic maintenance jobs. The only job today purges
// accounts that never verified their email within the configured window.
type Scheduler struct {
	cron       *cron.Cron
	db         *gorm.DB
	logger     *logrus.Logger
	purgeAfter time.Duration
}

// New initializes a new Scheduler instance.
func New(db *gorm.DB, logger *logrus.Logger, purgeAfter time.Duration) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		db:         db,
		logger:     logger,
		purgeAfter: purgeAfter,
	}
}

// Start registers the purge job on the given cron schedule and begins running.
func (s *Scheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.purgeUnverified); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Infof("Scheduler started, purging unverified accounts older than %s on %q", s.purgeAfter, schedule)
	return nil
}

// Stop shuts down the cron runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) purgeUnverified() {
	users := store.NewUserStore(s.db)

	cutoff := time.Now().Add(-s.purgeAfter)

	stale, err := users.UnverifiedBefore(cutoff)
	if err != nil {
		s.logger.Errorf("Failed to list unverified accounts: %v", err)
		return
	}

	purged := 0

	for i := range stale {
		if err := users.Delete(&stale[i]); err != nil {
			s.logger.Errorf("Failed to purge account %d: %v", stale[i].ID, err)
			continue
		}
		purged++
	}

	if purged > 0 {
		s.logger.Infof("Purged %d unverified accounts registered before %s", purged, cutoff.Format(time.RFC3339))
	}
}

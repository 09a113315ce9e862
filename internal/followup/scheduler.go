// Package followup periodically announces contacts that are due for a follow-up.
package followup

import (
	"context"
	"fmt"
	"time"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/events"

	"github.com/robfig/cron"
	"go.uber.org/zap"
)

// OverdueSource lists contacts whose follow-up is due.
type OverdueSource interface {
	OverdueContacts(ctx context.Context, now time.Time) ([]entities.Contact, error)
}

// Scheduler runs the follow-up scan on a cron schedule.
type Scheduler struct {
	log       *zap.SugaredLogger
	source    OverdueSource
	publisher events.Publisher
	timeout   time.Duration
	now       func() time.Time
	cron      *cron.Cron
}

// New creates a scheduler. timeout bounds a single scan.
func New(log *zap.SugaredLogger, source OverdueSource, publisher events.Publisher, timeout time.Duration) *Scheduler {
	return &Scheduler{
		log:       log.Named("followup"),
		source:    source,
		publisher: publisher,
		timeout:   timeout,
		now:       time.Now,
		cron:      cron.New(),
	}
}

// Start schedules the scan with a cron expression such as "@every 1h".
func (s *Scheduler) Start(schedule string) error {
	if err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if _, err := s.RunOnce(ctx); err != nil {
			s.log.Errorw("follow-up scan failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule follow-up scan: %w", err)
	}
	s.cron.Start()
	s.log.Infow("follow-up scheduler started", "schedule", schedule)
	return nil
}

// Stop halts future runs.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce publishes one event per overdue contact and returns how many were published.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	contacts, err := s.source.OverdueContacts(ctx, s.now())
	if err != nil {
		return 0, err
	}

	published := 0
	for _, c := range contacts {
		ev := events.FollowUpEvent{
			ContactID:       c.ID,
			Name:            c.Name,
			AssignedTo:      c.AssignedTo,
			LastContactedAt: c.LastContactedAt,
		}
		if err := s.publisher.Publish(ctx, events.ContactFollowUpDue, ev); err != nil {
			s.log.Warnw("failed to publish follow-up", "error", err, "contact_id", c.ID)
			continue
		}
		published++
	}
	s.log.Infow("follow-up scan done", "overdue", len(contacts), "published", published)
	return published, nil
}

package domain

import (
	"context"

	"pulse-network-organizer/internal/entities"

	"golang.org/x/sync/errgroup"
)

// Dashboard loads the headline counters concurrently.
func (u *Usecase) Dashboard(ctx context.Context) (entities.Dashboard, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var d entities.Dashboard
	now := u.now().UTC()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Contacts, err = u.repo.CountContacts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.OverdueFollowUps, err = u.repo.CountOverdueContacts(gctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		d.OpenOpportunities, err = u.repo.CountOpenOpportunities(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.ReferralsByStatus, err = u.repo.CountReferralsByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.GoalsAchieved, d.GoalsOpen, err = u.repo.CountGoals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Errorw("failed to load dashboard", "error", err)
		return entities.Dashboard{}, err
	}
	return d, nil
}

package domain

import (
	"context"
	"fmt"
	"strings"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/events"
)

const (
	defaultTopGivers = 10
	maxTopGivers     = 100
)

// CreateReferral records a pending referral from giver to receiver.
func (u *Usecase) CreateReferral(ctx context.Context, r entities.Referral) (*entities.Referral, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if r.GiverID == "" || r.ReceiverID == "" {
		u.log.Errorw("failed to create referral: missing contact ids")
		return nil, fmt.Errorf("%w: giverId and receiverId are required", entities.ErrInvalidArgument)
	}
	if r.GiverID == r.ReceiverID {
		return nil, fmt.Errorf("%w: a contact cannot refer to itself", entities.ErrInvalidArgument)
	}
	if err := checkID("giverId", r.GiverID); err != nil {
		return nil, err
	}
	if err := checkID("receiverId", r.ReceiverID); err != nil {
		return nil, err
	}
	if r.Value != nil && *r.Value < 0 {
		return nil, fmt.Errorf("%w: value must not be negative", entities.ErrInvalidArgument)
	}
	r.Description = strings.TrimSpace(r.Description)
	r.Status = entities.ReferralPending
	if r.ID == "" {
		r.ID = u.newID()
	}

	res, err := u.repo.CreateReferral(ctx, r)
	if err != nil {
		return nil, err
	}
	u.publish(ctx, events.ReferralCreated, referralEvent(res))
	return res, nil
}

// UpdateReferralStatus moves a referral along its lifecycle.
func (u *Usecase) UpdateReferralStatus(ctx context.Context, id string, to entities.ReferralStatus) (*entities.Referral, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: referral id is required", entities.ErrInvalidArgument)
	}
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, to)
	}

	cur, err := u.repo.GetReferral(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cur.Status.CanTransitionTo(to) {
		u.log.Warnw("rejected referral transition", "referral_id", id, "from", cur.Status, "to", to)
		return nil, fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, cur.Status, to)
	}

	res, err := u.repo.UpdateReferralStatus(ctx, id, cur.Status, to)
	if err != nil {
		return nil, err
	}
	u.publish(ctx, events.ReferralStatusChanged, referralEvent(res))
	return res, nil
}

// Referrals lists referrals matching filter.
func (u *Usecase) Referrals(ctx context.Context, filter entities.ReferralFilter) ([]entities.Referral, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *filter.Status)
	}
	return u.repo.ListReferrals(ctx, filter)
}

// ReferralStats returns counts by status and the top givers with their balance.
func (u *Usecase) ReferralStats(ctx context.Context, limit int) (entities.ReferralStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	stats, err := u.repo.ReferralStats(ctx, clamp(limit, defaultTopGivers, maxTopGivers))
	if err != nil {
		return entities.ReferralStats{}, err
	}
	for i := range stats.TopGivers {
		stats.TopGivers[i].Balance = stats.TopGivers[i].Given - stats.TopGivers[i].Received
	}
	return stats, nil
}

func referralEvent(r *entities.Referral) events.ReferralEvent {
	return events.ReferralEvent{
		ReferralID: r.ID,
		GiverID:    r.GiverID,
		ReceiverID: r.ReceiverID,
		Status:     string(r.Status),
		At:         r.UpdatedAt,
	}
}

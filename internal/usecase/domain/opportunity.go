package domain

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/events"
	"pulse-network-organizer/internal/textsim"
)

// CreateOpportunity stores a new open opportunity.
// Unless force is set, a likely duplicate fails the call with *entities.DuplicateError.
func (u *Usecase) CreateOpportunity(ctx context.Context, o entities.Opportunity, force bool) (*entities.Opportunity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := prepareOpportunity(&o); err != nil {
		u.log.Errorw("failed to create opportunity", "error", err)
		return nil, err
	}

	if !force {
		candidates, err := u.duplicates(ctx, o)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			u.log.Infow("duplicate opportunity rejected", "title", o.Title, "candidates", len(candidates))
			return nil, &entities.DuplicateError{Candidates: candidates}
		}
	}

	if o.ID == "" {
		o.ID = u.newID()
	}
	o.Status = entities.OpportunityOpen

	res, err := u.repo.CreateOpportunity(ctx, o)
	if err != nil {
		return nil, err
	}
	u.publish(ctx, events.OpportunityCreated, events.OpportunityEvent{
		OpportunityID: res.ID,
		ContactID:     res.ContactID,
		Title:         res.Title,
		ScheduledAt:   res.ScheduledAt,
	})
	return res, nil
}

// CheckDuplicates returns existing opportunities resembling o without creating anything.
func (u *Usecase) CheckDuplicates(ctx context.Context, o entities.Opportunity) ([]entities.DuplicateCandidate, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := prepareOpportunity(&o); err != nil {
		return nil, err
	}
	return u.duplicates(ctx, o)
}

// Opportunities lists opportunities matching filter.
func (u *Usecase) Opportunities(ctx context.Context, filter entities.OpportunityFilter) ([]entities.Opportunity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *filter.Status)
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: to must not be before from", entities.ErrInvalidArgument)
	}
	return u.repo.ListOpportunities(ctx, filter)
}

// SetOpportunityStatus closes an open opportunity as won, lost or cancelled.
func (u *Usecase) SetOpportunityStatus(ctx context.Context, id string, to entities.OpportunityStatus) (*entities.Opportunity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: opportunity id is required", entities.ErrInvalidArgument)
	}
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, to)
	}

	cur, err := u.repo.GetOpportunity(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.Status != entities.OpportunityOpen || to == entities.OpportunityOpen {
		return nil, fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, cur.Status, to)
	}
	return u.repo.SetOpportunityStatus(ctx, id, cur.Status, to)
}

func (u *Usecase) duplicates(ctx context.Context, o entities.Opportunity) ([]entities.DuplicateCandidate, error) {
	near, err := u.repo.ListOpportunitiesNear(ctx, o.ContactID, o.ScheduledAt, u.settings.DuplicateWindow)
	if err != nil {
		return nil, err
	}

	res := make([]entities.DuplicateCandidate, 0)
	for _, existing := range near {
		if existing.Status == entities.OpportunityCancelled || existing.ID == o.ID {
			continue
		}
		sim := textsim.Similarity(o.Title, existing.Title)
		if sim >= u.settings.DuplicateThreshold {
			res = append(res, entities.DuplicateCandidate{Opportunity: existing, Similarity: sim})
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Similarity != res[j].Similarity {
			return res[i].Similarity > res[j].Similarity
		}
		return res[i].Opportunity.ScheduledAt.Before(res[j].Opportunity.ScheduledAt)
	})
	return res, nil
}

func prepareOpportunity(o *entities.Opportunity) error {
	o.Title = strings.TrimSpace(o.Title)
	if o.Title == "" {
		return fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if o.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", entities.ErrInvalidArgument)
	}
	contactID, err := optionalID("contactId", o.ContactID)
	if err != nil {
		return err
	}
	o.ContactID = contactID
	createdBy, err := optionalID("createdBy", o.CreatedBy)
	if err != nil {
		return err
	}
	o.CreatedBy = createdBy
	if strings.TrimSpace(o.Type) == "" {
		o.Type = "meeting"
	}
	return nil
}

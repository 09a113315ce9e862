package domain

import (
	"context"
	"errors"
	"fmt"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/matching"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMatchLimit = 5
	maxMatchLimit     = 20
)

// SuggestMatches ranks other contacts who would be worth introducing to contactID.
func (u *Usecase) SuggestMatches(ctx context.Context, contactID string, limit int) ([]entities.MatchSuggestion, error) {
	if contactID == "" {
		return nil, fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}

	ctx, span := u.tracer.Start(ctx, "matching.suggest")
	defer span.End()
	span.SetAttributes(attribute.String("matching.backend", u.matcher.Name()))

	req, err := u.matchRequest(ctx, contactID, clamp(limit, defaultMatchLimit, maxMatchLimit))
	if err != nil {
		return nil, err
	}
	if len(req.Candidates) == 0 {
		return []entities.MatchSuggestion{}, nil
	}

	// The matcher carries its own deadline.
	res, err := u.matcher.Match(ctx, req)
	if err != nil {
		span.RecordError(err)
		u.log.Errorw("matcher failed", "error", err, "contact_id", contactID, "backend", u.matcher.Name())
		if errors.Is(err, entities.ErrMatcherUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", entities.ErrMatcherUnavailable, err)
	}
	return res, nil
}

func (u *Usecase) matchRequest(ctx context.Context, contactID string, limit int) (matching.Request, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var (
		contact  *entities.Contact
		goals    []entities.Goal
		contacts []entities.Contact
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contact, err = u.repo.GetContact(gctx, contactID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = u.repo.ListGoals(gctx, contactID)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = u.repo.ListAllContacts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return matching.Request{}, err
	}

	candidates := make([]entities.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.ID != contactID {
			candidates = append(candidates, c)
		}
	}
	return matching.Request{Contact: *contact, Goals: goals, Candidates: candidates, Limit: limit}, nil
}

package domain

import (
	"context"
	"fmt"
	"strings"

	"pulse-network-organizer/internal/entities"
)

// CreateGoal stores a goal for a contact.
func (u *Usecase) CreateGoal(ctx context.Context, g entities.Goal) (*entities.Goal, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	g.Title = strings.TrimSpace(g.Title)
	if g.ContactID == "" {
		return nil, fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	if g.Title == "" {
		u.log.Errorw("failed to create goal: missing title", "contact_id", g.ContactID)
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if g.ID == "" {
		g.ID = u.newID()
	}
	g.Achieved = false
	return u.repo.CreateGoal(ctx, g)
}

// Goals lists the goals of a contact.
func (u *Usecase) Goals(ctx context.Context, contactID string) ([]entities.Goal, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if contactID == "" {
		return nil, fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.GetContact(ctx, contactID); err != nil {
		return nil, err
	}
	return u.repo.ListGoals(ctx, contactID)
}

// SetGoalAchieved marks a goal achieved or open again.
func (u *Usecase) SetGoalAchieved(ctx context.Context, id string, achieved bool) (*entities.Goal, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: goal id is required", entities.ErrInvalidArgument)
	}
	return u.repo.SetGoalAchieved(ctx, id, achieved)
}

// DeleteGoal removes a goal.
func (u *Usecase) DeleteGoal(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: goal id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteGoal(ctx, id)
}

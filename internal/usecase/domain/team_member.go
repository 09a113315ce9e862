// Package domain contains application Usecases orchestrating domain logic.
package domain

import (
	"context"
	"fmt"
	"strings"

	"pulse-network-organizer/internal/entities"
)

// CreateTeamMember registers a new active team member.
func (u *Usecase) CreateTeamMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	if m.Name == "" {
		u.log.Errorw("failed to create team member: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if m.Email == "" {
		u.log.Errorw("failed to create team member: missing email")
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if m.ID == "" {
		m.ID = u.newID()
	}
	m.IsActive = true
	return u.repo.CreateTeamMember(ctx, m)
}

// TeamMembers lists team members, optionally only active ones.
func (u *Usecase) TeamMembers(ctx context.Context, onlyActive bool) ([]entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeamMembers(ctx, onlyActive)
}

// SetTeamMemberActive toggles the active flag of a team member.
func (u *Usecase) SetTeamMemberActive(ctx context.Context, id string, isActive bool) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		u.log.Errorw("failed to set team member active: missing id")
		return nil, fmt.Errorf("%w: team member id is required", entities.ErrInvalidArgument)
	}
	return u.repo.SetTeamMemberActive(ctx, id, isActive)
}

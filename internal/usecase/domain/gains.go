package domain

import (
	"context"
	"fmt"

	"pulse-network-organizer/internal/entities"
)

// CreateGainsMeeting stores a GAINS one-to-one and logs it as an interaction.
func (u *Usecase) CreateGainsMeeting(ctx context.Context, m entities.GainsMeeting) (*entities.GainsMeeting, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if m.ContactID == "" {
		return nil, fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	teamMemberID, err := optionalID("teamMemberId", m.TeamMemberID)
	if err != nil {
		return nil, err
	}
	m.TeamMemberID = teamMemberID
	if m.Empty() {
		u.log.Errorw("failed to create gains meeting: all sections empty", "contact_id", m.ContactID)
		return nil, fmt.Errorf("%w: at least one GAINS section is required", entities.ErrInvalidArgument)
	}
	if m.MeetingDate.IsZero() {
		m.MeetingDate = u.now().UTC()
	}
	if m.ID == "" {
		m.ID = u.newID()
	}

	return u.repo.CreateGainsMeeting(ctx, m)
}

// GainsMeetings lists the GAINS meetings of a contact, newest first.
func (u *Usecase) GainsMeetings(ctx context.Context, contactID string) ([]entities.GainsMeeting, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if contactID == "" {
		return nil, fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.GetContact(ctx, contactID); err != nil {
		return nil, err
	}
	return u.repo.ListGainsMeetings(ctx, contactID)
}

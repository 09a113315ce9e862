package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pulse-network-organizer/internal/entities"
)

const (
	defaultContactLimit     = 50
	maxContactLimit         = 500
	defaultInteractionLimit = 20
	maxInteractionLimit     = 200
	defaultChannel          = "other"
)

// CreateContact validates and stores a new contact.
func (u *Usecase) CreateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.prepareContact(&c); err != nil {
		u.log.Errorw("failed to create contact", "error", err)
		return nil, err
	}
	if c.ID == "" {
		c.ID = u.newID()
	}

	res, err := u.repo.CreateContact(ctx, c)
	if err != nil {
		return nil, err
	}
	u.invalidateGraph(ctx)
	return res, nil
}

// Contact returns a contact by id.
func (u *Usecase) Contact(ctx context.Context, id string) (*entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetContact(ctx, id)
}

// UpdateContact replaces the editable fields of an existing contact.
func (u *Usecase) UpdateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if c.ID == "" {
		return nil, fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	if err := u.prepareContact(&c); err != nil {
		u.log.Errorw("failed to update contact", "error", err, "contact_id", c.ID)
		return nil, err
	}

	res, err := u.repo.UpdateContact(ctx, c)
	if err != nil {
		return nil, err
	}
	u.invalidateGraph(ctx)
	return res, nil
}

// DeleteContact removes a contact with its goals, interactions and referrals.
func (u *Usecase) DeleteContact(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	if err := u.repo.DeleteContact(ctx, id); err != nil {
		return err
	}
	u.invalidateGraph(ctx)
	return nil
}

// Contacts lists contacts matching filter.
func (u *Usecase) Contacts(ctx context.Context, filter entities.ContactFilter) ([]entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", entities.ErrInvalidArgument)
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Tag = strings.TrimSpace(filter.Tag)
	filter.Affiliation = strings.TrimSpace(filter.Affiliation)
	filter.AssignedTo = strings.TrimSpace(filter.AssignedTo)
	if filter.AssignedTo != "" {
		if err := checkID("assignedTo", filter.AssignedTo); err != nil {
			return nil, err
		}
	}
	filter.Limit = clamp(filter.Limit, defaultContactLimit, maxContactLimit)
	return u.repo.ListContacts(ctx, filter)
}

// MarkContacted records an interaction and bumps the contact's last contact time.
func (u *Usecase) MarkContacted(ctx context.Context, in entities.Interaction) (*entities.Interaction, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.ContactID == "" {
		return nil, fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	teamMemberID, err := optionalID("teamMemberId", in.TeamMemberID)
	if err != nil {
		return nil, err
	}
	in.TeamMemberID = teamMemberID
	in.Channel = strings.TrimSpace(in.Channel)
	if in.Channel == "" {
		in.Channel = defaultChannel
	}
	if in.OccurredAt.IsZero() {
		in.OccurredAt = u.now().UTC()
	}
	if in.ID == "" {
		in.ID = u.newID()
	}
	return u.repo.RecordInteraction(ctx, in)
}

// Interactions returns the latest interactions of a contact.
func (u *Usecase) Interactions(ctx context.Context, contactID string, limit int) ([]entities.Interaction, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if contactID == "" {
		return nil, fmt.Errorf("%w: contact id is required", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.GetContact(ctx, contactID); err != nil {
		return nil, err
	}
	return u.repo.ListInteractions(ctx, contactID, clamp(limit, defaultInteractionLimit, maxInteractionLimit))
}

// OverdueContacts lists contacts whose follow-up is due at now.
// A zero now means the current time.
func (u *Usecase) OverdueContacts(ctx context.Context, now time.Time) ([]entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if now.IsZero() {
		now = u.now()
	}
	return u.repo.ListOverdueContacts(ctx, now.UTC())
}

func (u *Usecase) prepareContact(c *entities.Contact) error {
	c.Name = strings.Join(strings.Fields(c.Name), " ")
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if c.ContactFrequencyDays < 0 {
		return fmt.Errorf("%w: contact frequency must not be negative", entities.ErrInvalidArgument)
	}
	if c.ContactFrequencyDays == 0 {
		c.ContactFrequencyDays = u.settings.DefaultFrequencyDays
	}
	assignedTo, err := optionalID("assignedTo", c.AssignedTo)
	if err != nil {
		return err
	}
	c.AssignedTo = assignedTo
	c.Email = strings.TrimSpace(c.Email)
	c.Company = strings.TrimSpace(c.Company)
	c.Tags = cleanList(c.Tags)
	c.LinkedInConnections = cleanList(c.LinkedInConnections)
	return nil
}

func (u *Usecase) invalidateGraph(ctx context.Context) {
	if err := u.cache.Invalidate(ctx); err != nil {
		u.log.Warnw("failed to invalidate network cache", "error", err)
	}
}

// cleanList trims entries and drops blanks and case-insensitive repeats, keeping the first spelling.
func cleanList(items []string) []string {
	res := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		it = strings.Join(strings.Fields(it), " ")
		if it == "" {
			continue
		}
		key := strings.ToLower(it)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, it)
	}
	return res
}

func clamp(v, def, max int) int {
	if v <= 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}

// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"pulse-network-organizer/internal/entities"
	oapi "pulse-network-organizer/internal/oapi"
)

// FromOAPITeamMember builds an entities.TeamMember from transport DTO.
func FromOAPITeamMember(src oapi.TeamMemberCreate) entities.TeamMember {
	return entities.TeamMember{Name: src.Name, Email: src.Email, Role: src.Role}
}

// ToOAPITeamMember maps entities.TeamMember to transport model.
func ToOAPITeamMember(m entities.TeamMember) oapi.TeamMember {
	return oapi.TeamMember{
		Id:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

// ToOAPITeamMembers maps a slice of team members.
func ToOAPITeamMembers(src []entities.TeamMember) []oapi.TeamMember {
	res := make([]oapi.TeamMember, 0, len(src))
	for _, m := range src {
		res = append(res, ToOAPITeamMember(m))
	}
	return res
}

// FromOAPIContact builds an entities.Contact with the given id from transport DTO.
func FromOAPIContact(id string, src oapi.ContactInput) entities.Contact {
	return entities.Contact{
		ID:                   id,
		Name:                 src.Name,
		Email:                src.Email,
		Phone:                src.Phone,
		Company:              src.Company,
		Position:             src.Position,
		Location:             src.Location,
		Affiliation:          src.Affiliation,
		ReferralSource:       src.ReferralSource,
		Tags:                 src.Tags,
		LinkedInConnections:  src.LinkedinConnections,
		Notes:                src.Notes,
		AssignedTo:           src.AssignedTo,
		ContactFrequencyDays: src.ContactFrequencyDays,
	}
}

// ToOAPIContact maps entities.Contact to transport model, evaluating follow-up at now.
func ToOAPIContact(c entities.Contact, now time.Time) oapi.Contact {
	return oapi.Contact{
		Id:                   c.ID,
		Name:                 c.Name,
		Email:                c.Email,
		Phone:                c.Phone,
		Company:              c.Company,
		Position:             c.Position,
		Location:             c.Location,
		Affiliation:          c.Affiliation,
		ReferralSource:       c.ReferralSource,
		Tags:                 nonNil(c.Tags),
		LinkedinConnections:  nonNil(c.LinkedInConnections),
		Notes:                c.Notes,
		AssignedTo:           c.AssignedTo,
		ContactFrequencyDays: c.ContactFrequencyDays,
		LastContactedAt:      c.LastContactedAt,
		FollowUpDue:          c.FollowUpDue(now),
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

// ToOAPIContacts maps a slice of contacts.
func ToOAPIContacts(src []entities.Contact, now time.Time) []oapi.Contact {
	res := make([]oapi.Contact, 0, len(src))
	for _, c := range src {
		res = append(res, ToOAPIContact(c, now))
	}
	return res
}

// FromOAPIInteraction builds an entities.Interaction for a contact.
func FromOAPIInteraction(contactID string, src oapi.InteractionInput) entities.Interaction {
	in := entities.Interaction{
		ContactID:    contactID,
		TeamMemberID: src.TeamMemberId,
		Channel:      src.Channel,
		Note:         src.Note,
	}
	if src.OccurredAt != nil {
		in.OccurredAt = *src.OccurredAt
	}
	return in
}

// ToOAPIInteraction maps entities.Interaction to transport model.
func ToOAPIInteraction(in entities.Interaction) oapi.Interaction {
	return oapi.Interaction{
		Id:           in.ID,
		ContactId:    in.ContactID,
		TeamMemberId: in.TeamMemberID,
		Channel:      in.Channel,
		Note:         in.Note,
		OccurredAt:   in.OccurredAt,
	}
}

// ToOAPIInteractions maps a slice of interactions.
func ToOAPIInteractions(src []entities.Interaction) []oapi.Interaction {
	res := make([]oapi.Interaction, 0, len(src))
	for _, in := range src {
		res = append(res, ToOAPIInteraction(in))
	}
	return res
}

// FromOAPIGoal builds an entities.Goal for a contact.
func FromOAPIGoal(contactID string, src oapi.GoalInput) entities.Goal {
	return entities.Goal{
		ContactID:   contactID,
		Title:       src.Title,
		Description: src.Description,
		Category:    src.Category,
		TargetDate:  src.TargetDate,
	}
}

// ToOAPIGoal maps entities.Goal to transport model.
func ToOAPIGoal(g entities.Goal) oapi.Goal {
	return oapi.Goal{
		Id:          g.ID,
		ContactId:   g.ContactID,
		Title:       g.Title,
		Description: g.Description,
		Category:    g.Category,
		TargetDate:  g.TargetDate,
		Achieved:    g.Achieved,
		CreatedAt:   g.CreatedAt,
	}
}

// ToOAPIGoals maps a slice of goals.
func ToOAPIGoals(src []entities.Goal) []oapi.Goal {
	res := make([]oapi.Goal, 0, len(src))
	for _, g := range src {
		res = append(res, ToOAPIGoal(g))
	}
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

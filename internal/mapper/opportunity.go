package mapper

import (
	"pulse-network-organizer/internal/entities"
	oapi "pulse-network-organizer/internal/oapi"
)

// FromOAPIOpportunity builds an entities.Opportunity from transport DTO.
func FromOAPIOpportunity(src oapi.OpportunityInput) entities.Opportunity {
	return entities.Opportunity{
		ContactID:   src.ContactId,
		Title:       src.Title,
		Type:        src.Type,
		Description: src.Description,
		Location:    src.Location,
		ScheduledAt: src.ScheduledAt,
		CreatedBy:   src.CreatedBy,
	}
}

// ToOAPIOpportunity maps entities.Opportunity to transport model.
func ToOAPIOpportunity(o entities.Opportunity) oapi.Opportunity {
	return oapi.Opportunity{
		Id:          o.ID,
		ContactId:   o.ContactID,
		Title:       o.Title,
		Type:        o.Type,
		Description: o.Description,
		Location:    o.Location,
		ScheduledAt: o.ScheduledAt,
		Status:      string(o.Status),
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
	}
}

// ToOAPIOpportunities maps a slice of opportunities.
func ToOAPIOpportunities(src []entities.Opportunity) []oapi.Opportunity {
	res := make([]oapi.Opportunity, 0, len(src))
	for _, o := range src {
		res = append(res, ToOAPIOpportunity(o))
	}
	return res
}

// ToOAPIDuplicates maps duplicate candidates.
func ToOAPIDuplicates(src []entities.DuplicateCandidate) []oapi.DuplicateCandidate {
	res := make([]oapi.DuplicateCandidate, 0, len(src))
	for _, d := range src {
		res = append(res, oapi.DuplicateCandidate{
			Opportunity: ToOAPIOpportunity(d.Opportunity),
			Similarity:  d.Similarity,
		})
	}
	return res
}

// FromOAPIGainsMeeting builds an entities.GainsMeeting for a contact.
func FromOAPIGainsMeeting(contactID string, src oapi.GainsMeetingInput) entities.GainsMeeting {
	m := entities.GainsMeeting{
		ContactID:       contactID,
		TeamMemberID:    src.TeamMemberId,
		Goals:           src.Goals,
		Accomplishments: src.Accomplishments,
		Interests:       src.Interests,
		Networks:        src.Networks,
		Skills:          src.Skills,
		Notes:           src.Notes,
	}
	if src.MeetingDate != nil {
		m.MeetingDate = *src.MeetingDate
	}
	return m
}

// ToOAPIGainsMeetings maps a slice of GAINS meetings.
func ToOAPIGainsMeetings(src []entities.GainsMeeting) []oapi.GainsMeeting {
	res := make([]oapi.GainsMeeting, 0, len(src))
	for _, m := range src {
		res = append(res, ToOAPIGainsMeeting(m))
	}
	return res
}

// ToOAPIGainsMeeting maps entities.GainsMeeting to transport model.
func ToOAPIGainsMeeting(m entities.GainsMeeting) oapi.GainsMeeting {
	return oapi.GainsMeeting{
		Id:              m.ID,
		ContactId:       m.ContactID,
		TeamMemberId:    m.TeamMemberID,
		MeetingDate:     m.MeetingDate,
		Goals:           m.Goals,
		Accomplishments: m.Accomplishments,
		Interests:       m.Interests,
		Networks:        m.Networks,
		Skills:          m.Skills,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}

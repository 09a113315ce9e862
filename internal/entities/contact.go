// Package entities contains core business entities.
package entities

import "time"

// Contact is a professional contact tracked by the institute.
type Contact struct {
	ID                   string
	Name                 string
	Email                string
	Phone                string
	Company              string
	Position             string
	Location             string
	Affiliation          string
	ReferralSource       string
	Tags                 []string
	LinkedInConnections  []string
	Notes                string
	AssignedTo           *string
	ContactFrequencyDays int
	LastContactedAt      *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// FollowUpDue reports whether the contact should be reached out to at now.
func (c Contact) FollowUpDue(now time.Time) bool {
	if c.LastContactedAt == nil {
		return true
	}
	return now.Sub(*c.LastContactedAt) > time.Duration(c.ContactFrequencyDays)*24*time.Hour
}

// ContactFilter narrows contact listings.
type ContactFilter struct {
	Search      string
	Tag         string
	Affiliation string
	AssignedTo  string
	Limit       int
	Offset      int
}

// Interaction is a logged touchpoint with a contact.
type Interaction struct {
	ID           string
	ContactID    string
	TeamMemberID *string
	Channel      string
	Note         string
	OccurredAt   time.Time
}

// Goal is something a contact wants to achieve, captured to find referrals for them.
type Goal struct {
	ID          string
	ContactID   string
	Title       string
	Description string
	Category    string
	TargetDate  *time.Time
	Achieved    bool
	CreatedAt   time.Time
}

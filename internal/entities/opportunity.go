// Package entities contains core business entities.
package entities

import "time"

// OpportunityStatus enumerates opportunity lifecycle states.
type OpportunityStatus string

const (
	// OpportunityOpen is the initial state.
	OpportunityOpen OpportunityStatus = "open"
	// OpportunityWon marks a converted opportunity.
	OpportunityWon OpportunityStatus = "won"
	// OpportunityLost marks a missed opportunity.
	OpportunityLost OpportunityStatus = "lost"
	// OpportunityCancelled marks an opportunity that no longer takes place.
	OpportunityCancelled OpportunityStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s OpportunityStatus) Valid() bool {
	switch s {
	case OpportunityOpen, OpportunityWon, OpportunityLost, OpportunityCancelled:
		return true
	}
	return false
}

// Opportunity is a meeting, event or lead worth following up.
type Opportunity struct {
	ID          string
	ContactID   *string
	Title       string
	Type        string
	Description string
	Location    string
	ScheduledAt time.Time
	Status      OpportunityStatus
	CreatedBy   *string
	CreatedAt   time.Time
}

// OpportunityFilter narrows opportunity listings.
type OpportunityFilter struct {
	ContactID string
	Status    *OpportunityStatus
	From      *time.Time
	To        *time.Time
}

// DuplicateCandidate is an existing opportunity resembling a new one.
type DuplicateCandidate struct {
	Opportunity Opportunity
	Similarity  float64
}

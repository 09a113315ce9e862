// Package entities contains core business entities.
package entities

import "time"

// ReferralStatus enumerates referral lifecycle states.
type ReferralStatus string

const (
	// ReferralPending is the initial state.
	ReferralPending ReferralStatus = "pending"
	// ReferralAccepted marks a referral the receiver agreed to pursue.
	ReferralAccepted ReferralStatus = "accepted"
	// ReferralCompleted marks a referral that led to business.
	ReferralCompleted ReferralStatus = "completed"
	// ReferralDeclined marks a referral that was turned down.
	ReferralDeclined ReferralStatus = "declined"
)

var referralTransitions = map[ReferralStatus][]ReferralStatus{
	ReferralPending:  {ReferralAccepted, ReferralDeclined},
	ReferralAccepted: {ReferralCompleted, ReferralDeclined},
}

// Valid reports whether s is a known status.
func (s ReferralStatus) Valid() bool {
	switch s {
	case ReferralPending, ReferralAccepted, ReferralCompleted, ReferralDeclined:
		return true
	}
	return false
}

// CanTransitionTo reports whether the referral may move from s to next.
func (s ReferralStatus) CanTransitionTo(next ReferralStatus) bool {
	for _, allowed := range referralTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Referral is a business lead passed from one contact to another.
type Referral struct {
	ID          string
	GiverID     string
	ReceiverID  string
	Description string
	Status      ReferralStatus
	Value       *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// ReferralFilter narrows referral listings.
type ReferralFilter struct {
	ContactID string
	Status    *ReferralStatus
}

// GiversGain summarizes how much a contact gives versus receives.
type GiversGain struct {
	ContactID string `json:"contact_id"`
	Name      string `json:"name"`
	Given     int64  `json:"given"`
	Received  int64  `json:"received"`
	Completed int64  `json:"completed"`
	Balance   int64  `json:"balance"`
}

// ReferralStats aggregates referral activity.
type ReferralStats struct {
	ByStatus  map[ReferralStatus]int64 `json:"by_status"`
	TopGivers []GiversGain             `json:"top_givers"`
}

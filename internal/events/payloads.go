package events

import "time"

// ReferralEvent is published when a referral is created or changes status.
type ReferralEvent struct {
	ReferralID string    `json:"referral_id"`
	GiverID    string    `json:"giver_id"`
	ReceiverID string    `json:"receiver_id"`
	Status     string    `json:"status"`
	At         time.Time `json:"at"`
}

// OpportunityEvent is published when an opportunity is created.
type OpportunityEvent struct {
	OpportunityID string    `json:"opportunity_id"`
	ContactID     *string   `json:"contact_id,omitempty"`
	Title         string    `json:"title"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}

// FollowUpEvent is published for every contact whose follow-up is overdue.
type FollowUpEvent struct {
	ContactID       string     `json:"contact_id"`
	Name            string     `json:"name"`
	AssignedTo      *string    `json:"assigned_to,omitempty"`
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
}

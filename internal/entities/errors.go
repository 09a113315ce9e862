// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrContactNotFound is returned when a contact does not exist.
	ErrContactNotFound = errors.New("contact not found")
	// ErrContactExists signals an email conflict between contacts.
	ErrContactExists = errors.New("contact exists")
	// ErrTeamMemberNotFound signals missing team member.
	ErrTeamMemberNotFound = errors.New("team member not found")
	// ErrTeamMemberExists signals team member email conflict.
	ErrTeamMemberExists = errors.New("team member exists")
	// ErrGoalNotFound signals missing goal.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrReferralNotFound signals missing referral.
	ErrReferralNotFound = errors.New("referral not found")
	// ErrOpportunityNotFound signals missing opportunity.
	ErrOpportunityNotFound = errors.New("opportunity not found")
	// ErrInvalidTransition signals a forbidden status change.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrDuplicateOpportunity signals a likely duplicate opportunity title.
	ErrDuplicateOpportunity = errors.New("duplicate opportunity")
	// ErrNoPath signals that no introduction path connects two contacts.
	ErrNoPath = errors.New("no introduction path")
	// ErrMatcherUnavailable signals failure of the matching backend.
	ErrMatcherUnavailable = errors.New("matcher unavailable")
	// ErrStaleSnapshot signals a network snapshot built before the last contact write.
	ErrStaleSnapshot = errors.New("stale network snapshot")
)

// DuplicateError carries the opportunities that made a create call fail.
type DuplicateError struct {
	Candidates []DuplicateCandidate
}

func (e *DuplicateError) Error() string {
	return ErrDuplicateOpportunity.Error()
}

// Unwrap lets errors.Is match ErrDuplicateOpportunity.
func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateOpportunity
}

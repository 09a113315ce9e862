package usecase

import (
	"context"
	"time"

	"pulse-network-organizer/internal/entities"
)

// TeamMemberUsecaseInterface abstracts team member operations for delivery layer.
type TeamMemberUsecaseInterface interface {
	CreateTeamMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error)
	TeamMembers(ctx context.Context, onlyActive bool) ([]entities.TeamMember, error)
	SetTeamMemberActive(ctx context.Context, id string, isActive bool) (*entities.TeamMember, error)
}

// ContactUsecaseInterface abstracts contact operations.
type ContactUsecaseInterface interface {
	CreateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error)
	Contact(ctx context.Context, id string) (*entities.Contact, error)
	UpdateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	Contacts(ctx context.Context, filter entities.ContactFilter) ([]entities.Contact, error)
	MarkContacted(ctx context.Context, in entities.Interaction) (*entities.Interaction, error)
	Interactions(ctx context.Context, contactID string, limit int) ([]entities.Interaction, error)
	OverdueContacts(ctx context.Context, now time.Time) ([]entities.Contact, error)
}

// GoalUsecaseInterface abstracts contact goal operations.
type GoalUsecaseInterface interface {
	CreateGoal(ctx context.Context, g entities.Goal) (*entities.Goal, error)
	Goals(ctx context.Context, contactID string) ([]entities.Goal, error)
	SetGoalAchieved(ctx context.Context, id string, achieved bool) (*entities.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// ReferralUsecaseInterface abstracts referral operations.
type ReferralUsecaseInterface interface {
	CreateReferral(ctx context.Context, r entities.Referral) (*entities.Referral, error)
	UpdateReferralStatus(ctx context.Context, id string, to entities.ReferralStatus) (*entities.Referral, error)
	Referrals(ctx context.Context, filter entities.ReferralFilter) ([]entities.Referral, error)
	ReferralStats(ctx context.Context, limit int) (entities.ReferralStats, error)
}

// OpportunityUsecaseInterface abstracts opportunity operations.
type OpportunityUsecaseInterface interface {
	CreateOpportunity(ctx context.Context, o entities.Opportunity, force bool) (*entities.Opportunity, error)
	CheckDuplicates(ctx context.Context, o entities.Opportunity) ([]entities.DuplicateCandidate, error)
	Opportunities(ctx context.Context, filter entities.OpportunityFilter) ([]entities.Opportunity, error)
	SetOpportunityStatus(ctx context.Context, id string, to entities.OpportunityStatus) (*entities.Opportunity, error)
}

// GainsUsecaseInterface abstracts GAINS meeting operations.
type GainsUsecaseInterface interface {
	CreateGainsMeeting(ctx context.Context, m entities.GainsMeeting) (*entities.GainsMeeting, error)
	GainsMeetings(ctx context.Context, contactID string) ([]entities.GainsMeeting, error)
}

// NetworkUsecaseInterface abstracts network analysis.
type NetworkUsecaseInterface interface {
	NetworkGraph(ctx context.Context) (entities.NetworkSnapshot, error)
	IntroductionPaths(ctx context.Context, from, to string, maxDepth, limit int) ([]entities.IntroductionPath, error)
	KeyConnectors(ctx context.Context, limit int) ([]entities.NetworkNode, error)
}

// InsightUsecaseInterface abstracts matching, calendar and dashboard views.
type InsightUsecaseInterface interface {
	SuggestMatches(ctx context.Context, contactID string, limit int) ([]entities.MatchSuggestion, error)
	CalendarEvents(ctx context.Context, teamMemberID string, days int) ([]entities.CalendarEvent, error)
	Dashboard(ctx context.Context) (entities.Dashboard, error)
}

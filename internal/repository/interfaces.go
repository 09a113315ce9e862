// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"pulse-network-organizer/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamMemberInterface exposes team member operations.
type TeamMemberInterface interface {
	CreateTeamMember(ctx context.Context, m entities.TeamMember) (*entities.TeamMember, error)
	ListTeamMembers(ctx context.Context, onlyActive bool) ([]entities.TeamMember, error)
	SetTeamMemberActive(ctx context.Context, id string, isActive bool) (*entities.TeamMember, error)
}

// ContactInterface exposes contact and interaction operations.
type ContactInterface interface {
	CreateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error)
	GetContact(ctx context.Context, id string) (*entities.Contact, error)
	UpdateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	ListContacts(ctx context.Context, filter entities.ContactFilter) ([]entities.Contact, error)
	ListAllContacts(ctx context.Context) ([]entities.Contact, error)
	ListContactsAssignedTo(ctx context.Context, teamMemberID string) ([]entities.Contact, error)
	ListOverdueContacts(ctx context.Context, now time.Time) ([]entities.Contact, error)
	RecordInteraction(ctx context.Context, in entities.Interaction) (*entities.Interaction, error)
	ListInteractions(ctx context.Context, contactID string, limit int) ([]entities.Interaction, error)
}

// GoalInterface exposes contact goal operations.
type GoalInterface interface {
	CreateGoal(ctx context.Context, g entities.Goal) (*entities.Goal, error)
	ListGoals(ctx context.Context, contactID string) ([]entities.Goal, error)
	SetGoalAchieved(ctx context.Context, id string, achieved bool) (*entities.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// ReferralInterface exposes referral operations.
type ReferralInterface interface {
	CreateReferral(ctx context.Context, r entities.Referral) (*entities.Referral, error)
	GetReferral(ctx context.Context, id string) (*entities.Referral, error)
	UpdateReferralStatus(ctx context.Context, id string, from, to entities.ReferralStatus) (*entities.Referral, error)
	ListReferrals(ctx context.Context, filter entities.ReferralFilter) ([]entities.Referral, error)
	ReferralStats(ctx context.Context, limit int) (entities.ReferralStats, error)
}

// OpportunityInterface exposes opportunity operations.
type OpportunityInterface interface {
	CreateOpportunity(ctx context.Context, o entities.Opportunity) (*entities.Opportunity, error)
	GetOpportunity(ctx context.Context, id string) (*entities.Opportunity, error)
	ListOpportunities(ctx context.Context, filter entities.OpportunityFilter) ([]entities.Opportunity, error)
	ListOpportunitiesNear(ctx context.Context, contactID *string, at time.Time, window time.Duration) ([]entities.Opportunity, error)
	SetOpportunityStatus(ctx context.Context, id string, from, to entities.OpportunityStatus) (*entities.Opportunity, error)
}

// GainsInterface exposes GAINS meeting operations.
type GainsInterface interface {
	CreateGainsMeeting(ctx context.Context, m entities.GainsMeeting) (*entities.GainsMeeting, error)
	ListGainsMeetings(ctx context.Context, contactID string) ([]entities.GainsMeeting, error)
}

// DashboardInterface exposes headline counters.
type DashboardInterface interface {
	CountContacts(ctx context.Context) (int64, error)
	CountOverdueContacts(ctx context.Context, now time.Time) (int64, error)
	CountOpenOpportunities(ctx context.Context) (int64, error)
	CountReferralsByStatus(ctx context.Context) (map[entities.ReferralStatus]int64, error)
	CountGoals(ctx context.Context) (achieved, open int64, err error)
}

// NetworkCache stores the last built network snapshot.
// Every Invalidate bumps the generation; SaveSnapshot only stores a snapshot
// built at the current generation and returns entities.ErrStaleSnapshot otherwise.
type NetworkCache interface {
	Generation(ctx context.Context) (int64, error)
	GetSnapshot(ctx context.Context) (*entities.NetworkSnapshot, error)
	SaveSnapshot(ctx context.Context, generation int64, snap entities.NetworkSnapshot) error
	Invalidate(ctx context.Context) error
}

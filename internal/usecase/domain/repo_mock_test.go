package domain

import (
	"context"
	"time"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/repository"

	"github.com/stretchr/testify/mock"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateTeamMember(ctx context.Context, tm entities.TeamMember) (*entities.TeamMember, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) ListTeamMembers(ctx context.Context, onlyActive bool) ([]entities.TeamMember, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TeamMember), args.Error(1)
}

func (m *repoMock) SetTeamMemberActive(ctx context.Context, id string, isActive bool) (*entities.TeamMember, error) {
	args := m.Called(ctx, id, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) CreateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Contact), args.Error(1)
}

func (m *repoMock) GetContact(ctx context.Context, id string) (*entities.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Contact), args.Error(1)
}

func (m *repoMock) UpdateContact(ctx context.Context, c entities.Contact) (*entities.Contact, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Contact), args.Error(1)
}

func (m *repoMock) DeleteContact(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) ListContacts(ctx context.Context, filter entities.ContactFilter) ([]entities.Contact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Contact), args.Error(1)
}

func (m *repoMock) ListAllContacts(ctx context.Context) ([]entities.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Contact), args.Error(1)
}

func (m *repoMock) ListContactsAssignedTo(ctx context.Context, teamMemberID string) ([]entities.Contact, error) {
	args := m.Called(ctx, teamMemberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Contact), args.Error(1)
}

func (m *repoMock) ListOverdueContacts(ctx context.Context, now time.Time) ([]entities.Contact, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Contact), args.Error(1)
}

func (m *repoMock) RecordInteraction(ctx context.Context, in entities.Interaction) (*entities.Interaction, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Interaction), args.Error(1)
}

func (m *repoMock) ListInteractions(ctx context.Context, contactID string, limit int) ([]entities.Interaction, error) {
	args := m.Called(ctx, contactID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Interaction), args.Error(1)
}

func (m *repoMock) CreateGoal(ctx context.Context, g entities.Goal) (*entities.Goal, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Goal), args.Error(1)
}

func (m *repoMock) ListGoals(ctx context.Context, contactID string) ([]entities.Goal, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Goal), args.Error(1)
}

func (m *repoMock) SetGoalAchieved(ctx context.Context, id string, achieved bool) (*entities.Goal, error) {
	args := m.Called(ctx, id, achieved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Goal), args.Error(1)
}

func (m *repoMock) DeleteGoal(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) CreateReferral(ctx context.Context, r entities.Referral) (*entities.Referral, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Referral), args.Error(1)
}

func (m *repoMock) GetReferral(ctx context.Context, id string) (*entities.Referral, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Referral), args.Error(1)
}

func (m *repoMock) UpdateReferralStatus(ctx context.Context, id string, from, to entities.ReferralStatus) (*entities.Referral, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Referral), args.Error(1)
}

func (m *repoMock) ListReferrals(ctx context.Context, filter entities.ReferralFilter) ([]entities.Referral, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Referral), args.Error(1)
}

func (m *repoMock) ReferralStats(ctx context.Context, limit int) (entities.ReferralStats, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return entities.ReferralStats{}, args.Error(1)
	}
	return args.Get(0).(entities.ReferralStats), args.Error(1)
}

func (m *repoMock) CreateOpportunity(ctx context.Context, o entities.Opportunity) (*entities.Opportunity, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Opportunity), args.Error(1)
}

func (m *repoMock) GetOpportunity(ctx context.Context, id string) (*entities.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Opportunity), args.Error(1)
}

func (m *repoMock) ListOpportunities(ctx context.Context, filter entities.OpportunityFilter) ([]entities.Opportunity, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Opportunity), args.Error(1)
}

func (m *repoMock) ListOpportunitiesNear(ctx context.Context, contactID *string, at time.Time, window time.Duration) ([]entities.Opportunity, error) {
	args := m.Called(ctx, contactID, at, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Opportunity), args.Error(1)
}

func (m *repoMock) SetOpportunityStatus(ctx context.Context, id string, from, to entities.OpportunityStatus) (*entities.Opportunity, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Opportunity), args.Error(1)
}

func (m *repoMock) CreateGainsMeeting(ctx context.Context, gm entities.GainsMeeting) (*entities.GainsMeeting, error) {
	args := m.Called(ctx, gm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GainsMeeting), args.Error(1)
}

func (m *repoMock) ListGainsMeetings(ctx context.Context, contactID string) ([]entities.GainsMeeting, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.GainsMeeting), args.Error(1)
}

func (m *repoMock) CountContacts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) CountOverdueContacts(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) CountOpenOpportunities(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) CountReferralsByStatus(ctx context.Context) (map[entities.ReferralStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.ReferralStatus]int64), args.Error(1)
}

func (m *repoMock) CountGoals(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/matching"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryCache struct {
	snap        *entities.NetworkSnapshot
	invalidated int
}

func (c *memoryCache) Generation(context.Context) (int64, error) {
	return int64(c.invalidated), nil
}

func (c *memoryCache) GetSnapshot(context.Context) (*entities.NetworkSnapshot, error) {
	return c.snap, nil
}

func (c *memoryCache) SaveSnapshot(_ context.Context, gen int64, snap entities.NetworkSnapshot) error {
	if gen != int64(c.invalidated) {
		return entities.ErrStaleSnapshot
	}
	c.snap = &snap
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.snap = nil
	c.invalidated++
	return nil
}

type recordingPublisher struct {
	keys     []string
	payloads []any
}

func (p *recordingPublisher) Publish(_ context.Context, key string, payload any) error {
	p.keys = append(p.keys, key)
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type failingMatcher struct{}

func (failingMatcher) Name() string { return "failing" }

func (failingMatcher) Match(context.Context, matching.Request) ([]entities.MatchSuggestion, error) {
	return nil, errors.New("quota exceeded")
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestUsecase(repo *repoMock, deps Deps) *Usecase {
	deps.Settings = Settings{DuplicateThreshold: 0.8, DuplicateWindow: 72 * time.Hour, DefaultFrequencyDays: 30}
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, time.Second, deps)
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "generated-id" }
	return uc
}

func TestUsecase_CreateTeamMemberValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	_, err := uc.CreateTeamMember(context.Background(), entities.TeamMember{Name: "Dana"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateTeamMember", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTeamMemberDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	repo.On("CreateTeamMember", mock.Anything, mock.MatchedBy(func(m entities.TeamMember) bool {
		return m.ID == "generated-id" && m.IsActive && m.Name == "Dana"
	})).Return(&entities.TeamMember{ID: "generated-id", Name: "Dana", IsActive: true}, nil)

	res, err := uc.CreateTeamMember(context.Background(), entities.TeamMember{Name: " Dana ", Email: "dana@example.org"})
	require.NoError(t, err)
	require.Equal(t, "generated-id", res.ID)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateContactNormalizesAndInvalidatesGraph(t *testing.T) {
	repo := &repoMock{}
	cache := &memoryCache{snap: &entities.NetworkSnapshot{}}
	uc := newTestUsecase(repo, Deps{Cache: cache})

	repo.On("CreateContact", mock.Anything, mock.MatchedBy(func(c entities.Contact) bool {
		return c.Name == "Maria Lopez" &&
			c.ContactFrequencyDays == 30 &&
			len(c.Tags) == 2 && c.Tags[0] == "finance" && c.Tags[1] == "Grants" &&
			len(c.LinkedInConnections) == 1 && c.AssignedTo == nil
	})).Return(&entities.Contact{ID: "generated-id", Name: "Maria Lopez"}, nil)

	empty := ""
	_, err := uc.CreateContact(context.Background(), entities.Contact{
		Name:                " Maria   Lopez ",
		Tags:                []string{"finance", " Grants ", "FINANCE", ""},
		LinkedInConnections: []string{"Bob Stone", "bob stone"},
		AssignedTo:          &empty,
	})
	require.NoError(t, err)
	require.Nil(t, cache.snap)
	require.Equal(t, 1, cache.invalidated)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateContactValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	_, err := uc.CreateContact(context.Background(), entities.Contact{Name: "  "})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateContact(context.Background(), entities.Contact{Name: "Ann", ContactFrequencyDays: -1})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateContact", mock.Anything, mock.Anything)
}

func TestUsecase_MarkContactedDefaults(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	repo.On("RecordInteraction", mock.Anything, mock.MatchedBy(func(in entities.Interaction) bool {
		return in.Channel == "other" && in.OccurredAt.Equal(fixedNow) && in.ID == "generated-id"
	})).Return(&entities.Interaction{ID: "generated-id"}, nil)

	_, err := uc.MarkContacted(context.Background(), entities.Interaction{ContactID: "c1"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_ReferralTransitionRejected(t *testing.T) {
	repo := &repoMock{}
	pub := &recordingPublisher{}
	uc := newTestUsecase(repo, Deps{Publisher: pub})

	repo.On("GetReferral", mock.Anything, "r1").
		Return(&entities.Referral{ID: "r1", Status: entities.ReferralCompleted}, nil)

	_, err := uc.UpdateReferralStatus(context.Background(), "r1", entities.ReferralDeclined)
	require.ErrorIs(t, err, entities.ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateReferralStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	require.Empty(t, pub.keys)
}

func TestUsecase_ReferralTransitionPublishes(t *testing.T) {
	repo := &repoMock{}
	pub := &recordingPublisher{}
	uc := newTestUsecase(repo, Deps{Publisher: pub})

	repo.On("GetReferral", mock.Anything, "r1").
		Return(&entities.Referral{ID: "r1", Status: entities.ReferralPending}, nil)
	repo.On("UpdateReferralStatus", mock.Anything, "r1", entities.ReferralPending, entities.ReferralAccepted).
		Return(&entities.Referral{ID: "r1", GiverID: "g", ReceiverID: "r", Status: entities.ReferralAccepted}, nil)

	res, err := uc.UpdateReferralStatus(context.Background(), "r1", entities.ReferralAccepted)
	require.NoError(t, err)
	require.Equal(t, entities.ReferralAccepted, res.Status)
	require.Equal(t, []string{"referral.status_changed"}, pub.keys)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateReferralValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	_, err := uc.CreateReferral(context.Background(), entities.Referral{GiverID: "a", ReceiverID: "a"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	negative := -10.0
	_, err = uc.CreateReferral(context.Background(), entities.Referral{GiverID: "a", ReceiverID: "b", Value: &negative})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_ReferralStatsBalance(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	repo.On("ReferralStats", mock.Anything, 10).Return(entities.ReferralStats{
		TopGivers: []entities.GiversGain{{ContactID: "a", Given: 5, Received: 2}},
	}, nil)

	stats, err := uc.ReferralStats(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TopGivers[0].Balance)
}

func TestUsecase_CreateOpportunityRejectsDuplicate(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	at := fixedNow.Add(48 * time.Hour)
	existing := []entities.Opportunity{
		{ID: "o1", Title: "BNI Breakfast Meeting", ScheduledAt: at.Add(time.Hour), Status: entities.OpportunityOpen},
		{ID: "o2", Title: "BNI breakfast meeting", ScheduledAt: at, Status: entities.OpportunityCancelled},
		{ID: "o3", Title: "Grant workshop", ScheduledAt: at, Status: entities.OpportunityOpen},
	}
	repo.On("ListOpportunitiesNear", mock.Anything, (*string)(nil), at, 72*time.Hour).Return(existing, nil)

	_, err := uc.CreateOpportunity(context.Background(), entities.Opportunity{Title: "bni breakfast meeting!", ScheduledAt: at}, false)
	require.ErrorIs(t, err, entities.ErrDuplicateOpportunity)

	var dup *entities.DuplicateError
	require.True(t, errors.As(err, &dup))
	require.Len(t, dup.Candidates, 1)
	require.Equal(t, "o1", dup.Candidates[0].Opportunity.ID)
	require.InDelta(t, 1.0, dup.Candidates[0].Similarity, 1e-9)
	repo.AssertNotCalled(t, "CreateOpportunity", mock.Anything, mock.Anything)
}

func TestUsecase_CreateOpportunityForced(t *testing.T) {
	repo := &repoMock{}
	pub := &recordingPublisher{}
	uc := newTestUsecase(repo, Deps{Publisher: pub})

	at := fixedNow.Add(24 * time.Hour)
	repo.On("CreateOpportunity", mock.Anything, mock.MatchedBy(func(o entities.Opportunity) bool {
		return o.Status == entities.OpportunityOpen && o.Type == "meeting" && o.ID == "generated-id"
	})).Return(&entities.Opportunity{ID: "generated-id", Title: "Lunch", ScheduledAt: at}, nil)

	res, err := uc.CreateOpportunity(context.Background(), entities.Opportunity{Title: "Lunch", ScheduledAt: at}, true)
	require.NoError(t, err)
	require.Equal(t, "generated-id", res.ID)
	require.Equal(t, []string{"opportunity.created"}, pub.keys)
	repo.AssertNotCalled(t, "ListOpportunitiesNear", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_OpportunityTerminalStatus(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	repo.On("GetOpportunity", mock.Anything, "o1").
		Return(&entities.Opportunity{ID: "o1", Status: entities.OpportunityWon}, nil)

	_, err := uc.SetOpportunityStatus(context.Background(), "o1", entities.OpportunityLost)
	require.ErrorIs(t, err, entities.ErrInvalidTransition)

	_, err = uc.SetOpportunityStatus(context.Background(), "o1", "postponed")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_CreateGainsMeetingRequiresSection(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	_, err := uc.CreateGainsMeeting(context.Background(), entities.GainsMeeting{ContactID: "c1", Notes: "coffee"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateGainsMeeting", mock.Anything, mock.Anything)
}

func networkContacts() []entities.Contact {
	return []entities.Contact{
		{ID: "a", Name: "Alice", LinkedInConnections: []string{"Bob"}},
		{ID: "b", Name: "Bob"},
		{ID: "c", Name: "Carol"},
	}
}

func TestUsecase_NetworkGraphUsesCache(t *testing.T) {
	repo := &repoMock{}
	cache := &memoryCache{}
	uc := newTestUsecase(repo, Deps{Cache: cache})

	repo.On("ListAllContacts", mock.Anything).Return(networkContacts(), nil).Once()

	first, err := uc.NetworkGraph(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Nodes, 3)
	require.Len(t, first.Edges, 1)

	second, err := uc.NetworkGraph(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "ListAllContacts", 1)
}

func TestUsecase_NetworkGraphSkipsSnapshotRacingAWrite(t *testing.T) {
	repo := &repoMock{}
	cache := &memoryCache{}
	uc := newTestUsecase(repo, Deps{Cache: cache})

	repo.On("ListAllContacts", mock.Anything).Return(networkContacts(), nil).Once().
		Run(func(mock.Arguments) { _ = cache.Invalidate(context.Background()) })
	repo.On("ListAllContacts", mock.Anything).Return(networkContacts()[:2], nil).Once()

	first, err := uc.NetworkGraph(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Nodes, 3)
	require.Nil(t, cache.snap)

	second, err := uc.NetworkGraph(context.Background())
	require.NoError(t, err)
	require.Len(t, second.Nodes, 2)
	require.NotNil(t, cache.snap)
	repo.AssertNumberOfCalls(t, "ListAllContacts", 2)
}

func TestUsecase_IntroductionPaths(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	repo.On("ListAllContacts", mock.Anything).Return(networkContacts(), nil)

	paths, err := uc.IntroductionPaths(context.Background(), "a", "b", 0, 0)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, []string{"Alice", "Bob"}, paths[0].Names)

	_, err = uc.IntroductionPaths(context.Background(), "a", "c", 3, 5)
	require.ErrorIs(t, err, entities.ErrNoPath)

	_, err = uc.IntroductionPaths(context.Background(), "a", "zzz", 3, 5)
	require.ErrorIs(t, err, entities.ErrContactNotFound)

	_, err = uc.IntroductionPaths(context.Background(), "a", "b", 7, 5)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_KeyConnectors(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	repo.On("ListAllContacts", mock.Anything).Return(networkContacts(), nil)

	nodes, err := uc.KeyConnectors(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	require.Equal(t, "a", nodes[0].ID)
	require.Equal(t, nodes[0].Community, nodes[1].Community)
}

func TestUsecase_SuggestMatchesMatcherFailure(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{Matcher: failingMatcher{}})

	repo.On("GetContact", mock.Anything, "a").Return(&entities.Contact{ID: "a", Name: "Alice"}, nil)
	repo.On("ListGoals", mock.Anything, "a").Return([]entities.Goal{}, nil)
	repo.On("ListAllContacts", mock.Anything).Return(networkContacts(), nil)

	_, err := uc.SuggestMatches(context.Background(), "a", 3)
	require.ErrorIs(t, err, entities.ErrMatcherUnavailable)
}

func TestUsecase_SuggestMatchesHeuristic(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	repo.On("GetContact", mock.Anything, "a").
		Return(&entities.Contact{ID: "a", Name: "Alice", Tags: []string{"finance", "nonprofit"}}, nil)
	repo.On("ListGoals", mock.Anything, "a").Return([]entities.Goal{}, nil)
	repo.On("ListAllContacts", mock.Anything).Return([]entities.Contact{
		{ID: "a", Name: "Alice", Tags: []string{"finance", "nonprofit"}},
		{ID: "b", Name: "Bob", Tags: []string{"finance"}},
		{ID: "c", Name: "Carol", Tags: []string{"sports"}},
	}, nil)

	res, err := uc.SuggestMatches(context.Background(), "a", 0)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "b", res[0].ContactID)
}

func TestUsecase_SuggestMatchesUnknownContact(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	repo.On("GetContact", mock.Anything, "x").Return(nil, entities.ErrContactNotFound)
	repo.On("ListGoals", mock.Anything, "x").Return([]entities.Goal{}, nil).Maybe()
	repo.On("ListAllContacts", mock.Anything).Return([]entities.Contact{}, nil).Maybe()

	_, err := uc.SuggestMatches(context.Background(), "x", 0)
	require.ErrorIs(t, err, entities.ErrContactNotFound)
}

func TestUsecase_CalendarEventsValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	_, err := uc.CalendarEvents(context.Background(), "", 7)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CalendarEvents(context.Background(), "3f0c7a52-4a7e-4c43-9d7e-0f5d1c2b9a10", 32)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_RejectsMalformedReferences(t *testing.T) {
	const valid = "3f0c7a52-4a7e-4c43-9d7e-0f5d1c2b9a10"
	bad := "abc"
	at := fixedNow.Add(24 * time.Hour)

	tests := []struct {
		name string
		call func(uc *Usecase) error
	}{
		{"opportunity contact", func(uc *Usecase) error {
			_, err := uc.CreateOpportunity(context.Background(), entities.Opportunity{Title: "Lunch", ScheduledAt: at, ContactID: &bad}, false)
			return err
		}},
		{"opportunity creator", func(uc *Usecase) error {
			_, err := uc.CreateOpportunity(context.Background(), entities.Opportunity{Title: "Lunch", ScheduledAt: at, CreatedBy: &bad}, true)
			return err
		}},
		{"duplicate check contact", func(uc *Usecase) error {
			_, err := uc.CheckDuplicates(context.Background(), entities.Opportunity{Title: "Lunch", ScheduledAt: at, ContactID: &bad})
			return err
		}},
		{"referral giver", func(uc *Usecase) error {
			_, err := uc.CreateReferral(context.Background(), entities.Referral{GiverID: bad, ReceiverID: valid})
			return err
		}},
		{"referral receiver", func(uc *Usecase) error {
			_, err := uc.CreateReferral(context.Background(), entities.Referral{GiverID: valid, ReceiverID: bad})
			return err
		}},
		{"contact assignee", func(uc *Usecase) error {
			_, err := uc.CreateContact(context.Background(), entities.Contact{Name: "Ann", AssignedTo: &bad})
			return err
		}},
		{"contact update assignee", func(uc *Usecase) error {
			_, err := uc.UpdateContact(context.Background(), entities.Contact{ID: valid, Name: "Ann", AssignedTo: &bad})
			return err
		}},
		{"contact list assignee", func(uc *Usecase) error {
			_, err := uc.Contacts(context.Background(), entities.ContactFilter{AssignedTo: bad})
			return err
		}},
		{"calendar team member", func(uc *Usecase) error {
			_, err := uc.CalendarEvents(context.Background(), bad, 7)
			return err
		}},
		{"interaction team member", func(uc *Usecase) error {
			_, err := uc.MarkContacted(context.Background(), entities.Interaction{ContactID: valid, TeamMemberID: &bad})
			return err
		}},
		{"gains team member", func(uc *Usecase) error {
			_, err := uc.CreateGainsMeeting(context.Background(), entities.GainsMeeting{ContactID: valid, TeamMemberID: &bad, Goals: "grow"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMock{}
			uc := newTestUsecase(repo, Deps{})

			require.ErrorIs(t, tt.call(uc), entities.ErrInvalidArgument)
			require.Empty(t, repo.Calls)
		})
	}
}

func TestUsecase_ContactsAcceptsAssigneeUUID(t *testing.T) {
	const assignee = "3f0c7a52-4a7e-4c43-9d7e-0f5d1c2b9a10"
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	repo.On("ListContacts", mock.Anything, entities.ContactFilter{AssignedTo: assignee, Limit: 50}).
		Return([]entities.Contact{}, nil)

	_, err := uc.Contacts(context.Background(), entities.ContactFilter{AssignedTo: " " + assignee + " "})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_Dashboard(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	repo.On("CountContacts", mock.Anything).Return(int64(12), nil)
	repo.On("CountOverdueContacts", mock.Anything, fixedNow).Return(int64(4), nil)
	repo.On("CountOpenOpportunities", mock.Anything).Return(int64(3), nil)
	repo.On("CountReferralsByStatus", mock.Anything).
		Return(map[entities.ReferralStatus]int64{entities.ReferralPending: 2}, nil)
	repo.On("CountGoals", mock.Anything).Return(int64(5), int64(7), nil)

	d, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, entities.Dashboard{
		Contacts:          12,
		OverdueFollowUps:  4,
		OpenOpportunities: 3,
		ReferralsByStatus: map[entities.ReferralStatus]int64{entities.ReferralPending: 2},
		GoalsAchieved:     5,
		GoalsOpen:         7,
	}, d)
}

func TestUsecase_DashboardPropagatesError(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, Deps{})

	boom := errors.New("db down")
	repo.On("CountContacts", mock.Anything).Return(int64(0), boom)
	repo.On("CountOverdueContacts", mock.Anything, mock.Anything).Return(int64(0), nil)
	repo.On("CountOpenOpportunities", mock.Anything).Return(int64(0), nil)
	repo.On("CountReferralsByStatus", mock.Anything).Return(map[entities.ReferralStatus]int64{}, nil)
	repo.On("CountGoals", mock.Anything).Return(int64(0), int64(0), nil)

	_, err := uc.Dashboard(context.Background())
	require.ErrorIs(t, err, boom)
}

package followup

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/events"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sourceMock struct{ mock.Mock }

func (m *sourceMock) OverdueContacts(ctx context.Context, now time.Time) ([]entities.Contact, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Contact), args.Error(1)
}

type publisherMock struct{ mock.Mock }

func (m *publisherMock) Publish(ctx context.Context, key string, payload any) error {
	return m.Called(ctx, key, payload).Error(0)
}

func (m *publisherMock) Close() error { return nil }

func TestRunOncePublishesOverdue(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	src := &sourceMock{}
	src.On("OverdueContacts", mock.Anything, now).Return([]entities.Contact{
		{ID: "c1", Name: "Ada"},
		{ID: "c2", Name: "Ben"},
	}, nil)

	pub := &publisherMock{}
	pub.On("Publish", mock.Anything, events.ContactFollowUpDue, events.FollowUpEvent{ContactID: "c1", Name: "Ada"}).Return(nil)
	pub.On("Publish", mock.Anything, events.ContactFollowUpDue, events.FollowUpEvent{ContactID: "c2", Name: "Ben"}).Return(errors.New("broker down"))

	s := New(zap.NewNop().Sugar(), src, pub, time.Second)
	s.now = func() time.Time { return now }

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	src.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestRunOnceSourceError(t *testing.T) {
	src := &sourceMock{}
	src.On("OverdueContacts", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	s := New(zap.NewNop().Sugar(), src, events.Noop{}, time.Second)
	_, err := s.RunOnce(context.Background())
	require.Error(t, err)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := New(zap.NewNop().Sugar(), &sourceMock{}, events.Noop{}, time.Second)
	require.Error(t, s.Start("not a schedule"))
	s.Stop()
}

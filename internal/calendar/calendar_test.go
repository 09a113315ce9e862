package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulse-network-organizer/internal/entities"

	"github.com/stretchr/testify/require"
)

type staticContacts struct {
	contacts []entities.Contact
	err      error
}

func (s staticContacts) ListContactsAssignedTo(context.Context, string) ([]entities.Contact, error) {
	return s.contacts, s.err
}

func TestMockEventsWorkingDays(t *testing.T) {
	src := staticContacts{contacts: []entities.Contact{
		{ID: "c1", Name: "Ada", Location: "Zurich"},
		{ID: "c2", Name: "Ben", Company: "ETH"},
		{ID: "c3", Name: "Cy"},
	}}
	m := NewMock(src)

	// Monday
	from := time.Date(2024, 6, 3, 15, 30, 0, 0, time.UTC)
	events, err := m.Events(context.Background(), "tm-1", from, 7)
	require.NoError(t, err)
	require.Len(t, events, 5)

	for _, e := range events {
		require.NotEqual(t, time.Saturday, e.Start.Weekday())
		require.NotEqual(t, time.Sunday, e.Start.Weekday())
		require.GreaterOrEqual(t, e.Start.Hour(), 9)
		require.Less(t, e.Start.Hour(), 17)
		require.Equal(t, 45*time.Minute, e.End.Sub(e.Start))
		require.NotNil(t, e.ContactID)
		require.Contains(t, []string{"Zurich", "ETH", "Video call"}, e.Location)
	}

	again, err := m.Events(context.Background(), "tm-1", from, 7)
	require.NoError(t, err)
	require.Equal(t, events, again)
}

func TestMockEventsNoContacts(t *testing.T) {
	events, err := NewMock(staticContacts{}).Events(context.Background(), "tm-1", time.Now(), 7)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestMockEventsSourceError(t *testing.T) {
	_, err := NewMock(staticContacts{err: errors.New("db down")}).Events(context.Background(), "tm-1", time.Now(), 7)
	require.Error(t, err)
}

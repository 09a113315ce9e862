// Package calendar provides upcoming meetings for team members.
package calendar

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"pulse-network-organizer/internal/entities"
)

// ContactSource lists the contacts owned by a team member.
type ContactSource interface {
	ListContactsAssignedTo(ctx context.Context, teamMemberID string) ([]entities.Contact, error)
}

// Provider returns calendar events for a team member.
type Provider interface {
	Events(ctx context.Context, teamMemberID string, from time.Time, days int) ([]entities.CalendarEvent, error)
}

// Mock generates a plausible, deterministic schedule from the member's contacts.
// It stands in for a real calendar integration.
type Mock struct {
	contacts ContactSource
}

// NewMock creates a mock provider.
func NewMock(contacts ContactSource) *Mock {
	return &Mock{contacts: contacts}
}

// Events returns one meeting per working day in [from, from+days).
func (m *Mock) Events(ctx context.Context, teamMemberID string, from time.Time, days int) ([]entities.CalendarEvent, error) {
	contacts, err := m.contacts.ListContactsAssignedTo(ctx, teamMemberID)
	if err != nil {
		return nil, fmt.Errorf("load assigned contacts: %w", err)
	}

	events := make([]entities.CalendarEvent, 0, days)
	if len(contacts) == 0 {
		return events, nil
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		h := seed(teamMemberID, day)
		c := contacts[h%uint32(len(contacts))]
		hour := 9 + int((h>>8)%8)
		begin := day.Add(time.Duration(hour) * time.Hour)
		contactID := c.ID

		events = append(events, entities.CalendarEvent{
			ID:        fmt.Sprintf("mock-%s-%s", teamMemberID, day.Format("20060102")),
			Title:     "Coffee with " + c.Name,
			Start:     begin,
			End:       begin.Add(45 * time.Minute),
			ContactID: &contactID,
			Location:  location(c),
		})
	}
	return events, nil
}

func seed(teamMemberID string, day time.Time) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(teamMemberID))
	_, _ = h.Write([]byte(day.Format("2006-01-02")))
	return h.Sum32()
}

func location(c entities.Contact) string {
	if c.Location != "" {
		return c.Location
	}
	if c.Company != "" {
		return c.Company
	}
	return "Video call"
}

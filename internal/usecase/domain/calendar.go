package domain

import (
	"context"
	"fmt"

	"pulse-network-organizer/internal/entities"
)

const (
	defaultCalendarDays = 7
	maxCalendarDays     = 31
)

// CalendarEvents returns the upcoming meetings of a team member.
func (u *Usecase) CalendarEvents(ctx context.Context, teamMemberID string, days int) ([]entities.CalendarEvent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamMemberID == "" {
		return nil, fmt.Errorf("%w: teamMemberId is required", entities.ErrInvalidArgument)
	}
	if err := checkID("teamMemberId", teamMemberID); err != nil {
		return nil, err
	}
	if days > maxCalendarDays {
		return nil, fmt.Errorf("%w: days must not exceed %d", entities.ErrInvalidArgument, maxCalendarDays)
	}
	if days <= 0 {
		days = defaultCalendarDays
	}
	return u.calendar.Events(ctx, teamMemberID, u.now().UTC(), days)
}

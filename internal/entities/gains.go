// Package entities contains core business entities.
package entities

import (
	"strings"
	"time"
)

// GainsMeeting records a Goals, Accomplishments, Interests, Networks, Skills one-to-one.
type GainsMeeting struct {
	ID              string
	ContactID       string
	TeamMemberID    *string
	MeetingDate     time.Time
	Goals           string
	Accomplishments string
	Interests       string
	Networks        string
	Skills          string
	Notes           string
	CreatedAt       time.Time
}

// Empty reports whether none of the five GAINS sections were filled in.
func (g GainsMeeting) Empty() bool {
	for _, s := range []string{g.Goals, g.Accomplishments, g.Interests, g.Networks, g.Skills} {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

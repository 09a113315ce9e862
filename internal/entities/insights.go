// Package entities contains core business entities.
package entities

import "time"

// MatchSuggestion is a contact proposed as a good connection for another.
type MatchSuggestion struct {
	ContactID string  `json:"contact_id"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

// CalendarEvent is an upcoming meeting from the calendar integration.
type CalendarEvent struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	ContactID *string
	Location  string
}

// Dashboard aggregates headline counters.
type Dashboard struct {
	Contacts          int64
	OverdueFollowUps  int64
	OpenOpportunities int64
	ReferralsByStatus map[ReferralStatus]int64
	GoalsAchieved     int64
	GoalsOpen         int64
}

// IntroductionPath is a chain of contacts from a source to a target.
type IntroductionPath struct {
	ContactIDs []string
	Names      []string
	Hops       int
	Strength   int
}

// NetworkNode is a contact in the network snapshot.
type NetworkNode struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Company    string  `json:"company"`
	Degree     int     `json:"degree"`
	Strength   int     `json:"strength"`
	Centrality float64 `json:"centrality"`
	Community  int     `json:"community"`
}

// NetworkEdge is a weighted link between two contacts.
type NetworkEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight int      `json:"weight"`
	Direct bool     `json:"direct"`
	Shared []string `json:"shared"`
}

// NetworkSnapshot is a serializable view of the whole contact graph.
type NetworkSnapshot struct {
	Nodes       []NetworkNode `json:"nodes"`
	Edges       []NetworkEdge `json:"edges"`
	Communities [][]string    `json:"communities"`
	BuiltAt     time.Time     `json:"built_at"`
}

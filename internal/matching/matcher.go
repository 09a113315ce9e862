// Package matching suggests contacts that would benefit from meeting each other.
package matching

import (
	"context"
	"sort"

	"pulse-network-organizer/internal/entities"
)

// Request describes who needs matches and who may be suggested.
type Request struct {
	Contact    entities.Contact
	Goals      []entities.Goal
	Candidates []entities.Contact
	Limit      int
}

// Matcher ranks candidates for a contact.
type Matcher interface {
	Match(ctx context.Context, req Request) ([]entities.MatchSuggestion, error)
	Name() string
}

func rank(res []entities.MatchSuggestion, limit int) []entities.MatchSuggestion {
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Score != res[j].Score {
			return res[i].Score > res[j].Score
		}
		return res[i].Name < res[j].Name
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

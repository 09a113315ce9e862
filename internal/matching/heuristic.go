package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/textsim"
)

const (
	minKeywordLen = 4
	// goalWeight scales goal fit against tag overlap; scores are divided by 1+goalWeight to stay in [0,1].
	goalWeight = 0.5
)

// Heuristic scores candidates by shared tags and by how well they fit the contact's goals.
type Heuristic struct{}

// Name identifies the matcher in logs and responses.
func (Heuristic) Name() string { return "heuristic" }

// Match implements Matcher without any external service.
func (Heuristic) Match(_ context.Context, req Request) ([]entities.MatchSuggestion, error) {
	tags := tagSet(req.Contact.Tags)
	keywords := goalKeywords(req.Goals)

	res := make([]entities.MatchSuggestion, 0, len(req.Candidates))
	for _, cand := range req.Candidates {
		if cand.ID == req.Contact.ID {
			continue
		}
		shared := intersect(tags, tagSet(cand.Tags))
		tagScore := jaccard(tags, tagSet(cand.Tags))

		hits := keywordHits(keywords, cand)
		goalScore := 0.0
		if len(keywords) > 0 {
			goalScore = float64(len(hits)) / float64(len(keywords))
		}

		score := (tagScore + goalWeight*goalScore) / (1 + goalWeight)
		if score <= 0 {
			continue
		}
		res = append(res, entities.MatchSuggestion{
			ContactID: cand.ID,
			Name:      cand.Name,
			Score:     score,
			Reason:    reason(shared, hits),
		})
	}
	return rank(res, req.Limit), nil
}

func reason(shared, hits []string) string {
	var parts []string
	if len(shared) > 0 {
		parts = append(parts, "shared interests: "+strings.Join(shared, ", "))
	}
	if len(hits) > 0 {
		parts = append(parts, "relevant to goals: "+strings.Join(hits, ", "))
	}
	return strings.Join(parts, "; ")
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if k := textsim.Normalize(t); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

func intersect(a, b map[string]struct{}) []string {
	var res []string
	for k := range a {
		if _, ok := b[k]; ok {
			res = append(res, k)
		}
	}
	sort.Strings(res)
	return res
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := len(intersect(a, b))
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func goalKeywords(goals []entities.Goal) []string {
	set := map[string]struct{}{}
	for _, g := range goals {
		if g.Achieved {
			continue
		}
		for _, w := range strings.Fields(textsim.Normalize(fmt.Sprintf("%s %s %s", g.Title, g.Category, g.Description))) {
			if len([]rune(w)) >= minKeywordLen {
				set[w] = struct{}{}
			}
		}
	}
	res := make([]string, 0, len(set))
	for w := range set {
		res = append(res, w)
	}
	sort.Strings(res)
	return res
}

func keywordHits(keywords []string, c entities.Contact) []string {
	if len(keywords) == 0 {
		return nil
	}
	words := map[string]struct{}{}
	text := strings.Join(append([]string{c.Position, c.Company, c.Affiliation}, c.Tags...), " ")
	for _, w := range strings.Fields(textsim.Normalize(text)) {
		words[w] = struct{}{}
	}
	var hits []string
	for _, k := range keywords {
		if _, ok := words[k]; ok {
			hits = append(hits, k)
		}
	}
	return hits
}

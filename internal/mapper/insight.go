package mapper

import (
	"pulse-network-organizer/internal/entities"
	oapi "pulse-network-organizer/internal/oapi"
)

// ToOAPIMatches maps match suggestions.
func ToOAPIMatches(src []entities.MatchSuggestion) []oapi.MatchSuggestion {
	res := make([]oapi.MatchSuggestion, 0, len(src))
	for _, m := range src {
		res = append(res, oapi.MatchSuggestion{ContactId: m.ContactID, Name: m.Name, Score: m.Score, Reason: m.Reason})
	}
	return res
}

// ToOAPINetworkNodes maps network nodes.
func ToOAPINetworkNodes(src []entities.NetworkNode) []oapi.NetworkNode {
	res := make([]oapi.NetworkNode, 0, len(src))
	for _, n := range src {
		res = append(res, oapi.NetworkNode{
			Id:         n.ID,
			Name:       n.Name,
			Company:    n.Company,
			Degree:     n.Degree,
			Strength:   n.Strength,
			Centrality: n.Centrality,
			Community:  n.Community,
		})
	}
	return res
}

// ToOAPINetworkGraph maps a network snapshot.
func ToOAPINetworkGraph(s entities.NetworkSnapshot) oapi.NetworkGraph {
	edges := make([]oapi.NetworkEdge, 0, len(s.Edges))
	for _, e := range s.Edges {
		edges = append(edges, oapi.NetworkEdge{
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
			Direct: e.Direct,
			Shared: nonNil(e.Shared),
		})
	}
	communities := s.Communities
	if communities == nil {
		communities = [][]string{}
	}
	return oapi.NetworkGraph{
		Nodes:       ToOAPINetworkNodes(s.Nodes),
		Edges:       edges,
		Communities: communities,
		BuiltAt:     s.BuiltAt,
	}
}

// ToOAPIPaths maps introduction paths.
func ToOAPIPaths(src []entities.IntroductionPath) []oapi.IntroductionPath {
	res := make([]oapi.IntroductionPath, 0, len(src))
	for _, p := range src {
		res = append(res, oapi.IntroductionPath{ContactIds: p.ContactIDs, Names: p.Names, Hops: p.Hops, Strength: p.Strength})
	}
	return res
}

// ToOAPICalendarEvents maps calendar events.
func ToOAPICalendarEvents(src []entities.CalendarEvent) []oapi.CalendarEvent {
	res := make([]oapi.CalendarEvent, 0, len(src))
	for _, e := range src {
		res = append(res, oapi.CalendarEvent{
			Id:        e.ID,
			Title:     e.Title,
			Start:     e.Start,
			End:       e.End,
			ContactId: e.ContactID,
			Location:  e.Location,
		})
	}
	return res
}

// ToOAPIDashboard maps dashboard counters.
func ToOAPIDashboard(d entities.Dashboard) oapi.Dashboard {
	return oapi.Dashboard{
		Contacts:          d.Contacts,
		OverdueFollowUps:  d.OverdueFollowUps,
		OpenOpportunities: d.OpenOpportunities,
		ReferralsByStatus: statusCounts(d.ReferralsByStatus),
		GoalsAchieved:     d.GoalsAchieved,
		GoalsOpen:         d.GoalsOpen,
	}
}

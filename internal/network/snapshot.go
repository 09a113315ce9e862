package network

import (
	"time"

	"pulse-network-organizer/internal/entities"
)

// Snapshot renders the graph with per-node metrics.
func (g *Graph) Snapshot(builtAt time.Time) entities.NetworkSnapshot {
	snap := entities.NetworkSnapshot{
		Nodes:       make([]entities.NetworkNode, 0, len(g.nodes)),
		Edges:       make([]entities.NetworkEdge, 0),
		Communities: g.Communities(),
		BuiltAt:     builtAt,
	}
	for i, n := range g.nodes {
		snap.Nodes = append(snap.Nodes, entities.NetworkNode{
			ID:         n.id,
			Name:       n.name,
			Company:    n.company,
			Degree:     len(g.adj[i]),
			Strength:   g.strength(i),
			Centrality: g.degreeCentrality(i),
			Community:  n.community,
		})
		for _, l := range g.adj[i] {
			if l.to < i {
				continue
			}
			shared := make([]string, len(l.shared))
			copy(shared, l.shared)
			snap.Edges = append(snap.Edges, entities.NetworkEdge{
				Source: n.id,
				Target: g.nodes[l.to].id,
				Weight: l.weight,
				Direct: l.direct,
				Shared: shared,
			})
		}
	}
	return snap
}

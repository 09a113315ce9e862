package network

import "sort"

// Centrality describes how well connected a single contact is.
type Centrality struct {
	ID       string
	Name     string
	Company  string
	Degree   int
	Strength int
	Score    float64
}

// Centrality returns degree centrality for every node, best connected first.
func (g *Graph) Centrality() []Centrality {
	res := make([]Centrality, 0, len(g.nodes))
	for i, n := range g.nodes {
		res = append(res, Centrality{
			ID:       n.id,
			Name:     n.name,
			Company:  n.company,
			Degree:   len(g.adj[i]),
			Strength: g.strength(i),
			Score:    g.degreeCentrality(i),
		})
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Degree != res[j].Degree {
			return res[i].Degree > res[j].Degree
		}
		if res[i].Strength != res[j].Strength {
			return res[i].Strength > res[j].Strength
		}
		return res[i].ID < res[j].ID
	})
	return res
}

// KeyConnectors returns the limit best connected contacts that have at least one link.
func (g *Graph) KeyConnectors(limit int) []Centrality {
	if limit <= 0 {
		return nil
	}
	all := g.Centrality()
	res := make([]Centrality, 0, limit)
	for _, c := range all {
		if len(res) == limit {
			break
		}
		if c.Degree == 0 {
			break
		}
		res = append(res, c)
	}
	return res
}

func (g *Graph) strength(i int) int {
	total := 0
	for _, l := range g.adj[i] {
		total += l.weight
	}
	return total
}

func (g *Graph) degreeCentrality(i int) float64 {
	if len(g.nodes) <= 1 {
		return 0
	}
	return float64(len(g.adj[i])) / float64(len(g.nodes)-1)
}

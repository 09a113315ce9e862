// Package network builds a contact graph from shared LinkedIn connection names
// and analyses it: centrality, communities and warm introduction paths.
package network

import (
	"sort"
	"strings"

	"pulse-network-organizer/internal/entities"
)

// directWeight is added when one contact lists the other among its connections.
const directWeight = 2

type node struct {
	id        string
	name      string
	company   string
	key       string
	conns     map[string]struct{}
	community int
}

type link struct {
	to     int
	weight int
	direct bool
	shared []string
}

// Graph is an undirected weighted contact graph. Node indices follow contact id order.
type Graph struct {
	nodes       []node
	index       map[string]int
	adj         [][]link
	communities [][]int
}

// Build constructs the graph for contacts.
func Build(contacts []entities.Contact) *Graph {
	sorted := make([]entities.Contact, len(contacts))
	copy(sorted, contacts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	g := &Graph{
		nodes: make([]node, 0, len(sorted)),
		index: make(map[string]int, len(sorted)),
	}
	for _, c := range sorted {
		if _, dup := g.index[c.ID]; dup {
			continue
		}
		conns := make(map[string]struct{}, len(c.LinkedInConnections))
		for _, raw := range c.LinkedInConnections {
			if k := nameKey(raw); k != "" {
				conns[k] = struct{}{}
			}
		}
		g.index[c.ID] = len(g.nodes)
		g.nodes = append(g.nodes, node{
			id:      c.ID,
			name:    c.Name,
			company: c.Company,
			key:     nameKey(c.Name),
			conns:   conns,
		})
	}

	g.adj = make([][]link, len(g.nodes))
	for i := range g.nodes {
		for j := i + 1; j < len(g.nodes); j++ {
			direct := g.listsEachOther(i, j)
			shared := sharedNames(g.nodes[i].conns, g.nodes[j].conns)
			weight := len(shared)
			if direct {
				weight += directWeight
			}
			if weight == 0 {
				continue
			}
			g.adj[i] = append(g.adj[i], link{to: j, weight: weight, direct: direct, shared: shared})
			g.adj[j] = append(g.adj[j], link{to: i, weight: weight, direct: direct, shared: shared})
		}
	}

	g.assignCommunities()
	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Has reports whether a contact id is part of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Name returns the display name of a node.
func (g *Graph) Name(id string) string {
	if i, ok := g.index[id]; ok {
		return g.nodes[i].name
	}
	return ""
}

// Weight returns the weight of the edge between a and b, 0 when unlinked.
func (g *Graph) Weight(a, b string) int {
	i, ok := g.index[a]
	if !ok {
		return 0
	}
	j, ok := g.index[b]
	if !ok {
		return 0
	}
	return g.weight(i, j)
}

func (g *Graph) weight(i, j int) int {
	for _, l := range g.adj[i] {
		if l.to == j {
			return l.weight
		}
	}
	return 0
}

func (g *Graph) listsEachOther(i, j int) bool {
	a, b := g.nodes[i], g.nodes[j]
	if a.key == "" || b.key == "" || a.key == b.key {
		return false
	}
	if _, ok := a.conns[b.key]; ok {
		return true
	}
	_, ok := b.conns[a.key]
	return ok
}

func sharedNames(a, b map[string]struct{}) []string {
	if len(b) < len(a) {
		a, b = b, a
	}
	var shared []string
	for k := range a {
		if _, ok := b[k]; ok {
			shared = append(shared, k)
		}
	}
	sort.Strings(shared)
	return shared
}

func nameKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

package network

import "sort"

// Communities returns connected groups of contact ids, largest first.
func (g *Graph) Communities() [][]string {
	res := make([][]string, 0, len(g.communities))
	for _, members := range g.communities {
		ids := make([]string, 0, len(members))
		for _, m := range members {
			ids = append(ids, g.nodes[m].id)
		}
		res = append(res, ids)
	}
	return res
}

// Community returns the community index of a contact, -1 when unknown.
func (g *Graph) Community(id string) int {
	if i, ok := g.index[id]; ok {
		return g.nodes[i].community
	}
	return -1
}

func (g *Graph) assignCommunities() {
	seen := make([]bool, len(g.nodes))
	var comps [][]int

	for start := range g.nodes {
		if seen[start] {
			continue
		}
		var members []int
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, cur)
			for _, l := range g.adj[cur] {
				if !seen[l.to] {
					seen[l.to] = true
					stack = append(stack, l.to)
				}
			}
		}
		sort.Ints(members)
		comps = append(comps, members)
	}

	// indices follow id order, so members[0] is the smallest id
	sort.SliceStable(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})

	for ci, members := range comps {
		for _, m := range members {
			g.nodes[m].community = ci
		}
	}
	g.communities = comps
}

package network

import (
	"fmt"
	"sort"
	"strings"

	"pulse-network-organizer/internal/entities"
)

const (
	// DefaultMaxDepth bounds introduction paths when the caller does not.
	DefaultMaxDepth = 3
	// MaxDepthCap is the deepest search allowed.
	MaxDepthCap = 6
	// DefaultPathLimit is the number of paths returned by default.
	DefaultPathLimit = 5

	// maxEnumerated stops the search in dense graphs.
	maxEnumerated = 10000
)

// IntroductionPaths finds warm introduction chains from one contact to another.
// Paths are simple, have at most maxDepth edges and are ordered by hop count,
// then by total edge weight, strongest first.
func (g *Graph) IntroductionPaths(from, to string, maxDepth, limit int) ([]entities.IntroductionPath, error) {
	if from == to {
		return nil, fmt.Errorf("%w: source and target must differ", entities.ErrInvalidArgument)
	}
	src, ok := g.index[from]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrContactNotFound, from)
	}
	dst, ok := g.index[to]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrContactNotFound, to)
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	maxDepth = min(maxDepth, MaxDepthCap)
	if limit <= 0 {
		limit = DefaultPathLimit
	}

	dist := g.distancesTo(dst)
	if dist[src] < 0 || dist[src] > maxDepth {
		return []entities.IntroductionPath{}, nil
	}

	s := &pathSearch{g: g, dst: dst, dist: dist, visited: make([]bool, len(g.nodes))}
	var found []rawPath

	// iterative deepening keeps shorter paths ahead of longer ones
	for depth := dist[src]; depth <= maxDepth && len(found) < limit; depth++ {
		s.depth = depth
		s.found = s.found[:0]
		s.visited[src] = true
		s.walk([]int{src}, 0)
		s.visited[src] = false

		batch := append([]rawPath(nil), s.found...)
		sort.SliceStable(batch, func(i, j int) bool {
			if batch[i].weight != batch[j].weight {
				return batch[i].weight > batch[j].weight
			}
			return g.pathKey(batch[i].nodes) < g.pathKey(batch[j].nodes)
		})
		found = append(found, batch...)
		if s.exhausted() {
			break
		}
	}

	if len(found) > limit {
		found = found[:limit]
	}
	res := make([]entities.IntroductionPath, 0, len(found))
	for _, p := range found {
		res = append(res, g.toPath(p))
	}
	return res, nil
}

type rawPath struct {
	nodes  []int
	weight int
}

type pathSearch struct {
	g          *Graph
	dst        int
	dist       []int
	visited    []bool
	depth      int
	found      []rawPath
	enumerated int
}

func (s *pathSearch) exhausted() bool {
	return s.enumerated >= maxEnumerated
}

func (s *pathSearch) walk(path []int, weight int) {
	if s.exhausted() {
		return
	}
	cur := path[len(path)-1]
	hops := len(path) - 1
	if cur == s.dst {
		if hops == s.depth {
			s.enumerated++
			s.found = append(s.found, rawPath{nodes: append([]int(nil), path...), weight: weight})
		}
		return
	}
	for _, l := range s.g.adj[cur] {
		if s.visited[l.to] {
			continue
		}
		if d := s.dist[l.to]; d < 0 || hops+1+d > s.depth {
			continue
		}
		s.visited[l.to] = true
		s.walk(append(path, l.to), weight+l.weight)
		s.visited[l.to] = false
	}
}

// distancesTo returns hop counts from every node to dst, -1 when unreachable.
func (g *Graph) distancesTo(dst int) []int {
	dist := make([]int, len(g.nodes))
	for i := range dist {
		dist[i] = -1
	}
	dist[dst] = 0
	queue := []int{dst}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, l := range g.adj[cur] {
			if dist[l.to] < 0 {
				dist[l.to] = dist[cur] + 1
				queue = append(queue, l.to)
			}
		}
	}
	return dist
}

func (g *Graph) pathKey(nodes []int) string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = g.nodes[n].id
	}
	return strings.Join(ids, "\x00")
}

func (g *Graph) toPath(p rawPath) entities.IntroductionPath {
	ids := make([]string, len(p.nodes))
	names := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		ids[i] = g.nodes[n].id
		names[i] = g.nodes[n].name
	}
	return entities.IntroductionPath{
		ContactIDs: ids,
		Names:      names,
		Hops:       len(p.nodes) - 1,
		Strength:   p.weight,
	}
}

package network

import (
	"testing"
	"time"

	"pulse-network-organizer/internal/entities"

	"github.com/stretchr/testify/require"
)

func fixture() []entities.Contact {
	return []entities.Contact{
		{ID: "c", Name: "Carol Chen", LinkedInConnections: []string{"Dave Diaz", "zed  ZIMMER"}},
		{ID: "a", Name: "Alice Adams", Company: "ETH", LinkedInConnections: []string{"bob brown", "Zed Zimmer"}},
		{ID: "b", Name: "Bob Brown", LinkedInConnections: []string{"Carol Chen"}},
		{ID: "d", Name: "Dave Diaz"},
		{ID: "e", Name: "Eve Evans", LinkedInConnections: []string{"Frank Fox", " "}},
		{ID: "f", Name: "Frank Fox"},
		{ID: "g", Name: "Gina Gold"},
	}
}

func TestBuildWeights(t *testing.T) {
	g := Build(fixture())

	require.Equal(t, 7, g.Len())
	require.Equal(t, 2, g.Weight("a", "b"))
	require.Equal(t, 1, g.Weight("a", "c"))
	require.Equal(t, 2, g.Weight("b", "c"))
	require.Equal(t, 2, g.Weight("c", "d"))
	require.Equal(t, 2, g.Weight("e", "f"))
	require.Zero(t, g.Weight("a", "d"))
	require.Zero(t, g.Weight("a", "missing"))
	require.Equal(t, g.Weight("c", "a"), g.Weight("a", "c"))
}

func TestSameNameContactsAreNotLinkedByName(t *testing.T) {
	g := Build([]entities.Contact{
		{ID: "1", Name: "Sam Lee", LinkedInConnections: []string{"sam lee"}},
		{ID: "2", Name: "Sam  Lee"},
	})
	require.Zero(t, g.Weight("1", "2"))
}

func TestCentralityOrdering(t *testing.T) {
	g := Build(fixture())
	cs := g.Centrality()

	ids := make([]string, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.ID)
	}
	require.Equal(t, []string{"c", "b", "a", "d", "e", "f", "g"}, ids)
	require.InDelta(t, 0.5, cs[0].Score, 1e-9)
	require.Equal(t, 5, cs[0].Strength)
	require.Zero(t, cs[len(cs)-1].Score)

	top := g.KeyConnectors(10)
	require.Len(t, top, 6, "isolated contacts are not connectors")
	require.Len(t, g.KeyConnectors(2), 2)
	require.Nil(t, g.KeyConnectors(0))
}

func TestCentralitySingleNode(t *testing.T) {
	g := Build([]entities.Contact{{ID: "solo", Name: "Solo"}})
	require.Zero(t, g.Centrality()[0].Score)
}

func TestCommunities(t *testing.T) {
	g := Build(fixture())
	require.Equal(t, [][]string{{"a", "b", "c", "d"}, {"e", "f"}, {"g"}}, g.Communities())
	require.Equal(t, 0, g.Community("d"))
	require.Equal(t, 1, g.Community("f"))
	require.Equal(t, 2, g.Community("g"))
	require.Equal(t, -1, g.Community("zzz"))
}

func TestIntroductionPaths(t *testing.T) {
	g := Build(fixture())

	paths, err := g.IntroductionPaths("a", "d", 3, 5)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	require.Equal(t, []string{"a", "c", "d"}, paths[0].ContactIDs)
	require.Equal(t, []string{"Alice Adams", "Carol Chen", "Dave Diaz"}, paths[0].Names)
	require.Equal(t, 2, paths[0].Hops)
	require.Equal(t, 3, paths[0].Strength)

	require.Equal(t, []string{"a", "b", "c", "d"}, paths[1].ContactIDs)
	require.Equal(t, 6, paths[1].Strength)

	short, err := g.IntroductionPaths("a", "d", 2, 5)
	require.NoError(t, err)
	require.Len(t, short, 1)

	limited, err := g.IntroductionPaths("a", "d", 3, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, 2, limited[0].Hops)
}

func TestIntroductionPathsSameHopsOrderedByStrength(t *testing.T) {
	g := Build([]entities.Contact{
		{ID: "s", Name: "Src", LinkedInConnections: []string{"Weak", "Strong", "x1", "x2"}},
		{ID: "w", Name: "Weak", LinkedInConnections: []string{"Dst"}},
		{ID: "k", Name: "Strong", LinkedInConnections: []string{"Dst", "x1", "x2"}},
		{ID: "t", Name: "Dst"},
	})

	paths, err := g.IntroductionPaths("s", "t", 0, 0)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	require.Equal(t, []string{"s", "k", "t"}, paths[0].ContactIDs)
	require.Equal(t, []string{"s", "w", "t"}, paths[1].ContactIDs)
	require.Greater(t, paths[0].Strength, paths[1].Strength)

	// weak and strong share "dst", so three-hop detours exist too
	require.Equal(t, []string{"s", "k", "w", "t"}, paths[2].ContactIDs)
	require.Equal(t, []string{"s", "w", "k", "t"}, paths[3].ContactIDs)
}

func TestIntroductionPathsErrors(t *testing.T) {
	g := Build(fixture())

	_, err := g.IntroductionPaths("a", "a", 3, 5)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = g.IntroductionPaths("a", "nobody", 3, 5)
	require.ErrorIs(t, err, entities.ErrContactNotFound)

	paths, err := g.IntroductionPaths("a", "e", 6, 5)
	require.NoError(t, err)
	require.Empty(t, paths)
}

func TestSnapshot(t *testing.T) {
	g := Build(fixture())
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	snap := g.Snapshot(at)

	require.Equal(t, at, snap.BuiltAt)
	require.Len(t, snap.Nodes, 7)
	require.Len(t, snap.Edges, 5)
	require.Len(t, snap.Communities, 3)

	for _, e := range snap.Edges {
		require.Less(t, e.Source, e.Target)
		if e.Source == "a" && e.Target == "c" {
			require.False(t, e.Direct)
			require.Equal(t, []string{"zed zimmer"}, e.Shared)
		}
	}
	require.Equal(t, "ETH", snap.Nodes[0].Company)
}

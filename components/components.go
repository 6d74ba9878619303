// Package components groups the vertices of a core.Graph into weakly
// connected components, treating every edge as undirected.
//
// Weak connectivity is a necessary condition for reachability: if two
// vertices fall in different components, no search can join them. The
// converse does not hold on directed graphs (see dataset city 21).
package components

import (
	"errors"
	"sort"

	uf "github.com/spakin/disjoint"

	"github.com/katalvlaran/bfsroute/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("components: graph is nil")

// Weak returns the weakly connected components of g. Each component is
// sorted lexicographically, and components are ordered by their first ID.
//
// Complexity: O((V + E)·α(V)) for the unions, plus O(V log V) for sorting.
func Weak(g *core.Graph) ([][]string, error) {
	sets, err := partition(g)
	if err != nil {
		return nil, err
	}

	groups := make(map[*uf.Element][]string)
	for id, el := range sets {
		rep := el.Find()
		groups[rep] = append(groups[rep], id)
	}
	out := make([][]string, 0, len(groups))
	for _, ids := range groups {
		sort.Strings(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out, nil
}

// Connected reports whether a and b lie in the same weak component.
// Unknown IDs are connected to nothing, including themselves.
func Connected(g *core.Graph, a, b string) (bool, error) {
	sets, err := partition(g)
	if err != nil {
		return false, err
	}
	ea, okA := sets[a]
	eb, okB := sets[b]
	if !okA || !okB {
		return false, nil
	}

	return ea.Find() == eb.Find(), nil
}

// partition builds one union-find element per vertex and unions the
// endpoints of every edge.
func partition(g *core.Graph) (map[string]*uf.Element, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	sets := make(map[string]*uf.Element, g.VertexCount())
	for _, id := range g.Vertices() {
		el := uf.NewElement()
		el.Data = id
		sets[id] = el
	}
	for _, e := range g.Edges() {
		uf.Union(sets[e.From], sets[e.To])
	}

	return sets, nil
}

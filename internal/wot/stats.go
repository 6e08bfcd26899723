package wot

import "sort"

// HubNode is a node with high connectivity.
type HubNode struct {
	ID        NodeID `json:"id"`
	Label     Label  `json:"-"`
	Degree    int    `json:"degree"`
	InDegree  int    `json:"in_degree"`
	OutDegree int    `json:"out_degree"`
}

// DegreeBucket is one bucket in the degree histogram.
type DegreeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// GraphStats summarizes a trust graph: sizes, relation split, connectivity
// and the most connected identities.
type GraphStats struct {
	Nodes             int            `json:"nodes"`
	Edges             int            `json:"edges"`
	Follows           int            `json:"follows"`
	Mutes             int            `json:"mutes"`
	Components        int            `json:"components"`
	LargestComponent  int            `json:"largest_component"`
	Orphans           int            `json:"orphans"`
	DegreeHistogram   []DegreeBucket `json:"degree_histogram"`
	Hubs              []HubNode      `json:"hubs"`
}

// Stats analyzes the graph. hubThreshold is the minimum total degree for a
// node to count as a hub; topN caps the hub list.
func (g *Graph) Stats(hubThreshold, topN int) *GraphStats {
	stats := &GraphStats{
		Nodes:           g.nodeCount,
		Edges:           g.edgeCount,
		DegreeHistogram: defaultHistogram(),
	}
	if g.nodeCount == 0 {
		return stats
	}

	inDegree := make([]int, len(g.nodes))
	uf := newUnionFind(len(g.nodes))
	for _, e := range g.edges {
		if e == nil {
			continue
		}
		if e.Relation == Follow {
			stats.Follows++
		} else {
			stats.Mutes++
		}
		inDegree[e.Target]++
		uf.union(int(e.Source), int(e.Target))
	}

	componentSize := make(map[int]int)
	for id, n := range g.nodes {
		if n == nil {
			continue
		}
		componentSize[uf.find(id)]++

		out := len(g.out[id])
		degree := out + inDegree[id]
		stats.DegreeHistogram[degreeBucket(degree)].Count++
		if degree == 0 {
			stats.Orphans++
		}
		if degree > hubThreshold {
			stats.Hubs = append(stats.Hubs, HubNode{
				ID:        n.ID,
				Label:     n.Label,
				Degree:    degree,
				InDegree:  inDegree[id],
				OutDegree: out,
			})
		}
	}

	stats.Components = len(componentSize)
	for _, size := range componentSize {
		if size > stats.LargestComponent {
			stats.LargestComponent = size
		}
	}

	sort.Slice(stats.Hubs, func(i, j int) bool {
		if stats.Hubs[i].Degree != stats.Hubs[j].Degree {
			return stats.Hubs[i].Degree > stats.Hubs[j].Degree
		}
		return stats.Hubs[i].ID < stats.Hubs[j].ID
	})
	if len(stats.Hubs) > topN {
		stats.Hubs = stats.Hubs[:topN]
	}

	return stats
}

func defaultHistogram() []DegreeBucket {
	return []DegreeBucket{
		{Label: "0"}, {Label: "1"}, {Label: "2-3"},
		{Label: "4-7"}, {Label: "8-15"}, {Label: "16-31"}, {Label: "32+"},
	}
}

func degreeBucket(degree int) int {
	switch {
	case degree == 0:
		return 0
	case degree == 1:
		return 1
	case degree <= 3:
		return 2
	case degree <= 7:
		return 3
	case degree <= 15:
		return 4
	case degree <= 31:
		return 5
	default:
		return 6
	}
}

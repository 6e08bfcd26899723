package wot

// DumpWot computes the trust score from source to target, considering only
// paths of at most hopLimit edges. The traversal is a level-bounded BFS that
// expands along outgoing follow and mute edges; every edge into target found
// within the budget contributes +1 (follow) or -1 (mute) once per path that
// reaches it. Paths are not deduplicated: two routes through different
// intermediaries to the same edge count twice, since the score tallies votes
// flowing through the network, not distinct edges.
//
// A node's score of itself is 0, a hop limit of 0 always scores 0, and ids
// not present in the graph simply contribute nothing. The hop limit bounds
// termination on cyclic graphs.
func (g *Graph) DumpWot(source, target NodeID, hopLimit uint32) int64 {
	if source == target {
		return 0
	}

	// frontier maps a node id to the number of distinct paths from source
	// that end at it after the current number of hops.
	frontier := map[NodeID]int64{source: 1}
	var score int64

	for hop := uint32(0); hop < hopLimit && len(frontier) > 0; hop++ {
		next := make(map[NodeID]int64, len(frontier))
		for id, paths := range frontier {
			if int(id) >= len(g.out) {
				continue
			}
			for _, eid := range g.out[id] {
				e := g.edges[eid]
				if e.Target == target {
					if e.Relation == Follow {
						score += paths
					} else {
						score -= paths
					}
				}
				next[e.Target] += paths
			}
		}
		frontier = next
	}
	return score
}

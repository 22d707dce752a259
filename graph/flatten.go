package graph

import "github.com/gaorex/asflatten/internal/stage"

// FlattenGraph assigns each ASN a propagation rank: every provider of an
// ASN ends up with a strictly higher rank, so upward propagation can
// visit ranks in ascending order. It computes the longest path in the
// customer DAG via BFS relaxation, seeded from every AS with no
// customers (rank 0) and pushed upward through provider edges.
//
// The relaxation loop is capped at 3*len(Nodes) iterations as a safety
// net for cyclic input that slipped past cycle detection; on a DAG this
// cap is never hit. An isolated ASN has no customers, so it is seeded at
// rank 0 like any other customer-less ASN. Any ASN that never receives a
// rank (unreachable from the customer-empty seed set) is excluded from
// propagation entirely.
func (g *Graph) FlattenGraph() {
	g.PropagationRanks = nil

	rank := make(map[int]int, len(g.Nodes))
	for asn, node := range g.Nodes {
		rank[asn] = UnrankedRank
		node.Rank = UnrankedRank
	}

	queue := make([]int, 0, len(g.Nodes))
	for asn, node := range g.Nodes {
		if len(node.Customers) == 0 {
			rank[asn] = 0
			node.Rank = 0
			queue = append(queue, asn)
		}
	}

	inQueue := make(map[int]struct{}, len(queue))
	for _, asn := range queue {
		inQueue[asn] = struct{}{}
	}

	maxIterations := len(g.Nodes) * 3
	iterations := 0
	for len(queue) > 0 && iterations < maxIterations {
		currentASN := queue[0]
		queue = queue[1:]
		delete(inQueue, currentASN)

		currentRank := rank[currentASN]
		for providerASN := range g.Nodes[currentASN].Providers {
			providerNode, ok := g.Nodes[providerASN]
			if !ok {
				continue
			}
			if rank[providerASN] < currentRank+1 {
				rank[providerASN] = currentRank + 1
				providerNode.Rank = currentRank + 1
				if _, already := inQueue[providerASN]; !already {
					queue = append(queue, providerASN)
					inQueue[providerASN] = struct{}{}
				}
			}
		}
		iterations++
	}

	maxRank := -1
	for _, r := range rank {
		if r > maxRank {
			maxRank = r
		}
	}

	if maxRank >= 0 {
		g.PropagationRanks = make([][]int, maxRank+1)
		for asn, r := range rank {
			if r >= 0 {
				g.PropagationRanks[r] = append(g.PropagationRanks[r], asn)
			}
		}
	}

	g.log.Infof("flattened graph into %d propagation rank(s)", len(g.PropagationRanks))
	g.Stage = stage.Flattened
}

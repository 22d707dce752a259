package graph

// RouteCount returns the total number of RIB entries installed across
// every AS in the graph — the Go equivalent of the original simulator's
// ASGraph::printStats route tally. This engine is strictly single-
// threaded (spec §5), so the tally is a plain sum, no counter type needed.
func (g *Graph) RouteCount() int {
	total := 0
	for _, node := range g.Nodes {
		if node.Policy != nil {
			total += len(node.Policy.RIB())
		}
	}
	return total
}

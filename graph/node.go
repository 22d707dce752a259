package graph

import "github.com/gaorex/asflatten/policy"

// UnrankedRank is the sentinel propagation rank for a node flattening
// never assigned — a node unreachable from the customer-empty seed set.
// Isolated nodes have no customers and are therefore ranked 0.
const UnrankedRank = -1

// Node is a single AS: its identity, its three (pairwise disjoint)
// neighbor sets, its propagation rank, and its exclusively owned policy.
type Node struct {
	ASN       int
	Providers map[int]struct{}
	Customers map[int]struct{}
	Peers     map[int]struct{}
	Rank      int
	Policy    policy.Policy
}

func newNode(asn int) *Node {
	return &Node{
		ASN:       asn,
		Providers: make(map[int]struct{}),
		Customers: make(map[int]struct{}),
		Peers:     make(map[int]struct{}),
		Rank:      UnrankedRank,
	}
}

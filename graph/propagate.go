package graph

import (
	"github.com/gaorex/asflatten/announcement"
	"github.com/gaorex/asflatten/internal/stage"
	"github.com/gaorex/asflatten/policy"
)

// InitializeBGPPolicies gives every node a plain BGP policy, replacing
// any policy already present.
func (g *Graph) InitializeBGPPolicies() {
	for _, node := range g.Nodes {
		node.Policy = policy.NewBGP()
	}
}

// InitializePolicies gives every ASN in rovASNs a ROV policy, and every
// other node a plain BGP policy, replacing any policy already present.
func (g *Graph) InitializePolicies(rovASNs map[int]struct{}) {
	for asn, node := range g.Nodes {
		if _, isROV := rovASNs[asn]; isROV {
			node.Policy = policy.NewROV()
		} else {
			node.Policy = policy.NewBGP()
		}
	}
}

// SeedAnnouncement originates prefix at asn, if asn exists and has a
// policy. A no-op otherwise (malformed-record semantics per spec §7).
func (g *Graph) SeedAnnouncement(asn int, prefix string, rovInvalid bool) {
	node, ok := g.Nodes[asn]
	if !ok || node.Policy == nil {
		return
	}
	node.Policy.SeedAnnouncement(prefix, asn, rovInvalid)
	if g.Stage == stage.Flattened {
		g.Stage = stage.Seeded
	}
}

// PropagateAnnouncements runs the three propagation phases in sequence:
// upward to providers, across to peers, downward to customers. Running
// it again on an already-converged graph is idempotent — every RIB stays
// as it is, since no candidate can still beat what's installed.
//
// It panics if called before FlattenGraph has run (g.Stage hasn't reached
// stage.Flattened) — an internal assertion, not user-facing validation: a
// correctly driven CLI always flattens before propagating, so this only
// fires against a caller misusing the package.
func (g *Graph) PropagateAnnouncements() {
	if !g.Stage.Reached(stage.Flattened) {
		panic("graph: PropagateAnnouncements called before FlattenGraph")
	}
	g.propagateUpward()
	g.propagateAcross()
	g.propagateDownward()
	g.Stage = stage.Converged
}

// exportTo sends every announcement in sender's RIB to receiver, tagging
// each copy with rel and the sender's ASN, skipping the split-horizon
// case (never send a route back to the neighbor it was just learned
// from).
func exportTo(sender, receiver *Node, rel announcement.Relationship) {
	if sender.Policy == nil || receiver.Policy == nil {
		return
	}
	for _, a := range sender.Policy.AnnouncementsToSend() {
		if a.NextHopASN == receiver.ASN {
			continue
		}
		receiver.Policy.AddToReceivedQueue(a.Prefix, a.CreatePropagated(sender.ASN, rel))
	}
}

func (g *Graph) propagateUpward() {
	for _, rankLayer := range g.PropagationRanks {
		for _, asn := range rankLayer {
			sender, ok := g.Nodes[asn]
			if !ok {
				continue
			}
			for providerASN := range sender.Providers {
				if provider, ok := g.Nodes[providerASN]; ok {
					exportTo(sender, provider, announcement.Customer)
				}
			}
		}

		processed := make(map[int]struct{})
		for _, asn := range rankLayer {
			node, ok := g.Nodes[asn]
			if !ok {
				continue
			}
			for providerASN := range node.Providers {
				if _, done := processed[providerASN]; done {
					continue
				}
				if provider, ok := g.Nodes[providerASN]; ok && provider.Policy != nil {
					provider.Policy.ProcessAnnouncements(providerASN)
				}
				processed[providerASN] = struct{}{}
			}
		}
	}
}

func (g *Graph) propagateAcross() {
	for _, sender := range g.Nodes {
		for peerASN := range sender.Peers {
			if peer, ok := g.Nodes[peerASN]; ok {
				exportTo(sender, peer, announcement.Peer)
			}
		}
	}
	for asn, node := range g.Nodes {
		if node.Policy != nil {
			node.Policy.ProcessAnnouncements(asn)
		}
	}
}

func (g *Graph) propagateDownward() {
	for rank := len(g.PropagationRanks) - 1; rank >= 0; rank-- {
		rankLayer := g.PropagationRanks[rank]
		for _, asn := range rankLayer {
			sender, ok := g.Nodes[asn]
			if !ok {
				continue
			}
			for customerASN := range sender.Customers {
				if customer, ok := g.Nodes[customerASN]; ok {
					exportTo(sender, customer, announcement.Provider)
				}
			}
		}

		processed := make(map[int]struct{})
		for _, asn := range rankLayer {
			node, ok := g.Nodes[asn]
			if !ok {
				continue
			}
			for customerASN := range node.Customers {
				if _, done := processed[customerASN]; done {
					continue
				}
				if customer, ok := g.Nodes[customerASN]; ok && customer.Policy != nil {
					customer.Policy.ProcessAnnouncements(customerASN)
				}
				processed[customerASN] = struct{}{}
			}
		}
	}
}

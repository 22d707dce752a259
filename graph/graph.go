// Package graph implements the AS graph: ingest, cycle validation, rank
// flattening, policy seeding, the three-phase propagation protocol, and
// RIB output — the core of the simulator.
package graph

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gaorex/asflatten/internal/stage"
)

// relationship tags as they appear in CAIDA-format relationship files.
const (
	tagProvider = -1
	tagPeer     = 0
	tagSibling  = 1
)

// Graph holds every AS touched by the dataset, keyed by ASN, plus the
// rank layering flattening computes.
type Graph struct {
	Nodes            map[int]*Node
	PropagationRanks [][]int
	Stage            stage.Stage

	log logrus.FieldLogger
}

// New returns an empty Graph. log may be nil, in which case a
// logrus.FieldLogger that discards output is used.
func New(log logrus.FieldLogger) *Graph {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Graph{
		Nodes: make(map[int]*Node),
		log:   log,
	}
}

// getOrCreateNode returns the node for asn, creating an empty one (no
// policy, rank unassigned) on first reference.
func (g *Graph) getOrCreateNode(asn int) *Node {
	n, ok := g.Nodes[asn]
	if !ok {
		n = newNode(asn)
		g.Nodes[asn] = n
	}
	return n
}

// AddRelationship mutates the neighbor sets of as1 and as2 according to
// relationship (CAIDA encoding: -1 provider-to-customer, 0 peer-to-peer,
// 1 sibling treated as peer). Any other value is ignored. Both ASes are
// created if not already present. Relationship ingest is idempotent:
// re-adding the same record is a no-op thanks to set semantics.
func (g *Graph) AddRelationship(as1, as2, relationship int) {
	node1 := g.getOrCreateNode(as1)
	node2 := g.getOrCreateNode(as2)

	switch relationship {
	case tagProvider:
		node1.Customers[as2] = struct{}{}
		node2.Providers[as1] = struct{}{}
	case tagPeer, tagSibling:
		node1.Peers[as2] = struct{}{}
		node2.Peers[as1] = struct{}{}
	default:
		// unknown relationship tag: silently ignored, no edge added.
	}
}

// LoadRelationships reads pipe-delimited relationship records from r:
// as1|as2|relationship|source, one per line. Empty lines and lines
// starting with '#' are ignored; source is opaque and discarded.
// Malformed records (wrong field count, unparseable integers) are
// silently skipped, with a count reported at Warn level if any were.
func (g *Graph) LoadRelationships(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	var lines, skipped int
	for scanner.Scan() {
		line := scanner.Text()
		lines++
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) != 4 {
			skipped++
			continue
		}
		as1, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
		as2, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
		rel, err3 := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			skipped++
			continue
		}
		g.AddRelationship(as1, as2, rel)
	}
	if err := scanner.Err(); err != nil {
		return newIOError("reading relationships", err)
	}
	if skipped > 0 {
		g.log.Warnf("skipped %d malformed relationship record(s) out of %d lines", skipped, lines)
	}
	g.log.Infof("loaded %d AS(es) from relationship data", len(g.Nodes))
	g.Stage = stage.Loaded
	return nil
}

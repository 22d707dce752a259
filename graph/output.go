package graph

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteRIBCSV writes one row per RIB entry across every node, in the
// format `asn,prefix,"(p1, p2, …, pk)"` with a header row of
// `asn,prefix,as_path`. A single-element path gets a trailing comma
// before the closing paren, matching the original simulator's quirky
// format exactly. ASNs are emitted in ascending order for determinism;
// row order within an ASN is not specified by spec and is left as
// prefix-sorted here purely for reproducible output.
func (g *Graph) WriteRIBCSV(w io.Writer) error {
	bw := newRowWriter(w)
	if err := bw.writeLine("asn,prefix,as_path"); err != nil {
		return err
	}

	asns := make([]int, 0, len(g.Nodes))
	for asn, node := range g.Nodes {
		if node.Policy != nil {
			asns = append(asns, asn)
		}
	}
	sort.Ints(asns)

	for _, asn := range asns {
		node := g.Nodes[asn]
		prefixes := make([]string, 0, len(node.Policy.RIB()))
		for prefix := range node.Policy.RIB() {
			prefixes = append(prefixes, prefix)
		}
		sort.Strings(prefixes)

		for _, prefix := range prefixes {
			a, _ := node.Policy.RIB().Get(prefix)
			if err := bw.writeLine(fmt.Sprintf("%d,%s,%q", asn, prefix, formatASPath(a.ASPath))); err != nil {
				return err
			}
		}
	}
	return bw.err
}

// formatASPath renders an AS path as "(p1, p2, …, pk)", with a trailing
// comma before the closing paren when the path has exactly one element.
func formatASPath(path []int) string {
	parts := make([]string, len(path))
	for i, asn := range path {
		parts[i] = strconv.Itoa(asn)
	}
	joined := strings.Join(parts, ", ")
	if len(path) == 1 {
		joined += ","
	}
	return "(" + joined + ")"
}

// rowWriter writes newline-terminated lines, latching the first error it
// hits so callers can check it once at the end instead of after every
// write.
type rowWriter struct {
	w   io.Writer
	err error
}

func newRowWriter(w io.Writer) *rowWriter {
	return &rowWriter{w: w}
}

func (r *rowWriter) writeLine(line string) error {
	if r.err != nil {
		return r.err
	}
	_, r.err = fmt.Fprintln(r.w, line)
	return r.err
}

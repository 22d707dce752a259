// Package dataset implements the file-format glue spec.md treats as
// external: CAIDA-format relationship files, announcement CSVs, and ROV
// ASN lists. It is thin I/O around the graph package's in-memory
// operations, kept separate so those operations stay testable against
// an io.Reader without touching the filesystem.
package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gaorex/asflatten/graph"
)

// LoadRelationships opens path and feeds it to g.LoadRelationships.
func LoadRelationships(path string, g *graph.Graph) error {
	f, err := os.Open(path)
	if err != nil {
		return graph.WrapIOError("opening relationships file", err)
	}
	defer f.Close()
	return g.LoadRelationships(f)
}

// LoadAnnouncements reads the announcements CSV at path and seeds each
// row into g. Format per spec §6: header row skipped, fields
// `asn,prefix,rov_invalid`. rov_invalid parses "true"/"True" as true,
// "false"/"False" as false, and otherwise "1" as true and anything else
// as false. Trailing \r on any field is stripped. Rows whose ASN is not
// present in the graph (or has no policy yet) are silently ignored, per
// spec §7's malformed-record handling.
func LoadAnnouncements(path string, g *graph.Graph, log logrus.FieldLogger) error {
	f, err := os.Open(path)
	if err != nil {
		return graph.WrapIOError("opening announcements file", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; they're skipped below

	var seeded, skipped int
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if first {
			first = false
			continue // header row
		}
		if len(record) < 3 {
			skipped++
			continue
		}
		asnStr := strings.TrimSuffix(strings.TrimSpace(record[0]), "\r")
		prefix := strings.TrimSuffix(strings.TrimSpace(record[1]), "\r")
		rovStr := strings.TrimSuffix(strings.TrimSpace(record[2]), "\r")

		asn, err := strconv.Atoi(asnStr)
		if err != nil {
			skipped++
			continue
		}
		rovInvalid := parseROVInvalid(rovStr)
		g.SeedAnnouncement(asn, prefix, rovInvalid)
		seeded++
	}

	if log != nil {
		log.Infof("passed %d announcement row(s) to seeding, skipped %d malformed row(s)", seeded, skipped)
	}
	return nil
}

func parseROVInvalid(s string) bool {
	switch s {
	case "true", "True":
		return true
	case "false", "False":
		return false
	default:
		return s == "1"
	}
}

// LoadROVASNs reads one integer ASN per line from path. Malformed and
// blank lines are silently skipped; trailing \r is stripped.
func LoadROVASNs(path string) (map[int]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, graph.WrapIOError("opening ROV ASN list", err)
	}
	defer f.Close()

	rovASNs := make(map[int]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		asn, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		rovASNs[asn] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, graph.WrapIOError("reading ROV ASN list", err)
	}
	return rovASNs, nil
}

// Command asflatten runs one Gao-Rexford/ROV propagation pass over an AS
// relationship graph and prints the resulting RIB as CSV. It is the
// simulator's only driver — the engine itself (package graph) never
// touches the filesystem.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gaorex/asflatten/dataset"
	"github.com/gaorex/asflatten/graph"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout *os.File) int {
	fs := flag.NewFlagSet("asflatten", flag.ContinueOnError)
	relationshipsPath := fs.String("relationships", "", "path to a CAIDA-format AS relationship file (required)")
	announcementsPath := fs.String("announcements", "", "path to an announcement seed CSV (required)")
	rovASNsPath := fs.String("rov-asns", "", "path to a newline-delimited list of ASNs that run ROV (required)")
	outputPath := fs.String("output", "", "path to write the resulting RIB CSV (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *relationshipsPath == "" || *announcementsPath == "" || *rovASNsPath == "" {
		log.Error("--relationships, --announcements, and --rov-asns are all required")
		fs.Usage()
		return 1
	}

	g := graph.New(log)

	if err := dataset.LoadRelationships(*relationshipsPath, g); err != nil {
		log.WithError(err).Error("failed to load relationships")
		return 1
	}

	if g.HasProviderCycle() {
		log.WithError(graph.NewTopologyError("provider cycle detected")).Error("topology is invalid")
		return 1
	}
	if g.HasCustomerCycle() {
		log.WithError(graph.NewTopologyError("customer cycle detected")).Error("topology is invalid")
		return 1
	}

	rovASNs, err := dataset.LoadROVASNs(*rovASNsPath)
	if err != nil {
		log.WithError(err).Error("failed to load ROV ASN list")
		return 1
	}
	g.InitializePolicies(rovASNs)
	log.Infof("initialized policies: %d AS(es) run ROV", len(rovASNs))

	g.FlattenGraph()

	if err := dataset.LoadAnnouncements(*announcementsPath, g, log); err != nil {
		log.WithError(err).Error("failed to load announcements")
		return 1
	}

	log.Infof("seeded %d route(s) prior to propagation", g.RouteCount())

	g.PropagateAnnouncements()

	log.Infof("converged with %d route(s) installed across %d AS(es)", g.RouteCount(), len(g.Nodes))

	out := stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			log.WithError(graph.WrapIOError("creating output file", err)).Error("failed to write RIB")
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := g.WriteRIBCSV(out); err != nil {
		log.WithError(graph.WrapIOError("writing RIB output", err)).Error("failed to write RIB")
		return 1
	}

	return 0
}

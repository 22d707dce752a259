package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRunProducesRIBOutput(t *testing.T) {
	rel := writeFixture(t, "rel.txt", "1|2|-1|bgp\n")
	ann := writeFixture(t, "ann.csv", "asn,prefix,rov_invalid\n2,10.0.0.0/24,false\n")
	rov := writeFixture(t, "rov.txt", "")
	out := filepath.Join(t.TempDir(), "rib.csv")

	code := run([]string{
		"--relationships", rel,
		"--announcements", ann,
		"--rov-asns", rov,
		"--output", out,
	}, os.Stdout)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "1,10.0.0.0/24") {
		t.Fatalf("expected AS1 to have learned 10.0.0.0/24, got:\n%s", data)
	}
}

func TestRunRequiresAllThreeFlags(t *testing.T) {
	code := run([]string{"--relationships", "x.txt"}, os.Stdout)
	if code != 1 {
		t.Fatalf("expected exit code 1 for missing required flags, got %d", code)
	}
}

func TestRunFailsOnProviderCycle(t *testing.T) {
	rel := writeFixture(t, "rel.txt", "1|2|-1|bgp\n2|3|-1|bgp\n3|1|-1|bgp\n")
	ann := writeFixture(t, "ann.csv", "asn,prefix,rov_invalid\n")
	rov := writeFixture(t, "rov.txt", "")

	code := run([]string{
		"--relationships", rel,
		"--announcements", ann,
		"--rov-asns", rov,
	}, os.Stdout)
	if code != 1 {
		t.Fatalf("expected exit code 1 for a provider cycle, got %d", code)
	}
}

func TestRunFailsOnMissingRelationshipsFile(t *testing.T) {
	ann := writeFixture(t, "ann.csv", "asn,prefix,rov_invalid\n")
	rov := writeFixture(t, "rov.txt", "")

	code := run([]string{
		"--relationships", filepath.Join(t.TempDir(), "missing.txt"),
		"--announcements", ann,
		"--rov-asns", rov,
	}, os.Stdout)
	if code != 1 {
		t.Fatalf("expected exit code 1 for a missing relationships file, got %d", code)
	}
}

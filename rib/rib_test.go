package rib

import (
	"testing"

	"github.com/gaorex/asflatten/announcement"
)

func TestReplaceIfBetterInstallsFirstEntry(t *testing.T) {
	table := New()
	a := announcement.New("1.2.0.0/16", 5, false)
	if !table.ReplaceIfBetter(a) {
		t.Error("expected first entry to install")
	}
	got, ok := table.Get("1.2.0.0/16")
	if !ok || got.NextHopASN != 5 {
		t.Errorf("expected installed entry with next hop 5, got %+v ok=%v", got, ok)
	}
}

func TestReplaceIfBetterRejectsWorseCandidate(t *testing.T) {
	table := New()
	origin := announcement.New("1.2.0.0/16", 5, false)
	table.Set(origin)

	worse := origin.CreatePropagated(9, announcement.Provider).WithPrependedPath(9)
	if table.ReplaceIfBetter(worse) {
		t.Error("a provider-learned route must not displace an origin entry")
	}
	got, _ := table.Get("1.2.0.0/16")
	if got.ReceivedFrom != announcement.Origin {
		t.Errorf("origin entry was displaced: %+v", got)
	}
}

// Package policy implements the per-AS route selection behavior: plain
// BGP and BGP+ROV. Both variants share one capability interface so
// propagation code never has to downcast to find "the BGP view" of a
// policy (see spec's design note against dynamic downcasting).
package policy

import (
	"github.com/gaorex/asflatten/announcement"
	"github.com/gaorex/asflatten/rib"
)

// Kind identifies which variant a Policy is, for reporting purposes only
// (never for branching inside the propagation engine).
type Kind int

const (
	KindBGP Kind = iota
	KindROV
)

func (k Kind) String() string {
	if k == KindROV {
		return "ROV"
	}
	return "BGP"
}

// Policy is the uniform capability set every AS's policy supports,
// regardless of variant.
type Policy interface {
	// AddToReceivedQueue enqueues a candidate announcement for prefix,
	// to be considered the next time ProcessAnnouncements runs.
	AddToReceivedQueue(prefix string, a announcement.Announcement)

	// ProcessAnnouncements prepends currentASN to every queued candidate,
	// selects the best one per prefix, and installs it into the local RIB
	// if it's new or strictly better than what's installed. The received
	// queue is emptied afterward regardless of whether anything changed.
	ProcessAnnouncements(currentASN int)

	// AnnouncementsToSend returns a fresh copy of the current local RIB's
	// contents, in no particular order.
	AnnouncementsToSend() []announcement.Announcement

	// SeedAnnouncement installs an AS's own origination for prefix,
	// overwriting any existing entry. A ROV policy refuses to seed a
	// route flagged rovInvalid.
	SeedAnnouncement(prefix string, originASN int, rovInvalid bool)

	// RIB exposes the local RIB for output/reporting.
	RIB() rib.Table

	// Kind reports which variant this is.
	Kind() Kind
}

// BGP is the default policy: no origin validation, Gao-Rexford preference
// via announcement.Announcement.IsBetterThan.
type BGP struct {
	localRIB      rib.Table
	receivedQueue map[string][]announcement.Announcement
}

// NewBGP returns an empty BGP policy.
func NewBGP() *BGP {
	return &BGP{
		localRIB:      rib.New(),
		receivedQueue: make(map[string][]announcement.Announcement),
	}
}

// AddToReceivedQueue implements Policy.
func (b *BGP) AddToReceivedQueue(prefix string, a announcement.Announcement) {
	b.receivedQueue[prefix] = append(b.receivedQueue[prefix], a)
}

// ProcessAnnouncements implements Policy.
func (b *BGP) ProcessAnnouncements(currentASN int) {
	for _, queued := range b.receivedQueue {
		if len(queued) == 0 {
			continue
		}
		candidates := make([]announcement.Announcement, len(queued))
		for i, a := range queued {
			candidates[i] = a.WithPrependedPath(currentASN)
		}
		best := announcement.Best(candidates)
		b.localRIB.ReplaceIfBetter(best)
	}
	b.receivedQueue = make(map[string][]announcement.Announcement)
}

// AnnouncementsToSend implements Policy.
func (b *BGP) AnnouncementsToSend() []announcement.Announcement {
	out := make([]announcement.Announcement, 0, len(b.localRIB))
	for _, a := range b.localRIB {
		a.ASPath = append([]int(nil), a.ASPath...)
		out = append(out, a)
	}
	return out
}

// SeedAnnouncement implements Policy.
func (b *BGP) SeedAnnouncement(prefix string, originASN int, rovInvalid bool) {
	b.localRIB.Set(announcement.New(prefix, originASN, rovInvalid))
}

// RIB implements Policy.
func (b *BGP) RIB() rib.Table {
	return b.localRIB
}

// Kind implements Policy.
func (b *BGP) Kind() Kind {
	return KindBGP
}

// ROV extends BGP with origin validation: it refuses to seed or enqueue
// any announcement flagged ROVInvalid.
type ROV struct {
	*BGP
}

// NewROV returns an empty ROV policy.
func NewROV() *ROV {
	return &ROV{BGP: NewBGP()}
}

// AddToReceivedQueue overrides BGP: drops ROV-invalid announcements
// silently, otherwise defers to BGP.
func (r *ROV) AddToReceivedQueue(prefix string, a announcement.Announcement) {
	if a.ROVInvalid {
		return
	}
	r.BGP.AddToReceivedQueue(prefix, a)
}

// SeedAnnouncement overrides BGP: refuses to originate an invalid route,
// otherwise defers to BGP.
func (r *ROV) SeedAnnouncement(prefix string, originASN int, rovInvalid bool) {
	if rovInvalid {
		return
	}
	r.BGP.SeedAnnouncement(prefix, originASN, rovInvalid)
}

// Kind overrides BGP.
func (r *ROV) Kind() Kind {
	return KindROV
}

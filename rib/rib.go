// Package rib names the routing table a policy owns: one best route per
// prefix, persisting across propagation phases.
//
// This engine models only the Loc-RIB half of a real speaker's three-way
// split (Adj-RIB-In / Loc-RIB / Adj-RIB-Out): candidate routes arriving in
// the current phase live in the policy's received queue (a transient,
// per-phase structure discarded once processed), and the routes a policy
// exports are just its current Table, re-read fresh every phase — there
// is no separate Adj-RIB-Out to maintain.
package rib

import "github.com/gaorex/asflatten/announcement"

// Table is the local RIB: the one best announcement installed per prefix.
type Table map[string]announcement.Announcement

// New returns an empty Table.
func New() Table {
	return make(Table)
}

// Get returns the installed route for prefix, if any.
func (t Table) Get(prefix string) (announcement.Announcement, bool) {
	a, ok := t[prefix]
	return a, ok
}

// Set installs a as the best route for its prefix, overwriting whatever
// was there.
func (t Table) Set(a announcement.Announcement) {
	t[a.Prefix] = a
}

// ReplaceIfBetter installs candidate if there is no existing entry for its
// prefix, or candidate strictly beats the existing one. Returns whether it
// was installed.
func (t Table) ReplaceIfBetter(candidate announcement.Announcement) bool {
	existing, ok := t[candidate.Prefix]
	if !ok || candidate.IsBetterThan(existing) {
		t[candidate.Prefix] = candidate
		return true
	}
	return false
}


package announcement

import "testing"

func TestNewSeedsOriginPath(t *testing.T) {
	a := New("1.2.0.0/16", 5, false)
	if a.ReceivedFrom != Origin {
		t.Errorf("expected Origin, got %v", a.ReceivedFrom)
	}
	if len(a.ASPath) != 1 || a.ASPath[0] != 5 {
		t.Errorf("expected path [5], got %v", a.ASPath)
	}
	if a.NextHopASN != 5 {
		t.Errorf("expected next hop 5, got %d", a.NextHopASN)
	}
}

func TestCreatePropagatedDoesNotPrependPath(t *testing.T) {
	a := New("1.2.0.0/16", 5, false)
	p := a.CreatePropagated(7, Customer)
	if len(p.ASPath) != 1 || p.ASPath[0] != 5 {
		t.Errorf("CreatePropagated must not prepend, got path %v", p.ASPath)
	}
	if p.NextHopASN != 7 || p.ReceivedFrom != Customer {
		t.Errorf("expected nextHop=7 receivedFrom=Customer, got %+v", p)
	}
	// original is untouched
	if a.NextHopASN != 5 || a.ReceivedFrom != Origin {
		t.Errorf("CreatePropagated mutated the receiver: %+v", a)
	}
}

func TestWithPrependedPathCopies(t *testing.T) {
	a := New("1.2.0.0/16", 5, false)
	p := a.WithPrependedPath(7)
	if len(p.ASPath) != 2 || p.ASPath[0] != 7 || p.ASPath[1] != 5 {
		t.Errorf("expected path [7 5], got %v", p.ASPath)
	}
	if len(a.ASPath) != 1 {
		t.Errorf("original path was mutated: %v", a.ASPath)
	}
}

func TestIsBetterThanRelationshipOrdering(t *testing.T) {
	customer := Announcement{ReceivedFrom: Customer, ASPath: []int{1, 2}, NextHopASN: 9}
	provider := Announcement{ReceivedFrom: Provider, ASPath: []int{1}, NextHopASN: 1}
	if !customer.IsBetterThan(provider) {
		t.Error("customer-learned route must beat a shorter provider-learned route")
	}
	if provider.IsBetterThan(customer) {
		t.Error("provider-learned route must never beat a customer-learned one")
	}
}

func TestIsBetterThanPathLengthTiebreak(t *testing.T) {
	shorter := Announcement{ReceivedFrom: Peer, ASPath: []int{1, 2}, NextHopASN: 9}
	longer := Announcement{ReceivedFrom: Peer, ASPath: []int{1, 2, 3}, NextHopASN: 1}
	if !shorter.IsBetterThan(longer) {
		t.Error("shorter AS path should win despite higher next-hop ASN")
	}
}

func TestIsBetterThanNextHopTiebreak(t *testing.T) {
	lowerHop := Announcement{ReceivedFrom: Customer, ASPath: []int{1, 2}, NextHopASN: 1}
	higherHop := Announcement{ReceivedFrom: Customer, ASPath: []int{1, 2}, NextHopASN: 2}
	if !lowerHop.IsBetterThan(higherHop) {
		t.Error("lower next-hop ASN should win on a full tie")
	}
	if higherHop.IsBetterThan(lowerHop) {
		t.Error("higher next-hop ASN must not beat lower")
	}
}

func TestIsBetterThanStrictOnCompleteTie(t *testing.T) {
	a := Announcement{ReceivedFrom: Customer, ASPath: []int{1, 2}, NextHopASN: 5}
	b := a
	if a.IsBetterThan(b) || b.IsBetterThan(a) {
		t.Error("identical announcements must not be better than each other")
	}
}

func TestBestPicksLowestNextHopOnTie(t *testing.T) {
	candidates := []Announcement{
		{ReceivedFrom: Customer, ASPath: []int{3, 1}, NextHopASN: 2},
		{ReceivedFrom: Customer, ASPath: []int{3, 1}, NextHopASN: 1},
	}
	best := Best(candidates)
	if best.NextHopASN != 1 {
		t.Errorf("expected winner with next hop 1, got %d", best.NextHopASN)
	}
}

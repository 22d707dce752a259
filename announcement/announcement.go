// Package announcement defines the route announcement value type exchanged
// between ASes during propagation.
package announcement

// Relationship is the relationship under which a route was learned, from
// the receiver's point of view. The zero value, Origin, is the AS's own
// announcement and is always preferred.
type Relationship int

// Lower values are strictly preferred by the BGP decision process
// (Announcement.IsBetterThan). These values encode local preference only;
// they are not the -1/0/1 relationship tags of CAIDA relationship files.
const (
	Origin Relationship = iota
	Customer
	Peer
	Provider
)

func (r Relationship) String() string {
	switch r {
	case Origin:
		return "ORIGIN"
	case Customer:
		return "CUSTOMER"
	case Peer:
		return "PEER"
	case Provider:
		return "PROVIDER"
	default:
		return "UNKNOWN"
	}
}

// Announcement is an advertised route. Values are immutable in practice:
// every operation that would change an Announcement returns a new one.
type Announcement struct {
	Prefix       string
	ASPath       []int
	NextHopASN   int
	ReceivedFrom Relationship
	ROVInvalid   bool
}

// New creates the Announcement an AS originates for a prefix it seeds
// itself: a single-element path, Origin relationship, next hop is itself.
func New(prefix string, originASN int, rovInvalid bool) Announcement {
	return Announcement{
		Prefix:       prefix,
		ASPath:       []int{originASN},
		NextHopASN:   originASN,
		ReceivedFrom: Origin,
		ROVInvalid:   rovInvalid,
	}
}

// CreatePropagated returns a copy of a with NextHopASN set to the sending
// AS and ReceivedFrom set to the relationship the receiver learned it
// under. It does not prepend to the AS path — that happens in the
// receiver's policy at processing time, not here.
func (a Announcement) CreatePropagated(senderASN int, rel Relationship) Announcement {
	propagated := a
	propagated.ASPath = append([]int(nil), a.ASPath...)
	propagated.NextHopASN = senderASN
	propagated.ReceivedFrom = rel
	return propagated
}

// WithPrependedPath returns a copy of a with asn prepended to the AS path.
// Used by the receiving policy when processing a candidate route.
func (a Announcement) WithPrependedPath(asn int) Announcement {
	path := make([]int, 0, len(a.ASPath)+1)
	path = append(path, asn)
	path = append(path, a.ASPath...)
	a.ASPath = path
	return a
}

// IsBetterThan implements the BGP decision process for a single prefix:
// lower ReceivedFrom wins, then shorter AS path, then lower next-hop ASN
// as a deterministic tiebreak. The comparator is strict — ties across all
// three keys report false both ways.
func (a Announcement) IsBetterThan(other Announcement) bool {
	if a.ReceivedFrom != other.ReceivedFrom {
		return a.ReceivedFrom < other.ReceivedFrom
	}
	if len(a.ASPath) != len(other.ASPath) {
		return len(a.ASPath) < len(other.ASPath)
	}
	return a.NextHopASN < other.NextHopASN
}

// Best returns whichever of candidates compares best under IsBetterThan.
// Panics if candidates is empty — callers must only call Best on a
// non-empty set, which policy.BGP.ProcessAnnouncements guarantees.
func Best(candidates []Announcement) Announcement {
	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.IsBetterThan(best) {
			best = candidate
		}
	}
	return best
}

// Package stage tracks where a single simulation run is in its lifecycle.
// It is not a BGP session FSM — there is no connection, no event queue,
// no timers (those are explicit Non-goals of this engine) — just an
// ordered progress marker the graph records at each milestone and uses
// to assert operations happen in the right order.
package stage

type Stage int

const (
	Unloaded Stage = iota
	Loaded
	Flattened
	Seeded
	Converged
)

func (s Stage) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	case Flattened:
		return "flattened"
	case Seeded:
		return "seeded"
	case Converged:
		return "converged"
	default:
		return "unknown"
	}
}

// Reached reports whether s has progressed at least as far as target.
func (s Stage) Reached(target Stage) bool {
	return s >= target
}

package engine

// State is the engine's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventKind identifies an outcome reported by Update.
type EventKind int

const (
	EventRowsCleared EventKind = iota
	EventPieceFrozen
	EventPieceSpawned
	EventTopOut
)

func (k EventKind) String() string {
	switch k {
	case EventRowsCleared:
		return "rows_cleared"
	case EventPieceFrozen:
		return "piece_frozen"
	case EventPieceSpawned:
		return "piece_spawned"
	case EventTopOut:
		return "top_out"
	default:
		return "unknown"
	}
}

// Event is a single notification from a tick. Rows is set for
// EventRowsCleared; Position for EventPieceFrozen and EventPieceSpawned.
type Event struct {
	Kind     EventKind
	Rows     int
	Position Position
}

// Result is returned by every Update call.
type Result struct {
	State  State
	Events []Event
}

// RowsCleared returns the number of rows cleared during the tick.
func (r Result) RowsCleared() int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == EventRowsCleared {
			n += e.Rows
		}
	}
	return n
}

// TopOut reports whether the tick ended the game.
func (r Result) TopOut() bool {
	return r.Has(EventTopOut)
}

// Has reports whether an event of the given kind occurred.
func (r Result) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

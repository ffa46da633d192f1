package timekeeper

import "time"

// Phase is one half of a round.
type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

// Snapshot is a read-only copy of the run state.
type Snapshot struct {
	Phase            Phase
	CurrentRound     int
	TotalRounds      int
	RemainingSeconds int
	IsRunning        bool
}

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventTick         EventType = "tick"
	EventPhaseEnded   EventType = "phase_ended"
	EventStateChange  EventType = "state_change"
	EventConfigChange EventType = "config_change"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	// Ended is set on EventPhaseEnded to the phase that just expired.
	Ended Phase
	At    time.Time
}

// Alerter is notified once per phase expiry.
type Alerter interface {
	PhaseEnded(ended Phase, next Snapshot)
}

// AlerterFunc adapts a function to Alerter.
type AlerterFunc func(ended Phase, next Snapshot)

// PhaseEnded calls fn.
func (fn AlerterFunc) PhaseEnded(ended Phase, next Snapshot) {
	fn(ended, next)
}

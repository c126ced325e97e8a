package engine

import "time"

// Phase represents the timer's current operating mode.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseWork      Phase = "work"
	PhaseBreak     Phase = "break"
	PhaseLongBreak Phase = "long_break"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventProgress      EventType = "progress"
	EventPhaseComplete EventType = "phase_complete"
)

// Event represents an engine update for observers. For PhaseComplete
// events Phase names the phase that just ended; for all others it is
// the phase now in effect.
type Event struct {
	Type      EventType
	Phase     Phase
	Remaining time.Duration
	Progress  float64
	At        time.Time
}

// Package engine implements the Pomodoro state machine: work, break and
// long break phases, wall-clock countdown accounting, and completion
// bookkeeping delegated to a session recorder.
package engine

import (
	"sync"
	"time"

	"focustimer/internal/core/model"
)

// SessionRecorder receives work session boundaries from the engine.
type SessionRecorder interface {
	StartSession(now time.Time)
	EndSession(now time.Time)
	AbandonSession()
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
}

// Snapshot is a read-only view of the engine state.
type Snapshot struct {
	Phase                  Phase
	Remaining              time.Duration
	Progress               float64
	Running                bool
	SessionsSinceLongBreak int
}

// Engine is the timer state machine. One engine is owned by one window;
// the internal mutex exists because the tick goroutine and the UI
// thread both call into it.
type Engine struct {
	mu        sync.Mutex
	settings  model.Settings
	options   Config
	phase     Phase
	remaining time.Duration
	total     time.Duration
	running   bool
	sessions  int
	lastTick  time.Time
	recorder  SessionRecorder
	events    []chan Event
	stopCh    chan struct{}
	started   bool
}

// New creates an Engine with the provided settings and recorder.
func New(settings model.Settings, recorder SessionRecorder, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	settings = settings.Normalize()

	eng := &Engine{
		settings:  settings,
		options:   options,
		phase:     PhaseIdle,
		remaining: settings.WorkDuration(),
		total:     settings.WorkDuration(),
		recorder:  recorder,
		stopCh:    make(chan struct{}),
	}
	return eng
}

// Subscribe registers a new observer channel.
func (eng *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	eng.mu.Lock()
	eng.events = append(eng.events, ch)
	eng.mu.Unlock()
	return ch
}

// Start launches the ticking loop. The loop runs for the engine's
// lifetime; whether ticks have any effect is governed by the running
// flag, so pausing ticking is implicit in Reset and phase completion.
func (eng *Engine) Start() {
	eng.mu.Lock()
	if eng.started {
		eng.mu.Unlock()
		return
	}
	eng.started = true
	eng.mu.Unlock()

	go eng.run()
}

// Stop terminates the ticking loop and closes observer channels.
func (eng *Engine) Stop() {
	eng.mu.Lock()
	if !eng.started {
		eng.mu.Unlock()
		return
	}
	close(eng.stopCh)
	eng.started = false
	events := eng.events
	eng.events = nil
	eng.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// StartWork begins a work phase. Starting while already running resets
// first: an interrupted work session is abandoned, never counted.
func (eng *Engine) StartWork() {
	eng.StartWorkAt(time.Now())
}

// StartWorkAt is StartWork with an explicit clock, for tests.
func (eng *Engine) StartWorkAt(now time.Time) {
	eng.mu.Lock()
	eng.abandonActiveLocked()
	eng.startWorkLocked(now)
	event := eng.stateEventLocked(now)
	eng.mu.Unlock()

	eng.emit(event)
}

// StartBreak begins a break phase. After SessionsBeforeLongBreak
// completed work sessions the break is a long one and the session
// counter resets to zero.
func (eng *Engine) StartBreak() {
	eng.StartBreakAt(time.Now())
}

// StartBreakAt is StartBreak with an explicit clock, for tests.
func (eng *Engine) StartBreakAt(now time.Time) {
	eng.mu.Lock()
	eng.abandonActiveLocked()
	eng.startBreakLocked(now)
	event := eng.stateEventLocked(now)
	eng.mu.Unlock()

	eng.emit(event)
}

// Reset stops the countdown and returns to idle. The remaining time
// falls back to the work duration for display; the long-break session
// counter is left untouched.
func (eng *Engine) Reset() {
	now := time.Now()
	eng.mu.Lock()
	eng.abandonActiveLocked()
	eng.resetLocked()
	event := eng.stateEventLocked(now)
	eng.mu.Unlock()

	eng.emit(event)
}

// Tick advances the countdown by the whole seconds of wall-clock time
// elapsed since the previous tick and returns the phase progress ratio
// in [0,1]. The delta-based accounting keeps the countdown correct
// under delayed or skipped ticks. Ticking while not running is a no-op.
func (eng *Engine) Tick(now time.Time) float64 {
	eng.mu.Lock()
	if !eng.running {
		progress := eng.progressLocked()
		eng.mu.Unlock()
		return progress
	}

	elapsed := now.Sub(eng.lastTick).Truncate(time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	eng.lastTick = now
	eng.remaining -= elapsed
	if eng.remaining < 0 {
		eng.remaining = 0
	}

	progress := eng.progressLocked()
	var pending []Event
	if eng.remaining == 0 {
		pending = eng.completeLocked(now)
	} else {
		pending = append(pending, Event{
			Type:      EventProgress,
			Phase:     eng.phase,
			Remaining: eng.remaining,
			Progress:  progress,
			At:        now,
		})
	}
	eng.mu.Unlock()

	for _, event := range pending {
		eng.emit(event)
	}
	return progress
}

// UpdateSettings swaps the engine configuration. When idle, the
// displayed remaining time is re-derived from the new work duration;
// running phases keep the countdown they started with.
func (eng *Engine) UpdateSettings(settings model.Settings) {
	now := time.Now()
	eng.mu.Lock()
	eng.settings = settings.Normalize()
	if !eng.running {
		eng.remaining = eng.settings.WorkDuration()
		eng.total = eng.settings.WorkDuration()
	}
	event := eng.stateEventLocked(now)
	eng.mu.Unlock()

	eng.emit(event)
}

// Settings returns the active configuration.
func (eng *Engine) Settings() model.Settings {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.settings
}

// Snapshot returns the current engine state for pull-style consumers.
func (eng *Engine) Snapshot() Snapshot {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return Snapshot{
		Phase:                  eng.phase,
		Remaining:              eng.remaining,
		Progress:               eng.progressLocked(),
		Running:                eng.running,
		SessionsSinceLongBreak: eng.sessions,
	}
}

func (eng *Engine) run() {
	ticker := time.NewTicker(eng.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-eng.stopCh:
			return
		case tickTime := <-ticker.C:
			eng.Tick(tickTime)
		}
	}
}

func (eng *Engine) startWorkLocked(now time.Time) {
	eng.phase = PhaseWork
	eng.total = eng.settings.WorkDuration()
	eng.remaining = eng.total
	eng.running = true
	eng.lastTick = now
	if eng.recorder != nil {
		eng.recorder.StartSession(now)
	}
}

func (eng *Engine) startBreakLocked(now time.Time) {
	if eng.sessions >= eng.settings.SessionsBeforeLongBreak {
		eng.phase = PhaseLongBreak
		eng.total = eng.settings.LongBreakDuration()
		eng.sessions = 0
	} else {
		eng.phase = PhaseBreak
		eng.total = eng.settings.BreakDuration()
	}
	eng.remaining = eng.total
	eng.running = true
	eng.lastTick = now
}

func (eng *Engine) resetLocked() {
	eng.phase = PhaseIdle
	eng.running = false
	eng.total = eng.settings.WorkDuration()
	eng.remaining = eng.total
	eng.lastTick = time.Time{}
}

// completeLocked handles a countdown reaching zero. It fires at most
// once per phase: afterwards the engine is either idle or in a fresh
// phase with a positive countdown.
func (eng *Engine) completeLocked(now time.Time) []Event {
	completed := eng.phase
	if completed == PhaseWork {
		eng.sessions++
		if eng.recorder != nil {
			eng.recorder.EndSession(now)
		}
	}

	events := []Event{{
		Type:     EventPhaseComplete,
		Phase:    completed,
		Progress: 1,
		At:       now,
	}}

	if eng.settings.AutoAdvance {
		if completed == PhaseWork {
			eng.startBreakLocked(now)
		} else {
			eng.startWorkLocked(now)
		}
	} else {
		eng.resetLocked()
	}

	events = append(events, eng.stateEventLocked(now))
	return events
}

// abandonActiveLocked discards an in-flight work session before a
// reset or restart, so interrupted sessions are never counted.
func (eng *Engine) abandonActiveLocked() {
	if eng.running && eng.phase == PhaseWork && eng.recorder != nil {
		eng.recorder.AbandonSession()
	}
}

func (eng *Engine) progressLocked() float64 {
	if eng.phase == PhaseIdle {
		return 0
	}
	if eng.total <= 0 {
		return 1
	}
	progress := float64(eng.total-eng.remaining) / float64(eng.total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (eng *Engine) stateEventLocked(now time.Time) Event {
	return Event{
		Type:      EventStateChange,
		Phase:     eng.phase,
		Remaining: eng.remaining,
		Progress:  eng.progressLocked(),
		At:        now,
	}
}

// emit delivers an event to every subscriber without blocking. The
// send happens under the mutex so Stop cannot close a channel with a
// send in flight.
func (eng *Engine) emit(event Event) {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	for _, ch := range eng.events {
		select {
		case ch <- event:
		default:
		}
	}
}

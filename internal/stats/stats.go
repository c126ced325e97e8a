// Package stats accumulates completed Pomodoro counts and focused time
// for the lifetime of the process.
package stats

import (
	"sync"
	"time"
)

// Snapshot is a read-only projection of the accumulated statistics.
type Snapshot struct {
	CompletedPomodoros int
	TotalFocusMinutes  int
}

// Stats tracks completed work sessions. The tick goroutine records
// session boundaries while the UI thread reads snapshots, so access is
// mutex-guarded.
type Stats struct {
	mu                 sync.Mutex
	completedPomodoros int
	totalFocus         time.Duration
	activeStart        time.Time
}

// New creates an empty Stats.
func New() *Stats {
	return &Stats{}
}

// StartSession marks the beginning of a work session. If a session is
// already active the call is ignored; interrupted sessions must be
// abandoned explicitly before a new one can begin.
func (stats *Stats) StartSession(now time.Time) {
	stats.mu.Lock()
	defer stats.mu.Unlock()
	if !stats.activeStart.IsZero() {
		return
	}
	stats.activeStart = now
}

// EndSession completes the active work session, crediting its duration
// and incrementing the Pomodoro count. Without an active session it is
// a no-op.
func (stats *Stats) EndSession(now time.Time) {
	stats.mu.Lock()
	defer stats.mu.Unlock()
	if stats.activeStart.IsZero() {
		return
	}
	elapsed := now.Sub(stats.activeStart)
	if elapsed > 0 {
		stats.totalFocus += elapsed
	}
	stats.completedPomodoros++
	stats.activeStart = time.Time{}
}

// AbandonSession discards the active work session without crediting it.
func (stats *Stats) AbandonSession() {
	stats.mu.Lock()
	defer stats.mu.Unlock()
	stats.activeStart = time.Time{}
}

// SessionActive reports whether a work session is in progress.
func (stats *Stats) SessionActive() bool {
	stats.mu.Lock()
	defer stats.mu.Unlock()
	return !stats.activeStart.IsZero()
}

// Snapshot returns the current totals. Focused time is reported in
// whole minutes, rounded down.
func (stats *Stats) Snapshot() Snapshot {
	stats.mu.Lock()
	defer stats.mu.Unlock()
	return Snapshot{
		CompletedPomodoros: stats.completedPomodoros,
		TotalFocusMinutes:  int(stats.totalFocus / time.Minute),
	}
}

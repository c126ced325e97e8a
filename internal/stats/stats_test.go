package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEndSession_WithoutStartChangesNothing(t *testing.T) {
	tracker := New()

	tracker.EndSession(time.Now())

	snap := tracker.Snapshot()
	require.Equal(t, 0, snap.CompletedPomodoros)
	require.Equal(t, 0, snap.TotalFocusMinutes)
}

func TestStartEnd_CreditsDurationAndCount(t *testing.T) {
	tracker := New()

	start := time.Now()
	tracker.StartSession(start)
	require.True(t, tracker.SessionActive())

	tracker.EndSession(start.Add(25 * time.Minute))

	snap := tracker.Snapshot()
	require.Equal(t, 1, snap.CompletedPomodoros)
	require.Equal(t, 25, snap.TotalFocusMinutes)
	require.False(t, tracker.SessionActive())
}

func TestStartSession_IgnoredWhileActive(t *testing.T) {
	tracker := New()

	start := time.Now()
	tracker.StartSession(start)
	// A second start must not move the session start forward.
	tracker.StartSession(start.Add(10 * time.Minute))

	tracker.EndSession(start.Add(25 * time.Minute))
	require.Equal(t, 25, tracker.Snapshot().TotalFocusMinutes)
}

func TestAbandonSession_DiscardsWithoutCrediting(t *testing.T) {
	tracker := New()

	start := time.Now()
	tracker.StartSession(start)
	tracker.AbandonSession()

	snap := tracker.Snapshot()
	require.Equal(t, 0, snap.CompletedPomodoros)
	require.Equal(t, 0, snap.TotalFocusMinutes)
	require.False(t, tracker.SessionActive())

	// The slot is free again afterwards.
	tracker.StartSession(start.Add(time.Minute))
	tracker.EndSession(start.Add(26 * time.Minute))
	require.Equal(t, 1, tracker.Snapshot().CompletedPomodoros)
	require.Equal(t, 25, tracker.Snapshot().TotalFocusMinutes)
}

func TestSnapshot_FocusMinutesRoundDown(t *testing.T) {
	tracker := New()

	start := time.Now()
	tracker.StartSession(start)
	tracker.EndSession(start.Add(119 * time.Second))

	require.Equal(t, 1, tracker.Snapshot().TotalFocusMinutes)
}

func TestTotals_AccumulateAcrossSessions(t *testing.T) {
	tracker := New()

	clock := time.Now()
	for i := 0; i < 3; i++ {
		tracker.StartSession(clock)
		clock = clock.Add(25 * time.Minute)
		tracker.EndSession(clock)
		clock = clock.Add(5 * time.Minute)
	}

	snap := tracker.Snapshot()
	require.Equal(t, 3, snap.CompletedPomodoros)
	require.Equal(t, 75, snap.TotalFocusMinutes)
}

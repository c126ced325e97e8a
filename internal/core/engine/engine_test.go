package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"focustimer/internal/core/model"
	"focustimer/internal/stats"
)

func newTestEngine(settings model.Settings) (*Engine, *stats.Stats) {
	recorder := stats.New()
	return New(settings, recorder, Config{}), recorder
}

func TestNew_IdleShowsWorkDuration(t *testing.T) {
	eng, _ := newTestEngine(model.DefaultSettings())

	snap := eng.Snapshot()
	require.Equal(t, PhaseIdle, snap.Phase)
	require.False(t, snap.Running)
	require.Equal(t, 25*time.Minute, snap.Remaining)
	require.Equal(t, 0.0, snap.Progress)
}

func TestStartWork_DerivesRemainingFromSettings(t *testing.T) {
	settings := model.DefaultSettings()
	settings.WorkMinutes = 50
	eng, recorder := newTestEngine(settings)

	start := time.Now()
	eng.StartWorkAt(start)

	snap := eng.Snapshot()
	require.Equal(t, PhaseWork, snap.Phase)
	require.True(t, snap.Running)
	require.Equal(t, 50*time.Minute, snap.Remaining)
	require.True(t, recorder.SessionActive(), "work start should open a session")
}

func TestTick_NotRunningIsNoOp(t *testing.T) {
	eng, _ := newTestEngine(model.DefaultSettings())

	progress := eng.Tick(time.Now())

	require.Equal(t, 0.0, progress)
	snap := eng.Snapshot()
	require.Equal(t, PhaseIdle, snap.Phase)
	require.Equal(t, 25*time.Minute, snap.Remaining)
}

func TestTick_FirstTickAtStartInstantElapsesNothing(t *testing.T) {
	eng, _ := newTestEngine(model.DefaultSettings())

	start := time.Now()
	eng.StartWorkAt(start)
	progress := eng.Tick(start)

	require.Equal(t, 0.0, progress)
	require.Equal(t, 25*time.Minute, eng.Snapshot().Remaining)
}

func TestTick_UsesWallClockDeltaNotTickCount(t *testing.T) {
	eng, _ := newTestEngine(model.DefaultSettings())

	start := time.Now()
	eng.StartWorkAt(start)

	// One delayed tick covering 10 minutes, e.g. after a host suspend.
	eng.Tick(start.Add(10 * time.Minute))
	require.Equal(t, 15*time.Minute, eng.Snapshot().Remaining)

	// Many rapid ticks at the same instant change nothing further.
	for i := 0; i < 5; i++ {
		eng.Tick(start.Add(10 * time.Minute))
	}
	require.Equal(t, 15*time.Minute, eng.Snapshot().Remaining)
}

func TestTick_SubSecondElapsedFloorsToZero(t *testing.T) {
	eng, _ := newTestEngine(model.DefaultSettings())

	start := time.Now()
	eng.StartWorkAt(start)
	eng.Tick(start.Add(900 * time.Millisecond))

	require.Equal(t, 25*time.Minute, eng.Snapshot().Remaining)
}

func TestDefaultScenario_WorkCompletionGoesIdleAndCounts(t *testing.T) {
	eng, recorder := newTestEngine(model.DefaultSettings())

	start := time.Now()
	eng.StartWorkAt(start)
	progress := eng.Tick(start.Add(1500 * time.Second))

	require.Equal(t, 1.0, progress)
	snap := eng.Snapshot()
	require.Equal(t, PhaseIdle, snap.Phase)
	require.False(t, snap.Running)
	require.Equal(t, 25*time.Minute, snap.Remaining, "idle falls back to the work duration for display")
	require.Equal(t, 1, snap.SessionsSinceLongBreak)

	totals := recorder.Snapshot()
	require.Equal(t, 1, totals.CompletedPomodoros)
	require.Equal(t, 25, totals.TotalFocusMinutes)
}

func TestCompletion_FiresExactlyOnce(t *testing.T) {
	eng, recorder := newTestEngine(model.DefaultSettings())

	start := time.Now()
	eng.StartWorkAt(start)
	eng.Tick(start.Add(1500 * time.Second))
	eng.Tick(start.Add(1501 * time.Second))
	eng.Tick(start.Add(3000 * time.Second))

	require.Equal(t, 1, recorder.Snapshot().CompletedPomodoros)
	require.Equal(t, 1, eng.Snapshot().SessionsSinceLongBreak)
}

func TestAutoAdvance_WorkCompletionStartsBreak(t *testing.T) {
	settings := model.DefaultSettings()
	settings.AutoAdvance = true
	eng, _ := newTestEngine(settings)

	start := time.Now()
	eng.StartWorkAt(start)
	eng.Tick(start.Add(1500 * time.Second))

	snap := eng.Snapshot()
	require.Equal(t, PhaseBreak, snap.Phase)
	require.True(t, snap.Running)
	require.Equal(t, 300*time.Second, snap.Remaining)
}

func TestAutoAdvance_BreakCompletionStartsWork(t *testing.T) {
	settings := model.DefaultSettings()
	settings.AutoAdvance = true
	eng, recorder := newTestEngine(settings)

	start := time.Now()
	eng.StartBreakAt(start)
	eng.Tick(start.Add(300 * time.Second))

	snap := eng.Snapshot()
	require.Equal(t, PhaseWork, snap.Phase)
	require.True(t, snap.Running)
	require.Equal(t, 25*time.Minute, snap.Remaining)
	require.True(t, recorder.SessionActive())
	require.Equal(t, 0, recorder.Snapshot().CompletedPomodoros, "break completion is not a pomodoro")
}

func TestStartBreak_LongBreakAfterThreshold(t *testing.T) {
	eng, _ := newTestEngine(model.DefaultSettings())

	clock := time.Now()
	for cycle := 0; cycle < 4; cycle++ {
		eng.StartWorkAt(clock)
		clock = clock.Add(1500 * time.Second)
		eng.Tick(clock)

		eng.StartBreakAt(clock)
		snap := eng.Snapshot()
		if cycle < 3 {
			require.Equal(t, PhaseBreak, snap.Phase, "cycle %d should use a short break", cycle)
			require.Equal(t, 5*time.Minute, snap.Remaining)
		} else {
			require.Equal(t, PhaseLongBreak, snap.Phase, "fourth break should be long")
			require.Equal(t, 15*time.Minute, snap.Remaining)
			require.Equal(t, 0, snap.SessionsSinceLongBreak, "counter resets when the long break starts")
		}
		clock = clock.Add(snap.Remaining)
		eng.Tick(clock)
	}
}

func TestStartBreak_ThresholdComparisonIsAtLeast(t *testing.T) {
	settings := model.DefaultSettings()
	settings.SessionsBeforeLongBreak = 2
	eng, _ := newTestEngine(settings)

	clock := time.Now()
	// Three completed work sessions back to back, no breaks between:
	// a late-arriving extra completion must still trigger a long break.
	for i := 0; i < 3; i++ {
		eng.StartWorkAt(clock)
		clock = clock.Add(1500 * time.Second)
		eng.Tick(clock)
	}

	eng.StartBreakAt(clock)
	snap := eng.Snapshot()
	require.Equal(t, PhaseLongBreak, snap.Phase)
	require.Equal(t, 0, snap.SessionsSinceLongBreak)
}

func TestReset_GoesIdleKeepsCounter(t *testing.T) {
	eng, recorder := newTestEngine(model.DefaultSettings())

	clock := time.Now()
	eng.StartWorkAt(clock)
	clock = clock.Add(1500 * time.Second)
	eng.Tick(clock)

	eng.StartWorkAt(clock)
	eng.Reset()

	snap := eng.Snapshot()
	require.Equal(t, PhaseIdle, snap.Phase)
	require.False(t, snap.Running)
	require.Equal(t, 25*time.Minute, snap.Remaining)
	require.Equal(t, 1, snap.SessionsSinceLongBreak, "reset leaves the counter alone")
	require.False(t, recorder.SessionActive(), "reset abandons the in-flight session")
	require.Equal(t, 1, recorder.Snapshot().CompletedPomodoros, "abandoned session is not counted")
}

func TestStartWork_WhileRunningAbandonsPreviousSession(t *testing.T) {
	eng, recorder := newTestEngine(model.DefaultSettings())

	start := time.Now()
	eng.StartWorkAt(start)
	restart := start.Add(10 * time.Minute)
	eng.StartWorkAt(restart)

	// Completing now must credit only the second session's span.
	eng.Tick(restart.Add(1500 * time.Second))

	totals := recorder.Snapshot()
	require.Equal(t, 1, totals.CompletedPomodoros)
	require.Equal(t, 25, totals.TotalFocusMinutes)
}

func TestUpdateSettings_RefreshesIdleDisplay(t *testing.T) {
	eng, _ := newTestEngine(model.DefaultSettings())

	settings := eng.Settings()
	settings.WorkMinutes = 45
	eng.UpdateSettings(settings)

	require.Equal(t, 45*time.Minute, eng.Snapshot().Remaining)
}

func TestUpdateSettings_RunningPhaseKeepsItsCountdown(t *testing.T) {
	eng, _ := newTestEngine(model.DefaultSettings())

	start := time.Now()
	eng.StartWorkAt(start)

	settings := eng.Settings()
	settings.WorkMinutes = 45
	eng.UpdateSettings(settings)

	require.Equal(t, 25*time.Minute, eng.Snapshot().Remaining)
}

func TestUpdateSettings_NormalizesDurations(t *testing.T) {
	eng, _ := newTestEngine(model.DefaultSettings())

	settings := eng.Settings()
	settings.WorkMinutes = -3
	settings.BreakMinutes = 0
	eng.UpdateSettings(settings)

	got := eng.Settings()
	require.Equal(t, 25, got.WorkMinutes)
	require.Equal(t, 5, got.BreakMinutes)
}

func TestSubscribe_PhaseCompleteCarriesEndedPhase(t *testing.T) {
	eng, _ := newTestEngine(model.DefaultSettings())
	events := eng.Subscribe(16)

	start := time.Now()
	eng.StartWorkAt(start)
	eng.Tick(start.Add(1500 * time.Second))

	var complete *Event
	for done := false; !done; {
		select {
		case event := <-events:
			if event.Type == EventPhaseComplete {
				complete = &event
				done = true
			}
		default:
			done = true
		}
	}
	require.NotNil(t, complete, "work completion should publish a PhaseComplete event")
	require.Equal(t, PhaseWork, complete.Phase)
	require.Equal(t, 1.0, complete.Progress)
}

func TestProgress_MonotoneAndCompletesAtOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		workMinutes := rapid.IntRange(1, 120).Draw(t, "workMinutes")
		settings := model.DefaultSettings()
		settings.WorkMinutes = workMinutes
		eng, recorder := newTestEngine(settings)

		clock := time.Now()
		eng.StartWorkAt(clock)

		totalSeconds := workMinutes * 60
		elapsedTotal := 0
		previous := 0.0
		steps := rapid.SliceOfN(rapid.IntRange(0, totalSeconds/2+1), 1, 50).Draw(t, "steps")
		for _, step := range steps {
			if elapsedTotal >= totalSeconds {
				break
			}
			if elapsedTotal+step > totalSeconds {
				step = totalSeconds - elapsedTotal
			}
			elapsedTotal += step
			clock = clock.Add(time.Duration(step) * time.Second)
			progress := eng.Tick(clock)

			if progress < previous {
				t.Fatalf("progress regressed from %v to %v", previous, progress)
			}
			previous = progress

			snap := eng.Snapshot()
			if snap.Remaining < 0 {
				t.Fatalf("remaining went negative: %v", snap.Remaining)
			}
			if elapsedTotal < totalSeconds && progress >= 1.0 {
				t.Fatalf("progress hit 1.0 before completion at %ds of %ds", elapsedTotal, totalSeconds)
			}
		}

		// Drive to completion regardless of the drawn schedule.
		if remainder := totalSeconds - elapsedTotal; remainder > 0 {
			clock = clock.Add(time.Duration(remainder) * time.Second)
			progress := eng.Tick(clock)
			if progress != 1.0 {
				t.Fatalf("progress at completion = %v, want 1.0", progress)
			}
		}
		if got := recorder.Snapshot().CompletedPomodoros; got != 1 {
			t.Fatalf("completed pomodoros = %d, want exactly 1", got)
		}
	})
}

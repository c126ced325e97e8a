package mainwin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"focustimer/internal/core/engine"
)

func TestFormatClock(t *testing.T) {
	require.Equal(t, "25:00", FormatClock(25*time.Minute))
	require.Equal(t, "04:59", FormatClock(299*time.Second))
	require.Equal(t, "00:00", FormatClock(0))
	require.Equal(t, "00:00", FormatClock(-3*time.Second))
	require.Equal(t, "100:00", FormatClock(100*time.Minute))
}

func TestCompletionMessage(t *testing.T) {
	require.Equal(t, "It's time to take a break!", CompletionMessage(engine.PhaseWork))
	require.Equal(t, "It's time to focus!", CompletionMessage(engine.PhaseBreak))
	require.Equal(t, "It's time to focus!", CompletionMessage(engine.PhaseLongBreak))
}

func TestPhaseCaption(t *testing.T) {
	require.Equal(t, "focus", phaseCaption(engine.PhaseWork))
	require.Equal(t, "short break", phaseCaption(engine.PhaseBreak))
	require.Equal(t, "long break", phaseCaption(engine.PhaseLongBreak))
	require.Equal(t, "ready", phaseCaption(engine.PhaseIdle))
}

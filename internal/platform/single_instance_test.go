package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPortFromName_DeterministicAndInRange(t *testing.T) {
	first := portFromName("FocusTimer")
	second := portFromName("FocusTimer")

	require.Equal(t, first, second)
	require.GreaterOrEqual(t, first, 20000)
	require.LessOrEqual(t, first, 39999)
}

func TestAcquireSingleInstance_SecondAcquireFails(t *testing.T) {
	guard, err := AcquireSingleInstance("focustimer-test")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, guard.Release())
	}()

	_, err = AcquireSingleInstance("focustimer-test")
	require.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestAcquireSingleInstance_ReleasedLockCanBeReacquired(t *testing.T) {
	guard, err := AcquireSingleInstance("focustimer-test-2")
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance("focustimer-test-2")
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

package platform

import (
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockAddressIsStable(t *testing.T) {
	first := LockAddress("Pomodoro")
	assert.Equal(t, first, LockAddress("Pomodoro"))

	host, port, err := net.SplitHostPort(first)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)
	value, err := strconv.Atoi(port)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, value, minLockPort)
	assert.LessOrEqual(t, value, maxLockPort)
}

func TestSecondInstanceIsRejected(t *testing.T) {
	name := "pomodoro-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("lock port unavailable: %v", err)
	}

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
}

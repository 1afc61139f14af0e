package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicateServiceName(t *testing.T) {
	m := NewManager()

	handle, err := m.NewServiceHandle("worker")
	require.NoError(t, err)
	defer handle.Close()

	_, err = m.NewServiceHandle("worker")
	assert.Error(t, err)
}

func TestSleepInterruptedByShutdown(t *testing.T) {
	m := NewManager()
	handle, err := m.NewServiceHandle("sleeper")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		defer handle.Close()
		done <- handle.Sleep(time.Hour)
	}()

	m.Shutdown()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Sleep未被停机信号唤醒")
	}

	assert.Nil(t, m.WaitWithTimeout(2*time.Second))
}

func TestWaitWithTimeoutReportsStragglers(t *testing.T) {
	m := NewManager()
	_, err := m.NewServiceHandle("straggler")
	require.NoError(t, err)

	m.Shutdown()
	remaining := m.WaitWithTimeout(50 * time.Millisecond)
	assert.Equal(t, []string{"straggler"}, remaining)
}

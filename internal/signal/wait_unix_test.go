//go:build linux || darwin

package signal

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitReloadsThenStops(t *testing.T) {
	// keep the default handlers away while Wait is not listening yet
	guard := make(chan os.Signal, 16)
	signal.Notify(guard, syscall.SIGUSR1, syscall.SIGTERM)
	defer signal.Stop(guard)

	var reloads int32
	done := make(chan os.Signal, 1)
	go func() {
		done <- Wait(func() {
			if atomic.AddInt32(&reloads, 1) == 1 {
				syscall.Kill(os.Getpid(), syscall.SIGTERM)
			}
		})
	}()

	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case sig := <-done:
			assert.Equal(t, syscall.SIGTERM, sig)
			assert.GreaterOrEqual(t, atomic.LoadInt32(&reloads), int32(1))
			return
		case <-tick.C:
			if atomic.LoadInt32(&reloads) == 0 {
				require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))
			}
		case <-timeout:
			t.Fatal("Wait did not return")
		}
	}
}

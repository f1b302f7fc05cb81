//go:build windows

package signal

import (
	"os"
	"os/signal"
	"syscall"
)

// Wait returns the first SIGINT or SIGTERM. reload is unused, windows has
// no SIGUSR1.
func Wait(reload func()) os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	return <-sigs
}

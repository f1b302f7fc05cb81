//go:build linux || darwin

package signal

import (
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"
)

// Wait holds the watch loop open. SIGUSR1 re-encodes the input through
// reload, SIGINT and SIGTERM end the wait and are handed back to the caller.
func Wait(reload func()) os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(sigs)

	for {
		sig := <-sigs
		if sig != syscall.SIGUSR1 {
			return sig
		}
		klog.V(1).Info("SIGUSR1, encoding input again")
		reload()
	}
}

package interp

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// lastSignal holds the number of the most recent signal seen while
// awaiting input. It is the only process-wide record of which signal
// arrived; the channels below only route deliveries.
var lastSignal int32

var (
	signalOnce sync.Once
	promptCh   chan os.Signal
	shieldCh   chan os.Signal
)

// LastSignal returns the most recent signal number observed at the
// prompt, or 0.
func LastSignal() int {
	return int(atomic.LoadInt32(&lastSignal))
}

// ClearLastSignal resets the signal flag between REPL iterations.
func ClearLastSignal() {
	atomic.StoreInt32(&lastSignal, 0)
}

func initSignalChannels() {
	signalOnce.Do(func() {
		promptCh = make(chan os.Signal, 1)
		go func() {
			for sig := range promptCh {
				if s, ok := sig.(unix.Signal); ok {
					atomic.StoreInt32(&lastSignal, int32(s))
				}
			}
		}()

		// Signals arriving while a foreground pipeline runs are
		// swallowed here.
		shieldCh = make(chan os.Signal, 4)
		go func() {
			for range shieldCh {
			}
		}()
	})
}

// awaitInputSignals installs the prompt-phase regime: SIGINT is
// recorded in the flag, SIGQUIT is discarded.
func awaitInputSignals() {
	initSignalChannels()
	signal.Notify(promptCh, unix.SIGINT)
	signal.Notify(shieldCh, unix.SIGQUIT)
}

// childRunningSignals shields the shell while a foreground pipeline
// runs. Both dispositions stay handler-based rather than SIG_IGN:
// an exec resets handlers to the default, so the children die to
// Ctrl-C while the parent shell survives it. The returned func
// restores the prompt regime.
func childRunningSignals() (restore func()) {
	initSignalChannels()
	signal.Stop(promptCh)
	signal.Notify(shieldCh, unix.SIGINT, unix.SIGQUIT)
	return func() {
		signal.Stop(shieldCh)
		awaitInputSignals()
	}
}

package femme

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/kvnallsn/femme/handler"
)

// ErrInstalled is returned by Finish when a process-wide logger is
// already installed.
var ErrInstalled = errors.New("femme: logger already installed")

var (
	globalMu sync.RWMutex
	global   *handler.Dispatcher
)

// install makes d the process-wide Dispatcher. Installation is an
// append-once operation: a second attempt fails and leaves the first
// Dispatcher in place. No uninstall exists; the installed Dispatcher
// lives for the remainder of the process.
func install(d *handler.Dispatcher) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global != nil {
		return errors.WithStack(ErrInstalled)
	}
	global = d
	return nil
}

// Installed returns the process-wide Dispatcher, or nil before any
// logger has been installed.
func Installed() *handler.Dispatcher {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

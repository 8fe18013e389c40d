package handler

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/kvnallsn/femme/core"
	"github.com/kvnallsn/femme/formatter"
)

// Mode selects which renderer the dispatcher uses.
type Mode int

const (
	// Auto picks Pretty when stdout is a terminal and NDJSON otherwise
	Auto Mode = iota
	// Pretty prints colorized human-readable entries
	Pretty
	// NDJSON prints one machine-readable line per entry
	NDJSON
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case Auto:
		return "Auto"
	case Pretty:
		return "Pretty"
	case NDJSON:
		return "NDJSON"
	default:
		return "Unknown"
	}
}

// Config holds dispatcher configuration
type Config struct {
	// Mode selects the renderer (default: Auto)
	Mode Mode
	// Levels is the threshold table (default: Info for everything)
	Levels *core.Levels
	// Writer overrides the sink (default: os.Stdout). Mainly for tests.
	Writer io.Writer
	// Clock overrides the wall clock used for ndjson timestamps
	Clock core.Clock
}

// Dispatcher is the record sink: it filters each record against the
// level table, renders it with the formatter matching the configured
// mode, and writes it to the sink under a mutex so that one record's
// bytes are never interleaved with another's.
//
// A Dispatcher is immutable after construction; all reads on the
// logging path are lock-free except for the sink write itself.
type Dispatcher struct {
	mode    Mode
	levels  *core.Levels
	ceiling core.Level
	pretty  *formatter.Pretty
	ndjson  *formatter.NDJSON

	mu  sync.Mutex
	out io.Writer
}

// New creates a Dispatcher from the given configuration
func New(cfg Config) *Dispatcher {
	if cfg.Levels == nil {
		cfg.Levels = core.NewLevels(core.InfoLevel)
	}
	mode := cfg.Mode
	if mode == Auto {
		mode = detectMode()
	}
	out := cfg.Writer
	if out == nil {
		if mode == Pretty {
			// keeps ANSI codes working on Windows consoles
			out = colorable.NewColorableStdout()
		} else {
			out = os.Stdout
		}
	}

	return &Dispatcher{
		mode:    mode,
		levels:  cfg.Levels,
		ceiling: cfg.Levels.Ceiling(),
		pretty:  formatter.NewPretty(),
		ndjson:  formatter.NewNDJSON(cfg.Clock),
		out:     out,
	}
}

// detectMode resolves Auto against the current environment
func detectMode() Mode {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return Pretty
	}
	return NDJSON
}

// Mode returns the resolved renderer mode (never Auto)
func (d *Dispatcher) Mode() Mode {
	return d.mode
}

// Ceiling returns the most permissive threshold across the default and
// all per-target overrides
func (d *Dispatcher) Ceiling() core.Level {
	return d.ceiling
}

// Enabled reports whether a record at the given level could be emitted
// for at least one target. It is a cheap pre-filter with no side
// effects: callers use it to skip building records entirely. A true
// result does not guarantee emission, which still depends on the
// record's target.
func (d *Dispatcher) Enabled(level core.Level) bool {
	return level >= d.ceiling
}

// Log renders and writes one record, or drops it silently when its
// level is below the effective threshold for its target. The sink lock
// is held for the entire render-and-write sequence and released on
// every exit path.
//
// Write failures are returned wrapped rather than crashing the host
// application; no retry is performed.
func (d *Dispatcher) Log(rec *core.Record) error {
	if rec.Level < d.levels.Resolve(rec.Target) {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var err error
	switch d.mode {
	case NDJSON:
		err = d.ndjson.FormatTo(rec, d.out)
	default:
		err = d.pretty.FormatTo(rec, d.out)
	}
	return errors.Wrap(err, "write log entry")
}

// Flush is a no-op; the sink is unbuffered from the dispatcher's
// perspective.
func (d *Dispatcher) Flush() {}

package femme

import (
	"io"

	"github.com/kvnallsn/femme/core"
	"github.com/kvnallsn/femme/handler"
)

// Mode re-export for convenience
type Mode = handler.Mode

const (
	// ModeAuto picks Pretty when stdout is a terminal and NDJSON otherwise
	ModeAuto = handler.Auto
	// ModePretty prints colorized human-readable entries
	ModePretty = handler.Pretty
	// ModeNDJSON prints one machine-readable line per entry
	ModeNDJSON = handler.NDJSON
)

// Builder assembles a Dispatcher from explicit configuration: renderer
// mode, default severity threshold, and per-target overrides. Finish
// installs the result as the process-wide logger.
type Builder struct {
	mode   Mode
	levels *core.Levels
	writer io.Writer
	clock  core.Clock
}

// New returns a Builder with Auto mode and an Info default threshold.
func New() *Builder {
	return &Builder{
		mode:   ModeAuto,
		levels: core.NewLevels(core.InfoLevel),
	}
}

// Pretty returns a Builder preset to the human-readable renderer.
func Pretty() *Builder {
	return New().Logger(ModePretty)
}

// NDJSON returns a Builder preset to the machine-readable renderer.
func NDJSON() *Builder {
	return New().Logger(ModeNDJSON)
}

// Logger sets the renderer mode.
func (b *Builder) Logger(mode Mode) *Builder {
	b.mode = mode
	return b
}

// Level sets the default severity threshold, used for every target that
// has no override.
func (b *Builder) Level(level core.Level) *Builder {
	b.levels.SetDefault(level)
	return b
}

// LevelFor sets the severity threshold for a specific target. Only the
// first namespace segment of a record's target is matched against
// overrides; "server" governs "server::http" too. Calling LevelFor
// twice for the same target replaces the earlier threshold.
func (b *Builder) LevelFor(target string, level core.Level) *Builder {
	b.levels.Set(target, level)
	return b
}

// Separator overrides the namespace separator used to split targets
// into segments (default "::").
func (b *Builder) Separator(sep string) *Builder {
	b.levels.SetSeparator(sep)
	return b
}

// Output overrides the sink. Intended for tests; normal operation
// writes to standard output.
func (b *Builder) Output(w io.Writer) *Builder {
	b.writer = w
	return b
}

// Clock overrides the wall clock stamped onto machine-format output.
func (b *Builder) Clock(clock core.Clock) *Builder {
	b.clock = clock
	return b
}

// Build creates the Dispatcher without installing it. Use this to drive
// the slog or zap adapters directly.
func (b *Builder) Build() *handler.Dispatcher {
	return handler.New(handler.Config{
		Mode:   b.mode,
		Levels: b.levels,
		Writer: b.writer,
		Clock:  b.clock,
	})
}

// Finish builds the Dispatcher and installs it as the process-wide
// logger. It returns ErrInstalled if a logger is already installed; the
// first installation is never replaced.
func (b *Builder) Finish() error {
	return install(b.Build())
}

// Start installs a logger with an Info default threshold, choosing the
// renderer for the current environment. It panics if a logger is
// already installed: failing to set up logging is treated as fatal
// rather than silently ignorable.
func Start() {
	if err := New().Finish(); err != nil {
		panic(err)
	}
}

// WithLevel installs a logger with the given default threshold,
// choosing the renderer for the current environment. Like Start, it
// panics if a logger is already installed.
func WithLevel(level core.Level) {
	if err := New().Level(level).Finish(); err != nil {
		panic(err)
	}
}

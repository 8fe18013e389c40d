// Package femme is a pretty-printer and ndjson logger. Records pass a
// per-target level filter and are written to standard output either as
// colorized human-readable text or as one machine-readable line per
// record.
//
// The simplest setup installs the process-wide logger with an Info
// threshold, picking the renderer for the current environment (pretty
// on a terminal, ndjson otherwise):
//
//	femme.Start()
//	femme.Warn("unauthorized access attempt on /login")
//	femme.Info("listening", femme.Int("port", 8080))
//
// For explicit configuration, use the Builder:
//
//	err := femme.Pretty().
//	    Level(femme.InfoLevel).
//	    LevelFor("server", femme.DebugLevel).
//	    Finish()
//
// Only one logger may be installed per process; a second Finish returns
// ErrInstalled and leaves the first configuration in place.
//
// Per-target thresholds match the first namespace segment of a record's
// target, so the override above governs "server::http" as well. Targets
// come from target-scoped loggers:
//
//	log := femme.Target("server::http")
//	log.Debug("request", femme.String("path", "/login"))
//
// Existing log/slog or zap code can route through femme via the
// adapters in the handler package.
package femme

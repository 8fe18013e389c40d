// Package handler provides the Dispatcher, the component that turns
// log records into bytes on standard output.
//
// For every record the Dispatcher resolves the effective threshold for
// the record's target against the level table, drops the record
// silently when its level does not clear it, and otherwise renders it
// with the formatter matching the configured mode. The render-and-write
// sequence runs under a single mutex with a deferred unlock, so one
// record's bytes never interleave with another's and the lock is
// released even if formatting panics.
//
// A Dispatcher is immutable after construction. The level table, mode,
// and global ceiling are read without locking on the hot path; only the
// sink write serializes.
//
// Two facade adapters let existing code log through femme unchanged:
//
//   - SlogHandler implements log/slog.Handler, so femme can serve as
//     the process-wide slog back-end.
//   - ZapCore implements zapcore.Core, mapping zap's logger name onto
//     the record target.
package handler

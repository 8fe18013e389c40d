package femme

import (
	"fmt"

	"github.com/kvnallsn/femme/core"
)

// Logger emits records for a fixed target through the installed
// Dispatcher. Loggers are immutable and safe for concurrent use; before
// a logger is installed every call is a cheap no-op.
type Logger struct {
	target string
}

// Target returns a Logger scoped to the given target name. Nested
// targets use the configured separator, e.g. "server::http".
func Target(name string) *Logger {
	return &Logger{target: name}
}

// Enabled reports whether a record at the given level could be emitted
// for at least one target. Filtering has no side effects; callers may
// use it to skip expensive message construction.
func (l *Logger) Enabled(level core.Level) bool {
	d := Installed()
	return d != nil && d.Enabled(level)
}

// log builds a record, hands it to the dispatcher, and recycles it.
// Write errors are discarded: logging must not crash the host
// application on a closed stdout.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	d := Installed()
	if d == nil || !d.Enabled(level) {
		return
	}

	rec := core.GetRecord()
	rec.Level = level
	rec.Target = l.target
	rec.Message = msg
	if len(fields) > 0 {
		rec.Fields = append(rec.Fields, fields...)
	}

	_ = d.Log(rec)
	core.PutRecord(rec)
}

// logf is the formatted variant; Sprintf runs only after the level
// check so filtered-out calls stay allocation-free.
func (l *Logger) logf(level core.Level, format string, args []interface{}) {
	d := Installed()
	if d == nil || !d.Enabled(level) {
		return
	}

	rec := core.GetRecord()
	rec.Level = level
	rec.Target = l.target
	rec.Message = fmt.Sprintf(format, args...)

	_ = d.Log(rec)
	core.PutRecord(rec)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.log(core.ErrorLevel, msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(core.TraceLevel, format, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(core.DebugLevel, format, args)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(core.InfoLevel, format, args)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(core.WarnLevel, format, args)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(core.ErrorLevel, format, args)
}

// defaultLogger carries the empty target; package-level functions
// delegate to it.
var defaultLogger = Target("")

// Trace logs a trace message with an empty target
func Trace(msg string, fields ...core.Field) {
	defaultLogger.Trace(msg, fields...)
}

// Debug logs a debug message with an empty target
func Debug(msg string, fields ...core.Field) {
	defaultLogger.Debug(msg, fields...)
}

// Info logs an info message with an empty target
func Info(msg string, fields ...core.Field) {
	defaultLogger.Info(msg, fields...)
}

// Warn logs a warning message with an empty target
func Warn(msg string, fields ...core.Field) {
	defaultLogger.Warn(msg, fields...)
}

// Error logs an error message with an empty target
func Error(msg string, fields ...core.Field) {
	defaultLogger.Error(msg, fields...)
}

// Tracef logs a formatted trace message with an empty target
func Tracef(format string, args ...interface{}) {
	defaultLogger.Tracef(format, args...)
}

// Debugf logs a formatted debug message with an empty target
func Debugf(format string, args ...interface{}) {
	defaultLogger.Debugf(format, args...)
}

// Infof logs a formatted info message with an empty target
func Infof(format string, args ...interface{}) {
	defaultLogger.Infof(format, args...)
}

// Warnf logs a formatted warning message with an empty target
func Warnf(format string, args ...interface{}) {
	defaultLogger.Warnf(format, args...)
}

// Errorf logs a formatted error message with an empty target
func Errorf(format string, args ...interface{}) {
	defaultLogger.Errorf(format, args...)
}

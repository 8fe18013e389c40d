package core

import "strings"

// Level represents the severity of a log record. Lower levels are more
// verbose, higher levels are more severe.
type Level int8

const (
	// TraceLevel for very fine-grained tracing output
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// OffLevel disables logging when used as a threshold; no record
	// ever carries this level
	OffLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case OffLevel:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Code returns the numeric severity emitted in machine-readable output.
// The mapping (Trace=10, Debug=20, Info=30, Warn=40, Error=50) is fixed;
// downstream consumers depend on these exact values.
func (l Level) Code() int {
	switch l {
	case TraceLevel:
		return 10
	case DebugLevel:
		return 20
	case InfoLevel:
		return 30
	case WarnLevel:
		return 40
	case ErrorLevel:
		return 50
	default:
		return 0
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return TraceLevel
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "OFF", "NONE":
		return OffLevel
	default:
		return InfoLevel
	}
}

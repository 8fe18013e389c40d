package core

import "strings"

// DefaultSeparator is the namespace separator used to split targets
// into segments, e.g. "server::http::router".
const DefaultSeparator = "::"

// Levels maps target names to minimum severity thresholds, with one
// default threshold for targets that have no override.
//
// Lookup matches only the first namespace segment of a target, so an
// override for "server" governs "server::http" as well, while an
// override for "server::http" never matches anything deeper than an
// exact first segment. This coarse matching is deliberate.
type Levels struct {
	def       Level
	overrides map[string]Level
	sep       string
}

// NewLevels creates a level table with the given default threshold and
// the "::" separator.
func NewLevels(def Level) *Levels {
	return &Levels{def: def, sep: DefaultSeparator}
}

// SetDefault replaces the default threshold.
func (l *Levels) SetDefault(def Level) {
	l.def = def
}

// SetSeparator replaces the namespace separator. An empty separator
// makes every lookup use the full target string.
func (l *Levels) SetSeparator(sep string) {
	l.sep = sep
}

// Set assigns a threshold to a target, replacing any existing override.
// Targets are free-form strings; there are no error conditions.
func (l *Levels) Set(target string, level Level) {
	if l.overrides == nil {
		l.overrides = make(map[string]Level)
	}
	l.overrides[target] = level
}

// Resolve returns the effective threshold for a target: the override
// stored under the target's first namespace segment, or the default
// threshold when no override matches.
func (l *Levels) Resolve(target string) Level {
	key := target
	if l.sep != "" {
		if i := strings.Index(target, l.sep); i >= 0 {
			key = target[:i]
		}
	}
	if level, ok := l.overrides[key]; ok {
		return level
	}
	return l.def
}

// Ceiling returns the most permissive threshold across the default and
// all overrides. No record below the ceiling can be emitted for any
// target, which makes it a cheap global pre-filter: callers can skip
// building a record entirely when its level does not clear it.
func (l *Levels) Ceiling() Level {
	ceiling := l.def
	for _, level := range l.overrides {
		if level < ceiling {
			ceiling = level
		}
	}
	return ceiling
}

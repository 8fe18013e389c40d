package handler

import (
	"math"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/kvnallsn/femme/core"
)

// ZapCore is an adapter that implements zapcore.Core on top of a
// Dispatcher, letting zap-based code log through femme:
//
//	log := zap.New(handler.NewZapCore(d)).Named("server")
//
// The zap logger name becomes the record target, so per-target level
// overrides apply to named zap loggers the same way they apply to
// femme's own loggers.
type ZapCore struct {
	dispatcher *Dispatcher
	fields     []core.Field
}

// NewZapCore creates a new zapcore.Core adapter around the dispatcher.
func NewZapCore(d *Dispatcher) *ZapCore {
	return &ZapCore{dispatcher: d}
}

// Enabled reports whether the core handles entries at the given level.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return c.dispatcher.Enabled(zapLevelToCore(level))
}

// With returns a child core carrying the additional fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]core.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	for _, f := range fields {
		newFields = append(newFields, zapFieldToField(f))
	}
	return &ZapCore{
		dispatcher: c.dispatcher,
		fields:     newFields,
	}
}

// Check determines whether the entry should be logged and registers the
// core with the checked entry if so.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry to a core.Record and passes it to the
// dispatcher.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rec := core.GetRecord()
	rec.Level = zapLevelToCore(ent.Level)
	rec.Target = ent.LoggerName
	rec.Message = ent.Message

	if len(c.fields) > 0 {
		rec.Fields = append(rec.Fields, c.fields...)
	}
	for _, f := range fields {
		rec.Fields = append(rec.Fields, zapFieldToField(f))
	}

	err := c.dispatcher.Log(rec)
	core.PutRecord(rec)
	return err
}

// Sync is a no-op; the sink is unbuffered.
func (c *ZapCore) Sync() error {
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level. Zap has no
// trace level; everything below Debug maps to Debug, everything at
// Error and above (including DPanic/Panic/Fatal) maps to Error.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level <= zapcore.DebugLevel:
		return core.DebugLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	default:
		return core.ErrorLevel
	}
}

// zapFieldToField converts a zapcore.Field onto the core.Field slots.
func zapFieldToField(f zapcore.Field) core.Field {
	switch f.Type {
	case zapcore.StringType:
		return core.Field{Key: f.Key, Type: core.StringType, Str: f.String}
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return core.Field{Key: f.Key, Type: core.Int64Type, Int64: f.Integer}
	case zapcore.BoolType:
		return core.Field{Key: f.Key, Type: core.BoolType, Int64: f.Integer}
	case zapcore.Float64Type:
		return core.Field{Key: f.Key, Type: core.Float64Type, Float64: math.Float64frombits(uint64(f.Integer))}
	case zapcore.Float32Type:
		return core.Field{Key: f.Key, Type: core.Float64Type, Float64: float64(math.Float32frombits(uint32(f.Integer)))}
	case zapcore.DurationType:
		return core.Field{Key: f.Key, Type: core.DurationType, Int64: f.Integer}
	case zapcore.TimeType:
		return core.Field{Key: f.Key, Type: core.TimeType, Int64: f.Integer}
	case zapcore.TimeFullType:
		if t, ok := f.Interface.(time.Time); ok {
			return core.Field{Key: f.Key, Type: core.TimeType, Int64: t.UnixNano()}
		}
		return core.Field{Key: f.Key, Type: core.AnyType, Any: f.Interface}
	case zapcore.ErrorType:
		if err, ok := f.Interface.(error); ok {
			return core.Field{Key: f.Key, Type: core.ErrorType, Str: err.Error()}
		}
		return core.Field{Key: f.Key, Type: core.AnyType, Any: f.Interface}
	default:
		return core.Field{Key: f.Key, Type: core.AnyType, Any: f.Interface}
	}
}

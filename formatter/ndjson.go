package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/kvnallsn/femme/core"
)

// NDJSON formats log records as newline-delimited JSON-shaped lines:
//
//	{"level":30,"time":1735689600000,"msg":"listening","port":8080}
//
// The level is the fixed numeric code (Trace=10 .. Error=50) and the
// time is milliseconds since the Unix epoch, sampled from the injected
// clock at render time.
//
// The message and field values are embedded via their display form
// without escaping, matching the established wire format exactly. A
// message or value containing quotes or control characters therefore
// produces a line that is not valid JSON.
type NDJSON struct {
	clock core.Clock
}

// NewNDJSON creates a new ndjson formatter. A nil clock defaults to the
// system wall clock.
func NewNDJSON(clock core.Clock) *NDJSON {
	if clock == nil {
		clock = core.SystemClock
	}
	return &NDJSON{clock: clock}
}

// Format formats a record as a single ndjson line
func (f *NDJSON) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record as ndjson and writes it directly to the writer
func (f *NDJSON) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer builds the line manually into the buffer without allocations
func (f *NDJSON) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteString(`{"level":`)
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Level.Code()), 10))

	buf.WriteString(`,"time":`)
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), f.clock().UnixMilli(), 10))

	buf.WriteString(`,"msg":"`)
	buf.WriteString(rec.Message)
	buf.WriteByte('"')

	for _, field := range rec.Fields {
		buf.WriteString(`,"`)
		buf.WriteString(field.Key)
		buf.WriteString(`":`)
		buf.WriteString(field.StringValue())
	}

	buf.WriteString("}\n")
}

package formatter

import (
	"bytes"
	"io"

	"github.com/kvnallsn/femme/core"
)

// ANSI term codes.
const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// Pretty formats log records as colorized human-readable text: the
// target in a bold severity color (green for Trace/Debug/Info, yellow
// for Warn, red for Error), the message verbatim, then one indented
// line per field with the key in bold.
type Pretty struct{}

// NewPretty creates a new pretty formatter
func NewPretty() *Pretty {
	return &Pretty{}
}

// Format formats a record as colorized text
func (f *Pretty) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *Pretty) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted record into the given buffer
func (f *Pretty) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	switch rec.Level {
	case core.WarnLevel:
		buf.WriteString(ansiYellow)
	case core.ErrorLevel:
		buf.WriteString(ansiRed)
	default:
		buf.WriteString(ansiGreen)
	}
	buf.WriteString(ansiBold)
	buf.WriteString(rec.Target)
	buf.WriteString(ansiReset)

	buf.WriteByte(' ')
	buf.WriteString(rec.Message)

	for _, field := range rec.Fields {
		buf.WriteString("\n    ")
		buf.WriteString(ansiBold)
		buf.WriteString(field.Key)
		buf.WriteString(ansiReset)
		buf.WriteByte(' ')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}

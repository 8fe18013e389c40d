// Package formatter defines how log records are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. The dispatcher
// uses the WriterFormatter path, eliminating the intermediate byte
// slice allocation on the write path.
//
// Both built-in formatters (Pretty and NDJSON) implement both
// interfaces. They use a pooled bytes.Buffer internally and rely on
// Go's Append-style functions (strconv.AppendInt) to avoid per-call
// allocations. Each FormatTo call issues exactly one Write to the
// underlying writer, so one record's bytes reach the sink as a single
// unit.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter

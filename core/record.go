package core

import "sync"

// Record is a single log event: a severity level, the namespaced target
// it originated from, a pre-formatted message, and an ordered list of
// key-value fields. Records are transient; the dispatcher consumes one
// and never retains it past the call that processed it.
type Record struct {
	Level   Level
	Target  string
	Message string
	Fields  []Field
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Fields = r.Fields[:0]
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	r.Fields = r.Fields[:0]
	r.Target = ""
	r.Message = ""
	recordPool.Put(r)
}

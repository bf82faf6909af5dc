package report

import "log"

// EventSink receives progress and diagnostic events from the root
// Partition entry point. Infof is for top-level progress (the start of a
// partition call and its outcome); Debugf is for per-probe detail (each
// probe's area ratio and crossing limit).
type EventSink interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// NoopSink discards every event. It is the zero value callers get when
// they do not want logging (and what tests use, to keep output quiet).
type NoopSink struct{}

func (NoopSink) Infof(string, ...interface{})  {}
func (NoopSink) Debugf(string, ...interface{}) {}

// StdLogSink forwards events to the standard library's log package.
// Debug events are only forwarded when Verbose is set, mirroring a
// two-level INFO/DEBUG split without pulling in a structured logging
// dependency nothing in this module's corpus exercises directly.
type StdLogSink struct {
	Verbose bool
}

func (s StdLogSink) Infof(format string, args ...interface{}) {
	log.Printf("INFO  "+format, args...)
}

func (s StdLogSink) Debugf(format string, args ...interface{}) {
	if !s.Verbose {
		return
	}
	log.Printf("DEBUG "+format, args...)
}

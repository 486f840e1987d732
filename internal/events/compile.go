package events

import "time"

// CompileStart is emitted when a compile begins, before the first pass runs.
type CompileStart struct {
	Documents int
}

// CompileFinish is emitted after the pass list has run (or was truncated by a
// fatal diagnostic).
type CompileFinish struct {
	Documents   int
	Diagnostics int
	Fatal       bool
	Duration    time.Duration
}

// PassStart is emitted before a single pass runs over the document store.
type PassStart struct {
	Name string
}

// PassFinish is emitted after a single pass returns.
type PassFinish struct {
	Name        string
	Diagnostics int
	Duration    time.Duration
}

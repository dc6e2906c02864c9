package walk

import "sync/atomic"

// Totals counts what one run has seen. Only the walker writes; readers
// outside the walker goroutine get eventually consistent values.
type Totals struct {
	files   atomic.Int64
	folders atomic.Int64
	correct atomic.Int64
	errors  atomic.Int64
	current atomic.Pointer[string]
}

// Summary is a point-in-time copy of Totals.
type Summary struct {
	Files   int64 `json:"files"`
	Folders int64 `json:"folders"`
	Correct int64 `json:"correct"`
	Errors  int64 `json:"errors"`
}

// Snapshot copies the counters.
func (t *Totals) Snapshot() Summary {
	return Summary{
		Files:   t.files.Load(),
		Folders: t.folders.Load(),
		Correct: t.correct.Load(),
		Errors:  t.errors.Load(),
	}
}

// Current returns the path most recently entered by the walker.
func (t *Totals) Current() string {
	if p := t.current.Load(); p != nil {
		return *p
	}
	return ""
}

func (t *Totals) setCurrent(path string) { t.current.Store(&path) }

// Status is the overall verdict of a run.
type Status int

const (
	StatusUnknown Status = iota // nothing was checked
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Status reports failure if any error was counted, success if any file was
// correct, and unknown otherwise.
func (s Summary) Status() Status {
	switch {
	case s.Errors > 0:
		return StatusFailure
	case s.Correct > 0:
		return StatusSuccess
	}
	return StatusUnknown
}

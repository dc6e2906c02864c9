package output

import (
	"time"

	"github.com/maxvaer/plaincheck/internal/walk"
)

// Stats holds the end-of-run figures handed to WriteFooter.
type Stats struct {
	walk.Summary
	Cancelled bool
	Duration  time.Duration
}

// Writer is implemented by each output format.
type Writer interface {
	WriteHeader() error
	WriteEvent(ev walk.Event) error
	WriteFooter(stats Stats) error
	Close() error
}

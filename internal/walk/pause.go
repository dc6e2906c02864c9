package walk

import (
	"context"
	"sync"
	"time"
)

// Pauser is a pause/resume gate the walker passes before each node.
// When running, Wait costs a mutex round trip.
type Pauser struct {
	mu          sync.Mutex
	paused      bool
	resume      chan struct{}
	pausedSince time.Time
	totalPaused time.Duration
}

// NewPauser creates a Pauser in the running state.
func NewPauser() *Pauser {
	return &Pauser{}
}

// Wait blocks while paused. It returns early with the context error when
// ctx is done.
func (p *Pauser) Wait(ctx context.Context) error {
	p.mu.Lock()
	if !p.paused {
		p.mu.Unlock()
		return nil
	}
	ch := p.resume
	p.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Toggle flips between paused and running and returns true if now paused.
func (p *Pauser) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		p.totalPaused += time.Since(p.pausedSince)
		p.paused = false
		close(p.resume)
	} else {
		p.paused = true
		p.resume = make(chan struct{})
		p.pausedSince = time.Now()
	}
	return p.paused
}

// IsPaused returns whether the walk is currently paused.
func (p *Pauser) IsPaused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// PausedDuration returns the total time spent paused, including any pause
// still in progress.
func (p *Pauser) PausedDuration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	d := p.totalPaused
	if p.paused {
		d += time.Since(p.pausedSince)
	}
	return d
}

package output

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/maxvaer/plaincheck/internal/walk"
)

const statusInterval = time.Second

// Progress shows a status line on stderr with the running totals and the
// path being checked. It is inert when stderr is not a terminal.
type Progress struct {
	totals *walk.Totals
	w      io.Writer
	width  int
	start  time.Time

	mu      sync.Mutex
	enabled bool
	drawn   bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewProgress creates a status line over totals. Call Start to begin
// updates.
func NewProgress(totals *walk.Totals, quiet bool) *Progress {
	fd := os.Stderr.Fd()
	enabled := !quiet && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	width := 80
	if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
		width = w
	}
	return &Progress{
		totals:  totals,
		w:       os.Stderr,
		width:   width,
		start:   time.Now(),
		enabled: enabled,
		done:    make(chan struct{}),
	}
}

// Start begins periodically printing the status line.
func (p *Progress) Start() {
	if !p.enabled {
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(statusInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.Redraw()
			case <-p.done:
				return
			}
		}
	}()
}

// Stop ends the display and erases the status line.
func (p *Progress) Stop() {
	close(p.done)
	p.wg.Wait()
	p.ClearLine()
}

// ClearLine erases the status line so other output can be written.
func (p *Progress) ClearLine() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.drawn {
		fmt.Fprint(p.w, "\r\033[K")
		p.drawn = false
	}
}

// Interrupt erases the status line and runs fn while no redraw can happen.
// The line comes back on the next tick.
func (p *Progress) Interrupt(fn func() error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.drawn {
		fmt.Fprint(p.w, "\r\033[K")
		p.drawn = false
	}
	return fn()
}

// Redraw prints the status line with the current totals.
func (p *Progress) Redraw() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.w, "\r\033[K"+p.line())
	p.drawn = true
}

func (p *Progress) line() string {
	s := p.totals.Snapshot()
	head := fmt.Sprintf("[%s] %s files | %s folders | %s errors | ",
		time.Since(p.start).Round(time.Second),
		numbers.Sprintf("%d", s.Files),
		numbers.Sprintf("%d", s.Folders),
		numbers.Sprintf("%d", s.Errors))
	return head + truncateLeft(p.totals.Current(), p.width-len(head)-1)
}

// truncateLeft keeps the end of s, which is the interesting part of a path.
func truncateLeft(s string, max int) string {
	r := []rune(s)
	if max <= 3 {
		return ""
	}
	if len(r) <= max {
		return s
	}
	return "..." + string(r[len(r)-max+3:])
}

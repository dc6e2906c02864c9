package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/maxvaer/plaincheck/internal/classify"
	"github.com/maxvaer/plaincheck/internal/walk"
)

// TextWriter writes one report line per event, coloured when the
// destination is a terminal.
type TextWriter struct {
	w      io.Writer
	closer io.Closer

	good, bad, folder, note *color.Color
}

// NewTextWriter creates a text output writer. If outputFile is empty, stdout
// is used. Colour is only used on stdout, and never with noColor.
func NewTextWriter(outputFile string, noColor bool) (*TextWriter, error) {
	if outputFile == "" {
		return newTextWriter(os.Stdout, nil, !noColor && !color.NoColor), nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, err
	}
	return newTextWriter(f, f, false), nil
}

func newTextWriter(w io.Writer, closer io.Closer, useColor bool) *TextWriter {
	t := &TextWriter{
		w:      w,
		closer: closer,
		good:   color.New(color.FgGreen),
		bad:    color.New(color.FgRed),
		folder: color.New(color.FgCyan),
		note:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{t.good, t.bad, t.folder, t.note} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

func (t *TextWriter) WriteHeader() error { return nil }

func (t *TextWriter) WriteEvent(ev walk.Event) error {
	_, err := fmt.Fprintln(t.w, t.colorFor(ev).Sprint(ev.Line()))
	return err
}

func (t *TextWriter) colorFor(ev walk.Event) *color.Color {
	switch ev.Kind {
	case walk.FolderEntered:
		return t.folder
	case walk.HiddenSkipped, walk.SubfolderSkipped, walk.LoopSkipped:
		return t.note
	case walk.NotFound:
		return t.bad
	}
	if ev.Result != nil && ev.Result.Outcome() == classify.Correct {
		return t.good
	}
	return t.bad
}

func (t *TextWriter) WriteFooter(stats Stats) error {
	if stats.Cancelled {
		if _, err := fmt.Fprintln(t.w, CancelledLine); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(t.w, FormatSummary(stats.Summary))
	return err
}

func (t *TextWriter) Close() error {
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}

package walk

import (
	"fmt"
	"strings"

	"github.com/maxvaer/plaincheck/internal/classify"
)

// EventKind tells a reporter what happened.
type EventKind int

const (
	FolderEntered EventKind = iota
	HiddenSkipped
	SubfolderSkipped
	NotFound
	FileChecked
	// LoopSkipped is a link back to a folder that is still being searched.
	LoopSkipped
)

// Event is one report line worth of information.
type Event struct {
	Kind EventKind
	Name string
	Path string

	// Result is set for FileChecked.
	Result *classify.Result
	// Encoding is the charset name used, for the unsupported charset line.
	Encoding string
}

// Line renders the event as a single report line.
func (e Event) Line() string {
	switch e.Kind {
	case FolderEntered:
		return "Searching folder " + e.Path
	case HiddenSkipped:
		return e.Name + " - ignoring hidden file or subfolder"
	case SubfolderSkipped:
		return e.Name + " - ignoring subfolder"
	case NotFound:
		return e.Name + " - not a file or folder"
	case LoopSkipped:
		return e.Name + " - ignoring link to a folder already being searched"
	}

	r := e.Result
	if r == nil {
		return e.Name
	}
	switch r.Outcome() {
	case classify.Correct:
		return e.Name + " - is " + r.Mode.String()
	case classify.EncodingError:
		return e.Name + " - invalid character set name <" + e.Encoding + ">"
	case classify.IOError:
		return e.Name + " - " + r.ErrMessage()
	}

	var b strings.Builder
	b.WriteString(e.Name)
	if r.HasBadChar {
		fmt.Fprintf(&b, " - invalid character, 0x%X", r.BadChar)
	}
	if r.TrailingSpace {
		b.WriteString(" - trailing spaces or tabs")
	}
	return b.String()
}

// Failed reports whether the event counts as an error.
func (e Event) Failed() bool {
	switch e.Kind {
	case NotFound:
		return true
	case FileChecked:
		return e.Result != nil && !e.Result.OK()
	}
	return false
}

// Reporter receives events in traversal order.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Event)

func (f ReporterFunc) Report(e Event) { f(e) }

// ChanReporter forwards events to a channel owned by the consumer.
type ChanReporter chan<- Event

func (c ChanReporter) Report(e Event) { c <- e }

// Show selects which file results are reported.
type Show int

const (
	ShowAll Show = iota
	ShowCorrect
	ShowErrors
)

// ParseShow accepts all, correct and errors.
func ParseShow(s string) (Show, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return ShowAll, nil
	case "correct", "success":
		return ShowCorrect, nil
	case "errors", "error", "failure":
		return ShowErrors, nil
	}
	return ShowAll, fmt.Errorf("invalid show value %q: must be one of all, correct, errors", s)
}

func (s Show) correct() bool { return s != ShowErrors }
func (s Show) failures() bool { return s != ShowCorrect }
func (s Show) other() bool    { return s == ShowAll }

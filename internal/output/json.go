package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/maxvaer/plaincheck/internal/walk"
)

type jsonEntry struct {
	Path          string `json:"path"`
	Name          string `json:"name"`
	Outcome       string `json:"outcome"`
	InvalidChar   string `json:"invalid_char,omitempty"`
	TrailingSpace bool   `json:"trailing_space,omitempty"`
	Error         string `json:"error,omitempty"`
}

type jsonReport struct {
	Results   []jsonEntry  `json:"results"`
	Summary   walk.Summary `json:"summary"`
	Status    string       `json:"status"`
	Cancelled bool         `json:"cancelled,omitempty"`
	Message   string       `json:"message"`
}

// JSONWriter collects reported files and writes one JSON document.
type JSONWriter struct {
	w       io.Writer
	closer  io.Closer
	entries []jsonEntry
}

// NewJSONWriter creates a JSON output writer.
func NewJSONWriter(outputFile string) (*JSONWriter, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		w = f
		closer = f
	}
	return &JSONWriter{w: w, closer: closer, entries: []jsonEntry{}}, nil
}

func (j *JSONWriter) WriteHeader() error { return nil }

func (j *JSONWriter) WriteEvent(ev walk.Event) error {
	if e, ok := entryFor(ev); ok {
		j.entries = append(j.entries, e)
	}
	return nil
}

func (j *JSONWriter) WriteFooter(stats Stats) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Results:   j.entries,
		Summary:   stats.Summary,
		Status:    stats.Summary.Status().String(),
		Cancelled: stats.Cancelled,
		Message:   FormatSummary(stats.Summary),
	})
}

func (j *JSONWriter) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}

// entryFor converts file results and missing paths; folder notices are
// not part of structured output.
func entryFor(ev walk.Event) (jsonEntry, bool) {
	switch ev.Kind {
	case walk.NotFound:
		return jsonEntry{Path: ev.Path, Name: ev.Name, Outcome: "not-found"}, true
	case walk.FileChecked:
		r := ev.Result
		if r == nil {
			return jsonEntry{}, false
		}
		e := jsonEntry{
			Path:          ev.Path,
			Name:          ev.Name,
			Outcome:       r.Outcome().String(),
			TrailingSpace: r.TrailingSpace,
			Error:         r.ErrMessage(),
		}
		if r.HasBadChar {
			e.InvalidChar = fmt.Sprintf("0x%X", r.BadChar)
		}
		return e, true
	}
	return jsonEntry{}, false
}

package output

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/maxvaer/plaincheck/internal/walk"
)

// CSVWriter writes one row per reported file.
type CSVWriter struct {
	w      *csv.Writer
	closer io.Closer
}

// NewCSVWriter creates a CSV output writer.
func NewCSVWriter(outputFile string) (*CSVWriter, error) {
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
	return &CSVWriter{w: csv.NewWriter(w), closer: closer}, nil
}

func (c *CSVWriter) WriteHeader() error {
	return c.w.Write([]string{"path", "name", "outcome", "invalid_char", "trailing_space", "error"})
}

func (c *CSVWriter) WriteEvent(ev walk.Event) error {
	e, ok := entryFor(ev)
	if !ok {
		return nil
	}
	return c.w.Write([]string{
		e.Path,
		e.Name,
		e.Outcome,
		e.InvalidChar,
		strconv.FormatBool(e.TrailingSpace),
		e.Error,
	})
}

func (c *CSVWriter) WriteFooter(_ Stats) error {
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVWriter) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

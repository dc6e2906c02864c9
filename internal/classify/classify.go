// Package classify checks whether a file is plain text, trimmed text, both
// or neither, in a single pass over its bytes or decoded characters.
package classify

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/text/transform"
)

// The context is polled once per pollEvery units.
const pollEvery = 4096

const (
	fullWidthSpace = 0x3000
	nul            = 0x00
	del            = 0x7F
)

// Classifier scans files with one encoding and mode. It is safe to reuse
// across files; the encoding is resolved on first use.
type Classifier struct {
	name string
	mode Mode

	once sync.Once
	enc  Encoding
	err  error
}

// New returns a Classifier for the given encoding name and mode.
func New(encoding string, mode Mode) *Classifier {
	return &Classifier{name: encoding, mode: mode}
}

// Mode returns the checks this classifier performs.
func (c *Classifier) Mode() Mode { return c.mode }

// EncodingName returns the encoding name as given by the caller.
func (c *Classifier) EncodingName() string { return c.name }

func (c *Classifier) encoding() (Encoding, error) {
	c.once.Do(func() {
		c.enc, c.err = ResolveEncoding(c.name)
	})
	return c.enc, c.err
}

// Classify reads path once and reports what it found. It never modifies
// the file.
func (c *Classifier) Classify(ctx context.Context, path string) Result {
	res := Result{Path: path, Name: filepath.Base(path), Mode: c.mode}

	enc, err := c.encoding()
	if err != nil {
		res.Err = err
		return res
	}

	f, err := os.Open(path)
	if err != nil {
		res.Err = err
		return res
	}
	defer f.Close()

	var units unitReader
	if enc.Raw() {
		units = byteUnits{bufio.NewReader(f)}
	} else {
		units = runeUnits{bufio.NewReader(transform.NewReader(f, enc.Decoder.NewDecoder()))}
	}

	s := scan{plain: c.mode.Plain(), trim: c.mode.Trim()}
	if err := s.run(ctx, units); err != nil {
		if ctx.Err() != nil {
			res.Cancelled = true
			return res
		}
		res.Err = fmt.Errorf("reading %s: %w", path, err)
		return res
	}
	if s.cancelled {
		res.Cancelled = true
		return res
	}

	res.BadChar, res.HasBadChar = s.badChar, s.hasBad
	res.TrailingSpace = s.foundSpace
	return res
}

type unitReader interface {
	readUnit() (rune, error)
}

type byteUnits struct{ r *bufio.Reader }

func (b byteUnits) readUnit() (rune, error) {
	c, err := b.r.ReadByte()
	return rune(c), err
}

type runeUnits struct{ r *bufio.Reader }

func (u runeUnits) readUnit() (rune, error) {
	r, _, err := u.r.ReadRune()
	return r, err
}

// scan holds the state of one pass over a file.
type scan struct {
	plain, trim bool

	badChar      rune
	hasBad       bool
	foundSpace   bool
	whitePending bool
	cancelled    bool
}

func (s *scan) pending() bool {
	return (s.plain && !s.hasBad) || (s.trim && !s.foundSpace)
}

func (s *scan) run(ctx context.Context, units unitReader) error {
	for n := 0; s.pending(); n++ {
		if n%pollEvery == 0 && ctx.Err() != nil {
			s.cancelled = true
			return nil
		}
		ch, err := units.readUnit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		s.step(ch)
	}
	// A file may end with white space and no line break.
	s.foundSpace = s.foundSpace || s.whitePending
	return nil
}

func (s *scan) step(ch rune) {
	switch {
	case ch == '\n' || ch == '\r':
		s.foundSpace = s.foundSpace || s.whitePending
		s.whitePending = false
	case ch == '\t' || ch == ' ' || ch == fullWidthSpace:
		s.whitePending = s.trim
	case ch >= 0x21 && ch <= 0x7E:
		s.whitePending = false
	default:
		if s.plain && !s.hasBad {
			s.badChar, s.hasBad = ch, true
		}
		// NUL and DEL do not end a run of trailing white space.
		if ch != nul && ch != del {
			s.whitePending = false
		}
	}
}

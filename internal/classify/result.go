package classify

import (
	"errors"
	"io/fs"
)

// Outcome is the verdict for one classified file.
type Outcome int

const (
	Correct Outcome = iota
	InvalidCharacter
	TrailingWhitespace
	InvalidAndTrailing
	EncodingError
	IOError
	Cancelled
)

var outcomeNames = [...]string{
	Correct:            "correct",
	InvalidCharacter:   "invalid-character",
	TrailingWhitespace: "trailing-whitespace",
	InvalidAndTrailing: "invalid-character+trailing-whitespace",
	EncodingError:      "encoding-error",
	IOError:            "io-error",
	Cancelled:          "cancelled",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Result holds what was found in a single file.
type Result struct {
	Path string
	Name string
	Mode Mode

	// BadChar is the first unit outside the accepted set. In raw mode it is
	// a byte value, otherwise a Unicode code point.
	BadChar    rune
	HasBadChar bool

	// TrailingSpace is set when a line, or the file, ends in a space, tab
	// or full-width space.
	TrailingSpace bool

	Err       error
	Cancelled bool
}

// Outcome derives the verdict from the collected flags.
func (r *Result) Outcome() Outcome {
	switch {
	case r.Cancelled:
		return Cancelled
	case errors.Is(r.Err, ErrUnsupportedEncoding):
		return EncodingError
	case r.Err != nil:
		return IOError
	case r.HasBadChar && r.TrailingSpace:
		return InvalidAndTrailing
	case r.HasBadChar:
		return InvalidCharacter
	case r.TrailingSpace:
		return TrailingWhitespace
	}
	return Correct
}

// OK reports whether the file is correct.
func (r *Result) OK() bool { return r.Outcome() == Correct }

// ErrMessage returns the error text without the operation and path prefix
// that *fs.PathError adds.
func (r *Result) ErrMessage() string {
	if r.Err == nil {
		return ""
	}
	var pe *fs.PathError
	if errors.As(r.Err, &pe) {
		return pe.Err.Error()
	}
	return r.Err.Error()
}

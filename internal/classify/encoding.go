package classify

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Reserved encoding names. The parenthesized labels are accepted as aliases.
const (
	EncodingLocal = "local"
	EncodingRaw   = "raw"

	labelLocal = "(local default)"
	labelRaw   = "(raw data bytes)"
)

// ErrUnsupportedEncoding is returned for charset names that cannot be
// decoded.
var ErrUnsupportedEncoding = errors.New("unsupported character set")

// Encoding describes how file content is turned into units. A nil Decoder
// means raw bytes.
type Encoding struct {
	Name    string
	Decoder encoding.Encoding
}

// Raw reports whether units are undecoded bytes.
func (e Encoding) Raw() bool { return e.Decoder == nil }

// ResolveEncoding maps a user supplied name onto an Encoding. The local
// default is UTF-8; malformed input then decodes to U+FFFD.
func ResolveEncoding(name string) (Encoding, error) {
	trimmed := strings.TrimSpace(name)
	switch strings.ToLower(trimmed) {
	case "", EncodingLocal, labelLocal:
		return Encoding{Name: EncodingLocal, Decoder: unicode.UTF8}, nil
	case EncodingRaw, labelRaw:
		return Encoding{Name: EncodingRaw}, nil
	}

	enc, err := ianaindex.IANA.Encoding(trimmed)
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(trimmed)
	}
	if err != nil || enc == nil {
		return Encoding{}, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}
	return Encoding{Name: trimmed, Decoder: enc}, nil
}

// Encodings returns the sorted IANA names of every charset that can be used
// with ResolveEncoding, plus the two reserved names.
func Encodings() []string {
	var all []encoding.Encoding
	all = append(all, charmap.All...)
	all = append(all, japanese.All...)
	all = append(all, korean.All...)
	all = append(all, simplifiedchinese.All...)
	all = append(all, traditionalchinese.All...)
	all = append(all, unicode.All...)

	seen := make(map[string]struct{}, len(all))
	names := make([]string, 0, len(all))
	for _, e := range all {
		n, err := ianaindex.IANA.Name(e)
		if err != nil || n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return append([]string{EncodingLocal, EncodingRaw}, names...)
}

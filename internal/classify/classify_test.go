package classify

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestClassifyCorrect(t *testing.T) {
	content := []byte("package main\r\n\tfunc main() {}\n\n~!@#$%^&*()_+\n")
	for _, enc := range []string{EncodingRaw, EncodingLocal, "UTF-8", "ISO-8859-1"} {
		t.Run(enc, func(t *testing.T) {
			path := writeFile(t, "ok.txt", content)
			res := New(enc, Both).Classify(context.Background(), path)
			require.NoError(t, res.Err)
			assert.Equal(t, Correct, res.Outcome())
			assert.True(t, res.OK())
			assert.Equal(t, "ok.txt", res.Name)
		})
	}
}

func TestClassifyTrailingWhitespace(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"space before LF", "one\ntwo \nthree\n"},
		{"tab before CRLF", "one\t\r\ntwo\r\n"},
		{"space at end of file", "one\ntwo "},
		{"blank line of spaces", "one\n   \n"},
		{"nul keeps pending space", "one \x00\n"},
		{"del keeps pending space", "one \x7f\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "f.txt", []byte(tt.content))
			res := New(EncodingRaw, Trim).Classify(context.Background(), path)
			require.NoError(t, res.Err)
			assert.True(t, res.TrailingSpace)
			assert.False(t, res.HasBadChar)
			assert.Equal(t, TrailingWhitespace, res.Outcome())
		})
	}
}

func TestClassifyFullWidthSpace(t *testing.T) {
	path := writeFile(t, "f.txt", []byte("text　\nmore\n"))

	res := New("UTF-8", Trim).Classify(context.Background(), path)
	require.NoError(t, res.Err)
	assert.Equal(t, TrailingWhitespace, res.Outcome())

	// In plain mode the ideographic space is not a bad character either.
	res = New("UTF-8", Plain).Classify(context.Background(), path)
	assert.Equal(t, Correct, res.Outcome())
}

func TestClassifyInvalidCharacterRaw(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    rune
	}{
		{"nul", []byte("abc\x00def\n"), 0x00},
		{"high bit", []byte("abc\x80\xffdef\n"), 0x80},
		{"0xFF first", []byte("\xff\n"), 0xFF},
		{"form feed", []byte("a\fb\n"), 0x0C},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "f.bin", tt.content)
			res := New(EncodingRaw, Plain).Classify(context.Background(), path)
			require.NoError(t, res.Err)
			require.True(t, res.HasBadChar)
			assert.Equal(t, tt.want, res.BadChar)
			assert.Equal(t, InvalidCharacter, res.Outcome())
		})
	}
}

func TestClassifyInvalidCharacterDecoded(t *testing.T) {
	// é in UTF-8 is two bytes but a single code point.
	path := writeFile(t, "f.txt", []byte("caf\xc3\xa9\n"))

	res := New("UTF-8", Plain).Classify(context.Background(), path)
	require.True(t, res.HasBadChar)
	assert.Equal(t, rune(0xE9), res.BadChar)

	res = New(EncodingRaw, Plain).Classify(context.Background(), path)
	require.True(t, res.HasBadChar)
	assert.Equal(t, rune(0xC3), res.BadChar)

	res = New("ISO-8859-1", Plain).Classify(context.Background(), path)
	require.True(t, res.HasBadChar)
	assert.Equal(t, rune(0xC3), res.BadChar)
}

func TestClassifyMalformedLocal(t *testing.T) {
	path := writeFile(t, "f.txt", []byte("ok\xff\n"))
	res := New(EncodingLocal, Plain).Classify(context.Background(), path)
	require.True(t, res.HasBadChar)
	assert.Equal(t, rune(0xFFFD), res.BadChar)
}

func TestClassifyBoth(t *testing.T) {
	path := writeFile(t, "f.txt", []byte("a\x01 \nb\n"))
	res := New(EncodingRaw, Both).Classify(context.Background(), path)
	require.NoError(t, res.Err)
	assert.True(t, res.HasBadChar)
	assert.Equal(t, rune(0x01), res.BadChar)
	assert.True(t, res.TrailingSpace)
	assert.Equal(t, InvalidAndTrailing, res.Outcome())
}

func TestClassifyModeIgnoresOtherCheck(t *testing.T) {
	path := writeFile(t, "f.txt", []byte("\x80 \n"))

	res := New(EncodingRaw, Plain).Classify(context.Background(), path)
	assert.False(t, res.TrailingSpace, "trailing space ignored in plain mode")
	assert.True(t, res.HasBadChar)

	res = New(EncodingRaw, Trim).Classify(context.Background(), path)
	assert.False(t, res.HasBadChar, "bad characters ignored in trim mode")
	assert.True(t, res.TrailingSpace)
}

func TestClassifyIdempotent(t *testing.T) {
	content := []byte("x \ny\x90\n")
	path := writeFile(t, "f.txt", content)
	c := New(EncodingRaw, Both)

	first := c.Classify(context.Background(), path)
	second := c.Classify(context.Background(), path)
	assert.Equal(t, first, second)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, after, "file must not be modified")
}

func TestClassifyEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)
	res := New(EncodingRaw, Both).Classify(context.Background(), path)
	assert.Equal(t, Correct, res.Outcome())
}

func TestClassifyUnsupportedEncoding(t *testing.T) {
	path := writeFile(t, "f.txt", []byte("abc\n"))
	res := New("no-such-charset", Both).Classify(context.Background(), path)
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, ErrUnsupportedEncoding)
	assert.Equal(t, EncodingError, res.Outcome())
}

func TestClassifyMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	res := New(EncodingRaw, Both).Classify(context.Background(), path)
	require.Error(t, res.Err)
	assert.Equal(t, IOError, res.Outcome())
	assert.NotContains(t, res.ErrMessage(), path)
}

func TestClassifyCancelled(t *testing.T) {
	path := writeFile(t, "big.txt", []byte(strings.Repeat("abc\n", 10000)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := New(EncodingRaw, Both).Classify(ctx, path)
	assert.True(t, res.Cancelled)
	assert.Equal(t, Cancelled, res.Outcome())
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"plain": Plain, "1": Plain,
		"trim": Trim, "2": Trim,
		"both": Both, "3": Both, "": Both,
	}
	for in, want := range tests {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("4")
	assert.Error(t, err)

	assert.Equal(t, "plain text", Plain.String())
	assert.Equal(t, "trimmed text", Trim.String())
	assert.Equal(t, "plain trimmed text", Both.String())
}

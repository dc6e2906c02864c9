package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/maxvaer/plaincheck/internal/classify"
	"github.com/maxvaer/plaincheck/internal/walk"
)

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		sum  walk.Summary
		want string
	}{
		{
			sum:  walk.Summary{Files: 2, Folders: 1, Correct: 1, Errors: 1},
			want: "Found 2 files in 1 folder: 1 was correct and 1 had errors.",
		},
		{
			sum:  walk.Summary{Files: 1, Folders: 0, Correct: 0, Errors: 1},
			want: "Found 1 file in 0 folders: 0 were correct and 1 had errors.",
		},
		{
			sum:  walk.Summary{Files: 12345, Folders: 2, Correct: 12345},
			want: "Found 12,345 files in 2 folders: 12,345 were correct and 0 had errors.",
		},
	}
	for _, tt := range tests {
		if got := FormatSummary(tt.sum); got != tt.want {
			t.Errorf("FormatSummary(%+v) = %q, want %q", tt.sum, got, tt.want)
		}
	}
}

func sampleEvents() []walk.Event {
	ok := &classify.Result{Name: "a.txt", Mode: classify.Both}
	bad := &classify.Result{Name: "b.txt", Mode: classify.Both, HasBadChar: true, BadChar: 0xFF, TrailingSpace: true}
	return []walk.Event{
		{Kind: walk.FolderEntered, Name: "dir", Path: "/dir"},
		{Kind: walk.FileChecked, Name: "a.txt", Path: "/dir/a.txt", Result: ok},
		{Kind: walk.FileChecked, Name: "b.txt", Path: "/dir/b.txt", Result: bad},
		{Kind: walk.SubfolderSkipped, Name: "sub", Path: "/dir/sub"},
		{Kind: walk.NotFound, Name: "gone", Path: "/gone"},
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := newTextWriter(&buf, nil, false)

	for _, ev := range sampleEvents() {
		if err := w.WriteEvent(ev); err != nil {
			t.Fatal(err)
		}
	}
	stats := Stats{Summary: walk.Summary{Files: 2, Folders: 1, Correct: 1, Errors: 2}, Cancelled: true}
	if err := w.WriteFooter(stats); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"Searching folder /dir",
		"a.txt - is plain trimmed text",
		"b.txt - invalid character, 0xFF - trailing spaces or tabs",
		"sub - ignoring subfolder",
		"gone - not a file or folder",
		"Cancelled by user.",
		"Found 2 files in 1 folder: 1 was correct and 2 had errors.",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("unexpected text output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTextWriterColor(t *testing.T) {
	var buf bytes.Buffer
	w := newTextWriter(&buf, nil, true)
	if err := w.WriteEvent(sampleEvents()[1]); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[32m") {
		t.Errorf("expected green escape for a correct file, got %q", buf.String())
	}
}

func TestJSONWriter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	w, err := NewJSONWriter(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, ev := range sampleEvents() {
		if err := w.WriteEvent(ev); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.WriteFooter(Stats{Summary: walk.Summary{Files: 2, Folders: 1, Correct: 1, Errors: 2}}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got jsonReport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, data)
	}
	if len(got.Results) != 3 {
		t.Fatalf("expected 3 results (files and missing path), got %d", len(got.Results))
	}
	if got.Results[1].InvalidChar != "0xFF" || !got.Results[1].TrailingSpace {
		t.Errorf("unexpected entry for b.txt: %+v", got.Results[1])
	}
	if got.Results[2].Outcome != "not-found" {
		t.Errorf("expected not-found outcome, got %q", got.Results[2].Outcome)
	}
	if got.Status != "failure" {
		t.Errorf("expected failure status, got %q", got.Status)
	}
}

func TestCSVWriter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")
	w, err := NewCSVWriter(out)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteHeader(); err != nil {
		t.Fatal(err)
	}
	for _, ev := range sampleEvents() {
		if err := w.WriteEvent(ev); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.WriteFooter(Stats{}); err != nil {
		t.Fatal(err)
	}
	w.Close()

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d:\n%s", len(lines), data)
	}
	if lines[2] != "/dir/b.txt,b.txt,invalid-character+trailing-whitespace,0xFF,true," {
		t.Errorf("unexpected row: %q", lines[2])
	}
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	PrintTree(&buf, "Files with errors", []string{
		"/home/u/src/b.txt",
		"/home/u/src/pkg/a.txt",
		"/home/u/src/b.txt",
	})
	want := "\n  Files with errors (under /home/u/src):\n" +
		"  ├── b.txt\n" +
		"  └── pkg\n" +
		"      └── a.txt\n"
	if buf.String() != want {
		t.Errorf("unexpected tree:\n%s\nwant:\n%s", buf.String(), want)
	}

	buf.Reset()
	PrintTree(&buf, "empty", nil)
	if buf.Len() != 0 {
		t.Error("expected no output for an empty list")
	}
}

func TestTruncateLeft(t *testing.T) {
	if got := truncateLeft("/a/b/c/file.txt", 10); got != "...ile.txt" {
		t.Errorf("truncateLeft = %q", got)
	}
	if got := truncateLeft("short", 10); got != "short" {
		t.Errorf("truncateLeft = %q", got)
	}
}

func TestProgressInterruptClearsLine(t *testing.T) {
	var buf bytes.Buffer
	p := &Progress{totals: &walk.Totals{}, w: &buf, width: 80, start: time.Now(), enabled: true, done: make(chan struct{})}

	p.Redraw()
	if !strings.Contains(buf.String(), "0 files | 0 folders | 0 errors") {
		t.Fatalf("status line not drawn: %q", buf.String())
	}
	buf.Reset()

	err := p.Interrupt(func() error {
		buf.WriteString("hook output\n")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\r\033[Khook output\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	buf.Reset()
	_ = p.Interrupt(func() error { return nil })
	if buf.Len() != 0 {
		t.Errorf("cleared line was cleared again: %q", buf.String())
	}
}

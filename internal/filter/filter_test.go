package filter

import (
	"runtime"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "mixed delimiters and case",
			input: "  .java,.TXT ;.xml",
			want:  []string{".java", ".txt", ".xml"},
		},
		{
			name:  "every delimiter",
			input: ".a+.b,.c:.d;.e|.f .g",
			want:  []string{".a", ".b", ".c", ".d", ".e", ".f", ".g"},
		},
		{
			name:  "duplicates keep first position",
			input: ".txt .md .TXT",
			want:  []string{".txt", ".md"},
		},
		{
			name:  "only delimiters",
			input: " ,;| ",
			want:  nil,
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input).List()
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSuffixMatches(t *testing.T) {
	s := Parse("  .java,.TXT ;.xml")

	if !s.Matches("Foo.TXT") {
		t.Error("Foo.TXT should match .txt")
	}
	if !s.Matches("build.xml") {
		t.Error("build.xml should match .xml")
	}
	if s.Matches("Foo.md") {
		t.Error("Foo.md should not match")
	}
	// No dot is inserted: "txt" suffix tokens match bare endings too.
	if !Parse("txt").Matches("notestxt") {
		t.Error("plain suffix match expected")
	}
}

func TestSuffixEmptyAcceptsAll(t *testing.T) {
	var disabled *Suffix
	if !disabled.Matches("anything.bin") {
		t.Error("nil filter should accept all names")
	}
	if !Parse("").Matches("anything.bin") {
		t.Error("empty filter should accept all names")
	}
	if !disabled.Empty() {
		t.Error("nil filter should report Empty")
	}
}

func TestIsHidden(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("hidden attribute test requires attribute setup")
	}
	if !IsHidden("/tmp/.git", ".git") {
		t.Error(".git should be hidden")
	}
	if IsHidden("/tmp/src", "src") {
		t.Error("src should not be hidden")
	}
}

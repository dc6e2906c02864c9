package output

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/maxvaer/plaincheck/internal/walk"
)

// CancelledLine is written when a run ends by user request.
const CancelledLine = "Cancelled by user."

var numbers = message.NewPrinter(language.English)

// FormatSummary renders the closing line of a run, e.g.
// "Found 2 files in 1 folder: 1 was correct and 1 had errors."
func FormatSummary(s walk.Summary) string {
	return "Found " + count(s.Files, "file", "files") +
		" in " + count(s.Folders, "folder", "folders") +
		": " + count(s.Correct, "was", "were") +
		" correct and " + numbers.Sprintf("%d", s.Errors) + " had errors."
}

func count(n int64, one, many string) string {
	word := many
	if n == 1 {
		word = one
	}
	return numbers.Sprintf("%d", n) + " " + word
}

package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/maxvaer/plaincheck/internal/classify"
	"github.com/maxvaer/plaincheck/internal/config"
	"github.com/maxvaer/plaincheck/internal/filter"
	"github.com/maxvaer/plaincheck/internal/hook"
	"github.com/maxvaer/plaincheck/internal/output"
	"github.com/maxvaer/plaincheck/internal/pathlist"
	"github.com/maxvaer/plaincheck/internal/walk"
	"github.com/maxvaer/plaincheck/pkg/version"
)

// ErrNoPaths is returned when there is nothing to check.
var ErrNoPaths = errors.New("no files or folders given: pass paths as arguments or use --from-file")

// Run checks every path in opts and writes the report. The returned status
// tells whether errors were found, files were correct, or neither. A run
// cut short by cancellation or an unsupported character set still writes
// its summary and is not an error.
func Run(ctx context.Context, opts *config.Options) (walk.Status, error) {
	roots, err := resolveRoots(opts)
	if err != nil {
		return walk.StatusUnknown, err
	}

	mode, err := classify.ParseMode(opts.Mode)
	if err != nil {
		return walk.StatusUnknown, err
	}
	show, err := walk.ParseShow(opts.Show)
	if err != nil {
		return walk.StatusUnknown, err
	}
	var suffix *filter.Suffix
	if strings.TrimSpace(opts.Suffixes) != "" {
		suffix = filter.Parse(opts.Suffixes)
	}

	out, err := createWriter(opts)
	if err != nil {
		return walk.StatusUnknown, fmt.Errorf("creating output writer: %w", err)
	}
	defer out.Close()

	if err := out.WriteHeader(); err != nil {
		return walk.StatusUnknown, err
	}

	if !opts.Quiet {
		printBanner(opts, mode, suffix, len(roots))
	}

	pauser, cleanup := startStdinToggle(opts.Quiet)
	defer cleanup()

	var hookRunner *hook.Runner
	if opts.OnErrorCmd != "" {
		hookRunner = hook.NewRunner(opts.OnErrorCmd, opts.Quiet)
	}

	events := make(chan walk.Event, 64)
	w := walk.New(walk.Config{
		Suffix:        suffix,
		Recurse:       opts.Recurse,
		IncludeHidden: opts.Hidden,
		Show:          show,
		Pauser:        pauser,
	}, classify.New(opts.Encoding, mode), walk.ChanReporter(events))

	progress := output.NewProgress(w.Totals(), opts.Quiet)
	progress.Start()
	startTime := time.Now()

	// The walker is the only producer; everything below runs on this
	// goroutine.
	walkErr := make(chan error, 1)
	go func() {
		defer close(events)
		walkErr <- w.WalkAll(ctx, roots)
	}()

	var writeErr error
	var failed []string
	for ev := range events {
		if writeErr == nil {
			writeErr = progress.Interrupt(func() error { return out.WriteEvent(ev) })
		}
		if hookRunner != nil {
			_ = progress.Interrupt(func() error {
				hookRunner.Run(ev)
				return nil
			})
		}
		if opts.Tree && ev.Failed() {
			failed = append(failed, ev.Path)
		}
	}
	err = <-walkErr
	progress.Stop()

	stats := output.Stats{
		Summary:  w.Totals().Snapshot(),
		Duration: time.Since(startTime),
	}
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		stats.Cancelled = true
	case errors.Is(err, classify.ErrUnsupportedEncoding):
		if !opts.Quiet {
			fmt.Fprintf(os.Stderr, "[!] Stopped: %v\n", err)
		}
	default:
		return stats.Summary.Status(), err
	}
	if writeErr != nil {
		return stats.Summary.Status(), fmt.Errorf("writing report: %w", writeErr)
	}

	if err := out.WriteFooter(stats); err != nil {
		return stats.Summary.Status(), err
	}
	if opts.Tree && !opts.Quiet {
		output.PrintTree(os.Stderr, "Files with errors", failed)
	}
	if !opts.Quiet {
		done := stats.Duration.Round(time.Millisecond).String()
		if pauser != nil && pauser.PausedDuration() > 0 {
			done += fmt.Sprintf(" (paused %s)", pauser.PausedDuration().Round(time.Second))
		}
		fmt.Fprintf(os.Stderr, "[*] Done in %s\n", done)
	}
	return stats.Summary.Status(), nil
}

// resolveRoots collects the paths to check from arguments and --from-file.
func resolveRoots(opts *config.Options) ([]string, error) {
	roots := append([]string(nil), opts.Paths...)
	if opts.FromFile != "" {
		listed, err := pathlist.Load(opts.FromFile)
		if err != nil {
			return nil, err
		}
		roots = append(roots, listed...)
	}
	if len(roots) == 0 {
		return nil, ErrNoPaths
	}
	return roots, nil
}

func createWriter(opts *config.Options) (output.Writer, error) {
	switch opts.OutputFormat {
	case "json":
		return output.NewJSONWriter(opts.OutputFile)
	case "csv":
		return output.NewCSVWriter(opts.OutputFile)
	default:
		return output.NewTextWriter(opts.OutputFile, opts.NoColor)
	}
}

func printBanner(opts *config.Options, mode classify.Mode, suffix *filter.Suffix, roots int) {
	label := color.New(color.Faint)
	value := color.New(color.FgHiWhite)
	title := color.New(color.FgCyan, color.Bold)
	if opts.NoColor {
		for _, c := range []*color.Color{label, value, title} {
			c.DisableColor()
		}
	}

	types := "all files"
	if !suffix.Empty() {
		types = suffix.String()
	}
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	w := os.Stderr
	fmt.Fprintf(w, "\n  %s %s\n", title.Sprint("plaincheck"), label.Sprint(version.Version))
	fmt.Fprintf(w, "%s\n", label.Sprint("  ──────────────────────────────────────"))
	row := func(k, v string) {
		fmt.Fprintf(w, "  %s %s\n", label.Sprintf("%-13s", k+":"), value.Sprint(v))
	}
	row("Paths", fmt.Sprintf("%d", roots))
	row("Checking", mode.String())
	row("Encoding", opts.Encoding)
	row("File types", types)
	row("Subfolders", yesNo(opts.Recurse))
	row("Hidden", yesNo(opts.Hidden))
	fmt.Fprintf(w, "%s\n\n", label.Sprint("  ──────────────────────────────────────"))
}

// Package walk drives the classifier over files and folders in a fixed
// order and keeps the run totals.
package walk

import (
	"context"
	"os"
	"path/filepath"

	"github.com/maxvaer/plaincheck/internal/classify"
	"github.com/maxvaer/plaincheck/internal/filter"
)

// Config is read-only for the duration of a run.
type Config struct {
	Suffix        *filter.Suffix // nil accepts every file
	Recurse       bool
	IncludeHidden bool
	Show          Show
	Pauser        *Pauser // nil = no pause support
}

// Walker walks one run. Create a new Walker for every run.
type Walker struct {
	cfg    Config
	clf    *classify.Classifier
	report Reporter
	totals Totals

	// fatal is set when a failure must end the whole run.
	fatal error
	// searching holds the folders on the current descent path. A link back
	// to one of them would recurse forever.
	searching map[string]struct{}
}

// New returns a Walker that reports events to r.
func New(cfg Config, clf *classify.Classifier, r Reporter) *Walker {
	if r == nil {
		r = ReporterFunc(func(Event) {})
	}
	return &Walker{cfg: cfg, clf: clf, report: r, searching: make(map[string]struct{})}
}

// Totals returns the live counters of this run.
func (w *Walker) Totals() *Totals { return &w.totals }

func (w *Walker) stopped(ctx context.Context) error {
	if w.fatal != nil {
		return w.fatal
	}
	return ctx.Err()
}

// WalkAll walks every root in traversal order and stops at the first
// error returned by Walk.
func (w *Walker) WalkAll(ctx context.Context, roots []string) error {
	for _, root := range SortPaths(roots) {
		if err := w.Walk(ctx, root); err != nil {
			return err
		}
	}
	return nil
}

// Walk processes a file or a folder. It returns the context error on
// cancellation or the fatal error that stopped the run, nil otherwise.
// Per-file failures are reported and counted, not returned.
func (w *Walker) Walk(ctx context.Context, path string) error {
	if err := w.stopped(ctx); err != nil {
		return err
	}
	if w.cfg.Pauser != nil {
		if err := w.cfg.Pauser.Wait(ctx); err != nil {
			return err
		}
	}

	canon := Canonical(path)
	name := ""
	if canon != "" {
		name = filepath.Base(canon)
	}
	w.totals.setCurrent(canon)

	switch statKind(canon) {
	case Dir:
		if _, ok := w.searching[canon]; ok {
			if w.cfg.Show.other() {
				w.report.Report(Event{Kind: LoopSkipped, Name: filepath.Base(path), Path: canon})
			}
			return nil
		}
		w.searching[canon] = struct{}{}
		defer delete(w.searching, canon)
		return w.walkDir(ctx, canon)
	case File:
		return w.walkFile(ctx, canon, name)
	}

	w.totals.errors.Add(1)
	w.report.Report(Event{Kind: NotFound, Name: name, Path: canon})
	return nil
}

func (w *Walker) walkDir(ctx context.Context, dir string) error {
	w.totals.folders.Add(1)
	w.report.Report(Event{Kind: FolderEntered, Name: filepath.Base(dir), Path: dir})

	for _, e := range w.children(dir) {
		if err := w.stopped(ctx); err != nil {
			return err
		}
		switch {
		case e.Hidden && !w.cfg.IncludeHidden:
			if w.cfg.Show.other() {
				w.report.Report(Event{Kind: HiddenSkipped, Name: e.Name, Path: e.Path})
			}
		case e.Kind == Dir:
			if w.cfg.Recurse {
				if err := w.Walk(ctx, e.Path); err != nil {
					return err
				}
			} else if w.cfg.Show.other() {
				w.report.Report(Event{Kind: SubfolderSkipped, Name: e.Name, Path: e.Path})
			}
		case e.Kind == File:
			if w.cfg.Suffix.Matches(e.Name) {
				if err := w.Walk(ctx, e.Path); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// children lists dir in traversal order. A listing error yields whatever
// entries could be read, usually none.
func (w *Walker) children(dir string) []Entry {
	des, _ := os.ReadDir(dir)
	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		p := filepath.Join(dir, de.Name())
		entries = append(entries, Entry{
			Name:   de.Name(),
			Path:   p,
			Kind:   statKind(p),
			Hidden: filter.IsHidden(p, de.Name()),
		})
	}
	Sort(entries)
	return entries
}

func (w *Walker) walkFile(ctx context.Context, path, name string) error {
	w.totals.files.Add(1)

	res := w.clf.Classify(ctx, path)
	if res.Cancelled || ctx.Err() != nil {
		return ctx.Err()
	}
	res.Name = name
	ev := Event{Kind: FileChecked, Name: name, Path: path, Result: &res, Encoding: w.clf.EncodingName()}

	switch res.Outcome() {
	case classify.EncodingError:
		w.totals.errors.Add(1)
		w.report.Report(ev)
		w.fatal = res.Err
		return w.fatal
	case classify.IOError:
		w.totals.errors.Add(1)
		w.report.Report(ev)
	case classify.Correct:
		w.totals.correct.Add(1)
		if w.cfg.Show.correct() {
			w.report.Report(ev)
		}
	default:
		w.totals.errors.Add(1)
		if w.cfg.Show.failures() {
			w.report.Report(ev)
		}
	}
	return nil
}

// Canonical returns the absolute path with links resolved. Each step falls
// back to the previous form when it fails; an empty path stays empty.
func Canonical(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

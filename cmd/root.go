package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/maxvaer/plaincheck/internal/classify"
	"github.com/maxvaer/plaincheck/internal/config"
	"github.com/maxvaer/plaincheck/internal/runner"
	"github.com/maxvaer/plaincheck/internal/walk"
	"github.com/maxvaer/plaincheck/pkg/version"
)

// Exit codes.
const (
	ExitSuccess = 0 // at least one file checked, no errors
	ExitFailure = 1 // errors found, or the command line was wrong
	ExitUnknown = 2 // nothing was checked
)

var (
	opts          = config.Defaults()
	listEncodings bool
	// status is set once a check has run; help and version output exit 0.
	status *walk.Status
)

type flagGroup struct {
	title string
	flags []string
}

var helpGroups = []flagGroup{
	{"INPUT", []string{"from-file", "suffixes", "recurse", "hidden"}},
	{"CHECKS", []string{"encoding", "mode", "list-encodings"}},
	{"OUTPUT", []string{"show", "output", "format", "quiet", "no-color", "tree"}},
	{"HOOKS", []string{"on-error"}},
	{"CONFIGURATION", []string{"config"}},
}

var rootCmd = &cobra.Command{
	Use:     "plaincheck [flags] <file-or-folder>...",
	Short:   "Check that text files are plain and have no trailing whitespace",
	Version: version.Version,
	Long: `plaincheck reads text files in a chosen character set and reports files
that contain characters other than printable ASCII, tab and line breaks, or
lines that end in spaces or tabs.`,
	Example: `  plaincheck src
  plaincheck -s -f .java,.txt src docs
  plaincheck -m plain -e windows-1252 notes.txt
  plaincheck -e raw --show errors -o report.json --format json .
  plaincheck -l paths.txt --tree
  plaincheck -s . --on-error "echo {path} {outcome}"`,
	Args: cobra.ArbitraryArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if listEncodings {
			return nil
		}
		if opts.ConfigFile != "" {
			file, err := config.LoadFile(opts.ConfigFile)
			if err != nil {
				return err
			}
			file.Apply(&opts, cmd.Flags().Changed)
			if !opts.Quiet {
				fmt.Fprintf(os.Stderr, "[+] Loaded config from %s\n", opts.ConfigFile)
			}
		}
		if opts.NoColor {
			color.NoColor = true
		}
		opts.Paths = args
		if len(opts.Paths) == 0 && opts.FromFile == "" {
			_ = cmd.Help()
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("nothing to check: give files or folders, or use --from-file")
		}
		if _, err := classify.ParseMode(opts.Mode); err != nil {
			return err
		}
		if _, err := walk.ParseShow(opts.Show); err != nil {
			return err
		}
		switch opts.OutputFormat {
		case "text", "json", "csv":
		default:
			return fmt.Errorf("--format must be one of: text, json, csv")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if listEncodings {
			for _, name := range classify.Encodings() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		st, err := runner.Run(ctx, &opts)
		status = &st
		return err
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()

	// Input
	f.StringVarP(&opts.FromFile, "from-file", "l", "", "File with one file or folder per line (- for stdin)")
	f.StringVarP(&opts.Suffixes, "suffixes", "f", "", "Only check files ending in these suffixes (e.g. .java,.txt)")
	f.BoolVarP(&opts.Recurse, "recurse", "s", false, "Check subfolders")
	f.BoolVar(&opts.Hidden, "hidden", false, "Check hidden files and folders")

	// Checks
	f.StringVarP(&opts.Encoding, "encoding", "e", opts.Encoding, "Character set name, local, or raw")
	f.StringVarP(&opts.Mode, "mode", "m", opts.Mode, "What to check: plain, trim, both")
	f.BoolVar(&listEncodings, "list-encodings", false, "List supported character sets and exit")

	// Output
	f.StringVar(&opts.Show, "show", opts.Show, "Files to report: all, correct, errors")
	f.StringVarP(&opts.OutputFile, "output", "o", "", "Output file path")
	f.StringVar(&opts.OutputFormat, "format", opts.OutputFormat, "Output format: text, json, csv")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "Only print the report")
	f.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	f.BoolVar(&opts.Tree, "tree", false, "Print a tree of files with errors after the check")

	// Hooks
	f.StringVar(&opts.OnErrorCmd, "on-error", "", "Shell command to run for each file with errors (receives JSON on stdin)")

	// Configuration
	f.StringVar(&opts.ConfigFile, "config", "", "TOML config file; flags on the command line take precedence")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		w := os.Stderr
		fmt.Fprint(w, helpBanner(cmd.Version))
		fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.UseLine())
		fmt.Fprintf(w, "\nExamples:\n%s\n", cmd.Example)
		fmt.Fprintf(w, "\nFlags:\n")
		for _, g := range helpGroups {
			fmt.Fprintf(w, "\n%s:\n", g.title)
			for _, name := range g.flags {
				if f := cmd.Flags().Lookup(name); f != nil {
					fmt.Fprintln(w, formatFlag(f))
				}
			}
		}
		fmt.Fprintln(w)
	})
}

// Execute runs the root command and exits with the status of the check.
func Execute() {
	rootCmd.SetArgs(rewriteLegacyArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitFailure)
	}
	if status != nil {
		os.Exit(exitCode(*status))
	}
}

// rewriteLegacyArgs maps the short options of older releases onto the
// current flags. pflag would read -s0 as -s followed by an unknown -0.
func rewriteLegacyArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		switch arg {
		case "-s0":
			arg = "--recurse=false"
		case "-s1":
			arg = "--recurse=true"
		case "-?":
			arg = "--help"
		}
		out = append(out, arg)
	}
	return out
}

func exitCode(s walk.Status) int {
	switch s {
	case walk.StatusSuccess:
		return ExitSuccess
	case walk.StatusFailure:
		return ExitFailure
	}
	return ExitUnknown
}

func formatFlag(f *pflag.Flag) string {
	var left string
	if f.Shorthand != "" {
		left = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	} else {
		left = fmt.Sprintf("    --%s", f.Name)
	}

	typ := f.Value.Type()
	if typ != "bool" {
		left += " " + typ
	}

	const col = 32
	for len(left) < col {
		left += " "
	}

	right := f.Usage
	if def := f.DefValue; def != "" && def != "false" {
		right += fmt.Sprintf(" (default %s)", def)
	}
	return "   " + left + right
}

func helpBanner(ver string) string {
	if ver != "dev" && ver != "" && !strings.HasPrefix(ver, "v") {
		ver = "v" + ver
	}
	return fmt.Sprintf(`
        _       _           _           _
  _ __ | | __ _(_)_ __  ___| |__   ___ | | __
 | '_ \| |/ _' | | '_ \/ __| '_ \ / _ \| |/ /
 | |_) | | (_| | | | | | (__| | | |  __/|   <
 | .__/|_|\__,_|_|_| |_|\___|_| |_|\___||_|\_\
 |_|                                           %s

`, ver)
}

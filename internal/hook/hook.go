package hook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/maxvaer/plaincheck/internal/walk"
)

// resultJSON is the JSON payload sent to the hook command via stdin.
type resultJSON struct {
	Path          string `json:"path"`
	Name          string `json:"name"`
	Outcome       string `json:"outcome"`
	InvalidChar   string `json:"invalid_char,omitempty"`
	TrailingSpace bool   `json:"trailing_space"`
	Error         string `json:"error,omitempty"`
}

// Runner executes a shell command for each file that failed a check.
type Runner struct {
	cmd     string
	quiet   bool
	timeout time.Duration
}

// NewRunner creates a hook runner. cmd is the shell command to execute.
func NewRunner(cmd string, quiet bool) *Runner {
	return &Runner{cmd: cmd, quiet: quiet, timeout: 30 * time.Second}
}

// Run executes the hook command with the file result as JSON on stdin and
// in PLAINCHECK_* environment variables. Placeholders in the command refer
// to those variables, so they must not be put inside quotes of your own.
// Events that are not failing files are ignored. Errors are logged but do
// not halt the run.
func (r *Runner) Run(ev walk.Event) {
	if ev.Kind != walk.FileChecked || ev.Result == nil || ev.Result.OK() {
		return
	}
	res := ev.Result

	payload := resultJSON{
		Path:          ev.Path,
		Name:          ev.Name,
		Outcome:       res.Outcome().String(),
		TrailingSpace: res.TrailingSpace,
		Error:         res.ErrMessage(),
	}
	if res.HasBadChar {
		payload.InvalidChar = fmt.Sprintf("0x%X", res.BadChar)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[hook] marshal error: %v\n", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	shell, args := shellCommand()
	cmd := exec.CommandContext(ctx, shell, append(args, expand(r.cmd))...)
	cmd.Env = append(os.Environ(),
		"PLAINCHECK_PATH="+ev.Path,
		"PLAINCHECK_NAME="+ev.Name,
		"PLAINCHECK_OUTCOME="+payload.Outcome,
		"PLAINCHECK_CHAR="+payload.InvalidChar,
	)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stderr = os.Stderr

	output, err := cmd.Output()
	if err != nil {
		if !r.quiet {
			fmt.Fprintf(os.Stderr, "[hook] error: %v\n", err)
		}
		return
	}

	if len(output) > 0 && !r.quiet {
		fmt.Fprintf(os.Stderr, "[hook] %s", output)
	}
}

// placeholders map each {token} to the variable carrying its value. File
// names come from the scanned tree, so they never become shell syntax: the
// shell expands the quoted variable after parsing the command.
var placeholders = []struct{ token, env string }{
	{"{path}", "PLAINCHECK_PATH"},
	{"{name}", "PLAINCHECK_NAME"},
	{"{outcome}", "PLAINCHECK_OUTCOME"},
	{"{char}", "PLAINCHECK_CHAR"},
}

func expand(command string) string {
	for _, p := range placeholders {
		command = strings.ReplaceAll(command, p.token, envRef(p.env))
	}
	return command
}

// envRef quotes a variable reference for the platform shell. Windows file
// names cannot contain a double quote, so the cmd form stays one argument.
func envRef(name string) string {
	if runtime.GOOS == "windows" {
		return `"%` + name + `%"`
	}
	return `"$` + name + `"`
}

func shellCommand() (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C"}
	}
	return "sh", []string{"-c"}
}

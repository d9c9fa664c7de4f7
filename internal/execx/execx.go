// Package execx spawns external processes with a bounded timeout. It is the
// only place in toolctl that starts OS processes; everything above it sees
// command outcomes as plain values.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// DefaultTimeout bounds a single command execution when the caller does not
// configure one.
const DefaultTimeout = 10 * time.Second

// Result is the outcome of one command execution. Failures are reported via
// Success=false; ExecuteSafe never returns a Go error.
type Result struct {
	Success  bool
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner is the process-spawning collaborator the detection engine depends
// on. Implementations must apply a timeout and must never panic; a command
// that cannot run yields Success=false.
type Runner interface {
	// ExecuteSafe runs a shell command string and reports its outcome.
	ExecuteSafe(ctx context.Context, command string) Result
	// ToolPath resolves the absolute path of an executable on PATH.
	ToolPath(name string) (string, bool)
}

// Shell runs command strings through the platform shell: cmd /C on Windows
// (needed for .cmd launcher shims like npm's), sh -c elsewhere.
type Shell struct {
	Timeout time.Duration
}

// NewShell returns a Shell runner with the given per-command timeout.
func NewShell(timeout time.Duration) *Shell {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Shell{Timeout: timeout}
}

// ExecuteSafe implements Runner.
func (s *Shell) ExecuteSafe(ctx context.Context, command string) Result {
	if strings.TrimSpace(command) == "" {
		return Result{ExitCode: -1}
	}
	cctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(cctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(cctx, "sh", "-c", command)
	}
	// Avoid pagers, colors and interactive prompts in probed tools.
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	switch {
	case err == nil:
		res.Success = true
	case cctx.Err() != nil:
		// Timed out (or parent context cancelled) before completion.
		res.ExitCode = -1
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
	}
	return res
}

// ToolPath implements Runner.
func (s *Shell) ToolPath(name string) (string, bool) {
	p, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return p, true
}

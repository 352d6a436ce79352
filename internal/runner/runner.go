// Package runner executes install command lines through the system shell.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Result is the outcome of one command line
type Result struct {
	Code int
	Err  error
}

// OK reports whether the command exited with status 0
func (r Result) OK() bool {
	return r.Code == 0 && r.Err == nil
}

// Runner runs a shell command line synchronously and reports its exit status.
// Output is not captured or parsed.
type Runner interface {
	Run(ctx context.Context, command string) Result
}

// Shell runs commands with `sh -c`, attached to the given stdio so install
// scripts can prompt (sudo passwords, confirmations).
type Shell struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Path   string // interpreter, defaults to "sh"
}

// NewShell returns a Shell attached to the process's own stdio
func NewShell() *Shell {
	return &Shell{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes command and waits for it. There is no timeout: installs may
// wait on interactive prompts for as long as the user needs.
func (s *Shell) Run(ctx context.Context, command string) Result {
	sh := s.Path
	if sh == "" {
		sh = "sh"
	}
	cmd := exec.CommandContext(ctx, sh, "-c", command)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	err := cmd.Run()
	if err == nil {
		return Result{}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{Code: exitErr.ExitCode(), Err: err}
	}
	if ctx.Err() != nil {
		return Result{Code: 130, Err: ctx.Err()}
	}
	// The shell itself could not be started
	return Result{Code: 127, Err: err}
}

// DryRun prints each command instead of running it
type DryRun struct {
	Out io.Writer
}

// Run writes "+ command" and reports success
func (d *DryRun) Run(_ context.Context, command string) Result {
	fmt.Fprintf(d.Out, "+ %s\n", command)
	return Result{}
}

package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/noborus/ov/oviewer"

	"envinstall/internal/install"
	"envinstall/internal/runner"
)

// RunnerFactory builds the runner for one batch, bound to the terminal the
// batch was handed
type RunnerFactory func(stdin io.Reader, stdout, stderr io.Writer) runner.Runner

// ShellRunners returns a factory for real shell runners
func ShellRunners() RunnerFactory {
	return func(stdin io.Reader, stdout, stderr io.Writer) runner.Runner {
		return &runner.Shell{Stdin: stdin, Stdout: stdout, Stderr: stderr}
	}
}

// DryRunners returns a factory for runners that only print commands
func DryRunners() RunnerFactory {
	return func(_ io.Reader, stdout, _ io.Writer) runner.Runner {
		return &runner.DryRun{Out: stdout}
	}
}

// batchCommand runs an install batch with the terminal released, so install
// scripts can prompt. It implements tea.ExecCommand.
type batchCommand struct {
	ctx          context.Context
	orchestrator *install.Orchestrator
	newRunner    RunnerFactory
	indices      []int

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	report install.Report
}

func newBatchCommand(ctx context.Context, orch *install.Orchestrator, newRunner RunnerFactory, indices []int) *batchCommand {
	return &batchCommand{
		ctx:          ctx,
		orchestrator: orch,
		newRunner:    newRunner,
		indices:      indices,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

func (c *batchCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *batchCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *batchCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run installs the batch, then waits for enter before handing the terminal back
func (c *batchCommand) Run() error {
	orch := c.orchestrator.WithIO(c.stdout, c.newRunner(c.stdin, c.stdout, c.stderr))
	c.report = orch.InstallAll(c.ctx, c.indices)

	fmt.Fprint(c.stdout, "Press Enter to continue")
	_, err := bufio.NewReader(c.stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

// pagerCommand shows text in the ov pager. ov drives the terminal itself, so
// the stdio setters are ignored.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Don't write the buffer back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

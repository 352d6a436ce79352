// Package install runs the install procedures of selected registry entries.
//
// Items are processed strictly one at a time in registry order. A failure is
// reported and the batch moves on; nothing is rolled back or retried.
package install

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"envinstall/internal/domain"
	"envinstall/internal/eventbus"
	"envinstall/internal/osinfo"
	"envinstall/internal/registry"
	"envinstall/internal/runner"
)

// Outcome is the terminal state of one item in a batch
type Outcome int

const (
	OutcomeAlreadyPresent Outcome = iota
	OutcomeSucceeded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyPresent:
		return "already present"
	case OutcomeSucceeded:
		return "succeeded"
	default:
		return "failed"
	}
}

// Item records what happened to one registry entry
type Item struct {
	Index    int
	Name     string
	Outcome  Outcome
	ExitCode int
}

// Report is the result of a batch, in registry order
type Report struct {
	Items []Item
}

// Count returns how many items ended in outcome
func (r Report) Count(outcome Outcome) int {
	n := 0
	for _, it := range r.Items {
		if it.Outcome == outcome {
			n++
		}
	}
	return n
}

// PresenceChecker reports whether a descriptor is already installed
type PresenceChecker interface {
	IsPresent(d domain.Descriptor) bool
}

// Options configures an Orchestrator
type Options struct {
	Registry *registry.Registry
	Checker  PresenceChecker
	Runner   runner.Runner
	Host     osinfo.Host
	Bus      eventbus.EventBus // optional
	Out      io.Writer
}

// Orchestrator installs registry entries through a Runner
type Orchestrator struct {
	registry *registry.Registry
	checker  PresenceChecker
	runner   runner.Runner
	host     osinfo.Host
	bus      eventbus.EventBus
	out      io.Writer
}

// New creates an orchestrator
func New(opts Options) *Orchestrator {
	return &Orchestrator{
		registry: opts.Registry,
		checker:  opts.Checker,
		runner:   opts.Runner,
		host:     opts.Host,
		bus:      opts.Bus,
		out:      opts.Out,
	}
}

// WithIO returns a copy that writes its transcript to out and runs commands
// through r. The TUI uses this to bind a batch to the terminal it was handed.
func (o *Orchestrator) WithIO(out io.Writer, r runner.Runner) *Orchestrator {
	cp := *o
	cp.out = out
	cp.runner = r
	return &cp
}

// Install runs the install procedure for the entry at index unless it is
// already present
func (o *Orchestrator) Install(ctx context.Context, index int) Item {
	d := o.registry.At(index)
	item := Item{Index: index, Name: d.Name}

	if d.HasCheck() && o.checker.IsPresent(d) {
		o.println(colSuccess, "%s already installed", d.Name)
		item.Outcome = OutcomeAlreadyPresent
		o.publish(eventbus.InstallSkippedEvent{Index: index, Name: d.Name})
		return item
	}

	commands, err := d.Install.Plan(o.host)
	if err != nil {
		o.println(colError, "%s: cannot plan install: %v", d.Name, err)
		item.Outcome = OutcomeFailed
		o.publish(eventbus.InstallFailedEvent{Index: index, Name: d.Name, Err: err})
		return item
	}

	o.println(colStep, "Installing %s...", d.Name)
	o.publish(eventbus.InstallStartedEvent{Index: index, Name: d.Name, Commands: commands})

	for _, command := range commands {
		res := o.runner.Run(ctx, command)
		if !res.OK() {
			o.println(colError, "%s failed (exit status %d)", d.Name, res.Code)
			item.Outcome = OutcomeFailed
			item.ExitCode = res.Code
			o.publish(eventbus.InstallFailedEvent{
				Index:    index,
				Name:     d.Name,
				Command:  command,
				ExitCode: res.Code,
				Err:      res.Err,
			})
			return item
		}
	}

	if d.Hint != "" {
		o.println(colWarn, "%s", d.Hint)
	}
	item.Outcome = OutcomeSucceeded
	o.publish(eventbus.InstallSucceededEvent{Index: index, Name: d.Name})
	return item
}

// InstallAll installs every index in registry order. Duplicate and
// out-of-range indices are dropped.
func (o *Orchestrator) InstallAll(ctx context.Context, indices []int) Report {
	indices = o.normalize(indices)
	if len(indices) == 0 {
		o.println(colWarn, "Nothing selected!")
		return Report{}
	}

	fmt.Fprintln(o.out)
	o.println(colInfo, "Installing %d item(s)...", len(indices))
	fmt.Fprintln(o.out)

	var report Report
	for _, i := range indices {
		o.println(colHeader, ">>> %s", o.registry.At(i).Name)
		report.Items = append(report.Items, o.Install(ctx, i))
		fmt.Fprintln(o.out)
	}

	o.println(colDone, "Done!")
	if failed := report.Count(OutcomeFailed); failed > 0 {
		var names []string
		for _, it := range report.Items {
			if it.Outcome == OutcomeFailed {
				names = append(names, it.Name)
			}
		}
		o.println(colError, "%d item(s) failed: %s", failed, strings.Join(names, ", "))
	}

	o.publish(eventbus.BatchCompletedEvent{
		Total:     len(report.Items),
		Skipped:   report.Count(OutcomeAlreadyPresent),
		Succeeded: report.Count(OutcomeSucceeded),
		Failed:    report.Count(OutcomeFailed),
	})
	return report
}

func (o *Orchestrator) normalize(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= o.registry.Len() {
			log.WithField("index", i).Warn("dropping out-of-range install index")
			continue
		}
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

func (o *Orchestrator) publish(e eventbus.DomainEvent) {
	if o.bus != nil {
		o.bus.Publish(e)
	}
}

func (o *Orchestrator) println(p colorPrinter, format string, a ...any) {
	fmt.Fprintln(o.out, p.Sprintf(format, a...))
}

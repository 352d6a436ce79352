// Package presence reports whether a package is already available on PATH.
package presence

import (
	"os/exec"

	"envinstall/internal/domain"
)

// Status is the display status of a descriptor
type Status int

const (
	StatusMissing Status = iota
	StatusInstalled
	StatusRunner // no presence check; run on demand
)

func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusRunner:
		return "runner"
	default:
		return "missing"
	}
}

// LookPathFunc resolves a command name on the executable search path
type LookPathFunc func(file string) (string, error)

// Checker answers presence questions. It has no side effects.
type Checker struct {
	lookPath LookPathFunc
}

// NewChecker returns a checker backed by exec.LookPath
func NewChecker() *Checker {
	return &Checker{lookPath: exec.LookPath}
}

// NewCheckerWithLookup returns a checker backed by lookPath
func NewCheckerWithLookup(lookPath LookPathFunc) *Checker {
	return &Checker{lookPath: lookPath}
}

// IsPresent is false for descriptors without a check command, and otherwise
// true iff the command resolves. A missing command is not an error.
func (c *Checker) IsPresent(d domain.Descriptor) bool {
	if !d.HasCheck() {
		return false
	}
	_, err := c.lookPath(d.Check)
	return err == nil
}

// Status classifies d for display
func (c *Checker) Status(d domain.Descriptor) Status {
	if !d.HasCheck() {
		return StatusRunner
	}
	if c.IsPresent(d) {
		return StatusInstalled
	}
	return StatusMissing
}

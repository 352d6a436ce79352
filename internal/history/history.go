// Package history keeps an in-memory log of install events for the current
// session. Nothing is written to disk.
package history

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"envinstall/internal/eventbus"
)

// Entry is one recorded event
type Entry struct {
	Time  time.Time
	Event eventbus.DomainEvent
}

// Store records install events in arrival order
type Store struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

// New creates a store and subscribes it to every install event on bus
func New(bus eventbus.EventBus) *Store {
	s := &Store{now: time.Now}
	eventbus.SubscribeAll(bus, s.record)
	return s
}

func (s *Store) record(e eventbus.DomainEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{Time: s.now(), Event: e})
}

// Len returns the number of recorded events
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Lines renders each entry as a single line
func (s *Store) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		lines = append(lines, e.Time.Format("15:04:05")+"  "+describe(e.Event))
	}
	return lines
}

// String renders the whole history, or a placeholder when empty
func (s *Store) String() string {
	lines := s.Lines()
	if len(lines) == 0 {
		return "No installs in this session yet.\n"
	}
	return strings.Join(lines, "\n") + "\n"
}

func describe(e eventbus.DomainEvent) string {
	switch ev := e.(type) {
	case eventbus.InstallStartedEvent:
		return fmt.Sprintf("%-16s %s: %s", "installing", ev.Name, strings.Join(ev.Commands, " ; "))
	case eventbus.InstallSkippedEvent:
		return fmt.Sprintf("%-16s %s", "already present", ev.Name)
	case eventbus.InstallSucceededEvent:
		return fmt.Sprintf("%-16s %s", "succeeded", ev.Name)
	case eventbus.InstallFailedEvent:
		if ev.Command == "" {
			return fmt.Sprintf("%-16s %s: %v", "failed", ev.Name, ev.Err)
		}
		return fmt.Sprintf("%-16s %s: exit status %d from %q", "failed", ev.Name, ev.ExitCode, ev.Command)
	case eventbus.BatchCompletedEvent:
		return fmt.Sprintf("%-16s %d item(s): %d present, %d succeeded, %d failed",
			"batch done", ev.Total, ev.Skipped, ev.Succeeded, ev.Failed)
	default:
		return string(e.Type())
	}
}

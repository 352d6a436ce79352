package history

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envinstall/internal/eventbus"
)

func TestStoreRecordsEvents(t *testing.T) {
	bus := eventbus.New()
	s := New(bus)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 10, 11, 12, 0, time.UTC) }

	assert.Equal(t, "No installs in this session yet.\n", s.String())

	bus.Publish(eventbus.InstallSkippedEvent{Index: 0, Name: "Git"})
	bus.Publish(eventbus.InstallStartedEvent{Index: 1, Name: "Bun", Commands: []string{"curl -fsSL https://bun.sh/install | bash"}})
	bus.Publish(eventbus.InstallFailedEvent{Index: 1, Name: "Bun", Command: "curl -fsSL https://bun.sh/install | bash", ExitCode: 22})
	bus.Publish(eventbus.InstallFailedEvent{Index: 2, Name: "Odd", Err: errors.New("unknown strategy kind")})
	bus.Publish(eventbus.BatchCompletedEvent{Total: 2, Skipped: 1, Failed: 1})

	lines := s.Lines()
	require.Len(t, lines, 5)
	assert.Equal(t, 5, s.Len())
	assert.Contains(t, lines[0], "10:11:12")
	assert.Contains(t, lines[0], "already present  Git")
	assert.Contains(t, lines[1], "Bun: curl -fsSL https://bun.sh/install | bash")
	assert.Contains(t, lines[2], `exit status 22 from "curl -fsSL https://bun.sh/install | bash"`)
	assert.Contains(t, lines[3], "Odd: unknown strategy kind")
	assert.Contains(t, lines[4], "2 item(s): 1 present, 0 succeeded, 1 failed")
}

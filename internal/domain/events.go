package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventInstallStarted   EventType = "InstallStarted"
	EventInstallSkipped   EventType = "InstallSkipped"
	EventInstallSucceeded EventType = "InstallSucceeded"
	EventInstallFailed    EventType = "InstallFailed"
	EventBatchCompleted   EventType = "BatchCompleted"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// InstallStartedEvent is emitted before a package's install procedure runs
type InstallStartedEvent struct {
	Index    int
	Name     string
	Commands []string
}

func (e InstallStartedEvent) Type() EventType { return EventInstallStarted }

// InstallSkippedEvent is emitted when a package is already present
type InstallSkippedEvent struct {
	Index int
	Name  string
}

func (e InstallSkippedEvent) Type() EventType { return EventInstallSkipped }

// InstallSucceededEvent is emitted when every command of a package exited 0
type InstallSucceededEvent struct {
	Index int
	Name  string
}

func (e InstallSucceededEvent) Type() EventType { return EventInstallSucceeded }

// InstallFailedEvent is emitted when planning failed or a command exited non-zero
type InstallFailedEvent struct {
	Index    int
	Name     string
	Command  string
	ExitCode int
	Err      error
}

func (e InstallFailedEvent) Type() EventType { return EventInstallFailed }

// BatchCompletedEvent is emitted after the last item of a batch
type BatchCompletedEvent struct {
	Total     int
	Skipped   int
	Succeeded int
	Failed    int
}

func (e BatchCompletedEvent) Type() EventType { return EventBatchCompleted }

// Package logging sends logrus output to a file. The terminal belongs to the
// menu and to install scripts, so nothing is logged there.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"envinstall/internal/config"
	"envinstall/internal/eventbus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the standard logrus logger at cfg.File. On failure logging is
// discarded and the error is returned so the caller can mention it.
func Setup(cfg config.LogConfig) (io.Closer, error) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// LogEvents writes every install event on bus to the logger
func LogEvents(bus eventbus.EventBus, logger log.FieldLogger) func() {
	return eventbus.SubscribeAll(bus, func(e eventbus.DomainEvent) {
		switch ev := e.(type) {
		case eventbus.InstallStartedEvent:
			logger.WithFields(log.Fields{"package": ev.Name, "index": ev.Index, "commands": ev.Commands}).Info("install started")
		case eventbus.InstallSkippedEvent:
			logger.WithFields(log.Fields{"package": ev.Name, "index": ev.Index}).Info("already installed")
		case eventbus.InstallSucceededEvent:
			logger.WithFields(log.Fields{"package": ev.Name, "index": ev.Index}).Info("install succeeded")
		case eventbus.InstallFailedEvent:
			logger.WithFields(log.Fields{
				"package":   ev.Name,
				"index":     ev.Index,
				"command":   ev.Command,
				"exit_code": ev.ExitCode,
			}).WithError(ev.Err).Warn("install failed")
		case eventbus.BatchCompletedEvent:
			logger.WithFields(log.Fields{
				"total":     ev.Total,
				"skipped":   ev.Skipped,
				"succeeded": ev.Succeeded,
				"failed":    ev.Failed,
			}).Info("batch completed")
		}
	})
}

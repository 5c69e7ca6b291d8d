// Package controller provides output adapters for displaying verification results.
package controller

import (
	m "github.com/mouse-blink/sjavac/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCheck StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithCheckMode sets the UI to batch checking mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithViewMode sets the UI to saved report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying verification progress and reports.
// Implementations can use different output methods (simple text, TUI, etc).
// Display methods may be called concurrently from worker goroutines.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int)
	DisplayUpcomingCount(count int)
	DisplayStarted(source m.Source, threadID int)
	DisplayCompleted(report m.Report)
	DisplayReports(reports []m.Report) error
}

// Package slog provides log/slog decorators for pageport services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pageport"
)

// Ensure LoggingRegistry implements pageport.PresetRegistry.
var _ pageport.PresetRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a PresetRegistry with logging for framework detection.
type LoggingRegistry struct {
	next     pageport.PresetRegistry
	detector pageport.FrameworkDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next pageport.PresetRegistry, detector pageport.FrameworkDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(framework pageport.Framework) (pageport.Preset, bool) {
	return r.next.Get(framework)
}

// GetForHTML detects the framework, logs it, and returns the matching preset.
func (r *LoggingRegistry) GetForHTML(html string) (pageport.Preset, bool) {
	begin := time.Now()
	framework := r.detector.Detect(html)
	frameworkName := string(framework)
	if framework == pageport.FrameworkUnknown {
		frameworkName = "(unknown)"
	}
	preset, ok := r.next.Get(framework)
	r.logger.Info("framework detection",
		"framework", frameworkName,
		"preset", ok,
		"duration", time.Since(begin),
	)
	return preset, ok
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(preset pageport.Preset) {
	r.next.Register(preset)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []pageport.Framework {
	return r.next.List()
}

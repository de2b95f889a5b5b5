package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pageport"
)

// Ensure LoggingConverter implements pageport.Converter.
var _ pageport.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   pageport.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next pageport.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the conversion.
// The result is passed through unchanged.
func (c *LoggingConverter) Convert(html string) (md string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			c.logger.Error("markdown conversion failed",
				"html_bytes", len(html),
				"err", err,
			)
			return
		}
		c.logger.Debug("markdown conversion",
			"html_bytes", len(html),
			"markdown_bytes", len(md),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Convert(html)
}

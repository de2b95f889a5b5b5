package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pageport"
)

// Ensure LoggingParser implements pageport.Parser.
var _ pageport.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   pageport.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next pageport.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the elapsed time.
func (p *LoggingParser) Parse(r io.Reader) (doc pageport.Document, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("html parse",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(r)
}

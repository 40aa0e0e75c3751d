// Package logger provides diagnostic logging for acrolint runs.
//
// Diagnostics are kept apart from the lint report: the console logger writes
// to stderr and the optional file logger writes per-run log files. Both filter
// messages by level (trace, debug, info, warn, error).
package logger

import (
	"strings"
	"time"

	"github.com/harrison/acrolint/internal/models"
)

// Logger receives diagnostic events from the lint pipeline.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogFileResult(result models.ScanResult)
	LogSummary(summary models.RunSummary, duration time.Duration)
}

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// summaryStatus labels a run: CLEAN, FINDINGS or PARTIAL (unreadable files).
func summaryStatus(summary models.RunSummary) string {
	switch {
	case summary.UnreadableFiles > 0:
		return "PARTIAL"
	case summary.Findings > 0:
		return "FINDINGS"
	default:
		return "CLEAN"
	}
}

// NoOpLogger is a Logger implementation that discards all log messages.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string) {}
func (n *NoOpLogger) LogDebug(message string) {}
func (n *NoOpLogger) LogInfo(message string) {}
func (n *NoOpLogger) LogWarn(message string) {}
func (n *NoOpLogger) LogError(message string) {}
func (n *NoOpLogger) LogFileResult(result models.ScanResult) {}
func (n *NoOpLogger) LogSummary(summary models.RunSummary, duration time.Duration) {}

// MultiLogger fans every event out to several loggers.
type MultiLogger []Logger

// NewMultiLogger combines loggers, dropping nil entries.
func NewMultiLogger(loggers ...Logger) MultiLogger {
	out := make(MultiLogger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

func (m MultiLogger) LogTrace(message string) {
	for _, l := range m {
		l.LogTrace(message)
	}
}

func (m MultiLogger) LogDebug(message string) {
	for _, l := range m {
		l.LogDebug(message)
	}
}

func (m MultiLogger) LogInfo(message string) {
	for _, l := range m {
		l.LogInfo(message)
	}
}

func (m MultiLogger) LogWarn(message string) {
	for _, l := range m {
		l.LogWarn(message)
	}
}

func (m MultiLogger) LogError(message string) {
	for _, l := range m {
		l.LogError(message)
	}
}

func (m MultiLogger) LogFileResult(result models.ScanResult) {
	for _, l := range m {
		l.LogFileResult(result)
	}
}

func (m MultiLogger) LogSummary(summary models.RunSummary, duration time.Duration) {
	for _, l := range m {
		l.LogSummary(summary, duration)
	}
}

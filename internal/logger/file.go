package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/acrolint/internal/models"
)

// LatestFileName is the pointer file holding the name of the most recent run log
const LatestFileName = "latest"

// FileLogger writes a per-run log file under a log directory.
// Each run gets run-YYYYMMDD-HHMMSS-<id>.log; on Close the "latest" pointer
// file is rewritten to name it. Unlike the console, the run log records every
// finding with its full path.
type FileLogger struct {
	logDir   string
	runID    string
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates the log directory if needed and opens a new run log.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.NewString()
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", time.Now().Format("20060102-150405"), runID[:8]))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	fl := &FileLogger{
		logDir:   logDir,
		runID:    runID,
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.writeRunLog("=== acrolint run log ===\n")
	fl.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	fl.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return fl, nil
}

// RunID returns the unique identifier of this run.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// RunFile returns the path of this run's log file.
func (fl *FileLogger) RunFile() string {
	return fl.runFile
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogFileResult records the outcome of one file, including every finding, at info level.
func (fl *FileLogger) LogFileResult(result models.ScanResult) {
	if !fl.shouldLog("info") {
		return
	}

	ts := timestamp()
	var b strings.Builder
	switch {
	case result.Unreadable():
		fmt.Fprintf(&b, "[%s] %s: UNREADABLE (%v)\n", ts, result.Path, result.Err)
	case result.HasFindings():
		fmt.Fprintf(&b, "[%s] %s: %d finding(s)\n", ts, result.Path, len(result.Findings))
		for _, f := range result.Findings {
			fmt.Fprintf(&b, "[%s]   %s\n", ts, f)
		}
	default:
		fmt.Fprintf(&b, "[%s] %s: clean\n", ts, result.Path)
	}
	fl.writeRunLog(b.String())
}

// LogSummary writes the run summary block at info level.
func (fl *FileLogger) LogSummary(summary models.RunSummary, duration time.Duration) {
	if !fl.shouldLog("info") {
		return
	}

	ts := timestamp()
	message := fmt.Sprintf(
		"\n[%s] === RUN SUMMARY ===\n"+
			"[%s] Files scanned: %d\n"+
			"[%s] Clean:         %d\n"+
			"[%s] Unreadable:    %d\n"+
			"[%s] Findings:      %d\n"+
			"[%s] Total time:    %.1fs\n"+
			"[%s] Status:        %s\n",
		ts,
		ts, summary.TotalFiles,
		ts, summary.CleanFiles,
		ts, summary.UnreadableFiles,
		ts, summary.Findings,
		ts, duration.Seconds(),
		ts, summaryStatus(summary),
	)
	fl.writeRunLog(message)
}

func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
	}
}

// Close closes the run log and points the "latest" file at it.
// The pointer update holds an exclusive lock on the log directory so that
// concurrent runs sharing a log directory do not interleave writes.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog == nil {
		return nil
	}
	if err := fl.runLog.Close(); err != nil {
		return fmt.Errorf("failed to close run log: %w", err)
	}
	fl.runLog = nil

	lock := newDirLock(fl.logDir)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	return atomicWrite(filepath.Join(fl.logDir, LatestFileName), []byte(filepath.Base(fl.runFile)+"\n"))
}

package models

import "fmt"

// Finding is one flagged acronym within a scanned file.
type Finding struct {
	Line    int    // Zero-based line index
	Acronym string // Matched run of uppercase letters
}

// String renders the finding the way the console reporter prints it.
func (f Finding) String() string {
	return fmt.Sprintf("%d: %s", f.Line, f.Acronym)
}

// ScanResult is the outcome of scanning a single file.
// Exactly one of Message (clean), Err (unreadable) or Findings is set.
type ScanResult struct {
	Path     string    // Path of the scanned file
	Message  string    // Informational message when no findings survived
	Err      error     // Read/decode failure, reported inline
	Findings []Finding // Ordered by ascending line index
}

// Clean reports whether the file was read and produced no findings.
func (r ScanResult) Clean() bool {
	return r.Err == nil && len(r.Findings) == 0
}

// Unreadable reports whether the file could not be read or decoded.
func (r ScanResult) Unreadable() bool {
	return r.Err != nil
}

// HasFindings reports whether the file produced at least one finding.
func (r ScanResult) HasFindings() bool {
	return r.Err == nil && len(r.Findings) > 0
}

// RunSummary aggregates the results of a full lint run
type RunSummary struct {
	TotalFiles      int // Files discovered and scanned
	CleanFiles      int // Files with no findings
	UnreadableFiles int // Files that could not be read
	Findings        int // Total findings across all files
}

// Add folds a single file result into the summary.
func (s *RunSummary) Add(r ScanResult) {
	s.TotalFiles++
	switch {
	case r.Unreadable():
		s.UnreadableFiles++
	case r.HasFindings():
		s.Findings += len(r.Findings)
	default:
		s.CleanFiles++
	}
}

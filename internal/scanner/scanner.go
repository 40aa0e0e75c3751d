// Package scanner flags uppercase acronyms in document text.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/harrison/acrolint/internal/fileutil"
	"github.com/harrison/acrolint/internal/models"
)

// MinAcronymLength is the minimum number of letters a run needs to be flagged
const MinAcronymLength = 2

// ErrInvalidUTF8 is reported for files whose content is not valid UTF-8
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// upperRun matches runs of Unicode uppercase letters; word boundaries are
// checked separately because RE2's \b is ASCII only.
var upperRun = regexp.MustCompile(`\p{Lu}+`)

// Scanner detects unlisted acronyms line by line.
type Scanner struct {
	allowed map[string]struct{}
	mode    models.MatchMode
}

// New creates a Scanner that ignores the allowed acronyms.
// An empty mode means models.MatchModeLastPerLine.
func New(allowed []string, mode models.MatchMode) *Scanner {
	set := make(map[string]struct{}, len(allowed))
	for _, word := range allowed {
		set[word] = struct{}{}
	}
	if mode == "" {
		mode = models.MatchModeLastPerLine
	}
	return &Scanner{allowed: set, mode: mode}
}

// ScanFile reads path and scans its content.
// Read and decode failures are returned inside the result, never as an error.
func (s *Scanner) ScanFile(path string) models.ScanResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ScanResult{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return models.ScanResult{Path: path, Err: ErrInvalidUTF8}
	}
	return s.ScanText(path, string(data))
}

// ScanText scans already loaded text attributed to path.
func (s *Scanner) ScanText(path, text string) models.ScanResult {
	var findings []models.Finding

	for i, line := range fileutil.SplitLines(text) {
		matches := s.ScanLine(line)
		if len(matches) == 0 {
			continue
		}
		if s.mode == models.MatchModeLastPerLine {
			matches = matches[len(matches)-1:]
		}
		for _, acronym := range matches {
			findings = append(findings, models.Finding{Line: i, Acronym: acronym})
		}
	}

	if len(findings) == 0 {
		return models.ScanResult{
			Path:    path,
			Message: fmt.Sprintf("No faulty lines found in %s", filepath.Base(path)),
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Line < findings[j].Line
	})
	return models.ScanResult{Path: path, Findings: findings}
}

// ScanLine returns the qualifying acronyms of a single line in order of appearance.
func (s *Scanner) ScanLine(line string) []string {
	var out []string
	for _, loc := range upperRun.FindAllStringIndex(line, -1) {
		start, end := loc[0], loc[1]
		if !wordBoundaryBefore(line, start) || !wordBoundaryAfter(line, end) {
			continue
		}
		acronym := line[start:end]
		if utf8.RuneCountInString(acronym) < MinAcronymLength {
			continue
		}
		if _, ok := s.allowed[acronym]; ok {
			continue
		}
		out = append(out, acronym)
	}
	return out
}

func wordBoundaryBefore(line string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(line[:i])
	return !isWordRune(r)
}

func wordBoundaryAfter(line string, i int) bool {
	if i >= len(line) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(line[i:])
	return !isWordRune(r)
}

// isWordRune follows the Unicode definition of a word character:
// letters, marks, decimal digits, letter numbers, connector punctuation
// and the zero width joiners.
func isWordRune(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsDigit(r):
		return true
	case unicode.Is(unicode.Nl, r), unicode.Is(unicode.Pc, r):
		return true
	case r == '\u200c' || r == '\u200d':
		return true
	}
	return false
}

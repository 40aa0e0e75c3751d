package models

import (
	"fmt"
	"strings"
)

// MatchMode controls how multiple qualifying acronyms on one line are reported.
type MatchMode string

const (
	// MatchModeLastPerLine keeps only the last qualifying acronym of each line.
	MatchModeLastPerLine MatchMode = "last-per-line"
	// MatchModeAll reports every qualifying acronym.
	MatchModeAll MatchMode = "all"
)

// ParseMatchMode converts a user supplied string into a MatchMode.
// Empty input yields MatchModeLastPerLine.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchModeLastPerLine:
		return MatchModeLastPerLine, nil
	case MatchModeAll:
		return MatchModeAll, nil
	default:
		return "", fmt.Errorf("invalid match mode %q, must be one of: %s, %s", s, MatchModeLastPerLine, MatchModeAll)
	}
}

package fileutil

import "strings"

// SplitLines splits text on "\n", strips a trailing "\r" from each line and
// does not produce a trailing empty line for text ending in a newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

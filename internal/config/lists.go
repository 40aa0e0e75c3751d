package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/harrison/acrolint/internal/fileutil"
)

// List names read from the scan root
const (
	ExcludeListName = "exclude_files"
	AllowListName   = "allow_words"
)

// LoadList reads <rootDir>/<name>.txt as a newline-delimited list.
// Each line is trimmed of surrounding whitespace; order and duplicates are kept
// and blank lines become empty entries.
// A missing, unreadable or non-UTF-8 file yields an empty list, not an error.
func LoadList(rootDir, name string) []string {
	data, err := os.ReadFile(filepath.Join(rootDir, name+".txt"))
	if err != nil || !utf8.Valid(data) {
		return []string{}
	}

	lines := fileutil.SplitLines(string(data))
	list := make([]string, 0, len(lines))
	for _, line := range lines {
		list = append(list, strings.TrimSpace(line))
	}
	return list
}

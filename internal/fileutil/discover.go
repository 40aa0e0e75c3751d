package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// DefaultExtension is the document suffix scanned when none is configured
const DefaultExtension = ".tex"

// DiscoverOptions configures document discovery
type DiscoverOptions struct {
	// Extension is the required file name suffix (e.g. ".tex")
	Extension string
	// Excludes skips any path containing one of these substrings
	Excludes []string
	// ExcludeGlobs skips root-relative, slash-separated paths matching a doublestar pattern
	ExcludeGlobs []string
	// RespectGitignore skips paths ignored by <root>/.gitignore
	RespectGitignore bool
	// OnMatch is called for every matched file as soon as it is found
	OnMatch func(path string)
}

// DiscoverResult contains the results of a discovery walk
type DiscoverResult struct {
	// Files contains matched paths in visit order
	Files []string
	// Errors contains entries that could not be read and were skipped
	Errors []error
}

// NotFoundError is returned when discovery matched no files
type NotFoundError struct {
	Root string
	Kind string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s files found", e.Kind)
}

// KindLabel names the document kind for an extension: ".tex" is "latex",
// anything else is the extension without its leading dot.
func KindLabel(extension string) string {
	if strings.EqualFold(extension, ".tex") {
		return "latex"
	}
	return strings.TrimPrefix(extension, ".")
}

type walker struct {
	root   string
	opts   DiscoverOptions
	ignore gitignore.GitIgnore
	result *DiscoverResult
}

// Discover walks rootDir and returns the matching documents.
// It fails with *NotFoundError when nothing matched.
func Discover(rootDir string, opts DiscoverOptions) (*DiscoverResult, error) {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}

	w := &walker{
		root: rootDir,
		opts: opts,
		result: &DiscoverResult{
			Files:  make([]string, 0),
			Errors: make([]error, 0),
		},
	}
	if opts.RespectGitignore {
		w.ignore = loadIgnoreFile(filepath.Join(rootDir, ".gitignore"), rootDir)
	}

	// The root itself is followed even when it is a symlink
	info, err := os.Stat(rootDir)
	if err != nil {
		w.result.Errors = append(w.result.Errors, fmt.Errorf("error accessing %s: %w", rootDir, err))
	} else if info.IsDir() {
		w.walkDir(rootDir)
	} else {
		w.visitFile(rootDir, info.Mode())
	}

	if len(w.result.Files) == 0 {
		return w.result, &NotFoundError{Root: rootDir, Kind: KindLabel(opts.Extension)}
	}
	return w.result, nil
}

// walkDir visits the children of dir in descending name order, depth first.
func (w *walker) walkDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.result.Errors = append(w.result.Errors, fmt.Errorf("error reading %s: %w", dir, err))
		// ReadDir may still return the entries read before the error
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name() > entries[j].Name()
	})

	for _, entry := range entries {
		path := joinPath(dir, entry.Name())

		if entry.IsDir() {
			if w.ignored(path, true) {
				continue
			}
			w.walkDir(path)
			continue
		}

		mode := entry.Type()
		if mode&fs.ModeSymlink != 0 {
			// Symlinked files count when their target is a regular file
			info, err := os.Stat(path)
			if err != nil {
				w.result.Errors = append(w.result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
				continue
			}
			mode = info.Mode()
		}
		w.visitFile(path, mode)
	}
}

// joinPath appends name to dir without cleaning dir, so exclude substrings
// match the path exactly as traversed from the root given by the caller.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

func (w *walker) visitFile(path string, mode fs.FileMode) {
	if !mode.IsRegular() {
		return
	}
	if !strings.HasSuffix(filepath.Base(path), w.opts.Extension) {
		return
	}
	if w.excluded(path) || w.ignored(path, false) {
		return
	}

	if w.opts.OnMatch != nil {
		w.opts.OnMatch(path)
	}
	w.result.Files = append(w.result.Files, path)
}

// excluded reports whether path contains a non-empty exclude substring.
func (w *walker) excluded(path string) bool {
	for _, exclude := range w.opts.Excludes {
		if exclude != "" && strings.Contains(path, exclude) {
			return true
		}
	}
	return false
}

// ignored applies exclude globs (files only) and the root .gitignore.
func (w *walker) ignored(path string, isDir bool) bool {
	if len(w.opts.ExcludeGlobs) == 0 && w.ignore == nil {
		return false
	}

	relativePath, err := filepath.Rel(w.root, path)
	if err != nil {
		relativePath = path
	}
	relativePath = filepath.ToSlash(relativePath)

	if !isDir {
		for _, pattern := range w.opts.ExcludeGlobs {
			if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
				return true
			}
		}
	}

	if w.ignore != nil {
		if match := w.ignore.Relative(relativePath, isDir); match != nil && match.Ignore() {
			return true
		}
	}
	return false
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from it.
// A missing file yields nil.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}

// Package fileutil discovers the documents acrolint scans.
//
// Discover walks a root directory depth-first and returns every regular file
// whose name carries the target extension, skipping paths that contain an
// exclude substring, match an exclude glob, or are ignored by the root
// .gitignore.
//
// # Ordering
//
// Entries of each directory are visited in descending lexicographic order of
// their names. The order is produced by an explicit sort after listing the
// directory, so repeated runs over an unmodified tree yield identical output
// regardless of filesystem listing order.
//
// # Error Tolerance
//
// Unreadable directories and entries are recorded in DiscoverResult.Errors and
// the walk continues. The only error returned to the caller is *NotFoundError,
// when no file matched after the full traversal.
//
// # Usage
//
//	result, err := fileutil.Discover("thesis", fileutil.DiscoverOptions{
//	    Extension: ".tex",
//	    Excludes:  []string{"drafts"},
//	    OnMatch:   func(path string) { fmt.Println("Found latex file:", filepath.Base(path)) },
//	})
//	var notFound *fileutil.NotFoundError
//	if errors.As(err, &notFound) {
//	    fmt.Println(notFound)
//	}
package fileutil

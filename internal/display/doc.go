// Package display renders lint results for the terminal.
//
// Reporter is the output capability consumed by the lint pipeline. The core
// scan logic never formats text itself, so it can be tested without capturing
// styled output.
//
// ConsoleReporter prints one line per event:
//
//	Found latex file: intro.tex        discovery notice (plain)
//	Reading file: intro.tex            file header (blue)
//	No faulty lines found in intro.tex clean file (green)
//	3: FOO                             finding (yellow)
//	open intro.tex: permission denied  unreadable file (red)
//	No latex files found               fatal message (red)
//
// Colors come from fatih/color and are only emitted when the output is a
// terminal; the text is identical either way.
package display

package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harrison/acrolint/internal/models"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Reporter receives pipeline events and presents them to the user.
type Reporter interface {
	// Discovered announces a matched document during discovery
	Discovered(kind, path string)
	// FileHeader announces the file about to be scanned
	FileHeader(path string)
	// Result presents the outcome of scanning one file
	Result(result models.ScanResult)
	// Fatal presents a message that ends the run
	Fatal(message string)
}

// colorScheme maps result severities to colors.
// Blue: informational headers
// Green: clean files
// Yellow: findings
// Red: unreadable files and fatal messages
type colorScheme struct {
	info  *color.Color
	clean *color.Color
	warn  *color.Color
	alarm *color.Color
}

func newColorScheme(enabled bool) *colorScheme {
	scheme := &colorScheme{
		info:  color.New(color.FgBlue),
		clean: color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		alarm: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{scheme.info, scheme.clean, scheme.warn, scheme.alarm} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return scheme
}

// ConsoleReporter writes human readable, optionally colored lines to a writer.
type ConsoleReporter struct {
	out    io.Writer
	scheme *colorScheme
}

// NewConsoleReporter creates a ConsoleReporter writing to out.
// colorOutput forces ANSI colors on or off; see ShouldColor for auto detection.
// Colored output to a file is routed through go-colorable so that legacy
// Windows consoles translate the escape sequences.
func NewConsoleReporter(out io.Writer, colorOutput bool) *ConsoleReporter {
	if f, ok := colorableTarget(out, colorOutput); ok {
		out = colorable.NewColorable(f)
	}
	return &ConsoleReporter{
		out:    out,
		scheme: newColorScheme(colorOutput),
	}
}

// colorableTarget returns the file to wrap when colored output goes to an *os.File.
func colorableTarget(out io.Writer, colorOutput bool) (*os.File, bool) {
	if !colorOutput {
		return nil, false
	}
	f, ok := out.(*os.File)
	if !ok || f == nil {
		return nil, false
	}
	return f, true
}

// ShouldColor reports whether w is a terminal that should receive colors.
// NO_COLOR (honored by fatih/color) disables colors.
func ShouldColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Discovered prints "Found <kind> file: <name>".
func (r *ConsoleReporter) Discovered(kind, path string) {
	fmt.Fprintf(r.out, "Found %s file: %s\n", kind, filepath.Base(path))
}

// FileHeader prints "Reading file: <name>".
func (r *ConsoleReporter) FileHeader(path string) {
	fmt.Fprintf(r.out, "%s %s\n", r.scheme.info.Sprint("Reading file:"), r.scheme.info.Sprint(filepath.Base(path)))
}

// Result prints the clean message, the read error, or one "<line>: <acronym>" per finding.
func (r *ConsoleReporter) Result(result models.ScanResult) {
	switch {
	case result.Unreadable():
		fmt.Fprintln(r.out, r.scheme.alarm.Sprint(result.Err.Error()))
	case result.HasFindings():
		for _, f := range result.Findings {
			fmt.Fprintf(r.out, "%s%s %s\n",
				r.scheme.warn.Sprint(f.Line),
				r.scheme.warn.Sprint(":"),
				r.scheme.warn.Sprint(f.Acronym))
		}
	default:
		fmt.Fprintln(r.out, r.scheme.clean.Sprint(result.Message))
	}
}

// Fatal prints message in red.
func (r *ConsoleReporter) Fatal(message string) {
	fmt.Fprintln(r.out, r.scheme.alarm.Sprint(message))
}

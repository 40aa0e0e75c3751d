package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/harrison/acrolint/internal/config"
	"github.com/harrison/acrolint/internal/display"
	"github.com/harrison/acrolint/internal/fileutil"
	"github.com/harrison/acrolint/internal/lint"
	"github.com/harrison/acrolint/internal/logger"
	"github.com/harrison/acrolint/internal/models"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// lintFlags holds explicitly set CLI flags; nil means "not given".
type lintFlags struct {
	extension        *string
	matchMode        *models.MatchMode
	logLevel         *string
	logDir           *string
	excludeGlobs     []string
	respectGitignore *bool
	noColor          bool
}

// NewRootCommand creates and returns the root cobra command for acrolint
func NewRootCommand() *cobra.Command {
	var (
		extension    string
		allMatches   bool
		logLevel     string
		logDir       string
		excludeGlobs []string
		gitignore    bool
		noColor      bool
	)

	cmd := &cobra.Command{
		Use:   "acrolint <root-dir>",
		Short: "Flag unlisted uppercase acronyms in LaTeX documents",
		Long: `acrolint recursively scans a directory for .tex documents and reports
every line containing an uppercase acronym that is not on the allow list.

Optional files in the root directory:
  exclude_files.txt  path substrings to skip, one per line
  allow_words.txt    acronyms that are never flagged, one per line
  .acrolint.yaml     extension, match_mode, log_level, log_dir,
                     exclude_globs, respect_gitignore

Findings are printed as "<line>: <acronym>" with zero-based line numbers.
Only the last acronym of a line is reported unless --all-matches is set.

Exit code: 0 whenever the run completes (including "No path given" and
"No latex files found"), 1 on invalid flags or configuration.`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := lintFlags{excludeGlobs: excludeGlobs, noColor: noColor}
			if cmd.Flags().Changed("ext") {
				flags.extension = &extension
			}
			if cmd.Flags().Changed("all-matches") {
				mode := models.MatchModeLastPerLine
				if allMatches {
					mode = models.MatchModeAll
				}
				flags.matchMode = &mode
			}
			if cmd.Flags().Changed("log-level") {
				flags.logLevel = &logLevel
			}
			if cmd.Flags().Changed("log-dir") {
				flags.logDir = &logDir
			}
			if cmd.Flags().Changed("gitignore") {
				flags.respectGitignore = &gitignore
			}
			return runLint(args, flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&extension, "ext", fileutil.DefaultExtension, "document file extension to scan")
	cmd.Flags().BoolVar(&allMatches, "all-matches", false, "report every acronym on a line instead of only the last one")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "diagnostic log level on stderr (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "write a per-run log file to this directory")
	cmd.Flags().StringArrayVar(&excludeGlobs, "exclude-glob", nil, "skip root-relative paths matching this glob (repeatable)")
	cmd.Flags().BoolVar(&gitignore, "gitignore", false, "skip files ignored by the root .gitignore")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

// runLint loads configuration for the root directory given in args and runs the pipeline.
// Report lines go to out, diagnostics to errOut.
func runLint(args []string, flags lintFlags, out io.Writer, errOut io.Writer) error {
	reporter := display.NewConsoleReporter(out, !flags.noColor && display.ShouldColor(out))

	if len(args) == 0 {
		reporter.Fatal("No path given")
		return nil
	}
	rootDir := args[0]

	cfg, err := config.Load(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.MergeWithFlags(flags.extension, flags.matchMode, flags.logLevel, flags.logDir, flags.excludeGlobs, flags.respectGitignore)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	console := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	loggers := []logger.Logger{console}
	if cfg.LogDir != "" {
		fileLogger, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			console.LogWarn(fmt.Sprintf("file logging disabled: %v", err))
		} else {
			defer func() {
				if err := fileLogger.Close(); err != nil {
					console.LogWarn(fmt.Sprintf("failed to finalize run log: %v", err))
				}
			}()
			console.LogDebug(fmt.Sprintf("writing run log to %s", fileLogger.RunFile()))
			loggers = append(loggers, fileLogger)
		}
	}

	_, err = lint.Run(rootDir, cfg, reporter, logger.NewMultiLogger(loggers...))
	var notFound *fileutil.NotFoundError
	if errors.As(err, &notFound) {
		reporter.Fatal(notFound.Error())
		return nil
	}
	return err
}

// Package lint runs the acronym lint pipeline: discover documents under a
// root directory, scan each one and hand every result to a reporter.
package lint

import (
	"fmt"
	"time"

	"github.com/harrison/acrolint/internal/config"
	"github.com/harrison/acrolint/internal/display"
	"github.com/harrison/acrolint/internal/fileutil"
	"github.com/harrison/acrolint/internal/logger"
	"github.com/harrison/acrolint/internal/models"
	"github.com/harrison/acrolint/internal/scanner"
)

// Run lints every document under rootDir, one file at a time.
// Each file is read, scanned and reported before the next one starts.
// When discovery finds nothing the *fileutil.NotFoundError is returned and
// no file is scanned.
func Run(rootDir string, cfg *config.Config, reporter display.Reporter, log logger.Logger) (models.RunSummary, error) {
	var summary models.RunSummary
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	start := time.Now()

	log.LogDebug(fmt.Sprintf("scan root %s, extension %s, match mode %s", rootDir, cfg.Extension, cfg.MatchMode))
	log.LogDebug(fmt.Sprintf("%d exclude entries, %d allowed acronyms, %d exclude globs",
		len(cfg.Excludes), len(cfg.Allowed), len(cfg.ExcludeGlobs)))

	kind := fileutil.KindLabel(cfg.Extension)
	discovered, err := fileutil.Discover(rootDir, fileutil.DiscoverOptions{
		Extension:        cfg.Extension,
		Excludes:         cfg.Excludes,
		ExcludeGlobs:     cfg.ExcludeGlobs,
		RespectGitignore: cfg.RespectGitignore,
		OnMatch: func(path string) {
			reporter.Discovered(kind, path)
		},
	})
	if discovered != nil {
		for _, skipped := range discovered.Errors {
			log.LogDebug(fmt.Sprintf("skipped: %v", skipped))
		}
	}
	if err != nil {
		return summary, err
	}

	sc := scanner.New(cfg.Allowed, cfg.MatchMode)
	for _, path := range discovered.Files {
		reporter.FileHeader(path)
		result := sc.ScanFile(path)
		reporter.Result(result)

		log.LogFileResult(result)
		summary.Add(result)
	}

	log.LogSummary(summary, time.Since(start))
	return summary, nil
}

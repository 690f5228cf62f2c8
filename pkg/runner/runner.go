package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gofluent/internal/logging"
	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/fsutil"
)

// Runner checks Fluent files with a pool of workers.
type Runner struct {
	logger *log.Logger
}

// New creates a Runner. A nil logger means logging.Default().
func New(logger *log.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{logger: logger}
}

// Run discovers files under opts.Paths and checks them concurrently.
// Files in the Result are in the same sorted order as Discover returns,
// regardless of the number of workers.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	started := time.Now()

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	r.logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	cfg := opts.effectiveConfig()

	workCh := make(chan int)
	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workCh {
				outcomes[i] = r.checkFile(ctx, files[i], cfg)
				done[i] = true
			}
		}()
	}

feed:
	for i := range files {
		select {
		case <-ctx.Done():
			break feed
		case workCh <- i:
		}
	}
	close(workCh)
	wg.Wait()

	for i, outcome := range outcomes {
		if done[i] {
			result.accumulate(outcome)
		}
	}

	r.logger.Debug("run complete",
		logging.FieldJobs, jobs,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesSkipped, result.Stats.FilesSkipped,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
		logging.FieldDuration, time.Since(started),
	)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

func (r *Runner) checkFile(ctx context.Context, path string, cfg *config.Config) FileOutcome {
	if err := ctx.Err(); err != nil {
		return FileOutcome{Path: path, Error: err}
	}

	ctx = logging.WithFields(logging.WithLogger(ctx, r.logger), logging.FieldPath, path)
	logger := logging.FromContext(ctx)

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		logger.Warn("cannot read file", logging.FieldError, err)
		return FileOutcome{Path: path, Error: err}
	}

	outcome := CheckSource(path, content, cfg)
	if outcome.Skipped {
		logger.Debug("skipping non-Fluent file", logging.FieldLanguage, outcome.Language)
		return outcome
	}

	logger.Debug("checked file",
		logging.FieldEntries, outcome.Resource.Len(),
		logging.FieldDiagnosticsTotal, len(outcome.Diagnostics),
	)
	return outcome
}

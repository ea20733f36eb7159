package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

// CaseRunner runs the pipeline for one case directory
type CaseRunner interface {
	RunCase(ctx context.Context, dir string) (*model.CaseOutcome, error)
}

// CaseJob runs a single case
type CaseJob struct {
	Index  int
	Dir    string
	Runner CaseRunner
}

// Execute runs the case and never panics the pool on error
func (j *CaseJob) Execute(ctx context.Context) Result {
	outcome, err := j.Runner.RunCase(ctx, j.Dir)
	return &CaseResult{
		Index:   j.Index,
		Dir:     j.Dir,
		Outcome: outcome,
		Error:   err,
	}
}

// CaseResult is the result of one case job
type CaseResult struct {
	Index   int
	Dir     string
	Outcome *model.CaseOutcome
	Error   error
}

// GetError returns the case error
func (r *CaseResult) GetError() error {
	return r.Error
}

// BatchProcessor runs independent cases concurrently.
// Each case owns its own dossier, so cases never share state.
type BatchProcessor struct {
	runner      CaseRunner
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(runner CaseRunner, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
	}
}

// ProcessCases runs every case directory and returns results in input order.
// Cases not started before ctx is canceled report the context error.
func (b *BatchProcessor) ProcessCases(ctx context.Context, dirs []string) []*CaseResult {
	if len(dirs) == 0 {
		return []*CaseResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, dir := range dirs {
		if !pool.Submit(&CaseJob{Index: i, Dir: dir, Runner: b.runner}) {
			break
		}
	}

	caseResults := make([]*CaseResult, len(dirs))
	for _, result := range pool.Wait() {
		cr := result.(*CaseResult)
		caseResults[cr.Index] = cr
	}

	for i, cr := range caseResults {
		if cr != nil {
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		caseResults[i] = &CaseResult{Index: i, Dir: dirs[i], Error: err}
	}

	return caseResults
}

// ProcessFile reads case directories from a list file and runs them
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*CaseResult, error) {
	dirs, err := ReadCaseList(filePath)
	if err != nil {
		return nil, fmt.Errorf("read case list: %w", err)
	}

	return b.ProcessCases(ctx, dirs), nil
}

// ReadCaseList reads case directories from a file, one per line.
// Blank lines and # comments are skipped; duplicates are dropped.
func ReadCaseList(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var dirs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			dirs = append(dirs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return dirs, nil
}

// FindCaseDirs returns the immediate subdirectories of root, sorted
func FindCaseDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			dirs = append(dirs, filepath.Join(root, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

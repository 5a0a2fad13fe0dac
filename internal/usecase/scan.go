package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"topwords/internal/domain"
	"topwords/internal/port"
)

// ProgressFunc is called after every ranked file.
type ProgressFunc func(processed, total int, currentFile string)

// ScanUseCase ranks every file a walker selects.
type ScanUseCase struct {
	walker    port.FileWalker
	reader    port.FileReader
	newRanker func() port.Ranker
	workers   int
	logger    *slog.Logger
}

// NewScanUseCase creates a scan use case. newRanker is called once per
// worker, so each worker ranks with its own stemmer configuration.
func NewScanUseCase(
	walker port.FileWalker,
	reader port.FileReader,
	newRanker func() port.Ranker,
	workers int,
	logger *slog.Logger,
) *ScanUseCase {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanUseCase{
		walker:    walker,
		reader:    reader,
		newRanker: newRanker,
		workers:   workers,
		logger:    logger,
	}
}

// ScanResult holds the per-file rankings in walk order.
type ScanResult struct {
	Files []domain.FileResult `json:"files"`
	Stats domain.ScanStats    `json:"stats"`
}

// cacheLookup is implemented by rankers that can tell a cache hit apart.
type cacheLookup interface {
	Lookup(text string, k int) ([]domain.WordCount, bool, error)
}

type scanJob struct {
	index int
	file  port.FileInfo
}

// Scan ranks the top k words of every file under root. Files that cannot be
// read or hold no text are reported in their FileResult and do not stop the
// scan. Cancelling ctx stops handing out files and returns ctx.Err().
func (u *ScanUseCase) Scan(ctx context.Context, root string, k int, progress ProgressFunc) (*ScanResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	u.logger.Debug("scan started", "root", root, "files", len(files), "workers", u.workers)

	results := make([]domain.FileResult, len(files))
	hits := make([]bool, len(files))

	jobs := make(chan scanJob, u.workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	processed := 0

	workers := min(u.workers, max(len(files), 1))
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			ranker := u.newRanker()
			for job := range jobs {
				results[job.index], hits[job.index] = u.rankFile(ranker, job.file, k)

				if progress != nil {
					mu.Lock()
					processed++
					progress(processed, len(files), job.file.RelPath)
					mu.Unlock()
				}
			}
		}()
	}

	var cancelled error
dispatch:
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break dispatch
		case jobs <- scanJob{index: i, file: f}:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}

	result := &ScanResult{Files: results}
	for i, r := range results {
		result.Stats.FilesScanned++
		if r.Err != "" {
			result.Stats.FilesFailed++
		}
		if hits[i] {
			result.Stats.CacheHits++
		}
	}
	u.logger.Debug("scan finished",
		"files", result.Stats.FilesScanned,
		"failed", result.Stats.FilesFailed,
		"cache_hits", result.Stats.CacheHits,
	)

	return result, nil
}

func (u *ScanUseCase) rankFile(ranker port.Ranker, file port.FileInfo, k int) (domain.FileResult, bool) {
	result := domain.FileResult{Path: file.RelPath}

	text, err := u.reader.ReadText(file.Path)
	if err != nil {
		u.logger.Warn("failed to read file", "path", file.Path, "error", err)
		result.Err = err.Error()
		return result, false
	}

	var words []domain.WordCount
	var hit bool
	if cl, ok := ranker.(cacheLookup); ok {
		words, hit, err = cl.Lookup(text, k)
	} else {
		words, err = ranker.MostFrequentCounts(text, k)
	}
	if err != nil {
		result.Err = err.Error()
		return result, false
	}

	result.Words = words
	return result, hit
}

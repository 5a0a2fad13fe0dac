package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"topwords/internal/adapter/analyzer"
	"topwords/internal/adapter/cache"
	"topwords/internal/adapter/fs"
	"topwords/internal/port"
	"topwords/internal/usecase"
)

var (
	scanTopK       int
	scanWorkers    int
	scanJSON       bool
	scanNoProgress bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Rank the most frequent words of every file in a directory",
	Long: `Rank the most frequent words of every file under a directory that matches
the configured include patterns. Files are ranked in parallel, each worker with
its own stemmer configuration.

Examples:
  topwords scan .                  # Scan current directory
  topwords scan ./corpus -k 3 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().IntVarP(&scanTopK, "top-k", "k", 0, "number of words per file (default from config)")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "parallel workers (default from config)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output as JSON")
	scanCmd.Flags().BoolVar(&scanNoProgress, "no-progress", false, "hide the progress bar")
}

func runScan(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	k := cfg.Rank.TopK
	if scanTopK > 0 {
		k = scanTopK
	}
	workers := cfg.Scan.Workers
	if scanWorkers > 0 {
		workers = scanWorkers
	}

	stopWords, err := analyzer.LoadStopWordsFile(cfg.StopWords.Path)
	if err != nil {
		return err
	}

	var resultCache *cache.ResultCache
	if cfg.Cache.Enabled {
		resultCache = cache.NewResultCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	profile := cacheProfile()

	newRanker := func() port.Ranker {
		uc := newFrequencyUseCase(stopWords)
		if resultCache == nil {
			return uc
		}
		return cache.NewCachedRanker(uc, resultCache, profile)
	}

	scanUC := usecase.NewScanUseCase(
		fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes),
		fs.NewReader(cfg.Scan.MaxFileBytes),
		newRanker,
		workers,
		logger,
	)

	var bar *progressbar.ProgressBar
	var once sync.Once
	var progress usecase.ProgressFunc
	if !scanNoProgress && !scanJSON {
		progress = func(processed, total int, currentFile string) {
			once.Do(func() {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionEnableColorCodes(true),
					progressbar.OptionShowBytes(false),
					progressbar.OptionSetWidth(40),
					progressbar.OptionShowCount(),
					progressbar.OptionSetDescription("[cyan]Ranking[reset]"),
					progressbar.OptionSetTheme(progressbar.Theme{
						Saucer:        "[green]=[reset]",
						SaucerHead:    "[green]>[reset]",
						SaucerPadding: " ",
						BarStart:      "[",
						BarEnd:        "]",
					}),
					progressbar.OptionOnCompletion(func() {
						fmt.Fprintln(cmd.ErrOrStderr())
					}),
				)
			})
			bar.Set(processed)
		}
	}

	result, err := scanUC.Scan(cmd.Context(), path, k, progress)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if scanJSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(out, string(output))
		return nil
	}

	if len(result.Files) == 0 {
		fmt.Fprintln(out, "No matching files found.")
		return nil
	}

	for _, f := range result.Files {
		fmt.Fprintf(out, "--- %s ---\n", f.Path)
		switch {
		case f.Err != "":
			fmt.Fprintf(out, "  error: %s\n", f.Err)
		case len(f.Words) == 0:
			fmt.Fprintln(out, "  no words found")
		default:
			printWords(out, f.Words)
		}
	}

	fmt.Fprintf(out, "\nScan complete:\n")
	fmt.Fprintf(out, "  Files scanned: %d\n", result.Stats.FilesScanned)
	fmt.Fprintf(out, "  Files failed:  %d\n", result.Stats.FilesFailed)
	if resultCache != nil {
		fmt.Fprintf(out, "  Cache hits:    %d\n", result.Stats.CacheHits)
	}
	return nil
}

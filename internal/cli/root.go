package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"topwords/config"
	"topwords/internal/adapter/analyzer"
	"topwords/internal/logging"
	"topwords/internal/usecase"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "topwords",
	Short: "Find the most frequent words in text",
	Long: `topwords ranks the words of a text by frequency in linear time, skipping
stop words and optionally counting Snowball stems instead of surface forms.

Example usage:
  topwords top README.md -k 5          # Top 5 words of a file
  cat notes.txt | topwords top --stem   # Rank stdin with English stemming
  topwords scan ./docs --json           # Rank every matching file in a directory`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		logger, err = logging.New(cfg.Logging, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to configure logging: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./topwords.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// newFrequencyUseCase builds a ranking session from the loaded config.
func newFrequencyUseCase(stopWords analyzer.StopWords) *usecase.FrequencyUseCase {
	var opts []analyzer.TokenizerOption
	if cfg.Rank.SplitLines {
		opts = append(opts, analyzer.WithLineBreaks())
	}
	uc := usecase.NewFrequencyUseCase(analyzer.NewTokenizer(opts...), stopWords, logger)
	if lang := cfg.StemmingLanguage(); lang != "" {
		uc.ActivateStemmer(lang)
	}
	return uc
}

// cacheProfile identifies the ranking setup a cached result was produced with.
func cacheProfile() string {
	lang := cfg.StemmingLanguage()
	if lang == "" {
		lang = "none"
	}
	return fmt.Sprintf("stem=%s;stopwords=%s;split_lines=%t", lang, cfg.StopWords.Path, cfg.Rank.SplitLines)
}

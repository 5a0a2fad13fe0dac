package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"topwords/internal/adapter/analyzer"
	"topwords/internal/domain"
)

var (
	topK         int
	topStem      bool
	topLanguage  string
	topStopWords string
	topJSON      bool
	topSplit     bool
)

var topCmd = &cobra.Command{
	Use:   "top [file]",
	Short: "Rank the most frequent words of a file or stdin",
	Long: `Rank the most frequent words of a file, or of standard input when no file
is given. Words with the same frequency are listed in order of first appearance.

Examples:
  topwords top article.txt -k 3
  topwords top article.txt --stem --lang english --json
  echo "the cat sat on the mat" | topwords top`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTop,
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().IntVarP(&topK, "top-k", "k", 0, "number of words (default from config)")
	topCmd.Flags().BoolVar(&topStem, "stem", false, "count word stems instead of words")
	topCmd.Flags().StringVar(&topLanguage, "lang", "", "stemmer language (default from config)")
	topCmd.Flags().StringVar(&topStopWords, "stopwords", "", "comma-separated stop-word file")
	topCmd.Flags().BoolVar(&topJSON, "json", false, "output as JSON")
	topCmd.Flags().BoolVar(&topSplit, "split-lines", false, "treat tabs and line breaks as word separators")
}

type topOutput struct {
	Source   string             `json:"source"`
	Stemming string             `json:"stemming,omitempty"`
	Words    []domain.WordCount `json:"words"`
}

func runTop(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	if cmd.Flags().Changed("stem") {
		cfg.Rank.Stemming = topStem
	}
	if topLanguage != "" {
		cfg.Rank.Language = topLanguage
	}
	if cmd.Flags().Changed("split-lines") {
		cfg.Rank.SplitLines = topSplit
	}
	if topStopWords != "" {
		cfg.StopWords.Path = topStopWords
	}
	k := cfg.Rank.TopK
	if cmd.Flags().Changed("top-k") {
		k = topK
	}

	source := "stdin"
	var text []byte
	var err error
	if len(args) > 0 {
		source = args[0]
		text, err = os.ReadFile(args[0])
	} else {
		text, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	stopWords, err := analyzer.LoadStopWordsFile(cfg.StopWords.Path)
	if err != nil {
		return err
	}

	uc := newFrequencyUseCase(stopWords)
	words, err := uc.MostFrequentCounts(string(text), k)
	if err != nil {
		return fmt.Errorf("ranking %s failed: %w", source, err)
	}

	out := cmd.OutOrStdout()
	if topJSON {
		output, _ := json.MarshalIndent(topOutput{
			Source:   source,
			Stemming: uc.StemmerLanguage(),
			Words:    words,
		}, "", "  ")
		fmt.Fprintln(out, string(output))
		return nil
	}

	if len(words) == 0 {
		fmt.Fprintln(out, "No words found.")
		return nil
	}
	printWords(out, words)
	return nil
}

func printWords(w io.Writer, words []domain.WordCount) {
	width := 0
	for _, wc := range words {
		width = max(width, len(wc.Word))
	}
	for i, wc := range words {
		fmt.Fprintf(w, "%3d. %-*s %d\n", i+1, width, wc.Word, wc.Count)
	}
}

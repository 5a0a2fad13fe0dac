package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topwords/config"
	"topwords/internal/domain"
	"topwords/internal/usecase"
)

// resetFlags restores every flag of cmd and its subcommands to its default,
// so values set by one test do not leak into the next.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(t, sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(t, rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTopCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("testing for evernote anish evernote"), 0644))

	out, err := execute(t, "", "top", path, "-k", "2", "--json", "--stem=false", "--dir", dir)
	require.NoError(t, err)

	var got topOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, path, got.Source)
	assert.Empty(t, got.Stemming)
	assert.Equal(t, []domain.WordCount{{Word: "evernote", Count: 2}, {Word: "testing", Count: 1}}, got.Words)
}

func TestTopCommand_StdinWithStemming(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "products product products team", "top", "-k", "1", "--stem", "--lang", "english", "--json=false", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "  1. product 3\n", out)
}

func TestTopCommand_EmptyInput(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "top", "--json=false", "--dir", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTopCommand_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "products product products", "top", "-k", "1", "--stem", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "  1. product 3\n", out)

	out, err = execute(t, "products product products", "top", "-k", "1", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "  1. products 2\n", out)
}

func TestTopCommand_SplitLines(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "ever\nnote ever\tnote evernote", "top", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "  1. evernote 3\n", out)

	out, err = execute(t, "ever\nnote ever\tnote evernote", "top", "-k", "1", "--split-lines", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "  1. ever 2\n", out)
}

func TestLanguagesCommand(t *testing.T) {
	out, err := execute(t, "", "languages", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, strings.Fields(out), "english")
}

func TestConfigInitCommand(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "config", "init", "--dir", dir)
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Rank, cfg.Rank)

	_, err = execute(t, "", "config", "init", "--dir", dir)
	assert.Error(t, err, "existing config must not be overwritten without --force")
}

func TestScanCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("ocean ocean river"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("ocean ocean river"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.go"), []byte("package c"), 0644))

	out, err := execute(t, "", "scan", dir, "-k", "1", "-w", "1", "--json", "--dir", dir)
	require.NoError(t, err)

	var got usecase.ScanResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Files, 2)
	assert.Equal(t, "a.txt", got.Files[0].Path)
	assert.Equal(t, []domain.WordCount{{Word: "ocean", Count: 2}}, got.Files[0].Words)
	assert.Equal(t, domain.ScanStats{FilesScanned: 2, CacheHits: 1}, got.Stats)
}

func TestScanCommand_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := execute(t, "", "scan", path, "--dir", dir)
	assert.Error(t, err)
}

package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/sampledeck/internal/config"
	"github.com/KaramelBytes/sampledeck/internal/corpus"
	"github.com/KaramelBytes/sampledeck/internal/logging"
	"github.com/KaramelBytes/sampledeck/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile         string
	debug           bool
	flagFixturesDir string

	// Loaded configuration
	cfg *cfgpkg.Global
	log *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "sampledeck",
	Short: "Sample source fixtures for script editor tests",
	Long: `sampledeck serves language-tagged sample files (sample.java, sample.go, ...) to
script editor test harnesses, and verifies that every sample is intact: stable
across reads, tagged consistently with its extension, balanced and free of
syntax errors where a grammar is available.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sampledeck/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagFixturesDir, "fixtures-dir", "", "load fixtures from this directory instead of the embedded set (overrides config)")
}

func loadConfig() {
	l, err := logging.New(debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to init logger: %v\n", err)
		l = logging.OrNop(nil)
	}
	log = l

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{DefaultLanguage: "json", CheckWorkers: 1, ExportDir: "."}
	}
	cfg = c

	if rootCmd.PersistentFlags().Changed("fixtures-dir") {
		cfg.FixturesDir = flagFixturesDir
	}
	log.Debugw("config loaded", "fixtures_dir", cfg.FixturesDir, "default_language", cfg.DefaultLanguage)
}

// openCorpus builds the corpus from the configured fixtures directory or the embedded set.
func openCorpus() (*corpus.Corpus, error) {
	if cfg == nil {
		loadConfig()
	}
	opts := []corpus.Option{corpus.WithLogger(log)}
	if cfg.FixturesDir != "" {
		dir, err := utils.ExpandHome(cfg.FixturesDir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, corpus.WithDir(dir))
	}
	return corpus.New(opts...)
}

// keyOrDefault returns the first arg, or the configured default language.
func keyOrDefault(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg != nil && cfg.DefaultLanguage != "" {
		return cfg.DefaultLanguage
	}
	return "json"
}

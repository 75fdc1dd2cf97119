package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cfikit/internal/config"
	"cfikit/internal/taxonomy"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	taxonomyPath string
	noColor      bool

	// Loaded at startup
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cfi",
	Short: "ISO 10962 CFI code validator and generator",
	Long: `cfi validates and generates six-character CFI (Classification of
Financial Instruments) codes under the ISO 10962 taxonomy.

A CFI code is category + group + four attributes. Validation walks the code
position by position against the taxonomy and reports either the full
semantic decomposition or the first structural violation.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive interface
		return runInteractive()
	},
}

// Assigned in init rather than in the composite literal above because the
// closure references rootCmd, which would otherwise be an initialization
// cycle.
func rootPersistentPreRunE(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(resolveConfigPath())
	if err != nil {
		return err
	}
	if taxonomyPath != "" {
		cfg.TaxonomyPath = taxonomyPath
	}
	if noColor {
		cfg.NoColor = true
	}
	if verbose {
		cfg.Verbose = true
	}

	// Skip logger init for the interactive TUI (it has its own UI)
	if cmd == rootCmd {
		return nil
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// loadTaxonomy returns the configured taxonomy: a custom schema file when
// one is set, otherwise the embedded ISO 10962 reference data.
func loadTaxonomy() (*taxonomy.Taxonomy, error) {
	if cfg != nil && cfg.TaxonomyPath != "" {
		if logger != nil {
			logger.Debug("Loading custom taxonomy", zap.String("path", cfg.TaxonomyPath))
		}
		return taxonomy.LoadFile(cfg.TaxonomyPath)
	}
	return taxonomy.Default()
}

func init() {
	rootCmd.PersistentPreRunE = rootPersistentPreRunE
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.cfi/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "", "custom taxonomy schema file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(attributesCmd)
	rootCmd.AddCommand(referenceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/KaramelBytes/comps-cli/internal/config"
	"github.com/KaramelBytes/comps-cli/internal/logging"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration and logger
	cfg *cfgpkg.Global
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "comps",
	Short: "Comps CLI: compare a subject property against neighborhood sales",
	Long: `Comps compares a single subject property against a neighborhood sales
dataset (CSV or XLSX), reports the neighborhood, similar-model and exact-model
median prices, and emits a BUY / PASS / INVESTIGATE call plus a renderable
price-distribution chart spec.`,
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
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.comps/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so commands can still run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{LogLevel: "info", Delimiter: ","}
	}
	cfg = c

	log, err = logging.New(cfg.LogLevel, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to build logger: %v\n", err)
		log = zap.NewNop()
	}
}

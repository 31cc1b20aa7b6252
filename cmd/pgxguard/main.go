// Package main provides the pgxguard command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pgxguard",
		Short: "Pharmacogenomic drug-safety screening from variant files",
		Long: `pgxguard converts a clinical variant file (VCF) into per-drug safety
classifications using published pharmacogenomic consensus guidelines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newDrugsCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// initConfig wires viper to ~/.pgxguard.yaml and PGXGUARD_* environment
// variables. A missing config file is fine; defaults apply.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.SetConfigFile(filepath.Join(home, ".pgxguard.yaml"))
	}
	viper.SetEnvPrefix("pgxguard")
	viper.AutomaticEnv()

	viper.SetDefault("parser.min_quality", 20.0)
	viper.SetDefault("parser.min_depth", 10)
	viper.SetDefault("parser.min_genotype_quality", 15)
	viper.SetDefault("analyze.workers", 0)
	viper.SetDefault("explain.endpoint", "")
	viper.SetDefault("explain.model", "gpt-4o-mini")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pgxguard version %s (%s) built %s\n", version, commit, date)
		},
	}
}

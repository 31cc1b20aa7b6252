package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pgxguard/pgxguard/internal/catalog"
	"github.com/pgxguard/pgxguard/internal/explain"
	"github.com/pgxguard/pgxguard/internal/pipeline"
	"github.com/pgxguard/pgxguard/internal/report"
	"github.com/pgxguard/pgxguard/internal/risk"
	"github.com/pgxguard/pgxguard/internal/vcf"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		drugList     []string
		catalogPath  string
		outputFormat string
		outputFile   string
		withExplain  bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [flags] <input.vcf>",
		Short: "Analyze a variant file against the supported drug panel",
		Example: `  pgxguard analyze patient.vcf
  pgxguard analyze --drugs codeine,warfarin patient.vcf
  pgxguard analyze --format json -o report.json patient.vcf
  cat patient.vcf | pgxguard analyze -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], drugList, catalogPath, outputFormat, outputFile, withExplain, verbose)
		},
	}

	cmd.Flags().StringSliceVar(&drugList, "drugs", nil, "Drugs to evaluate (default: full panel)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog overlay file (.tsv, .duckdb)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, json")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&withExplain, "explain", false, "Generate narrative explanations via the configured service")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func newDrugsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drugs",
		Short: "List the supported drug panel",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, d := range risk.Drugs() {
				fmt.Printf("%-16s %s\n", d, d.Gene())
			}
		},
	}
}

func runAnalyze(inputPath string, drugList []string, catalogPath, outputFormat, outputFile string, withExplain, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	drugs, err := resolveDrugs(drugList)
	if err != nil {
		return err
	}

	cat, err := buildCatalog(catalogPath)
	if err != nil {
		return err
	}
	logger.Debug("catalog sealed", zap.Int("entries", cat.Size()))

	text, err := readInput(inputPath)
	if err != nil {
		return err
	}

	parser := vcf.NewParser()
	parser.MinQuality = viper.GetFloat64("parser.min_quality")
	parser.MinDepth = viper.GetInt("parser.min_depth")
	parser.MinGenotypeQual = viper.GetInt("parser.min_genotype_quality")

	analyzer := pipeline.New(cat)
	analyzer.SetLogger(logger)
	analyzer.SetParser(parser)
	analyzer.SetWorkers(viper.GetInt("analyze.workers"))

	if withExplain {
		client, err := explain.NewClient(&explain.Config{
			Endpoint: viper.GetString("explain.endpoint"),
			Model:    viper.GetString("explain.model"),
			APIKey:   viper.GetString("explain.api_key"),
		}, logger)
		if err != nil {
			return fmt.Errorf("explanation service: %w", err)
		}
		analyzer.SetExplainer(client)
	}

	rep, err := analyzer.Analyze(context.Background(), text, drugs)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputFile != "" {
		out, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	var writer report.Writer
	switch outputFormat {
	case "json":
		writer = report.NewJSONWriter(out)
	case "text":
		writer = report.NewTextWriter(out)
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	return writer.Write(rep)
}

// resolveDrugs maps requested drug names to the supported panel, defaulting
// to the full panel.
func resolveDrugs(names []string) ([]risk.Drug, error) {
	if len(names) == 0 {
		return risk.Drugs(), nil
	}
	drugs := make([]risk.Drug, 0, len(names))
	for _, name := range names {
		d, ok := risk.ParseDrug(name)
		if !ok {
			return nil, fmt.Errorf("unsupported drug %q (see: pgxguard drugs)", name)
		}
		drugs = append(drugs, d)
	}
	return drugs, nil
}

// buildCatalog seals the embedded catalog, with an optional overlay merged
// in before sealing.
func buildCatalog(overlayPath string) (*catalog.Catalog, error) {
	if overlayPath == "" {
		return catalog.Default(), nil
	}

	b := catalog.DefaultBuilder()
	if catalog.IsDuckDB(overlayPath) {
		loader, err := catalog.NewDuckDBLoader(overlayPath)
		if err != nil {
			return nil, err
		}
		defer loader.Close()
		if err := loader.Load(b); err != nil {
			return nil, err
		}
	} else {
		if err := b.LoadTSV(overlayPath); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// readInput materializes the input file (or stdin for "-") into memory. The
// pipeline operates on already-materialized text.
func readInput(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// newLogger builds a console logger writing to stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

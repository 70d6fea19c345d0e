package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/comps-cli/internal/comps"
	"github.com/KaramelBytes/comps-cli/internal/dataset"
	"github.com/KaramelBytes/comps-cli/internal/report"
	"github.com/KaramelBytes/comps-cli/internal/resolver"
	"github.com/KaramelBytes/comps-cli/internal/utils"
)

var (
	anaBeds       float64
	anaBaths      float64
	anaSqft       float64
	anaPrice      float64
	anaDelimiter  string
	anaSheetName  string
	anaSheetIndex int
	anaFormat     string
	anaOutput     string
	anaChartOut   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Compare a subject property against a sales dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		delim, err := resolveDelimiter(anaDelimiter, configuredDelimiter())
		if err != nil {
			return err
		}
		df, err := dataset.Load(path, dataset.Options{
			Delimiter:  delim,
			SheetName:  anaSheetName,
			SheetIndex: anaSheetIndex,
		})
		if err != nil {
			return err
		}

		mapping, err := buildAliasTable().Resolve(df.Names())
		if err != nil {
			return fmt.Errorf("resolve headers: %w", err)
		}

		subject := comps.Subject{Beds: anaBeds, Baths: anaBaths, Sqft: anaSqft, Price: anaPrice}
		analysis, err := comps.New(log).Run(df, mapping, subject)
		if err != nil {
			return err
		}
		rep := report.New(path, analysis)

		switch strings.ToLower(anaFormat) {
		case "", "terminal":
			rep.Render(os.Stdout)
		case "json":
			b, err := rep.JSON()
			if err != nil {
				return err
			}
			fmt.Println(string(b))
		default:
			return fmt.Errorf("unsupported --format: %s (use 'terminal'|'json')", anaFormat)
		}

		if anaOutput != "" {
			b, err := rep.JSON()
			if err != nil {
				return err
			}
			if err := utils.SafeWriteFile(anaOutput, b); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", anaOutput)
		}

		chartOut := anaChartOut
		if chartOut == "" && cfg != nil {
			chartOut = cfg.ChartOut
		}
		if chartOut != "" {
			b, err := utils.PrettyJSON(analysis.Chart)
			if err != nil {
				return err
			}
			if err := utils.SafeWriteFile(chartOut, b); err != nil {
				return fmt.Errorf("write chart spec: %w", err)
			}
			fmt.Printf("✓ Wrote chart spec to %s\n", chartOut)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().Float64Var(&anaBeds, "beds", 0, "subject property bedrooms")
	analyzeCmd.Flags().Float64Var(&anaBaths, "baths", 0, "subject property bathrooms")
	analyzeCmd.Flags().Float64Var(&anaSqft, "sqft", 0, "subject property square footage")
	analyzeCmd.Flags().Float64Var(&anaPrice, "price", 0, "subject property asking price")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet-name", "", "XLSX: sheet name to load")
	analyzeCmd.Flags().IntVar(&anaSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	analyzeCmd.Flags().StringVar(&anaFormat, "format", "terminal", "output format: 'terminal'|'json'")
	analyzeCmd.Flags().StringVarP(&anaOutput, "output", "o", "", "optional path to write the full report (JSON)")
	analyzeCmd.Flags().StringVar(&anaChartOut, "chart-out", "", "optional path to write the chart spec (JSON)")
	_ = analyzeCmd.MarkFlagRequired("beds")
	_ = analyzeCmd.MarkFlagRequired("baths")
	_ = analyzeCmd.MarkFlagRequired("sqft")
	_ = analyzeCmd.MarkFlagRequired("price")
}

func configuredDelimiter() string {
	if cfg == nil {
		return ""
	}
	return cfg.Delimiter
}

// resolveDelimiter picks the flag value over the configured default.
func resolveDelimiter(flagVal, cfgVal string) (rune, error) {
	s := flagVal
	if s == "" {
		s = cfgVal
	}
	switch s {
	case "", ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

// buildAliasTable merges configured extra aliases into the default table.
func buildAliasTable() *resolver.Table {
	t := resolver.NewTable()
	if cfg != nil {
		for field, names := range cfg.HeaderAliases {
			t.Extend(field, names...)
		}
	}
	return t
}

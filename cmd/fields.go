package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/comps-cli/internal/comps"
	"github.com/KaramelBytes/comps-cli/internal/dataset"
	"github.com/KaramelBytes/comps-cli/internal/resolver"
)

var (
	fldDelimiter  string
	fldSheetName  string
	fldSheetIndex int
)

var fieldsCmd = &cobra.Command{
	Use:   "fields <file>",
	Short: "Preview how dataset headers map onto canonical analysis fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delim, err := resolveDelimiter(fldDelimiter, configuredDelimiter())
		if err != nil {
			return err
		}
		df, err := dataset.Load(args[0], dataset.Options{
			Delimiter:  delim,
			SheetName:  fldSheetName,
			SheetIndex: fldSheetIndex,
		})
		if err != nil {
			return err
		}

		mapping, rerr := buildAliasTable().Resolve(df.Names())
		var missing *resolver.MissingRequiredError
		if rerr != nil && !errors.As(rerr, &missing) {
			return rerr
		}

		for _, f := range []comps.Field{
			comps.FieldPrice, comps.FieldAddress, comps.FieldBeds,
			comps.FieldBaths, comps.FieldSqft, comps.FieldDate,
		} {
			if col, ok := mapping[f]; ok {
				fmt.Printf("✓ %-8s → %s\n", f, col)
			} else {
				fmt.Printf("– %-8s → no match\n", f)
			}
		}
		if missing != nil {
			return fmt.Errorf("dataset is not analyzable: %w", missing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
	fieldsCmd.Flags().StringVar(&fldDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	fieldsCmd.Flags().StringVar(&fldSheetName, "sheet-name", "", "XLSX: sheet name to load")
	fieldsCmd.Flags().IntVar(&fldSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index")
}

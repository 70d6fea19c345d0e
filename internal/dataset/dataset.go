// Package dataset loads neighborhood sales files into dataframes for the
// comparison engine. Columns are kept as raw strings on purpose: the engine
// owns all numeric coercion and treats unparseable cells as missing.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// Options controls file loading.
type Options struct {
	// Delimiter for CSV. If 0, defaults to ',' (or '\t' for .tsv).
	Delimiter rune
	// SheetName selects an XLSX sheet by name; takes precedence over index.
	SheetName string
	// SheetIndex is the 1-based XLSX sheet index. 0 means the first sheet.
	SheetIndex int
}

// Load reads a CSV/TSV or XLSX file into a DataFrame of string columns.
func Load(path string, opt Options) (dataframe.DataFrame, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".tsv":
		return loadCSV(path, opt)
	case ".xlsx":
		return loadXLSX(path, opt)
	default:
		return dataframe.DataFrame{}, fmt.Errorf("unsupported dataset format %q (want .csv, .tsv or .xlsx)", ext)
	}
}

func loadCSV(path string, opt Options) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = ','
		if strings.HasSuffix(strings.ToLower(path), ".tsv") {
			delim = '\t'
		}
	}
	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("read csv: %w", df.Err)
	}
	return df, nil
}

func loadXLSX(path string, opt Options) (dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet, err := pickSheet(f, opt)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("sheet %q is empty", sheet)
	}

	// excelize trims trailing empty cells per row; pad back to header width.
	ncol := len(rows[0])
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < ncol {
			padded := make([]string, ncol)
			copy(padded, row)
			row = padded
		}
		records = append(records, row[:ncol])
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("load sheet %q: %w", sheet, df.Err)
	}
	return df, nil
}

func pickSheet(f *excelize.File, opt Options) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if opt.SheetName != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, opt.SheetName) {
				return s, nil
			}
		}
		return "", fmt.Errorf("sheet %q not found; available: %s", opt.SheetName, strings.Join(sheets, ", "))
	}
	idx := opt.SheetIndex
	if idx <= 0 {
		idx = 1
	}
	if idx > len(sheets) {
		return "", fmt.Errorf("sheet index %d out of range (workbook has %d sheets)", idx, len(sheets))
	}
	return sheets[idx-1], nil
}

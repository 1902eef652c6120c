// Package importer reads word lists from spreadsheets.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Options selects where the terms are in the file.
type Options struct {
	Sheet    string // empty → first sheet (xlsx only)
	Column   string // column letter, default "A"
	StartRow int    // 1-based first data row, default 2 (skips a header)
}

func (o Options) withDefaults() Options {
	if o.Column == "" {
		o.Column = "A"
	}
	if o.StartRow <= 0 {
		o.StartRow = 2
	}
	o.Column = strings.ToUpper(o.Column)
	return o
}

// ReadTerms returns the non-blank cells of one column, in file order. .csv files
// are read as CSV, anything else as an Excel workbook.
func ReadTerms(path string, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	col, err := excelize.ColumnNameToNumber(opts.Column)
	if err != nil {
		return nil, fmt.Errorf("invalid column %q: %w", opts.Column, err)
	}

	var rows [][]string
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		rows, err = readCSV(path)
	} else {
		rows, err = readXLSX(path, opts.Sheet)
	}
	if err != nil {
		return nil, err
	}

	var terms []string
	for i, row := range rows {
		if i < opts.StartRow-1 || len(row) < col {
			continue
		}
		if term := strings.TrimSpace(row[col-1]); term != "" {
			terms = append(terms, term)
		}
	}
	return terms, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

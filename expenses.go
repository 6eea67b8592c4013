package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Exported transaction files cover a three-month slice, so the summed
// spending is divided by 3 to get a monthly figure.
const spendingSliceMonths = 3

// LoadSpendingAdjustment reads an exported transactions file (.csv or .xlsx)
// and returns the monthly amount to add to core living expenses: the
// absolute sum of negative values in the first numeric column, averaged over
// the slice.
//
// Malformed data is never fatal. Any problem yields a zero adjustment plus a
// non-nil error the caller should surface as a warning and otherwise ignore.
func LoadSpendingAdjustment(path string) (float64, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVRows(path)
	case ".xlsx":
		rows, err = readXLSXRows(path)
	default:
		return 0, fmt.Errorf("unsupported spending file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
	if err != nil {
		return 0, fmt.Errorf("spending file parse failed: %w", err)
	}

	col, ok := firstNumericColumn(rows)
	if !ok {
		return 0, fmt.Errorf("spending file has no numeric column")
	}

	total := 0.0
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		v, err := parseAmount(row[col])
		if err != nil {
			continue // header or stray text cell
		}
		if v < 0 {
			total += -v
		}
	}

	return total / spendingSliceMonths, nil
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // bank exports have ragged rows
	return r.ReadAll()
}

func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheet)
}

// firstNumericColumn finds the leftmost column where some data row parses as
// a number. Header rows are skipped by the per-cell parse.
func firstNumericColumn(rows [][]string) (int, bool) {
	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	for col := 0; col < maxCols; col++ {
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			if _, err := parseAmount(row[col]); err == nil {
				return col, true
			}
		}
	}
	return 0, false
}

// parseAmount handles the formats bank exports use: "$1,234.56", "(45.00)"
// for debits, plain negatives.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if negative {
		v = -v
	}
	return v, nil
}

// Package tabular implements the bulk import/export pipeline: CSV/XLSX
// parsing, header-to-field auto-mapping, per-row validation and CSV export.
// Parsing failures degrade to an empty table; the caller decides how to
// surface "no rows found" to the user.
package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table holds a parsed spreadsheet: one header row plus data rows. Rows are
// already sanitized against formula injection.
type Table struct {
	Headers []string
	Rows    [][]string
	// RowNums maps each row to its 1-based position among the file's data
	// rows, so error reports still line up when blank rows are skipped.
	RowNums []int
}

var ErrNoRows = errors.New("no rows found")

// ParseCSV reads a comma-delimited file with a required header row.
// A malformed file yields an empty table and ErrNoRows, never a panic.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		slog.Warn("tabular: csv parse failed", "err", err)
		return &Table{}, ErrNoRows
	}
	return tableFromRecords(records)
}

// ParseXLSX reads the first sheet of an XLSX workbook; the first row is the
// header row.
func ParseXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		slog.Warn("tabular: xlsx open failed", "err", err)
		return &Table{}, ErrNoRows
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, ErrNoRows
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		slog.Warn("tabular: xlsx read failed", "sheet", sheets[0], "err", err)
		return &Table{}, ErrNoRows
	}
	return tableFromRecords(records)
}

func tableFromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return &Table{}, ErrNoRows
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([][]string, 0, len(records)-1)
	rowNums := make([]int, 0, len(records)-1)
	for n, rec := range records[1:] {
		row := make([]string, len(rec))
		empty := true
		for i, cell := range rec {
			cell = SanitizeCell(strings.TrimSpace(cell))
			row[i] = cell
			if cell != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
			rowNums = append(rowNums, n+1)
		}
	}

	if len(rows) == 0 {
		return &Table{Headers: headers}, ErrNoRows
	}
	return &Table{Headers: headers, Rows: rows, RowNums: rowNums}, nil
}

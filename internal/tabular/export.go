package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ExportCSV writes one header row plus a data row per record. encoding/csv
// handles quoting; cell values are sanitized so formulas stay inert when the
// file is opened in a spreadsheet tool.
func ExportCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, row := range rows {
		out := make([]string, len(row))
		for j, cell := range row {
			out[j] = SanitizeCell(cell)
		}
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

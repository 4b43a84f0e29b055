package cmd

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/uyouii/natural-breaks-csv/internal/json"
	"github.com/uyouii/natural-breaks-csv/model"
)

// rows shown from each end of a long table
const previewRows = 5

func printTable(out io.Writer, table *model.Table) error {
	data := [][]string{table.Header}
	if table.Len() > 2*previewRows {
		data = append(data, table.Rows[:previewRows]...)
		data = append(data, ellipsisRow(len(table.Header)))
		data = append(data, table.Rows[table.Len()-previewRows:]...)
	} else {
		data = append(data, table.Rows...)
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n\n[%d rows x %d columns]\n", rendered, table.Len(), len(table.Header))
	return err
}

func ellipsisRow(n int) []string {
	row := make([]string, n)
	for i := range row {
		row[i] = "..."
	}
	return row
}

func printSummary(out io.Writer, s *summary) error {
	b, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

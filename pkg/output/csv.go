// pkg/output/csv.go

package output

import (
	"encoding/csv"
	"io"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/aggregate"
)

// CSVTo writes a header line and one record per row, without an index column.
func CSVTo(w io.Writer, rows []aggregate.Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(aggregate.Headers()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row.Values()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// pkg/output/table.go

package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// PlainTable renders rows as whitespace-aligned columns with a dashed rule
// under the headers. It suits short summaries where a bordered grid is noise.
func PlainTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if len(headers) > 0 {
		rules := make([]string, len(headers))
		for i, h := range headers {
			rules[i] = strings.Repeat("-", len(h))
		}
		_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
		_, _ = fmt.Fprintln(tw, strings.Join(rules, "\t"))
	}

	for _, row := range rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

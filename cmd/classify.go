package cmd

import (
	"strconv"
	"time"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/aggregate"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/config"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/output"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/report"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/utils"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_cli"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_err"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_io"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newClassifyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "classify -r <FILENAME>",
		Short: "Count report lines per recognised kind",
		Long: `Classify every line of an XCP scan report and print how many lines feed
each column. Use it to see why a report produces fewer rows than expected:
the row count is the smallest of the scan, access, owners and used counts.
The report path may also come from XCPREPORT_REPORT, a .env file or the
report key of a --config file.

Examples:
  xcpreport classify -r scan_report.txt
  XCPREPORT_REPORT=scan_report.txt xcpreport classify`,
		Args: cobra.NoArgs,
		RunE: xcp_cli.Wrap(runClassify),
	}
	cli.Register(c, config.ReportFlag, config.ConfigFlag)
	return c
}

func runClassify(rc *xcp_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	path, err := config.LoadReportPath(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	rep, err := report.ParseFile(path)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(report.Kinds())+2)
	for _, kind := range report.Kinds() {
		rows = append(rows, []string{kind.String(), strconv.Itoa(rep.Counts[kind])})
	}
	rows = append(rows,
		[]string{"dropped", strconv.Itoa(rep.Dropped)},
		[]string{report.KindUnrecognized.String(), strconv.Itoa(rep.Unrecognized)},
	)
	if err := output.PlainTable(cmd.OutOrStdout(), []string{"KIND", "LINES"}, rows); err != nil {
		return xcp_err.NewIOError("cannot write classification table", err)
	}

	cols := aggregate.FromReport(rep)
	rc.Log.Info("terminal prompt: Classified "+utils.FormatCount(rep.Lines, "line", "lines")+" in "+utils.FormatDuration(time.Since(start)),
		zap.Int("rows", cols.Shortest()),
		zap.Bool("aligned", cols.Aligned()))
	return nil
}

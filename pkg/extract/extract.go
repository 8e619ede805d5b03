// Package extract runs the report-to-dataset pipeline: parse the report,
// aggregate the columns into rows, write CSV and JSON, optionally preview.
package extract

import (
	"io"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/aggregate"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/config"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/output"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/report"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/utils"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_io"
	"go.uber.org/zap"
)

// Result summarises one run.
type Result struct {
	Rows   []aggregate.Row
	Paths  output.DatasetPaths
	Report *report.Report
}

// Run extracts the dataset described by s. The preview, when requested,
// is written to stdout.
func Run(rc *xcp_io.RuntimeContext, s *config.Settings, stdout io.Writer) (*Result, error) {
	log := rc.Log

	rep, err := report.ParseFile(s.ReportPath)
	if err != nil {
		return nil, err
	}
	log.Info("Report parsed",
		zap.String("report", s.ReportPath),
		zap.Int("lines", rep.Lines),
		zap.Int("filesystems", len(rep.Filesystems)),
		zap.Int("access", len(rep.Access)),
		zap.Int("owners", len(rep.Owners)),
		zap.Int("used", len(rep.Used)))
	log.Debug("Report lines skipped",
		zap.Int("unrecognized", rep.Unrecognized),
		zap.Int("dropped", rep.Dropped))

	policy := aggregate.PolicyTruncate
	if s.Strict {
		policy = aggregate.PolicyStrict
	}
	rows, err := aggregate.Aggregate(aggregate.FromReport(rep),
		aggregate.WithPolicy(policy),
		aggregate.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Info("Rows aggregated", zap.Int("rows", len(rows)), zap.Stringer("policy", policy))

	paths, err := output.WriteDataset(s.OutputDir, s.OutputName, rows)
	if err != nil {
		return nil, err
	}
	log.Info("terminal prompt: CSV and JSON file created in "+s.OutputDir+"/ directory",
		zap.String("csv", paths.CSV),
		zap.String("json", paths.JSON),
		zap.String("rows", utils.FormatCount(len(rows), "filesystem", "filesystems")))

	if s.View {
		if err := output.Preview(stdout, rows, s.Rows); err != nil {
			log.Warn("Failed to render preview", zap.Error(err))
		}
	}

	return &Result{Rows: rows, Paths: paths, Report: rep}, nil
}

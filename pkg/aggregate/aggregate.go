// Package aggregate zips the columns extracted from a report into output
// rows and derives the access sums.
package aggregate

import (
	"strconv"
	"strings"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/report"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/utils"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// Policy decides what happens when the report columns differ in length.
type Policy int

const (
	// PolicyTruncate keeps the first n rows, n being the shortest column.
	PolicyTruncate Policy = iota
	// PolicyStrict rejects unequal columns with an alignment error.
	PolicyStrict
)

func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "truncate"
}

// Columns holds the seven positional columns of a report. Entry i of every
// column describes the same filesystem.
type Columns struct {
	Filers      []string
	Filesystems []string
	Mountpoints []string
	Paths       []string
	Access      []report.AccessTriplet
	Owners      []string
	Used        []string
}

// FromReport derives the filer, mountpoint and path columns from the scan
// descriptors and returns them alongside the scanned columns.
func FromReport(rep *report.Report) Columns {
	return Columns{
		Filers:      report.ExtractFiler(rep.Filesystems),
		Filesystems: rep.Filesystems,
		Mountpoints: report.ExtractMountpoint(rep.Filesystems),
		Paths:       report.ExtractPath(rep.Filesystems),
		Access:      rep.Access,
		Owners:      rep.Owners,
		Used:        rep.Used,
	}
}

// Lengths returns every column length in argument order.
func (c Columns) Lengths() []xcp_err.ColumnLength {
	return []xcp_err.ColumnLength{
		{Name: "filers", Len: len(c.Filers)},
		{Name: "filesystems", Len: len(c.Filesystems)},
		{Name: "mountpoints", Len: len(c.Mountpoints)},
		{Name: "paths", Len: len(c.Paths)},
		{Name: "access", Len: len(c.Access)},
		{Name: "owners", Len: len(c.Owners)},
		{Name: "used", Len: len(c.Used)},
	}
}

// Shortest returns the length of the shortest column.
func (c Columns) Shortest() int {
	lengths := c.Lengths()
	n := lengths[0].Len
	for _, l := range lengths[1:] {
		n = min(n, l.Len)
	}
	return n
}

// Aligned reports whether every column has the same length.
func (c Columns) Aligned() bool {
	lengths := c.Lengths()
	for _, l := range lengths[1:] {
		if l.Len != lengths[0].Len {
			return false
		}
	}
	return true
}

type options struct {
	policy Policy
	log    *zap.Logger
}

// Option configures Aggregate.
type Option func(*options)

// WithPolicy sets the alignment policy. The default is PolicyTruncate.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger sets the logger used for alignment warnings.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Aggregate builds one Row per position, up to the shortest column. Every
// unparseable value is reported; no rows are returned if any row fails.
func Aggregate(cols Columns, opts ...Option) ([]Row, error) {
	o := options{policy: PolicyTruncate, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	n := cols.Shortest()
	if !cols.Aligned() {
		if o.policy == PolicyStrict {
			return nil, xcp_err.NewAlignmentError(cols.Lengths())
		}
		o.log.Warn("Report columns differ in length, truncating to the shortest",
			zap.Int("rows", n),
			zap.Any("lengths", cols.Lengths()))
	}

	rows := make([]Row, 0, n)
	var result *multierror.Error
	for i := 0; i < n; i++ {
		row, err := buildRow(cols, i)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		rows = append(rows, row)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, xcp_err.NewParseError(
			"report contains values that are not whole numbers", err,
			"Check the Total space used and Accessed lines of the listed filesystems",
		)
	}
	return rows, nil
}

func buildRow(cols Columns, i int) (Row, error) {
	filesystem := strings.TrimSpace(cols.Filesystems[i])

	usedRaw := strings.TrimSpace(cols.Used[i])
	used, err := strconv.ParseInt(usedRaw, 10, 64)
	if err != nil {
		return Row{}, cerr.Wrapf(err, "filesystem %d (%s): total space used %q", i+1, filesystem, usedRaw)
	}
	if used < 0 {
		return Row{}, cerr.Newf("filesystem %d (%s): total space used %d is negative", i+1, filesystem, used)
	}

	access := cols.Access[i]
	if len(access) < 3 {
		return Row{}, cerr.Newf("filesystem %d (%s): expected 3 access counts, got %d", i+1, filesystem, len(access))
	}
	var counts [3]int64
	for k := range counts {
		counts[k], err = strconv.ParseInt(strings.TrimSpace(access[k]), 10, 64)
		if err != nil {
			return Row{}, cerr.Wrapf(err, "filesystem %d (%s): access count %q", i+1, filesystem, access[k])
		}
	}

	return Row{
		Filer:             cols.Filers[i],
		Filesystem:        filesystem,
		TotalUsed:         utils.ConvertSize(used),
		Mountpoint:        strings.TrimSpace(cols.Mountpoints[i]),
		ExtractPath:       strings.TrimSpace(cols.Paths[i]),
		Owners:            cols.Owners[i],
		AccessedOverYear:  access[0],
		AccessedOverMonth: access[1],
		AccessedRecent:    access[2],
		SumUnder12Months:  counts[1] + counts[2],
		Sum:               counts[0] + counts[1] + counts[2],
	}, nil
}

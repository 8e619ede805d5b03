package testutil

import (
	"fmt"
	"strings"
	"testing"
)

// ScanBlock is one scanned filesystem as XCP prints it.
type ScanBlock struct {
	Descriptor string
	Access     [3]int
	Owners     string
	UsedBytes  int64
}

// Lines renders the block with the header and summary lines XCP emits
// around the values.
func (b ScanBlock) Lines() []string {
	return []string{
		"scan " + b.Descriptor,
		"== Maximum Values ==",
		"Accessed,>1 year,>1 month,1-31 days",
		fmt.Sprintf("Accessed,%d,%d,%d", b.Access[0], b.Access[1], b.Access[2]),
		"Top File Owners," + b.Owners,
		fmt.Sprintf("Total space used,%d", b.UsedBytes),
	}
}

// BuildReport joins blocks into report text with a banner and a trailer.
func BuildReport(blocks ...ScanBlock) string {
	lines := []string{"XCP 1.9.3; (c) 2024 NetApp, Inc."}
	for _, b := range blocks {
		lines = append(lines, b.Lines()...)
	}
	lines = append(lines, "Elapsed time: 4s")
	return strings.Join(lines, "\n") + "\n"
}

// WriteReport writes BuildReport(blocks...) to a temp dir and returns the path.
func WriteReport(t *testing.T, blocks ...ScanBlock) string {
	t.Helper()
	return CreateTestFile(t, t.TempDir(), "scan_report.txt", BuildReport(blocks...))
}

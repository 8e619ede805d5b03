// Package report extracts per-filesystem columns from an XCP scan report.
//
// The report is line oriented. Four line markers are recognised:
//
//	scan <filer>:<path>            filesystem descriptor
//	Accessed,<n>,<n>,<n>           access-age histogram
//	Top File Owners,<names>        owner list
//	Total space used,<bytes>       raw byte count
//
// Every other line is ignored. Each marker feeds its own column; the columns
// are positionally aligned by the order the report emits them.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_err"
)

// AccessTriplet holds the comma separated access counts of one filesystem:
// accessed >1 year, >1 month and within 1-31 days. Fields are kept as text.
type AccessTriplet []string

// Report is the result of one pass over a report.
type Report struct {
	Filesystems []string
	Access      []AccessTriplet
	Owners      []string
	Used        []string

	// Lines is the number of lines read.
	Lines int
	// Unrecognized counts lines that carry none of the markers.
	Unrecognized int
	// Dropped counts lines that carry a marker but were rejected by its guard.
	Dropped int
	// Counts tallies accepted lines per kind.
	Counts map[LineKind]int
}

// Parse classifies every line of r and collects the columns in one pass.
// A line is offered to every rule, so a line carrying two markers feeds two
// columns. Lines have no length limit; a trailing "\r" is dropped.
func Parse(r io.Reader) (*Report, error) {
	rep := &Report{Counts: make(map[LineKind]int)}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			rep.Lines++
			rep.consume(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if errors.Is(err, io.EOF) {
			return rep, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (rep *Report) consume(line string) {
	matched, kept := false, false
	for _, r := range rules {
		if !r.marked(line) {
			continue
		}
		matched = true
		if r.apply(rep, line) {
			rep.Counts[r.kind]++
			kept = true
		}
	}
	switch {
	case !matched:
		rep.Unrecognized++
	case !kept:
		rep.Dropped++
	}
}

// ParseFile opens path, parses it and releases the handle before returning.
func ParseFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xcp_err.NewIOError(
			fmt.Sprintf("cannot open report %s", path), err,
			"Check that the file passed with -r exists and is readable",
		)
	}
	defer func() { _ = f.Close() }()

	rep, err := Parse(f)
	if err != nil {
		return nil, xcp_err.NewIOError(fmt.Sprintf("cannot read report %s", path), err)
	}
	return rep, nil
}

// ScanFilesystems returns the raw "<filer>:<path>" descriptors of every scan
// line in file order.
func ScanFilesystems(path string) ([]string, error) {
	rep, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return rep.Filesystems, nil
}

// ScanAccess returns the access triplets of every access data line.
func ScanAccess(path string) ([]AccessTriplet, error) {
	rep, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return rep.Access, nil
}

// ScanOwners returns the trimmed owner lists, skipping lines whose fields
// are all numeric.
func ScanOwners(path string) ([]string, error) {
	rep, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return rep.Owners, nil
}

// ScanTotalUsed returns the untrimmed text that follows each
// "Total space used," marker.
func ScanTotalUsed(path string) ([]string, error) {
	rep, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return rep.Used, nil
}

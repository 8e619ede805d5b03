package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projects = testutil.ScanBlock{
	Descriptor: "filer1:/export/projects",
	Access:     [3]int{120, 30, 4},
	Owners:     "alice,bob",
	UsedBytes:  1536,
}

func run(t *testing.T, args ...string) (int, string, string, string) {
	t.Helper()
	var logs, stdout, stderr bytes.Buffer
	logger.SetLogger(logger.New("info", false, &logs, &logs))
	code := ExecuteArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String(), logs.String()
}

func writeReport(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := testutil.CreateTestFile(t, dir, "scan_report.txt", testutil.BuildReport(projects))
	return dir, path
}

func TestExtract(t *testing.T) {
	dir, path := writeReport(t)
	outDir := filepath.Join(dir, "out")

	code, stdout, stderr, logs := run(t, "-r", path, "-f", "fs", "--output-dir", outDir, "-v")
	assert.Equal(t, 0, code, stderr)
	assert.FileExists(t, filepath.Join(outDir, "fs.csv"))
	assert.FileExists(t, filepath.Join(outDir, "fs.json"))
	assert.Contains(t, stdout, "showing first 1 of 1 rows")
	assert.Contains(t, logs, "CSV and JSON file created in "+outDir+"/ directory")
}

func TestVersion(t *testing.T) {
	code, stdout, _, _ := run(t, "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Version 1.0\n", stdout)
}

func TestExitCodes(t *testing.T) {
	dir, path := writeReport(t)

	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{name: "missing flags", args: nil, code: 2, want: "-r/--report is required"},
		{name: "unknown flag", args: []string{"--bogus"}, code: 2, want: "unknown flag"},
		{name: "bad rows", args: []string{"-r", path, "-f", "fs", "-n", "x"}, code: 2, want: "invalid argument"},
		{name: "missing report", args: []string{"-r", filepath.Join(dir, "none.txt"), "-f", "fs", "--output-dir", dir}, code: 1, want: "cannot open report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr, _ := run(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, "Error:")
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestStrictAlignment(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateTestFile(t, dir, "scan_report.txt", testutil.BuildReport(projects)+"scan filer2:/export/extra\n")

	code, _, stderr, _ := run(t, "-r", path, "-f", "fs", "--output-dir", dir, "--strict")
	assert.Equal(t, 4, code)
	assert.Contains(t, stderr, "filers=2")
}

func TestConfigHint(t *testing.T) {
	code, _, stderr, _ := run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Hint:")
}

func TestClassify(t *testing.T) {
	_, path := writeReport(t)

	code, stdout, stderr, logs := run(t, "classify", "-r", path)
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "KIND")
	assert.Regexp(t, `scan\s+1`, stdout)
	assert.Regexp(t, `dropped\s+1`, stdout)
	assert.Regexp(t, `unrecognized\s+3`, stdout)
	assert.Contains(t, logs, "Classified 8 lines in")
	assert.Contains(t, logs, "rows: 1")
}

func TestClassifyRequiresReport(t *testing.T) {
	code, _, stderr, _ := run(t, "classify")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "-r/--report is required")
	assert.Contains(t, stderr, "XCPREPORT_REPORT")
}

func TestClassifyReportFromEnvironment(t *testing.T) {
	_, path := writeReport(t)
	t.Setenv("XCPREPORT_REPORT", path)

	code, stdout, stderr, logs := run(t, "classify")
	assert.Equal(t, 0, code, stderr)
	assert.Regexp(t, `scan\s+1`, stdout)
	assert.Contains(t, logs, "Classified 8 lines in")
}

func TestClassifyReportFromConfigFile(t *testing.T) {
	dir, path := writeReport(t)
	cfg := filepath.Join(dir, "xcpreport.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("report: "+path+"\n"), 0o644))

	code, stdout, stderr, _ := run(t, "classify", "--config", cfg)
	assert.Equal(t, 0, code, stderr)
	assert.Regexp(t, `owners\s+1`, stdout)
}
